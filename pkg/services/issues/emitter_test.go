package issues

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/idfwu/ccem/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testTarget = domain.Target{
	Name:       "test",
	ProjectID:  "project-1",
	TeamID:     "team-1",
	ProjectURL: "https://linear.app/acme/project/test-project-1",
}

type mockReporter struct {
	mock.Mock
}

func (m *mockReporter) Summary(doc domain.IssueDocument) error {
	args := m.Called(doc)
	return args.Error(0)
}

func (m *mockReporter) Saved(path string, target domain.Target) error {
	args := m.Called(path, target)
	return args.Error(0)
}

type fixture struct {
	dir             string
	descriptionPath string
	outputPath      string
	reporter        *mockReporter
	emitter         *Emitter
}

func setupFixture(t *testing.T) *fixture {
	dir := t.TempDir()
	f := &fixture{
		dir:             dir,
		descriptionPath: filepath.Join(dir, DefaultEpicDescriptionPath),
		outputPath:      filepath.Join(dir, DefaultOutputPath),
		reporter:        new(mockReporter),
	}
	require.NoError(t, os.WriteFile(f.descriptionPath, []byte("# CCEM\n\nEpic <overview> & goals.\n"), 0o644))

	f.emitter = NewEmitter(Config{
		Target:              testTarget,
		EpicDescriptionPath: f.descriptionPath,
		OutputPath:          f.outputPath,
	}, f.reporter)
	return f
}

func TestNewInstructions(t *testing.T) {
	instructions := NewInstructions(Phases())
	assert.Equal(t, "Use Linear MCP server or GraphQL API", instructions.Method)
	assert.Equal(t, []string{
		"1. Create Epic first and save its ID",
		"2. Create Phase 1 issues with parentId = epic_id",
		"3. Create Phase 2 issues with parentId = epic_id",
		"4. Create Phase 3 issues with parentId = epic_id",
		"5. Create Phase 4 issues with parentId = epic_id",
		"6. Create Phase 5 issues with parentId = epic_id",
	}, instructions.Order)
	assert.Equal(t, []string{
		"Verify all issues created successfully",
		"Verify parent-child relationships correct",
		"Verify all labels applied",
		"Verify project assignment correct",
	}, instructions.Validation)
}

func TestNewDocument_CountInvariant(t *testing.T) {
	doc := NewDocument(testTarget, "desc")

	expected := 1
	for _, phase := range doc.Epic.Phases {
		expected += len(phase.Issues)
	}
	assert.Equal(t, expected, doc.TotalIssues)
	assert.Equal(t, 17, doc.TotalIssues)
}

func TestEmitter_Run(t *testing.T) {
	ctx := context.Background()
	f := setupFixture(t)
	f.reporter.On("Summary", mock.MatchedBy(func(doc domain.IssueDocument) bool {
		return doc.TotalIssues == 17 && doc.Target == testTarget
	})).Return(nil).Once()
	f.reporter.On("Saved", f.outputPath, testTarget).Return(nil).Once()

	require.NoError(t, f.emitter.Run(ctx))

	data, err := os.ReadFile(f.outputPath)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, key := range []string{"project_id", "team_id", "total_issues", "epic", "phases", "instructions"} {
		assert.Contains(t, raw, key)
	}
	assert.Len(t, raw, 6)
	assert.JSONEq(t, `"project-1"`, string(raw["project_id"]))
	assert.JSONEq(t, `"team-1"`, string(raw["team_id"]))
	assert.JSONEq(t, `17`, string(raw["total_issues"]))
	assert.Contains(t, string(data), "Epic <overview> & goals.", "markdown must not be HTML-escaped")

	f.reporter.AssertExpectations(t)
}

func TestEmitter_RoundTrip(t *testing.T) {
	ctx := context.Background()
	f := setupFixture(t)
	f.reporter.On("Summary", mock.Anything).Return(nil)
	f.reporter.On("Saved", mock.Anything, mock.Anything).Return(nil)

	require.NoError(t, f.emitter.Run(ctx))

	parsed, err := ReadDocument(f.outputPath)
	require.NoError(t, err)

	expected, err := f.emitter.Document(ctx)
	require.NoError(t, err)

	assert.Equal(t, expected.Target.ProjectID, parsed.Target.ProjectID)
	assert.Equal(t, expected.Target.TeamID, parsed.Target.TeamID)
	assert.Equal(t, expected.TotalIssues, parsed.TotalIssues)
	assert.Equal(t, expected.Epic, parsed.Epic)
	assert.Equal(t, expected.Instructions, parsed.Instructions)
}

func TestEmitter_RerunIsByteIdentical(t *testing.T) {
	ctx := context.Background()
	f := setupFixture(t)
	f.reporter.On("Summary", mock.Anything).Return(nil)
	f.reporter.On("Saved", mock.Anything, mock.Anything).Return(nil)

	require.NoError(t, f.emitter.Run(ctx))
	first, err := os.ReadFile(f.outputPath)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(f.outputPath, []byte("stale"), 0o644))
	require.NoError(t, f.emitter.Run(ctx))
	second, err := os.ReadFile(f.outputPath)
	require.NoError(t, err)

	assert.True(t, bytes.Equal(first, second))
}

func TestEmitter_MissingDescription(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	reporter := new(mockReporter)
	emitter := NewEmitter(Config{
		Target:              testTarget,
		EpicDescriptionPath: filepath.Join(dir, "missing.md"),
		OutputPath:          filepath.Join(dir, "out.json"),
	}, reporter)

	err := emitter.Run(ctx)
	assert.ErrorIs(t, err, ErrEpicDescriptionMissing)

	_, statErr := os.Stat(filepath.Join(dir, "out.json"))
	assert.True(t, os.IsNotExist(statErr))
	reporter.AssertNotCalled(t, "Summary", mock.Anything)
}

func TestEmitter_WriteFailure(t *testing.T) {
	ctx := context.Background()
	f := setupFixture(t)
	f.reporter.On("Summary", mock.Anything).Return(nil)

	emitter := NewEmitter(Config{
		Target:              testTarget,
		EpicDescriptionPath: f.descriptionPath,
		OutputPath:          filepath.Join(f.dir, "no-such-dir", "out.json"),
	}, f.reporter)

	assert.Error(t, emitter.Run(ctx))
	f.reporter.AssertNotCalled(t, "Saved", mock.Anything, mock.Anything)
}

func TestNewEmitter_Defaults(t *testing.T) {
	emitter := NewEmitter(Config{}, nil)
	assert.Equal(t, DefaultEpicDescriptionPath, emitter.config.EpicDescriptionPath)
	assert.Equal(t, DefaultOutputPath, emitter.config.OutputPath)
}
