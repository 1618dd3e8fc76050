package issues

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/idfwu/ccem/pkg/adapters"
	"github.com/idfwu/ccem/pkg/models/api"
	"github.com/idfwu/ccem/pkg/models/domain"
	"github.com/rs/zerolog"
)

const (
	DefaultEpicDescriptionPath = "linear-epic-ccem.md"
	DefaultOutputPath          = "linear-issues-created.json"

	importMethod = "Use Linear MCP server or GraphQL API"
)

var ErrEpicDescriptionMissing = errors.New("epic description file not found")

var validationChecklist = []string{
	"Verify all issues created successfully",
	"Verify parent-child relationships correct",
	"Verify all labels applied",
	"Verify project assignment correct",
}

// Reporter renders emitter progress for an operator.
type Reporter interface {
	Summary(doc domain.IssueDocument) error
	Saved(path string, target domain.Target) error
}

type Config struct {
	Target              domain.Target
	EpicDescriptionPath string
	OutputPath          string
}

// Emitter turns the static catalog into an import document on disk.
// It never talks to the tracker itself.
type Emitter struct {
	config   Config
	reporter Reporter
}

func NewEmitter(config Config, reporter Reporter) *Emitter {
	if config.EpicDescriptionPath == "" {
		config.EpicDescriptionPath = DefaultEpicDescriptionPath
	}
	if config.OutputPath == "" {
		config.OutputPath = DefaultOutputPath
	}
	return &Emitter{config: config, reporter: reporter}
}

// Document builds the full import document, reading the epic description from disk.
func (e *Emitter) Document(_ context.Context) (domain.IssueDocument, error) {
	description, err := os.ReadFile(e.config.EpicDescriptionPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.IssueDocument{}, fmt.Errorf("%w: %s", ErrEpicDescriptionMissing, e.config.EpicDescriptionPath)
		}
		return domain.IssueDocument{}, fmt.Errorf("failed to read epic description: %w", err)
	}
	return NewDocument(e.config.Target, string(description)), nil
}

// Run builds the document, reports the summary and writes the file, overwriting
// any previous output.
func (e *Emitter) Run(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)

	doc, err := e.Document(ctx)
	if err != nil {
		return err
	}
	if err := e.reporter.Summary(doc); err != nil {
		return fmt.Errorf("failed to render summary: %w", err)
	}

	if err := WriteDocument(e.config.OutputPath, doc); err != nil {
		return err
	}
	logger.Info().
		Str("path", e.config.OutputPath).
		Int("total_issues", doc.TotalIssues).
		Msg("issue document written")

	return e.reporter.Saved(e.config.OutputPath, doc.Target)
}

// NewDocument assembles the document for a target. TotalIssues is derived from
// the epic so it always matches the phase contents.
func NewDocument(target domain.Target, epicDescription string) domain.IssueDocument {
	epic := NewEpic(epicDescription)
	return domain.IssueDocument{
		Target:       target,
		TotalIssues:  epic.TotalIssues(),
		Epic:         epic,
		Instructions: NewInstructions(epic.Phases),
	}
}

// NewInstructions lists the manual creation order: the epic first, then each
// phase with its issues parented to the epic.
func NewInstructions(phases []domain.Phase) domain.ImportInstructions {
	order := make([]string, 0, len(phases)+1)
	order = append(order, "1. Create Epic first and save its ID")
	for i := range phases {
		order = append(order, fmt.Sprintf("%d. Create Phase %d issues with parentId = epic_id", i+2, i+1))
	}
	return domain.ImportInstructions{
		Method:     importMethod,
		Order:      order,
		Validation: append([]string{}, validationChecklist...),
	}
}

// EncodeDocument writes the document as indented JSON. Output is deterministic
// for equal documents.
func EncodeDocument(w io.Writer, doc domain.IssueDocument) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(adapters.MapIssueDocumentDomainToApi(doc)); err != nil {
		return fmt.Errorf("failed to encode issue document: %w", err)
	}
	return nil
}

func WriteDocument(path string, doc domain.IssueDocument) error {
	var buf bytes.Buffer
	if err := EncodeDocument(&buf, doc); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write issue document: %w", err)
	}
	return nil
}

func ReadDocument(path string) (domain.IssueDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.IssueDocument{}, fmt.Errorf("failed to read issue document: %w", err)
	}

	var raw api.IssueDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return domain.IssueDocument{}, fmt.Errorf("failed to parse issue document: %w", err)
	}
	return adapters.MapIssueDocumentApiToDomain(raw), nil
}
