package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/idfwu/ccem/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfiles(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "linear.cfg")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const profiles = `
[staging]
project_id  = abc123
team_id     = team-staging
project_url = https://linear.app/acme/project/staging-abc123

[broken]
project_id = only-project

[empty]
`

func TestTargetRegistry_GetProfiles(t *testing.T) {
	reg, err := NewTargetRegistry(writeProfiles(t, profiles))
	require.NoError(t, err)

	names, err := reg.GetProfiles()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"staging", "broken"}, names)
}

func TestTargetRegistry_GetTarget(t *testing.T) {
	reg, err := NewTargetRegistry(writeProfiles(t, profiles))
	require.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		target, err := reg.GetTarget("staging")
		require.NoError(t, err)
		assert.Equal(t, domain.Target{
			Name:       "staging",
			ProjectID:  "abc123",
			TeamID:     "team-staging",
			ProjectURL: "https://linear.app/acme/project/staging-abc123",
		}, target)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := reg.GetTarget("prod")
		assert.ErrorIs(t, err, ErrProfileNotFound)
	})

	t.Run("incomplete", func(t *testing.T) {
		_, err := reg.GetTarget("broken")
		assert.Error(t, err)
	})
}

func TestNewTargetRegistry_MissingFile(t *testing.T) {
	reg, err := NewTargetRegistry(filepath.Join(t.TempDir(), "nope.cfg"))
	assert.Error(t, err)
	assert.Nil(t, reg)
}

func TestResolve(t *testing.T) {
	path := writeProfiles(t, profiles)
	missing := filepath.Join(t.TempDir(), "nope.cfg")

	t.Run("empty profile uses default", func(t *testing.T) {
		target, err := Resolve(missing, "")
		require.NoError(t, err)
		assert.Equal(t, DefaultTarget, target)
	})

	t.Run("default profile without file", func(t *testing.T) {
		target, err := Resolve(missing, DefaultProfile)
		require.NoError(t, err)
		assert.Equal(t, DefaultTarget, target)
	})

	t.Run("default profile not in file", func(t *testing.T) {
		target, err := Resolve(path, DefaultProfile)
		require.NoError(t, err)
		assert.Equal(t, DefaultTarget, target)
	})

	t.Run("named profile", func(t *testing.T) {
		target, err := Resolve(path, "staging")
		require.NoError(t, err)
		assert.Equal(t, "abc123", target.ProjectID)
	})

	t.Run("named profile without file", func(t *testing.T) {
		_, err := Resolve(missing, "staging")
		assert.Error(t, err)
	})

	t.Run("unknown profile", func(t *testing.T) {
		_, err := Resolve(path, "prod")
		assert.ErrorIs(t, err, ErrProfileNotFound)
	})
}
