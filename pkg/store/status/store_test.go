package status

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/idfwu/ccem/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	path  string
	store Store
}

func setupFixture(t *testing.T) *fixture {
	path := filepath.Join(t.TempDir(), ".claude", "ccem", "security-audit-status.json")
	store, err := NewStore(path)
	require.NoError(t, err)

	return &fixture{
		path:  path,
		store: store,
	}
}

func sampleStatus() domain.AuditStatus {
	return domain.AuditStatus{
		Completed: true,
		Timestamp: "2025-10-01T12:00:00Z",
		Audits: []domain.AuditRecord{{
			Flag:           "bypassPermissions",
			Project:        "idfwu",
			Risk:           domain.RiskHigh,
			Description:    "desc",
			Recommendation: "rec",
		}},
	}
}

func TestNewStore(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := setupFixture(t)
		assert.NotNil(t, f.store)
		assert.Equal(t, f.path, f.store.Path())
	})

	t.Run("empty path", func(t *testing.T) {
		store, err := NewStore("")
		assert.Error(t, err)
		assert.Nil(t, store)
	})
}

func TestStore_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file", func(t *testing.T) {
		f := setupFixture(t)
		status, err := f.store.Load(ctx)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, status)
	})

	t.Run("invalid json", func(t *testing.T) {
		f := setupFixture(t)
		require.NoError(t, os.MkdirAll(filepath.Dir(f.path), 0o755))
		require.NoError(t, os.WriteFile(f.path, []byte("{not json"), 0o644))

		status, err := f.store.Load(ctx)
		assert.ErrorIs(t, err, ErrInvalid)
		assert.Nil(t, status)
	})

	t.Run("completed false", func(t *testing.T) {
		f := setupFixture(t)
		require.NoError(t, os.MkdirAll(filepath.Dir(f.path), 0o755))
		require.NoError(t, os.WriteFile(f.path, []byte(`{"completed": false}`), 0o644))

		status, err := f.store.Load(ctx)
		require.NoError(t, err)
		assert.False(t, status.Completed)
		assert.Empty(t, status.Audits)
	})
}

func TestStore_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("creates parent directory", func(t *testing.T) {
		f := setupFixture(t)
		require.NoError(t, f.store.Save(ctx, sampleStatus()))

		info, err := os.Stat(f.path)
		require.NoError(t, err)
		assert.False(t, info.IsDir())
	})

	t.Run("round trip", func(t *testing.T) {
		f := setupFixture(t)
		require.NoError(t, f.store.Save(ctx, sampleStatus()))

		status, err := f.store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, sampleStatus(), *status)
	})

	t.Run("writes documented field names", func(t *testing.T) {
		f := setupFixture(t)
		require.NoError(t, f.store.Save(ctx, sampleStatus()))

		data, err := os.ReadFile(f.path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"completed": true`)
		assert.Contains(t, string(data), `"timestamp": "2025-10-01T12:00:00Z"`)
		assert.Contains(t, string(data), `"risk": "high"`)
		assert.Contains(t, string(data), `"audits": [`)
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		f := setupFixture(t)
		require.NoError(t, os.MkdirAll(filepath.Dir(f.path), 0o755))
		require.NoError(t, os.WriteFile(f.path, []byte("garbage"), 0o644))

		require.NoError(t, f.store.Save(ctx, sampleStatus()))

		status, err := f.store.Load(ctx)
		require.NoError(t, err)
		assert.True(t, status.Completed)

		entries, err := os.ReadDir(filepath.Dir(f.path))
		require.NoError(t, err)
		assert.Len(t, entries, 1, "temporary files must not be left behind")
	})

	t.Run("parent is a file", func(t *testing.T) {
		dir := t.TempDir()
		blocker := filepath.Join(dir, "blocker")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

		store, err := NewStore(filepath.Join(blocker, "status.json"))
		require.NoError(t, err)
		assert.Error(t, store.Save(ctx, sampleStatus()))
	})
}
