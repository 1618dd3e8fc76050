package status

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/idfwu/ccem/pkg/adapters"
	"github.com/idfwu/ccem/pkg/models/api"
	"github.com/idfwu/ccem/pkg/models/domain"
)

var (
	ErrNotFound = errors.New("status marker not found")
	ErrInvalid  = errors.New("status marker is not valid JSON")
)

// Store persists the audit status marker. Reads and writes are not locked:
// two racing writers both succeed and the last one wins.
type Store interface {
	Load(ctx context.Context) (*domain.AuditStatus, error)
	Save(ctx context.Context, status domain.AuditStatus) error
	Path() string
}

type fileStore struct {
	path string
}

func NewStore(path string) (Store, error) {
	if path == "" {
		return nil, fmt.Errorf("status marker path cannot be empty")
	}
	return &fileStore{path: path}, nil
}

func (s *fileStore) Path() string {
	return s.path
}

func (s *fileStore) Load(_ context.Context) (*domain.AuditStatus, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, s.path)
		}
		return nil, fmt.Errorf("failed to read status marker: %w", err)
	}

	var raw api.AuditStatus
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	res := adapters.MapAuditStatusApiToDomain(raw)
	return &res, nil
}

func (s *fileStore) Save(_ context.Context, status domain.AuditStatus) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create status directory: %w", err)
	}

	data, err := json.MarshalIndent(adapters.MapAuditStatusDomainToApi(status), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode status marker: %w", err)
	}

	// write-then-rename keeps a concurrent reader from seeing a partial file
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create status marker: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write status marker: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write status marker: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("failed to write status marker: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace status marker: %w", err)
	}
	return nil
}
