package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"EmploymentReport/internal/ports"
)

// FileStore writes the report to a single file, replacing any previous run.
type FileStore struct {
	path string
}

var _ ports.ReportStore = (*FileStore)(nil)

// NewFileStore targets path; parent directories are created on save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Save writes content as UTF-8 and returns the file path.
func (s *FileStore) Save(ctx context.Context, content string) (string, error) {
	if s == nil || s.path == "" {
		return "", fmt.Errorf("file store misconfigured")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create report dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return s.path, nil
}
