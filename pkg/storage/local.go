package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("file not found")

// LocalStore writes uploads below a base directory, one subdirectory
// per kind ("resumes", "companies"). Filenames are generated, never
// taken from the client.
type LocalStore struct {
	baseDir string
}

func NewLocalStore(baseDir string) (*LocalStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create base dir: %w", err)
	}
	return &LocalStore{baseDir: baseDir}, nil
}

// Save stores data under a fresh uuid-based name preserving the original
// extension and returns the generated filename.
func (s *LocalStore) Save(kind, originalName string, data []byte) (string, error) {
	dir := filepath.Join(s.baseDir, kind)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("storage: create dir: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	filename := uuid.New().String() + ext

	if err := os.WriteFile(filepath.Join(dir, filename), data, 0o644); err != nil {
		return "", fmt.Errorf("storage: write file: %w", err)
	}
	return filename, nil
}

// Path resolves a stored filename to its on-disk path. The filename is
// flattened to its base component so callers can pass it straight from
// the URL without enabling path traversal.
func (s *LocalStore) Path(kind, filename string) (string, error) {
	clean := filepath.Base(filename)
	full := filepath.Join(s.baseDir, kind, clean)
	if _, err := os.Stat(full); err != nil {
		return "", ErrNotFound
	}
	return full, nil
}

// Remove deletes a stored file. Missing files are not an error.
func (s *LocalStore) Remove(kind, filename string) error {
	clean := filepath.Base(filename)
	err := os.Remove(filepath.Join(s.baseDir, kind, clean))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
