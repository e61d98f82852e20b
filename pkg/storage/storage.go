package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Storage persists uploaded files and returns a stable reference string.
// The reference is what gets written to patient_photos.photo_path; the
// record layer never interprets file bytes.
type Storage interface {
	Save(sourcePath, key string) (string, error)
	Remove(reference string) error
}

type localStorage struct {
	root string
}

// NewLocalStorage stores files under root, keyed by the logical bucket key.
func NewLocalStorage(root string) (Storage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage root: %w", err)
	}
	return &localStorage{root: root}, nil
}

func (s *localStorage) Save(sourcePath, key string) (string, error) {
	dest := filepath.Join(s.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", fmt.Errorf("failed to create storage dir: %w", err)
	}

	src, err := os.Open(sourcePath)
	if err != nil {
		return "", fmt.Errorf("failed to open source file: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return "", fmt.Errorf("failed to copy file: %w", err)
	}
	return key, nil
}

func (s *localStorage) Remove(reference string) error {
	return os.Remove(filepath.Join(s.root, filepath.FromSlash(reference)))
}
