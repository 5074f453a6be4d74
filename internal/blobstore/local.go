package blobstore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/filedrop/filedrop_api/internal/errlocal"
)

// localStore keeps every blob in a single flat directory.
type localStore struct {
	uploadDir string
}

func NewLocalStore(uploadDir string) (BlobStore, error) {
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	if err := os.MkdirAll(uploadDir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create upload dir %s: %w", uploadDir, err)
	}

	return &localStore{uploadDir: uploadDir}, nil
}

func (s *localStore) Save(ctx context.Context, r io.Reader, storedName string, size int64) error {
	fullPath := filepath.Join(s.uploadDir, storedName)
	tmpPath := fullPath + ".tmp"

	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write blob: %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close blob: %w", err)
	}

	// Atomic rename so a crashed upload never leaves a readable partial blob.
	if err := os.Rename(tmpPath, fullPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename blob: %w", err)
	}

	return nil
}

func (s *localStore) Open(ctx context.Context, storedName string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(s.uploadDir, storedName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errlocal.NewErrGone("file missing", err.Error(),
				map[string]any{"stored_name": storedName})
		}
		return nil, fmt.Errorf("failed to open blob %s: %w", storedName, err)
	}

	return f, nil
}

func (s *localStore) Remove(ctx context.Context, storedName string) error {
	if err := os.Remove(filepath.Join(s.uploadDir, storedName)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove blob %s: %w", storedName, err)
	}
	return nil
}
