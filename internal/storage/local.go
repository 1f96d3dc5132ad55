package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// localStorage implements FileStorage on the local filesystem. Files land in
// dir and are expected to be served by the HTTP server under publicPrefix,
// e.g. dir "uploads" + prefix "/uploads".
type localStorage struct {
	dir          string
	publicPrefix string
}

// NewLocalStorage creates a filesystem-backed FileStorage rooted at dir.
func NewLocalStorage(dir, publicPrefix string) (FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &localStorage{
		dir:          dir,
		publicPrefix: strings.TrimSuffix(publicPrefix, "/"),
	}, nil
}

func (s *localStorage) Save(ctx context.Context, objectKey string, contentType string, r io.Reader) (string, error) {
	// Keys are server-generated, but reject anything that would escape dir.
	clean := filepath.Base(objectKey)
	if clean != objectKey || clean == "." || clean == ".." {
		return "", fmt.Errorf("invalid object key %q", objectKey)
	}

	path := filepath.Join(s.dir, clean)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", err
	}
	return s.publicPrefix + "/" + clean, nil
}

func (s *localStorage) Delete(ctx context.Context, objectKey string) error {
	clean := filepath.Base(objectKey)
	if clean != objectKey || clean == "." || clean == ".." {
		return fmt.Errorf("invalid object key %q", objectKey)
	}
	err := os.Remove(filepath.Join(s.dir, clean))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
