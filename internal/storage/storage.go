package storage

import (
	"context"
	"io"
)

// FileStorage defines the interface for storing uploaded files (profile
// pictures). Save returns the public URL at which the stored object can be
// fetched.
type FileStorage interface {
	Save(ctx context.Context, objectKey string, contentType string, r io.Reader) (url string, err error)
	Delete(ctx context.Context, objectKey string) error
}
