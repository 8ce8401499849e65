package storage

import (
	"context"
	"errors"
	"io"
)

var ErrInvalidPath = errors.New("storage: path escapes the storage root")

// FileStorage keeps generated documents such as offer letter PDFs.
type FileStorage interface {
	// Save writes content under key and returns the stored key.
	Save(ctx context.Context, key string, content io.Reader) (string, error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	// URL returns the public address of a stored key.
	URL(key string) string
	Exists(ctx context.Context, key string) (bool, error)
}
