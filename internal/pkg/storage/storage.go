package storage

import (
	"context"
	"io"
)

// FileStorage abstracts where generated documents (payslips) are kept.
type FileStorage interface {
	// Upload writes a file and returns the stored path/key
	Upload(ctx context.Context, file io.Reader, path string) (string, error)

	// Download retrieves a file
	Download(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file
	Delete(ctx context.Context, path string) error

	// GetURL returns a public URL for a stored path
	GetURL(ctx context.Context, path string) (string, error)

	// Exists checks if file exists
	Exists(ctx context.Context, path string) (bool, error)
}
