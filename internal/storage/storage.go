package storage

import (
	"context"
	"io"
)

// Storage defines the interface for photo file storage operations
type Storage interface {
	// Save stores a file at the given path
	Save(ctx context.Context, path string, reader io.Reader) error

	// Delete removes a file at the given path
	Delete(ctx context.Context, path string) error

	// Exists checks if a file exists at the given path
	Exists(ctx context.Context, path string) (bool, error)

	// URL returns the public URL for the file
	URL(path string) string
}

// Config holds storage configuration
type Config struct {
	BasePath string // каталог на диске
	BaseURL  string // публичный префикс, например /uploads
}
