package services

import (
	"context"
	"io"
)

// StorageService defines the interface for QR artifact storage
type StorageService interface {
	// Upload stores a file and returns its public URL
	Upload(ctx context.Context, key string, reader io.Reader, contentType string, size int64) (string, error)

	// Delete removes a file from storage
	Delete(ctx context.Context, key string) error

	// GetURL returns the public URL for a stored file
	GetURL(key string) string

	// HealthCheck verifies the backend is reachable
	HealthCheck(ctx context.Context) error
}
