package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// FallbackStorageService stores QR artifacts on local disk when no object
// storage is configured or R2 is unreachable
type FallbackStorageService struct {
	basePath string
	baseURL  string
}

// NewFallbackStorageService creates a new local-disk storage service
func NewFallbackStorageService(basePath, baseURL string) *FallbackStorageService {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		log.Printf("Warning: failed to create storage directory %s: %v", basePath, err)
	}

	return &FallbackStorageService{
		basePath: basePath,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
	}
}

// Upload saves a file to local storage
func (f *FallbackStorageService) Upload(ctx context.Context, key string, reader io.Reader, contentType string, size int64) (string, error) {
	key = strings.TrimPrefix(key, "/")
	fullPath := filepath.Join(f.basePath, key)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory for %s: %w", key, err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file %s: %w", fullPath, err)
	}
	defer file.Close()

	written, err := io.Copy(file, reader)
	if err != nil {
		return "", fmt.Errorf("failed to write file %s: %w", fullPath, err)
	}

	if written != size {
		return "", fmt.Errorf("size mismatch: expected %d bytes, wrote %d bytes", size, written)
	}

	return f.GetURL(key), nil
}

// Delete removes a file from local storage
func (f *FallbackStorageService) Delete(ctx context.Context, key string) error {
	key = strings.TrimPrefix(key, "/")
	fullPath := filepath.Join(f.basePath, key)

	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file %s: %w", fullPath, err)
	}

	return nil
}

// GetURL returns the public URL for a file
func (f *FallbackStorageService) GetURL(key string) string {
	return fmt.Sprintf("%s/uploads/%s", f.baseURL, strings.TrimPrefix(key, "/"))
}

// HealthCheck verifies the storage directory is writable
func (f *FallbackStorageService) HealthCheck(ctx context.Context) error {
	probe := filepath.Join(f.basePath, ".healthcheck")

	if err := os.WriteFile(probe, []byte("ok"), 0644); err != nil {
		return fmt.Errorf("storage directory not writable: %w", err)
	}

	return os.Remove(probe)
}
