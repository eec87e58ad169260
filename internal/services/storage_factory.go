package services

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"event-admission-platform/internal/config"
)

// StorageFactory creates the QR artifact storage backend from configuration
type StorageFactory struct {
	config *config.Config
}

// NewStorageFactory creates a new storage factory
func NewStorageFactory(cfg *config.Config) *StorageFactory {
	return &StorageFactory{config: cfg}
}

// CreateStorageService returns R2 storage when configured and reachable,
// falling back to local disk otherwise
func (f *StorageFactory) CreateStorageService() StorageService {
	fallbackPath := filepath.Join("data", "uploads")
	fallbackURL := fmt.Sprintf("http://%s:%s", f.config.Server.Host, f.config.Server.Port)
	fallback := NewFallbackStorageService(fallbackPath, fallbackURL)

	if f.config.Ticketing.Storage != "r2" {
		return fallback
	}

	r2Service, err := NewR2Service(f.config.R2)
	if err != nil {
		log.Printf("Warning: R2 storage unavailable, using local fallback: %v", err)
		return fallback
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := r2Service.HealthCheck(ctx); err != nil {
		log.Printf("Warning: R2 health check failed, using local fallback: %v", err)
		return fallback
	}

	log.Println("R2 storage service initialized successfully")
	return r2Service
}
