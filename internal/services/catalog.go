package services

import (
	"event-admission-platform/internal/models"
)

// CatalogDataRepository interface for category and payment-method reads
type CatalogDataRepository interface {
	ListCategories() ([]*models.Category, error)
	ListPaymentMethods() ([]*models.PaymentMethod, error)
}

// CatalogService serves the static purchase catalog: event categories and
// the payment methods shown at checkout
type CatalogService struct {
	catalogRepo CatalogDataRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(catalogRepo CatalogDataRepository) *CatalogService {
	return &CatalogService{catalogRepo: catalogRepo}
}

// ListCategories returns all event categories
func (s *CatalogService) ListCategories() ([]*models.Category, error) {
	return s.catalogRepo.ListCategories()
}

// ListPaymentMethods returns all accepted payment methods
func (s *CatalogService) ListPaymentMethods() ([]*models.PaymentMethod, error) {
	return s.catalogRepo.ListPaymentMethods()
}
