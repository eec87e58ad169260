package handlers

import (
	"net/http"

	"event-admission-platform/internal/models"
	"event-admission-platform/internal/services"
)

// CatalogHandler handles category and payment-method endpoints
type CatalogHandler struct {
	catalogService services.CatalogServiceInterface
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService services.CatalogServiceInterface) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListCategories handles GET /api/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalogService.ListCategories()
	if err != nil {
		writeError(w, err)
		return
	}

	if categories == nil {
		categories = []*models.Category{}
	}

	writeJSON(w, http.StatusOK, categories)
}

// ListPaymentMethods handles GET /api/payment-methods
func (h *CatalogHandler) ListPaymentMethods(w http.ResponseWriter, r *http.Request) {
	methods, err := h.catalogService.ListPaymentMethods()
	if err != nil {
		writeError(w, err)
		return
	}

	if methods == nil {
		methods = []*models.PaymentMethod{}
	}

	writeJSON(w, http.StatusOK, methods)
}
