package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"event-admission-platform/internal/models"
	"event-admission-platform/internal/services"
)

type mockCatalogService struct {
	categoriesFunc func() ([]*models.Category, error)
	methodsFunc    func() ([]*models.PaymentMethod, error)
}

func (m *mockCatalogService) ListCategories() ([]*models.Category, error) {
	return m.categoriesFunc()
}

func (m *mockCatalogService) ListPaymentMethods() ([]*models.PaymentMethod, error) {
	return m.methodsFunc()
}

func newCatalogRouter(svc services.CatalogServiceInterface) http.Handler {
	h := NewCatalogHandler(svc)
	r := chi.NewRouter()
	r.Get("/api/categories", h.ListCategories)
	r.Get("/api/payment-methods", h.ListPaymentMethods)
	return r
}

func TestListCategories(t *testing.T) {
	svc := &mockCatalogService{
		categoriesFunc: func() ([]*models.Category, error) {
			return []*models.Category{
				{ID: "c1", Name: "Concerts", Icon: "music"},
				{ID: "c2", Name: "Sports", Icon: "trophy"},
			}, nil
		},
	}

	req := httptest.NewRequest("GET", "/api/categories", nil)
	rr := httptest.NewRecorder()
	newCatalogRouter(svc).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var categories []*models.Category
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &categories))
	assert.Len(t, categories, 2)
	assert.Equal(t, "Concerts", categories[0].Name)
}

func TestListCategoriesEmpty(t *testing.T) {
	svc := &mockCatalogService{
		categoriesFunc: func() ([]*models.Category, error) {
			return nil, nil
		},
	}

	req := httptest.NewRequest("GET", "/api/categories", nil)
	rr := httptest.NewRecorder()
	newCatalogRouter(svc).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "[]", rr.Body.String())
}

func TestListPaymentMethods(t *testing.T) {
	svc := &mockCatalogService{
		methodsFunc: func() ([]*models.PaymentMethod, error) {
			return []*models.PaymentMethod{
				{ID: "m1", Name: "Bank Transfer", Kind: "bank"},
			}, nil
		},
	}

	req := httptest.NewRequest("GET", "/api/payment-methods", nil)
	rr := httptest.NewRecorder()
	newCatalogRouter(svc).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var methods []*models.PaymentMethod
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &methods))
	assert.Len(t, methods, 1)
	assert.Equal(t, "bank", methods[0].Kind)
}
