package repositories

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"event-admission-platform/internal/models"
)

// CatalogRepository handles category and payment-method seed data
type CatalogRepository struct {
	db *sql.DB
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// UpsertCategory inserts a category, updating the icon if the name exists
func (r *CatalogRepository) UpsertCategory(name, icon string) error {
	query := `
		INSERT INTO categories (id, name, icon)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE SET icon = EXCLUDED.icon`

	if _, err := r.db.Exec(query, uuid.NewString(), name, icon); err != nil {
		return fmt.Errorf("failed to upsert category %q: %w", name, err)
	}

	return nil
}

// ListCategories returns all categories ordered by name
func (r *CatalogRepository) ListCategories() ([]*models.Category, error) {
	rows, err := r.db.Query("SELECT id, name, icon FROM categories ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []*models.Category
	for rows.Next() {
		c := &models.Category{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Icon); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

// UpsertPaymentMethod inserts a payment method, updating details on conflict
func (r *CatalogRepository) UpsertPaymentMethod(name, kind, details string) error {
	query := `
		INSERT INTO payment_methods (id, name, kind, details)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (name) DO UPDATE SET kind = EXCLUDED.kind, details = EXCLUDED.details`

	if _, err := r.db.Exec(query, uuid.NewString(), name, kind, details); err != nil {
		return fmt.Errorf("failed to upsert payment method %q: %w", name, err)
	}

	return nil
}

// ListPaymentMethods returns all payment methods ordered by name
func (r *CatalogRepository) ListPaymentMethods() ([]*models.PaymentMethod, error) {
	rows, err := r.db.Query("SELECT id, name, kind, details FROM payment_methods ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to list payment methods: %w", err)
	}
	defer rows.Close()

	var methods []*models.PaymentMethod
	for rows.Next() {
		m := &models.PaymentMethod{}
		if err := rows.Scan(&m.ID, &m.Name, &m.Kind, &m.Details); err != nil {
			return nil, fmt.Errorf("failed to scan payment method: %w", err)
		}
		methods = append(methods, m)
	}

	return methods, rows.Err()
}
