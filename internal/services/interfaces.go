package services

import (
	"context"

	"event-admission-platform/internal/models"
)

// EventServiceInterface defines the interface for event catalog services
type EventServiceInterface interface {
	CreateEvent(req *models.EventCreateRequest) (*models.Event, error)
	GetEvent(id string) (*models.Event, error)
	ListEvents(limit int) ([]*models.Event, error)
}

// CatalogServiceInterface defines the interface for catalog services
type CatalogServiceInterface interface {
	ListCategories() ([]*models.Category, error)
	ListPaymentMethods() ([]*models.PaymentMethod, error)
}

// TicketServiceInterface defines the interface for ticket services
type TicketServiceInterface interface {
	IssueTickets(ctx context.Context, req *models.PurchaseRequest) ([]*models.Ticket, error)
	RedeemTicket(payloadBlob string) (*RedemptionResult, error)
	GetTicketsByBuyer(email string) ([]*models.Ticket, error)
}
