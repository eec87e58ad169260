package services

import (
	"event-admission-platform/internal/models"
)

// EventRepository interface for event catalog data operations
type EventRepository interface {
	Create(req *models.EventCreateRequest) (*models.Event, error)
	GetByID(id string) (*models.Event, error)
	List(limit int) ([]*models.Event, error)
}

// EventService handles the event catalog. It is a thin collaborator of the
// ticket engine: issuance only needs existence and capacity from it.
type EventService struct {
	eventRepo EventRepository
}

// NewEventService creates a new event service
func NewEventService(eventRepo EventRepository) *EventService {
	return &EventService{eventRepo: eventRepo}
}

// CreateEvent creates a new event
func (s *EventService) CreateEvent(req *models.EventCreateRequest) (*models.Event, error) {
	return s.eventRepo.Create(req)
}

// GetEvent retrieves an event by ID
func (s *EventService) GetEvent(id string) (*models.Event, error) {
	return s.eventRepo.GetByID(id)
}

// ListEvents retrieves the event catalog
func (s *EventService) ListEvents(limit int) ([]*models.Event, error) {
	return s.eventRepo.List(limit)
}
