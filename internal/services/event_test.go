package services

import (
	"errors"
	"testing"

	"event-admission-platform/internal/models"
)

type mockCatalogEventRepository struct {
	events map[string]*models.Event
}

func (m *mockCatalogEventRepository) Create(req *models.EventCreateRequest) (*models.Event, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	event := &models.Event{
		ID:             "generated-id",
		Name:           req.Name,
		Date:           req.Date,
		Price:          req.Price,
		AvailableSeats: req.AvailableSeats,
	}
	m.events[event.ID] = event
	return event, nil
}

func (m *mockCatalogEventRepository) GetByID(id string) (*models.Event, error) {
	event, exists := m.events[id]
	if !exists {
		return nil, models.ErrEventNotFound
	}
	return event, nil
}

func (m *mockCatalogEventRepository) List(limit int) ([]*models.Event, error) {
	var result []*models.Event
	for _, event := range m.events {
		result = append(result, event)
	}
	return result, nil
}

func TestEventService(t *testing.T) {
	repo := &mockCatalogEventRepository{events: make(map[string]*models.Event)}
	service := NewEventService(repo)

	created, err := service.CreateEvent(&models.EventCreateRequest{
		Name:           "Grand Fair Concert",
		Date:           "2026-01-20",
		Price:          50,
		AvailableSeats: 100,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	fetched, err := service.GetEvent(created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if fetched.Name != "Grand Fair Concert" {
		t.Errorf("unexpected event name %q", fetched.Name)
	}

	if _, err := service.GetEvent("missing"); !errors.Is(err, models.ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}

	events, err := service.ListEvents(10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
}
