package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"event-admission-platform/internal/models"
)

type mockEventService struct {
	createFunc func(req *models.EventCreateRequest) (*models.Event, error)
	getFunc    func(id string) (*models.Event, error)
	listFunc   func(limit int) ([]*models.Event, error)
}

func (m *mockEventService) CreateEvent(req *models.EventCreateRequest) (*models.Event, error) {
	return m.createFunc(req)
}

func (m *mockEventService) GetEvent(id string) (*models.Event, error) {
	return m.getFunc(id)
}

func (m *mockEventService) ListEvents(limit int) ([]*models.Event, error) {
	return m.listFunc(limit)
}

func newEventRouter(svc *mockEventService) http.Handler {
	h := NewEventHandler(svc)
	r := chi.NewRouter()
	r.Post("/api/events", h.CreateEvent)
	r.Get("/api/events", h.ListEvents)
	r.Get("/api/events/{id}", h.GetEvent)
	return r
}

func TestCreateEvent(t *testing.T) {
	svc := &mockEventService{
		createFunc: func(req *models.EventCreateRequest) (*models.Event, error) {
			return &models.Event{ID: "e1", Name: req.Name, AvailableSeats: req.AvailableSeats}, nil
		},
	}

	body, _ := json.Marshal(models.EventCreateRequest{
		Name:           "Grand Fair Concert",
		Date:           "2026-01-20",
		AvailableSeats: 1000,
	})

	req := httptest.NewRequest("POST", "/api/events", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	newEventRouter(svc).ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)

	var event models.Event
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &event))
	assert.Equal(t, "e1", event.ID)
	assert.Equal(t, 1000, event.AvailableSeats)
}

func TestGetEventNotFound(t *testing.T) {
	svc := &mockEventService{
		getFunc: func(id string) (*models.Event, error) {
			return nil, models.ErrEventNotFound
		},
	}

	req := httptest.NewRequest("GET", "/api/events/missing", nil)
	rr := httptest.NewRecorder()
	newEventRouter(svc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestListEvents(t *testing.T) {
	svc := &mockEventService{
		listFunc: func(limit int) ([]*models.Event, error) {
			assert.Equal(t, 5, limit)
			return []*models.Event{{ID: "e1"}, {ID: "e2"}}, nil
		},
	}

	req := httptest.NewRequest("GET", "/api/events?limit=5", nil)
	rr := httptest.NewRecorder()
	newEventRouter(svc).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var events []*models.Event
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &events))
	assert.Len(t, events, 2)
}

func TestListEventsEmpty(t *testing.T) {
	svc := &mockEventService{
		listFunc: func(limit int) ([]*models.Event, error) {
			return nil, nil
		},
	}

	req := httptest.NewRequest("GET", "/api/events", nil)
	rr := httptest.NewRecorder()
	newEventRouter(svc).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "[]", rr.Body.String())
}
