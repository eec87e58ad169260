package models

import (
	"errors"
	"strings"
	"time"
)

// Event represents an event in the catalog
type Event struct {
	ID             string    `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	Description    string    `json:"description" db:"description"`
	Date           string    `json:"date" db:"date"`
	Time           string    `json:"time" db:"time"`
	Location       string    `json:"location" db:"location"`
	Category       string    `json:"category" db:"category"`
	Price          float64   `json:"price" db:"price"`
	ImageURL       string    `json:"image_url" db:"image_url"`
	AvailableSeats int       `json:"available_seats" db:"available_seats"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// EventCreateRequest represents the data needed to create an event
type EventCreateRequest struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Date           string  `json:"date"`
	Time           string  `json:"time"`
	Location       string  `json:"location"`
	Category       string  `json:"category"`
	Price          float64 `json:"price"`
	ImageURL       string  `json:"image_url"`
	AvailableSeats int     `json:"available_seats"`
}

// Validate validates event creation data
func (req *EventCreateRequest) Validate() error {
	if strings.TrimSpace(req.Name) == "" {
		return errors.New("event name is required")
	}

	if len(req.Name) > 255 {
		return errors.New("event name must be less than 255 characters")
	}

	if strings.TrimSpace(req.Date) == "" {
		return errors.New("event date is required")
	}

	if req.Price < 0 {
		return errors.New("event price cannot be negative")
	}

	if req.AvailableSeats < 0 {
		return errors.New("available seats cannot be negative")
	}

	return nil
}

// HasCapacity reports whether the event can admit the requested quantity
func (e *Event) HasCapacity(quantity int) bool {
	return quantity > 0 && e.AvailableSeats >= quantity
}
