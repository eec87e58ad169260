package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"event-admission-platform/internal/models"
)

// EventRepository handles event catalog data operations
type EventRepository struct {
	db *sql.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Create creates a new event
func (r *EventRepository) Create(req *models.EventCreateRequest) (*models.Event, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO events (id, name, description, date, time, location, category, price, image_url, available_seats, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, name, description, date, time, location, category, price, image_url, available_seats, created_at`

	event := &models.Event{}
	err := r.db.QueryRow(
		query,
		uuid.NewString(),
		req.Name,
		req.Description,
		req.Date,
		req.Time,
		req.Location,
		req.Category,
		req.Price,
		req.ImageURL,
		req.AvailableSeats,
		time.Now().UTC(),
	).Scan(
		&event.ID,
		&event.Name,
		&event.Description,
		&event.Date,
		&event.Time,
		&event.Location,
		&event.Category,
		&event.Price,
		&event.ImageURL,
		&event.AvailableSeats,
		&event.CreatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return event, nil
}

// GetByID retrieves an event by ID
func (r *EventRepository) GetByID(id string) (*models.Event, error) {
	query := `
		SELECT id, name, description, date, time, location, category, price, image_url, available_seats, created_at
		FROM events
		WHERE id = $1`

	event := &models.Event{}
	err := r.db.QueryRow(query, id).Scan(
		&event.ID,
		&event.Name,
		&event.Description,
		&event.Date,
		&event.Time,
		&event.Location,
		&event.Category,
		&event.Price,
		&event.ImageURL,
		&event.AvailableSeats,
		&event.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return event, nil
}

// List retrieves events ordered by creation time, newest first
func (r *EventRepository) List(limit int) ([]*models.Event, error) {
	if limit <= 0 {
		limit = 100
	}

	query := `
		SELECT id, name, description, date, time, location, category, price, image_url, available_seats, created_at
		FROM events
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		event := &models.Event{}
		err := rows.Scan(
			&event.ID,
			&event.Name,
			&event.Description,
			&event.Date,
			&event.Time,
			&event.Location,
			&event.Category,
			&event.Price,
			&event.ImageURL,
			&event.AvailableSeats,
			&event.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}

	return events, rows.Err()
}

// DecrementSeats atomically reduces an event's available seats by quantity.
// The guard in the WHERE clause makes the read-modify-write a single
// indivisible operation, so concurrent purchases cannot oversell.
func (r *EventRepository) DecrementSeats(id string, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", models.ErrInvalidInput)
	}

	query := `
		UPDATE events
		SET available_seats = available_seats - $2
		WHERE id = $1 AND available_seats >= $2`

	result, err := r.db.Exec(query, id, quantity)
	if err != nil {
		return fmt.Errorf("failed to decrement seats: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check decrement result: %w", err)
	}

	if affected == 0 {
		// Either the event disappeared or another purchase took the seats
		if _, err := r.GetByID(id); err != nil {
			return err
		}
		return models.ErrInsufficientCapacity
	}

	return nil
}
