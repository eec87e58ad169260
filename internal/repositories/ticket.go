package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"event-admission-platform/internal/models"
)

// TicketRepository handles ticket record data operations
type TicketRepository struct {
	db *sql.DB
}

// NewTicketRepository creates a new ticket repository
func NewTicketRepository(db *sql.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

const ticketColumns = `id, event_id, event_name, buyer_name, buyer_email, sequence_number, purchase_time, qr_image, qr_image_url, qr_payload, integrity_digest, used, used_time`

// Create persists a newly issued ticket
func (r *TicketRepository) Create(ticket *models.Ticket) error {
	query := `
		INSERT INTO tickets (` + ticketColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.db.Exec(
		query,
		ticket.ID,
		ticket.EventID,
		ticket.EventName,
		ticket.BuyerName,
		ticket.BuyerEmail,
		ticket.SequenceNumber,
		ticket.PurchaseTime,
		ticket.QRImage,
		ticket.QRImageURL,
		ticket.QRPayload,
		ticket.IntegrityDigest,
		ticket.Used,
		ticket.UsedTime,
	)

	if err != nil {
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	return nil
}

// GetByID retrieves a ticket by ID
func (r *TicketRepository) GetByID(id string) (*models.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE id = $1`

	ticket := &models.Ticket{}
	err := r.db.QueryRow(query, id).Scan(
		&ticket.ID,
		&ticket.EventID,
		&ticket.EventName,
		&ticket.BuyerName,
		&ticket.BuyerEmail,
		&ticket.SequenceNumber,
		&ticket.PurchaseTime,
		&ticket.QRImage,
		&ticket.QRImageURL,
		&ticket.QRPayload,
		&ticket.IntegrityDigest,
		&ticket.Used,
		&ticket.UsedTime,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	return ticket, nil
}

// GetByBuyerEmail retrieves all tickets bought by the given email
func (r *TicketRepository) GetByBuyerEmail(email string) ([]*models.Ticket, error) {
	query := `
		SELECT ` + ticketColumns + `
		FROM tickets
		WHERE buyer_email = $1
		ORDER BY purchase_time DESC, sequence_number ASC`

	rows, err := r.db.Query(query, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get tickets by buyer: %w", err)
	}
	defer rows.Close()

	var tickets []*models.Ticket
	for rows.Next() {
		ticket := &models.Ticket{}
		err := rows.Scan(
			&ticket.ID,
			&ticket.EventID,
			&ticket.EventName,
			&ticket.BuyerName,
			&ticket.BuyerEmail,
			&ticket.SequenceNumber,
			&ticket.PurchaseTime,
			&ticket.QRImage,
			&ticket.QRImageURL,
			&ticket.QRPayload,
			&ticket.IntegrityDigest,
			&ticket.Used,
			&ticket.UsedTime,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ticket: %w", err)
		}
		tickets = append(tickets, ticket)
	}

	return tickets, rows.Err()
}

// MarkUsed flips the ticket's used flag exactly once. The used = FALSE
// guard makes the transition a single conditional update, so of two
// concurrent redemption attempts only one can succeed.
func (r *TicketRepository) MarkUsed(id string, usedTime time.Time) error {
	query := `
		UPDATE tickets
		SET used = TRUE, used_time = $2
		WHERE id = $1 AND used = FALSE`

	result, err := r.db.Exec(query, id, usedTime)
	if err != nil {
		return fmt.Errorf("failed to mark ticket as used: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}

	if affected == 0 {
		if _, err := r.GetByID(id); err != nil {
			return err
		}
		return models.ErrTicketAlreadyUsed
	}

	return nil
}
