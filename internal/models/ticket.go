package models

import (
	"errors"
	"net/mail"
	"strings"
	"time"
)

// TicketIdentity holds the semantic fields that identify a single ticket.
// It is built once at issuance and reconstructed at redemption from the
// decrypted QR payload. Immutable after construction.
type TicketIdentity struct {
	TicketID       string `json:"ticket_id"`
	EventID        string `json:"event_id"`
	EventName      string `json:"event_name"`
	BuyerName      string `json:"buyer_name"`
	BuyerEmail     string `json:"buyer_email"`
	SequenceNumber int    `json:"sequence_number"`
}

// Validate checks that the identity is complete enough to be trusted
func (id *TicketIdentity) Validate() error {
	if id.TicketID == "" {
		return errors.New("ticket id is required")
	}

	if id.EventID == "" {
		return errors.New("event id is required")
	}

	if id.BuyerName == "" {
		return errors.New("buyer name is required")
	}

	if id.BuyerEmail == "" {
		return errors.New("buyer email is required")
	}

	if id.SequenceNumber < 1 {
		return errors.New("sequence number must be at least 1")
	}

	return nil
}

// Ticket represents a persisted admission ticket
type Ticket struct {
	ID              string     `json:"id" db:"id"`
	EventID         string     `json:"event_id" db:"event_id"`
	EventName       string     `json:"event_name" db:"event_name"`
	BuyerName       string     `json:"buyer_name" db:"buyer_name"`
	BuyerEmail      string     `json:"buyer_email" db:"buyer_email"`
	SequenceNumber  int        `json:"sequence_number" db:"sequence_number"`
	PurchaseTime    time.Time  `json:"purchase_time" db:"purchase_time"`
	QRImage         string     `json:"qr_image" db:"qr_image"`
	QRImageURL      string     `json:"qr_image_url,omitempty" db:"qr_image_url"`
	QRPayload       string     `json:"-" db:"qr_payload"`
	IntegrityDigest string     `json:"-" db:"integrity_digest"`
	Used            bool       `json:"used" db:"used"`
	UsedTime        *time.Time `json:"used_time,omitempty" db:"used_time"`
}

// Identity rebuilds the ticket's identity fields from the persisted record
func (t *Ticket) Identity() *TicketIdentity {
	return &TicketIdentity{
		TicketID:       t.ID,
		EventID:        t.EventID,
		EventName:      t.EventName,
		BuyerName:      t.BuyerName,
		BuyerEmail:     t.BuyerEmail,
		SequenceNumber: t.SequenceNumber,
	}
}

// PurchaseRequest represents a request to buy tickets for an event
type PurchaseRequest struct {
	EventID    string `json:"event_id"`
	BuyerName  string `json:"buyer_name"`
	BuyerEmail string `json:"buyer_email"`
	Quantity   int    `json:"quantity"`
}

// Validate validates the purchase request
func (req *PurchaseRequest) Validate() error {
	if strings.TrimSpace(req.EventID) == "" {
		return errors.New("event id is required")
	}

	if strings.TrimSpace(req.BuyerName) == "" {
		return errors.New("buyer name is required")
	}

	if _, err := mail.ParseAddress(req.BuyerEmail); err != nil {
		return errors.New("buyer email is invalid")
	}

	if req.Quantity <= 0 {
		return errors.New("quantity must be greater than 0")
	}

	return nil
}
