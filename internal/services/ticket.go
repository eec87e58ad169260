package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"event-admission-platform/internal/models"
	"event-admission-platform/internal/ticketing"
)

// TicketEventRepository is the slice of the event catalog the lifecycle
// manager consumes: an existence/capacity read and the atomic decrement
type TicketEventRepository interface {
	GetByID(id string) (*models.Event, error)
	DecrementSeats(id string, quantity int) error
}

// TicketRepository interface for ticket record operations
type TicketRepository interface {
	Create(ticket *models.Ticket) error
	GetByID(id string) (*models.Ticket, error)
	GetByBuyerEmail(email string) ([]*models.Ticket, error)
	MarkUsed(id string, usedTime time.Time) error
}

// RedemptionResult is the outcome of a redemption attempt. An already-used
// ticket is a reported outcome, not an error: the payload was genuine, the
// gate just needs to know the admission already happened.
type RedemptionResult struct {
	Valid      bool       `json:"valid"`
	Message    string     `json:"message"`
	EventName  string     `json:"event_name,omitempty"`
	BuyerName  string     `json:"buyer_name,omitempty"`
	BuyerEmail string     `json:"buyer_email,omitempty"`
	UsedTime   *time.Time `json:"used_time,omitempty"`
}

// TicketService orchestrates ticket issuance and redemption and owns the
// single-use invariant
type TicketService struct {
	ticketRepo TicketRepository
	eventRepo  TicketEventRepository
	cipher     *ticketing.Cipher
	renderer   *ticketing.QRRenderer
	storage    StorageService // optional; nil skips artifact upload
}

// NewTicketService creates a new ticket service
func NewTicketService(
	ticketRepo TicketRepository,
	eventRepo TicketEventRepository,
	cipher *ticketing.Cipher,
	renderer *ticketing.QRRenderer,
	storage StorageService,
) *TicketService {
	return &TicketService{
		ticketRepo: ticketRepo,
		eventRepo:  eventRepo,
		cipher:     cipher,
		renderer:   renderer,
		storage:    storage,
	}
}

// IssueTickets issues the requested quantity of tickets for an event. Each
// ticket gets a fresh id, an integrity digest over its identity fields, an
// encrypted payload and a rendered QR image, persisted in sequence order.
// After all units are persisted the event's seat count is decremented in a
// single atomic operation.
func (s *TicketService) IssueTickets(ctx context.Context, req *models.PurchaseRequest) ([]*models.Ticket, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidInput, err)
	}

	event, err := s.eventRepo.GetByID(req.EventID)
	if err != nil {
		return nil, err
	}

	if !event.HasCapacity(req.Quantity) {
		return nil, models.ErrInsufficientCapacity
	}

	tickets := make([]*models.Ticket, 0, req.Quantity)
	for unit := 1; unit <= req.Quantity; unit++ {
		ticket, err := s.issueOne(ctx, event, req, unit)
		if err != nil {
			return nil, fmt.Errorf("failed to issue ticket %d of %d: %w", unit, req.Quantity, err)
		}
		tickets = append(tickets, ticket)
	}

	if err := s.eventRepo.DecrementSeats(event.ID, req.Quantity); err != nil {
		return nil, err
	}

	return tickets, nil
}

func (s *TicketService) issueOne(ctx context.Context, event *models.Event, req *models.PurchaseRequest, unit int) (*models.Ticket, error) {
	identity := &models.TicketIdentity{
		TicketID:       uuid.NewString(),
		EventID:        event.ID,
		EventName:      event.Name,
		BuyerName:      req.BuyerName,
		BuyerEmail:     req.BuyerEmail,
		SequenceNumber: unit,
	}

	digest := ticketing.Digest(identity)

	plaintext, err := ticketing.EncodePayload(identity, digest)
	if err != nil {
		return nil, err
	}

	blob, err := s.cipher.Encrypt(plaintext)
	if err != nil {
		return nil, err
	}

	png, err := s.renderer.Render(blob)
	if err != nil {
		return nil, err
	}

	ticket := &models.Ticket{
		ID:              identity.TicketID,
		EventID:         identity.EventID,
		EventName:       identity.EventName,
		BuyerName:       identity.BuyerName,
		BuyerEmail:      identity.BuyerEmail,
		SequenceNumber:  identity.SequenceNumber,
		PurchaseTime:    time.Now().UTC(),
		QRImage:         ticketing.DataURL(png),
		QRPayload:       blob,
		IntegrityDigest: digest,
		Used:            false,
	}

	if s.storage != nil {
		key := fmt.Sprintf("tickets/%s.png", ticket.ID)
		url, err := s.storage.Upload(ctx, key, bytes.NewReader(png), "image/png", int64(len(png)))
		if err != nil {
			// The inline data URL remains authoritative; losing the stored
			// copy does not invalidate the ticket
			fmt.Printf("Warning: failed to store QR image for ticket %s: %v\n", ticket.ID, err)
		} else {
			ticket.QRImageURL = url
		}
	}

	if err := s.ticketRepo.Create(ticket); err != nil {
		return nil, err
	}

	return ticket, nil
}

// RedeemTicket validates a scanned payload and consumes the ticket exactly
// once. The digest comparison uses the digest persisted at issuance, not
// the one inside the decrypted blob: an attacker who controls only the
// payload cannot forge a self-consistent pair without the record.
func (s *TicketService) RedeemTicket(payloadBlob string) (*RedemptionResult, error) {
	plaintext, err := s.cipher.Decrypt(payloadBlob)
	if err != nil {
		return nil, err
	}

	identity, _, err := ticketing.DecodePayload(plaintext)
	if err != nil {
		return nil, err
	}

	ticket, err := s.ticketRepo.GetByID(identity.TicketID)
	if err != nil {
		return nil, err
	}

	if ticket.Used {
		return &RedemptionResult{
			Valid:    false,
			Message:  "ticket has already been used",
			UsedTime: ticket.UsedTime,
		}, nil
	}

	if ticketing.Digest(identity) != ticket.IntegrityDigest {
		return nil, models.ErrTicketModified
	}

	// The same anchor also vouches for the record itself: if any identity
	// field of the stored row was edited after issuance, its digest no
	// longer matches and the ticket is rejected
	if ticketing.Digest(ticket.Identity()) != ticket.IntegrityDigest {
		return nil, models.ErrTicketModified
	}

	usedTime := time.Now().UTC()
	if err := s.ticketRepo.MarkUsed(ticket.ID, usedTime); err != nil {
		if errors.Is(err, models.ErrTicketAlreadyUsed) {
			// Lost the race to a concurrent redemption; report the
			// winner's timestamp
			if current, lookupErr := s.ticketRepo.GetByID(ticket.ID); lookupErr == nil {
				return &RedemptionResult{
					Valid:    false,
					Message:  "ticket has already been used",
					UsedTime: current.UsedTime,
				}, nil
			}
			return &RedemptionResult{
				Valid:   false,
				Message: "ticket has already been used",
			}, nil
		}
		return nil, err
	}

	return &RedemptionResult{
		Valid:      true,
		Message:    "ticket is valid and has been registered",
		EventName:  ticket.EventName,
		BuyerName:  ticket.BuyerName,
		BuyerEmail: ticket.BuyerEmail,
		UsedTime:   &usedTime,
	}, nil
}

// GetTicketsByBuyer retrieves all tickets bought with the given email
func (s *TicketService) GetTicketsByBuyer(email string) ([]*models.Ticket, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", models.ErrInvalidInput)
	}

	return s.ticketRepo.GetByBuyerEmail(email)
}
