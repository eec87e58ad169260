package ticketing

import (
	"bytes"
	"encoding/json"
	"fmt"

	"event-admission-platform/internal/models"
)

// payload is the wire form carried inside the encrypted QR blob: the ticket
// identity plus the digest computed at issuance. Field order is fixed, so
// encoding the same identity always yields the same bytes.
type payload struct {
	TicketID       string `json:"ticket_id"`
	EventID        string `json:"event_id"`
	EventName      string `json:"event_name"`
	BuyerName      string `json:"buyer_name"`
	BuyerEmail     string `json:"buyer_email"`
	SequenceNumber int    `json:"sequence_number"`
	Digest         string `json:"digest"`
}

// EncodePayload serializes the identity and its digest into the canonical
// plaintext handed to the cipher.
func EncodePayload(identity *models.TicketIdentity, digest string) ([]byte, error) {
	if err := identity.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrMalformedPayload, err)
	}

	data, err := json.Marshal(payload{
		TicketID:       identity.TicketID,
		EventID:        identity.EventID,
		EventName:      identity.EventName,
		BuyerName:      identity.BuyerName,
		BuyerEmail:     identity.BuyerEmail,
		SequenceNumber: identity.SequenceNumber,
		Digest:         digest,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}

	return data, nil
}

// DecodePayload deserializes canonical plaintext back into an identity and
// the digest it carried. Malformed or incomplete input is rejected whole;
// a partially populated identity is never returned.
func DecodePayload(data []byte) (*models.TicketIdentity, string, error) {
	var p payload

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return nil, "", fmt.Errorf("%w: %v", models.ErrMalformedPayload, err)
	}

	identity := &models.TicketIdentity{
		TicketID:       p.TicketID,
		EventID:        p.EventID,
		EventName:      p.EventName,
		BuyerName:      p.BuyerName,
		BuyerEmail:     p.BuyerEmail,
		SequenceNumber: p.SequenceNumber,
	}

	if err := identity.Validate(); err != nil {
		return nil, "", fmt.Errorf("%w: %v", models.ErrMalformedPayload, err)
	}

	return identity, p.Digest, nil
}
