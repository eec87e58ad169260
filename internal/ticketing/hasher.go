package ticketing

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"event-admission-platform/internal/models"
)

// Digest computes the tamper-detection fingerprint of a ticket identity:
// hex SHA-256 over the sorted-key JSON of its semantic fields. The map
// marshal sorts keys, so two identities with equal field values always
// produce the same digest regardless of how they were constructed.
func Digest(identity *models.TicketIdentity) string {
	canonical, _ := json.Marshal(map[string]interface{}{
		"ticket_id":       identity.TicketID,
		"event_id":        identity.EventID,
		"event_name":      identity.EventName,
		"buyer_name":      identity.BuyerName,
		"buyer_email":     identity.BuyerEmail,
		"sequence_number": identity.SequenceNumber,
	})

	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:])
}
