package ticketing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"event-admission-platform/internal/models"
)

func TestDigestDeterministic(t *testing.T) {
	identity := testIdentity()

	first := Digest(identity)
	second := Digest(identity)

	assert.Equal(t, first, second)
	assert.Len(t, first, 64) // hex SHA-256
}

func TestDigestIndependentOfConstructionOrder(t *testing.T) {
	a := &models.TicketIdentity{
		TicketID:       "t-123",
		EventID:        "e-456",
		EventName:      "Grand Fair Concert",
		BuyerName:      "Ana",
		BuyerEmail:     "ana@x.com",
		SequenceNumber: 2,
	}

	b := &models.TicketIdentity{}
	b.SequenceNumber = 2
	b.BuyerEmail = "ana@x.com"
	b.BuyerName = "Ana"
	b.EventName = "Grand Fair Concert"
	b.EventID = "e-456"
	b.TicketID = "t-123"

	assert.Equal(t, Digest(a), Digest(b))
}

func TestDigestChangesWithAnyField(t *testing.T) {
	base := Digest(testIdentity())

	mutations := []func(*models.TicketIdentity){
		func(id *models.TicketIdentity) { id.TicketID = "t-124" },
		func(id *models.TicketIdentity) { id.EventID = "e-457" },
		func(id *models.TicketIdentity) { id.EventName = "Another Event" },
		func(id *models.TicketIdentity) { id.BuyerName = "Anb" },
		func(id *models.TicketIdentity) { id.BuyerEmail = "ana@y.com" },
		func(id *models.TicketIdentity) { id.SequenceNumber = 2 },
	}

	for _, mutate := range mutations {
		identity := testIdentity()
		mutate(identity)
		assert.NotEqual(t, base, Digest(identity))
	}
}
