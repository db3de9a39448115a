package shared

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	contracts "github.com/murkotick/sales-record-service/internal/app/sales/contracts"
)

// NewOutboxEvent marshals an event payload and wraps it as a pending outbox
// row. The payload structs live in the events package; this adapter keeps
// serialization out of the usecase bodies.
func NewOutboxEvent(eventType, aggregateID string, payload any, now time.Time) (*contracts.OutboxEvent, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal outbox payload for %s: %w", eventType, err)
	}

	return &contracts.OutboxEvent{
		EventID:      uuid.New().String(),
		EventType:    eventType,
		AggregateID:  aggregateID,
		PayloadJSON:  string(b),
		Status:       contracts.OutboxStatusPending,
		CreatedAtUTC: now,
	}, nil
}
