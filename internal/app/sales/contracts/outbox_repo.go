package contracts

import (
	"time"

	"cloud.google.com/go/spanner"
)

// OutboxStatusPending is the status a row carries until the relay publishes it.
const OutboxStatusPending = "pending"

// OutboxRepo is the write-side repository interface for the transactional
// outbox. It returns Spanner mutations; it does not apply them.
type OutboxRepo interface {
	InsertMut(e *OutboxEvent) *spanner.Mutation
}

// OutboxEvent is the application-level representation of an event persisted
// to the outbox table. Usecases enrich domain transitions into this
// structure; the relay drains it.
type OutboxEvent struct {
	EventID      string
	EventType    string
	AggregateID  string
	PayloadJSON  string
	Status       string
	CreatedAtUTC time.Time
}
