package m_outbox

// Field constants for the outbox_events table. Rows are written by the
// usecases in the same commit as the sale mutations and drained by the
// relay.
const (
	TableName = "outbox_events"

	ColEventID     = "event_id"
	ColEventType   = "event_type"
	ColAggregateID = "aggregate_id"
	ColPayload     = "payload"
	ColStatus      = "status"
	ColCreatedAt   = "created_at"
	ColProcessedAt = "processed_at"
)

// Row statuses.
const (
	StatusPending   = "pending"
	StatusPublished = "published"
)
