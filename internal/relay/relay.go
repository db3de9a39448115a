package relay

import (
	"context"
	"log/slog"
	"time"
)

// PendingEvent is one undelivered outbox row.
type PendingEvent struct {
	EventID     string
	EventType   string
	AggregateID string
	Payload     []byte
}

// Source provides pending outbox rows and acknowledges delivered ones.
type Source interface {
	FetchPending(ctx context.Context, limit int) ([]PendingEvent, error)
	MarkPublished(ctx context.Context, eventID string) error
}

// Publisher delivers one event to the broker.
type Publisher interface {
	Publish(ctx context.Context, ev PendingEvent) error
}

// Relay moves committed outbox rows to the broker. Delivery is at least
// once: a crash between publish and ack re-sends the event, consumers
// must dedupe on event id.
type Relay struct {
	source    Source
	publisher Publisher
	metrics   *Metrics
	log       *slog.Logger

	batchSize int
	interval  time.Duration
}

func New(source Source, publisher Publisher, metrics *Metrics, log *slog.Logger, batchSize int, interval time.Duration) *Relay {
	return &Relay{
		source:    source,
		publisher: publisher,
		metrics:   metrics,
		log:       log,
		batchSize: batchSize,
		interval:  interval,
	}
}

// RunOnce drains up to one batch. Events are published in created_at
// order; a failed publish stops the batch so ordering per aggregate is
// preserved on retry.
func (r *Relay) RunOnce(ctx context.Context) (int, error) {
	events, err := r.source.FetchPending(ctx, r.batchSize)
	if err != nil {
		return 0, err
	}

	published := 0
	for _, ev := range events {
		if err := r.publisher.Publish(ctx, ev); err != nil {
			r.metrics.Failed(ev.EventType)
			r.log.Error("publish failed", "event_id", ev.EventID, "event_type", ev.EventType, "error", err)
			return published, err
		}
		if err := r.source.MarkPublished(ctx, ev.EventID); err != nil {
			r.log.Error("ack failed", "event_id", ev.EventID, "error", err)
			return published, err
		}
		r.metrics.Published(ev.EventType)
		published++
	}
	return published, nil
}

// Run polls until the context is done.
func (r *Relay) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		n, err := r.RunOnce(ctx)
		if err != nil && ctx.Err() == nil {
			r.log.Error("relay pass failed", "error", err)
		}
		if n > 0 {
			r.log.Info("relay pass", "published", n)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
