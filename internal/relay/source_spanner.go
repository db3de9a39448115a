package relay

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/murkotick/sales-record-service/internal/app/sales/contracts"
	"github.com/murkotick/sales-record-service/internal/models/m_outbox"
	"github.com/murkotick/sales-record-service/internal/pkg/clock"
)

// SpannerSource reads pending rows from the outbox table and stamps them
// published after delivery.
type SpannerSource struct {
	client *spanner.Client
	clock  clock.Clock
}

func NewSpannerSource(client *spanner.Client, clk clock.Clock) *SpannerSource {
	return &SpannerSource{client: client, clock: clk}
}

func (s *SpannerSource) FetchPending(ctx context.Context, limit int) ([]PendingEvent, error) {
	stmt := spanner.Statement{
		SQL: fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s WHERE %s = @status ORDER BY %s LIMIT @limit`,
			m_outbox.ColEventID, m_outbox.ColEventType, m_outbox.ColAggregateID, m_outbox.ColPayload,
			m_outbox.TableName, m_outbox.ColStatus, m_outbox.ColCreatedAt),
		Params: map[string]interface{}{
			"status": contracts.OutboxStatusPending,
			"limit":  int64(limit),
		},
	}

	iter := s.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var out []PendingEvent
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("fetch pending outbox rows: %w", err)
		}

		var ev PendingEvent
		var payload string
		if err := row.Columns(&ev.EventID, &ev.EventType, &ev.AggregateID, &payload); err != nil {
			return nil, fmt.Errorf("scan outbox row: %w", err)
		}
		ev.Payload = []byte(payload)
		out = append(out, ev)
	}
	return out, nil
}

func (s *SpannerSource) MarkPublished(ctx context.Context, eventID string) error {
	mut := m_outbox.MarkPublishedMutation(eventID, s.clock.Now())
	if _, err := s.client.Apply(ctx, []*spanner.Mutation{mut}); err != nil {
		return fmt.Errorf("mark outbox row published: %w", err)
	}
	return nil
}
