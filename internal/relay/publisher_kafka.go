package relay

import (
	"context"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/murkotick/sales-record-service/internal/pkg/kafka"
)

// KafkaPublisher routes each event to the topic named after its event
// type, keyed by aggregate id so events of one sale stay ordered within
// a partition.
type KafkaPublisher struct {
	writer *kafkago.Writer
}

func NewKafkaPublisher(writer *kafkago.Writer) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

func (p *KafkaPublisher) Publish(ctx context.Context, ev PendingEvent) error {
	return kafka.Publish(ctx, p.writer, topicFor(ev.EventType), ev.AggregateID, ev.Payload)
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

func topicFor(eventType string) string {
	return eventType
}
