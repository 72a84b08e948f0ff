package kafka

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"chaletbay/internal/domain/shared/events"
)

// EventPublisher adapts the raw producer to domain events. Events go out as a
// JSON envelope keyed by aggregate ID, so all events of one booking land on
// the same partition in order.
type EventPublisher struct {
	Producer    *Producer
	TopicPrefix string
}

type envelope struct {
	Name        string    `json:"name"`
	AggregateID string    `json:"aggregate_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Payload     any       `json:"payload"`
}

func (p *EventPublisher) Publish(ctx context.Context, event events.DomainEvent) error {
	body, err := json.Marshal(envelope{
		Name:        event.EventName(),
		AggregateID: event.AggregateID(),
		OccurredAt:  event.OccurredAt().UTC(),
		Payload:     event,
	})
	if err != nil {
		return err
	}
	topic := p.topicFor(event.EventName())
	return p.Producer.Publish(ctx, topic, event.AggregateID(), body, map[string]string{"event": event.EventName()})
}

// topicFor maps "booking.payment_recorded" to "<prefix>booking".
func (p *EventPublisher) topicFor(eventName string) string {
	topic := eventName
	if idx := strings.IndexByte(eventName, '.'); idx > 0 {
		topic = eventName[:idx]
	}
	return p.TopicPrefix + topic
}
