package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"zip2mp/pkg/logger"
)

// Publisher writes lookup events to Kafka. A nil Publisher is valid and
// drops everything, so callers never branch on whether eventing is enabled.
type Publisher struct {
	writer *kafka.Writer
	log    *logger.Logger
}

func NewPublisher(brokers []string, topic string, log *logger.Logger) (*Publisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("at least one broker is required")
	}
	if topic == "" {
		return nil, fmt.Errorf("topic cannot be empty")
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 50 * time.Millisecond,
		Async:        true,
		Logger:       kafka.LoggerFunc(func(string, ...any) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			log.Error("kafka writer error", "error", fmt.Sprintf(msg, args...))
		}),
	}

	return &Publisher{writer: writer, log: log}, nil
}

// Publish is fire-and-forget: failures are logged and swallowed so eventing
// never affects a lookup's result. Messages are keyed by country to keep
// per-country ordering.
func (p *Publisher) Publish(ctx context.Context, event LookupEvent) {
	if p == nil {
		return
	}

	value, err := json.Marshal(event)
	if err != nil {
		p.log.Error("failed to marshal lookup event", "event_id", event.EventID, "error", err)
		return
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Country),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event-id", Value: []byte(event.EventID)},
			{Key: "event-type", Value: []byte("lookup.completed")},
		},
	})
	if err != nil {
		p.log.Error("failed to publish lookup event", "event_id", event.EventID, "error", err)
	}
}

func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}
