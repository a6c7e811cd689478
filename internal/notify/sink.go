package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	model "trader-bot/internal/models"
	"trader-bot/utils"

	"github.com/segmentio/kafka-go"
)

// Sink delivers a notification to its recipient
type Sink interface {
	Deliver(ctx context.Context, n model.Notification) error
}

// LogSink writes notifications to the structured log
type LogSink struct{}

// Deliver logs n at info level
func (LogSink) Deliver(ctx context.Context, n model.Notification) error {
	utils.Info("notification", map[string]any{
		"notification_id": n.ID,
		"guild_id":        n.GuildID,
		"recipient":       n.Recipient,
		"kind":            n.Kind,
		"payload":         n.Payload,
	})
	return nil
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaSink publishes notifications as JSON keyed by recipient,
// so one member's notifications stay ordered within a partition.
type KafkaSink struct {
	writer messageWriter
}

// NewKafkaSink creates a synchronous producer for topic
func NewKafkaSink(brokers []string, topic string) *KafkaSink {
	return &KafkaSink{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			Async:        false,
			BatchTimeout: 10 * time.Millisecond,
		},
	}
}

// Deliver publishes n
func (s *KafkaSink) Deliver(ctx context.Context, n model.Notification) error {
	value, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("notify: encode %s: %w", n.ID, err)
	}
	if err := s.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(n.GuildID + ":" + n.Recipient),
		Value: value,
	}); err != nil {
		return fmt.Errorf("notify: publish %s: %w", n.ID, err)
	}
	return nil
}

// Close flushes and closes the producer
func (s *KafkaSink) Close() error {
	return s.writer.Close()
}

// FanOut delivers to every sink and returns the first error
type FanOut []Sink

// Deliver calls every sink even when an earlier one fails
func (f FanOut) Deliver(ctx context.Context, n model.Notification) error {
	var first error
	for _, s := range f {
		if err := s.Deliver(ctx, n); err != nil && first == nil {
			first = err
		}
	}
	return first
}
