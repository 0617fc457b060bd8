package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"contract-mgmt/backend/internal/telemetry"
)

// messageWriter is the subset of *kafka.Writer used here.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaProducer writes events as JSON to one topic, keyed by org id so an org's events stay ordered.
type KafkaProducer struct {
	writer messageWriter
	topic  string
}

// NewKafkaProducer returns nil when brokers or topic are empty, meaning Kafka export is off.
func NewKafkaProducer(brokers []string, topic string) *KafkaProducer {
	if len(brokers) == 0 || topic == "" {
		return nil
	}
	return &KafkaProducer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			BatchTimeout: 50 * time.Millisecond,
			WriteTimeout: 5 * time.Second,
		},
		topic: topic,
	}
}

// Topic returns the destination topic.
func (p *KafkaProducer) Topic() string {
	if p == nil {
		return ""
	}
	return p.topic
}

// Emit serializes the event and writes it.
func (p *KafkaProducer) Emit(ctx context.Context, event telemetry.Event) error {
	if p == nil || p.writer == nil {
		return nil
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	msg := kafka.Message{Value: payload, Time: event.CreatedAt}
	if event.OrgID != "" {
		msg.Key = []byte(event.OrgID)
	}
	msg.Headers = []kafka.Header{{Key: "event_type", Value: []byte(event.EventType)}}
	return p.writer.WriteMessages(ctx, msg)
}

func (p *KafkaProducer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}

var _ Producer = (*KafkaProducer)(nil)
