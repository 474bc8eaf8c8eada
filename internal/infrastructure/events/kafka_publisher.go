package events

import (
	"context"
	"encoding/json"
	"time"

	"product_estimator/internal/domain/entities"
	"product_estimator/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

// messageWriter is the part of *kafka.Writer the publisher uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaEventPublisher writes estimate events as JSON, keyed by estimate id so
// events for one estimate stay ordered within a partition.
type KafkaEventPublisher struct {
	writer  messageWriter
	timeout time.Duration
}

var _ interfaces.IEventPublisher = (*KafkaEventPublisher)(nil)

func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
}

func NewKafkaEventPublisher(brokers []string, topic string) *KafkaEventPublisher {
	return &KafkaEventPublisher{writer: NewKafkaWriter(brokers, topic), timeout: 5 * time.Second}
}

func (p *KafkaEventPublisher) Publish(ctx context.Context, event entities.EstimateEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	// the request context may already be done once the response is written
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
	defer cancel()

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.EstimateID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
	})
	if err != nil {
		return err
	}
	log.Debug().Str("estimate_id", event.EstimateID).Str("event", string(event.Type)).Msg("[estimate][events] published")
	return nil
}

func (p *KafkaEventPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher drops events. It is used when no broker is configured.
type NoopPublisher struct{}

var _ interfaces.IEventPublisher = NoopPublisher{}

func (NoopPublisher) Publish(context.Context, entities.EstimateEvent) error { return nil }
