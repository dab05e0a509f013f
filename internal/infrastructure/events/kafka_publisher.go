package events

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"time"

	"wascrap/internal/config"
	"wascrap/internal/domain/entities"
	"wascrap/internal/usecase/interfaces"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes domain events keyed by aggregate id, so every event of
// one booking lands on the same partition in order.
type KafkaPublisher struct {
	writer messageWriter
	topic  string
}

var _ interfaces.IEventPublisher = (*KafkaPublisher)(nil)

func NewKafkaPublisher(cfg config.Kafka) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		MaxAttempts:            5,
		ReadTimeout:            10 * time.Second,
		WriteTimeout:           10 * time.Second,
		AllowAutoTopicCreation: true,
	}
	log.Printf("[events][kafka] producer ready brokers=%v topic=%s", cfg.Brokers, cfg.Topic)
	return &KafkaPublisher{writer: w, topic: cfg.Topic}
}

func (p *KafkaPublisher) Publish(ctx context.Context, evt entities.DomainEvent) error {
	msg, err := toMessage(evt)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	log.Printf("[events][kafka] published type=%s aggregate_id=%s", evt.Type, evt.AggregateID)
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

func toMessage(evt entities.DomainEvent) (kafka.Message, error) {
	b, err := json.Marshal(evt)
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{
		Key:   []byte(evt.AggregateID),
		Value: b,
		Time:  evt.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(evt.Type)},
		},
	}, nil
}

// NopPublisher drops events. Used when no brokers are configured.
type NopPublisher struct{}

var _ interfaces.IEventPublisher = NopPublisher{}

func (NopPublisher) Publish(context.Context, entities.DomainEvent) error { return nil }

func (NopPublisher) Close() error { return nil }

// Publisher is an event publisher owning a connection that main closes on shutdown.
type Publisher interface {
	interfaces.IEventPublisher
	io.Closer
}

// NewPublisher picks the Kafka publisher when brokers are configured.
func NewPublisher(cfg config.Kafka) Publisher {
	if len(cfg.Brokers) == 0 {
		log.Printf("[events] no kafka brokers configured, events disabled")
		return NopPublisher{}
	}
	return NewKafkaPublisher(cfg)
}
