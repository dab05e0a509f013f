package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"wascrap/internal/config"
	"wascrap/internal/domain/entities"

	"github.com/segmentio/kafka-go"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestKafkaPublisher_Publish(t *testing.T) {
	evt := entities.DomainEvent{
		ID:            "evt-1",
		Type:          entities.BookingEventType(entities.BookingStatusCompleted),
		AggregateID:   "b-1",
		AggregateType: entities.AggregateBooking,
		Payload:       map[string]any{"completed_by": "staff-1"},
		OccurredAt:    time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC),
	}

	t.Run("keys message by aggregate id", func(t *testing.T) {
		w := &fakeWriter{}
		p := &KafkaPublisher{writer: w, topic: "wascrap-events"}

		if err := p.Publish(context.Background(), evt); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(w.msgs) != 1 {
			t.Fatalf("expected 1 message, got %d", len(w.msgs))
		}
		msg := w.msgs[0]
		if string(msg.Key) != "b-1" {
			t.Fatalf("expected key b-1, got %q", msg.Key)
		}
		if len(msg.Headers) != 1 || string(msg.Headers[0].Value) != "booking.completed" {
			t.Fatalf("unexpected headers: %+v", msg.Headers)
		}

		var got entities.DomainEvent
		if err := json.Unmarshal(msg.Value, &got); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if got.Type != "booking.completed" || got.AggregateType != "booking" {
			t.Fatalf("unexpected payload: %+v", got)
		}
	})

	t.Run("wraps writer errors", func(t *testing.T) {
		boom := errors.New("broker down")
		p := &KafkaPublisher{writer: &fakeWriter{err: boom}}

		err := p.Publish(context.Background(), evt)
		if !errors.Is(err, boom) {
			t.Fatalf("expected wrapped broker error, got %v", err)
		}
	})
}

func TestNewPublisher(t *testing.T) {
	t.Run("no brokers gives a nop publisher", func(t *testing.T) {
		p := NewPublisher(config.Kafka{Topic: "wascrap-events"})
		if _, ok := p.(NopPublisher); !ok {
			t.Fatalf("expected NopPublisher, got %T", p)
		}
		if err := p.Publish(context.Background(), entities.DomainEvent{}); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})

	t.Run("brokers give a kafka publisher", func(t *testing.T) {
		p := NewPublisher(config.Kafka{Brokers: []string{"localhost:9092"}, Topic: "wascrap-events"})
		kp, ok := p.(*KafkaPublisher)
		if !ok {
			t.Fatalf("expected *KafkaPublisher, got %T", p)
		}
		if kp.topic != "wascrap-events" {
			t.Fatalf("unexpected topic %q", kp.topic)
		}
		_ = kp.Close()
	})
}
