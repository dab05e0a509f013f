package interfaces

import (
	"context"
	"wascrap/internal/domain/entities"
)

// IEventPublisher ships domain events to the message broker.
type IEventPublisher interface {
	Publish(ctx context.Context, evt entities.DomainEvent) error
}
