package interfaces

import (
	"context"
	"wascrap/internal/domain/entities"
)

type INotificationRepository interface {
	Create(ctx context.Context, n entities.Notification) (entities.Notification, error)
}
