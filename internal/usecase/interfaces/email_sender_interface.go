package interfaces

import (
	"context"
	"wascrap/internal/domain/entities"
)

// IEmailSender abstracts the transactional email provider.
type IEmailSender interface {
	Send(ctx context.Context, email entities.Email) (providerMessageID string, err error)
}
