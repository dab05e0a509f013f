package interfaces

import (
	"context"
	"wascrap/internal/domain/entities"
)

// IAccountRepository stores credential records. Create returns ErrDuplicate
// when the e-mail is already registered.

type IAccountRepository interface {
	Create(ctx context.Context, a entities.Account) (entities.Account, error)
	GetByEmail(ctx context.Context, email string) (entities.Account, error)
	GetByUsername(ctx context.Context, username string) (entities.Account, error)
}
