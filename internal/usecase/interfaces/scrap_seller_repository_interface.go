package interfaces

import (
	"context"
	"wascrap/internal/domain/entities"
)

// IScrapSellerRepository persists federated seller profiles keyed by provider UID.
//
// Create returns ErrDuplicate for a known UID; Update returns a zero value when
// the UID is unknown.

type IScrapSellerRepository interface {
	Create(ctx context.Context, s entities.ScrapSeller) (entities.ScrapSeller, error)
	Update(ctx context.Context, s entities.ScrapSeller) (entities.ScrapSeller, error)
	GetByUID(ctx context.Context, uid string) (entities.ScrapSeller, error)
}
