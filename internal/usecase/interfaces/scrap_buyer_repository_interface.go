package interfaces

import (
	"context"
	"time"
	"wascrap/internal/domain/entities"
)

// IScrapBuyerRepository abstracts DynamoDB persistence for ScrapBuyer.

type IScrapBuyerRepository interface {
	Create(ctx context.Context, b entities.ScrapBuyer) (entities.ScrapBuyer, error)
	GetByID(ctx context.Context, id string) (entities.ScrapBuyer, error)
	GetByEmail(ctx context.Context, email string) (entities.ScrapBuyer, error)
	List(ctx context.Context) ([]entities.ScrapBuyer, error)
	UpdateReview(ctx context.Context, id string, verified bool, reason string, at time.Time) (entities.ScrapBuyer, error)
}
