package interfaces

import (
	"context"
	"time"
)

// IOTPStore keeps issued one-time codes until they expire or are consumed.

type IOTPStore interface {
	Save(ctx context.Context, key, code string, ttl time.Duration) error
	Get(ctx context.Context, key string) (code string, found bool, err error)
	IncrementAttempts(ctx context.Context, key string, ttl time.Duration) (int64, error)
	Delete(ctx context.Context, key string) error
}
