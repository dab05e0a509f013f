package repository

import (
	"context"
	"errors"
	"time"

	"wascrap/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// OTPRedisStore keeps one-time codes in Redis so they survive restarts and are
// shared across replicas. Expiry is delegated to Redis key TTLs.
type OTPRedisStore struct {
	rdb *redis.Client
}

var _ interfaces.IOTPStore = (*OTPRedisStore)(nil)

func NewOTPRedisStore(rdb *redis.Client) *OTPRedisStore {
	return &OTPRedisStore{rdb: rdb}
}

func (s *OTPRedisStore) Save(ctx context.Context, key, code string, ttl time.Duration) error {
	return s.rdb.Set(ctx, key, code, ttl).Err()
}

func (s *OTPRedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	code, err := s.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return code, true, nil
}

// IncrementAttempts starts the expiry window on the first attempt only.
func (s *OTPRedisStore) IncrementAttempts(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	n, err := s.rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if n == 1 {
		if err := s.rdb.Expire(ctx, key, ttl).Err(); err != nil {
			return 0, err
		}
	}
	return n, nil
}

func (s *OTPRedisStore) Delete(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}
