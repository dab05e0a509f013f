package cache

import (
	"context"
	"fmt"
	"log"

	"wascrap/internal/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects and pings. A nil client with a nil error means Redis
// is not configured and callers should use their in-process fallback.
func NewRedisClient(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	if cfg.Addr == "" {
		log.Printf("[redis] not configured, using in-memory fallbacks")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	log.Printf("[redis] connected addr=%s db=%d", cfg.Addr, cfg.DB)
	return client, nil
}
