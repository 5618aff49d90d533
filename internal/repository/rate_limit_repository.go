package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RateLimitRepository keeps fixed-window request counters in Redis.
type RateLimitRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRateLimitRepository constructs the repository. A nil client disables counting.
func NewRateLimitRepository(client *redis.Client, logger *zap.Logger) *RateLimitRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RateLimitRepository{client: client, logger: logger}
}

// Hit increments the counter for key and returns the count inside the current
// window together with the time left before the window resets.
func (r *RateLimitRepository) Hit(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	if r.client == nil {
		return 0, window, nil
	}

	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, 0, fmt.Errorf("redis incr %s: %w", key, err)
	}
	if count == 1 {
		if err := r.client.Expire(ctx, key, window).Err(); err != nil {
			return 0, 0, fmt.Errorf("redis expire %s: %w", key, err)
		}
		return count, window, nil
	}

	ttl, err := r.client.TTL(ctx, key).Result()
	if err != nil {
		return 0, 0, fmt.Errorf("redis ttl %s: %w", key, err)
	}
	if ttl < 0 {
		// key lost its expiry, start a fresh window
		if err := r.client.Expire(ctx, key, window).Err(); err != nil {
			return 0, 0, fmt.Errorf("redis expire %s: %w", key, err)
		}
		r.logger.Warn("rate limit key without ttl", zap.String("key", key))
		ttl = window
	}
	return count, ttl, nil
}
