package service

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const rateLimitKeyPrefix = "election:ratelimit:"

type rateLimitStore interface {
	Hit(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}

type rateLimitMetrics interface {
	IncRateLimited()
}

// RateLimitConfig bounds requests per client within a fixed window.
type RateLimitConfig struct {
	MaxRequests int
	Window      time.Duration
}

// RateLimitDecision describes the outcome of a single request check.
type RateLimitDecision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// RateLimitService applies a fixed-window limit per client identifier.
type RateLimitService struct {
	store   rateLimitStore
	logger  *zap.Logger
	metrics rateLimitMetrics
	cfg     RateLimitConfig
}

// NewRateLimitService constructs a RateLimitService.
func NewRateLimitService(store rateLimitStore, logger *zap.Logger, metrics rateLimitMetrics, cfg RateLimitConfig) *RateLimitService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.MaxRequests <= 0 {
		cfg.MaxRequests = 300
	}
	if cfg.Window <= 0 {
		cfg.Window = 15 * time.Minute
	}
	return &RateLimitService{store: store, logger: logger, metrics: metrics, cfg: cfg}
}

// Allow counts a request from client. Store failures let the request through.
func (s *RateLimitService) Allow(ctx context.Context, client string) RateLimitDecision {
	count, ttl, err := s.store.Hit(ctx, rateLimitKeyPrefix+client, s.cfg.Window)
	if err != nil {
		s.logger.Warn("rate limit store unavailable", zap.Error(err))
		return RateLimitDecision{Allowed: true, Remaining: s.cfg.MaxRequests}
	}

	remaining := s.cfg.MaxRequests - int(count)
	if remaining < 0 {
		remaining = 0
	}
	if count > int64(s.cfg.MaxRequests) {
		if s.metrics != nil {
			s.metrics.IncRateLimited()
		}
		return RateLimitDecision{Allowed: false, Remaining: 0, RetryAfter: ttl}
	}
	return RateLimitDecision{Allowed: true, Remaining: remaining}
}
