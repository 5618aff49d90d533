package middleware

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sma-election-api/internal/service"
	appErrors "github.com/noah-isme/sma-election-api/pkg/errors"
	"github.com/noah-isme/sma-election-api/pkg/response"
)

// RateLimit rejects clients that exceed the configured request budget.
func RateLimit(limiter *service.RateLimitService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		decision := limiter.Allow(c.Request.Context(), c.ClientIP())
		c.Header("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
		if !decision.Allowed {
			retryAfter := int(math.Ceil(decision.RetryAfter.Seconds()))
			if retryAfter > 0 {
				c.Header("Retry-After", strconv.Itoa(retryAfter))
			}
			response.Error(c, appErrors.Clone(appErrors.ErrRateLimited, "too many requests, try again later"))
			c.Abort()
			return
		}
		c.Next()
	}
}
