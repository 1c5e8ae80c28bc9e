package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/config"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/models"
)

// RateStore counts hits for a key inside a fixed window.
type RateStore interface {
	// Hit increments key and returns the new count and when the window resets.
	Hit(ctx context.Context, key string, window time.Duration) (int64, time.Time, error)
}

// RedisRateStore keeps counters in Redis so limits hold across instances.
type RedisRateStore struct {
	Client *redis.Client
}

// Hit increments the counter and reads its TTL in one transaction. A counter
// without a TTL (first hit, or an earlier expire that never landed) gets the
// window armed, so a client is never locked out past one window.
func (s RedisRateStore) Hit(ctx context.Context, key string, window time.Duration) (int64, time.Time, error) {
	var (
		incr *redis.IntCmd
		ttl  *redis.DurationCmd
	)
	_, err := s.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		ttl = pipe.PTTL(ctx, key)
		return nil
	})
	if err != nil {
		return 0, time.Time{}, err
	}

	left := ttl.Val()
	if left <= 0 {
		if err := s.Client.PExpire(ctx, key, window).Err(); err != nil {
			return 0, time.Time{}, err
		}
		left = window
	}
	return incr.Val(), time.Now().Add(left), nil
}

// RateLimiter allows maxRequests per IP, method and route within window.
// A nil store disables limiting.
func RateLimiter(store RateStore, maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store == nil {
			c.Next()
			return
		}

		// Key is per-IP, per-method, per-endpoint
		key := "rl:" + c.ClientIP() + ":" + c.Request.Method + ":" + c.FullPath()

		count, resetAt, err := store.Hit(c.Request.Context(), key, window)
		if err != nil {
			config.Log.Errorw("[rate-limiter] store error", "key", key, "error", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Rate limiter unavailable"))
			c.Abort()
			return
		}

		remaining := maxRequests - int(count)
		if remaining < 0 {
			remaining = 0
		}

		resetInSeconds := int(time.Until(resetAt).Seconds())
		if resetInSeconds < 0 {
			resetInSeconds = 0
		}

		rate := &models.RateLimiter{
			Limit:          maxRequests,
			Remaining:      remaining,
			ResetAt:        resetAt,
			ResetInSeconds: resetInSeconds,
		}
		c.Set("rateLimiter", rate)

		if int(count) > maxRequests {
			config.Log.Warnw("[rate-limiter] limit exceeded", "key", key, "count", count)
			c.JSON(http.StatusTooManyRequests, models.ApiResponse{
				Message: "Too many requests",
				Error:   true,
				Rate:    rate,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
