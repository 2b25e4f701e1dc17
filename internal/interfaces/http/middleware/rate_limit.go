// internal/interfaces/http/middleware/rate_limit.go
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/petalline/storefront/internal/pkg/expiry"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Limiter decides whether a client may make another request
type Limiter interface {
	Allow(ctx context.Context, key string) (allowed bool, remaining int, err error)
	Limit() int
}

// RedisLimiter is a fixed one-minute window counter shared by all instances
type RedisLimiter struct {
	client    *redis.Client
	perMinute int
}

// NewRedisLimiter creates a new Redis-backed limiter
func NewRedisLimiter(client *redis.Client, perMinute int) *RedisLimiter {
	return &RedisLimiter{client: client, perMinute: perMinute}
}

// Limit returns the per-minute budget
func (l *RedisLimiter) Limit() int {
	return l.perMinute
}

// Allow increments the client's counter for the current window. The count is
// taken from INCR itself so concurrent requests cannot all read the same value.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, int, error) {
	key = fmt.Sprintf("rate_limit:%s", key)

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, time.Minute)
	if _, err := pipe.Exec(ctx); err != nil {
		return true, l.perMinute, err
	}

	allowed, remaining := windowDecision(incr.Val(), l.perMinute)
	return allowed, remaining, nil
}

// windowDecision admits the count-th request of a window holding limit requests
func windowDecision(count int64, limit int) (bool, int) {
	if count > int64(limit) {
		return false, 0
	}
	return true, limit - int(count)
}

// LocalLimiter keeps one token bucket per client in process memory. A bucket
// idle long enough to refill completely is dropped.
type LocalLimiter struct {
	perMinute int
	burst     int
	buckets   *expiry.Map[string, *rate.Limiter]
}

// NewLocalLimiter creates a new in-process limiter
func NewLocalLimiter(perMinute, burst int) *LocalLimiter {
	return newLocalLimiterWithClock(perMinute, burst, time.Now)
}

func newLocalLimiterWithClock(perMinute, burst int, now func() time.Time) *LocalLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &LocalLimiter{
		perMinute: perMinute,
		burst:     burst,
		buckets:   expiry.NewMapWithClock[string, *rate.Limiter](refillTime(perMinute, burst), now),
	}
}

func refillTime(perMinute, burst int) time.Duration {
	if perMinute <= 0 {
		return time.Minute
	}
	d := time.Duration(burst) * time.Minute / time.Duration(perMinute)
	if d < time.Minute {
		d = time.Minute
	}
	return d
}

// Limit returns the per-minute budget
func (l *LocalLimiter) Limit() int {
	return l.perMinute
}

// Allow takes a token from the client's bucket
func (l *LocalLimiter) Allow(ctx context.Context, key string) (bool, int, error) {
	bucket := l.buckets.Update(key, func(b *rate.Limiter, ok bool) (*rate.Limiter, bool) {
		if !ok {
			b = rate.NewLimiter(rate.Limit(float64(l.perMinute)/60), l.burst)
		}
		return b, true
	})

	if !bucket.Allow() {
		return false, 0, nil
	}
	return true, int(bucket.Tokens()), nil
}

// Clients returns the number of tracked client buckets
func (l *LocalLimiter) Clients() int {
	return l.buckets.Len()
}

// RateLimit rejects clients that exceed the limiter's budget. Limiter errors let the request through.
func RateLimit(limiter Limiter, logger logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		allowed, remaining, err := limiter.Allow(ctx, c.ClientIP())
		if err != nil {
			logger.WithFields(logrus.Fields{"client_ip": c.ClientIP(), "error": err.Error()}).Warn("Rate limiter unavailable")
		}

		if !allowed {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Rate limit exceeded",
				"retry_after": 60,
			})
			c.Abort()
			return
		}

		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(limiter.Limit()))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(time.Minute).Unix(), 10))

		c.Next()
	}
}
