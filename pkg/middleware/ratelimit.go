package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"farmbook/pkg/logger"
)

// RateLimit throttles per client IP using store.
func RateLimit(store echomw.RateLimiterStore) echo.MiddlewareFunc {
	return echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, "Too Many Attempts.")
		},
		DenyHandler: func(c echo.Context, id string, err error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, "Too Many Attempts.")
		},
	})
}

// NewMemoryStore keeps token buckets in process, refilled at perMinute/60
// per second with a burst of perMinute.
func NewMemoryStore(perMinute int) echomw.RateLimiterStore {
	return echomw.NewRateLimiterMemoryStoreWithConfig(echomw.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(float64(perMinute) / 60),
		Burst:     perMinute,
		ExpiresIn: 3 * time.Minute,
	})
}

// RedisStore is a fixed one-minute window shared by every process using the
// same Redis. Redis errors let the request through.
type RedisStore struct {
	rdb       redis.UniversalClient
	perMinute int
	log       *logger.Logger
	now       func() time.Time
	timeout   time.Duration
}

func NewRedisStore(rdb redis.UniversalClient, perMinute int, log *logger.Logger) *RedisStore {
	return &RedisStore{rdb: rdb, perMinute: perMinute, log: log, now: time.Now, timeout: 200 * time.Millisecond}
}

func (s *RedisStore) Allow(identifier string) (bool, error) {
	window := s.now().Unix() / 60
	key := fmt.Sprintf("farmbook:ratelimit:%s:%d", identifier, window)

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	pipe := s.rdb.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, 2*time.Minute)
	if _, err := pipe.Exec(ctx); err != nil {
		s.log.Warn("rate limit store unavailable", "error", err)
		return true, nil
	}
	return incr.Val() <= int64(s.perMinute), nil
}
