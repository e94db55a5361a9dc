package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	fiberredis "github.com/gofiber/storage/redis/v3"
	"github.com/redis/go-redis/v9"
)

// NewLimiterWithRedis rate-limits per client IP using a sliding window
// backed by Redis, so the counter survives restarts and is shared across
// replicas. Mainly protects the login endpoint from credential stuffing.
func NewLimiterWithRedis(rdb *redis.Client, maxRequests int, window time.Duration) fiber.Handler {
	if maxRequests <= 0 {
		maxRequests = 20
	}
	if window <= 0 {
		window = 30 * time.Second
	}
	return limiter.New(limiter.Config{
		Storage: fiberredis.NewFromConnection(rdb),

		Max:               maxRequests,
		Expiration:        window,
		LimiterMiddleware: limiter.SlidingWindow{},
	})
}
