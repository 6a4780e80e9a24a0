package middleware

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/traineme-api/internal/httperr"
)

// RateLimit is a fixed-window limiter keyed by client IP and scope. It is
// a no-op without redis, and lets requests through when redis fails.
func RateLimit(rdb *redis.Client, scope string, max int, window time.Duration) gin.HandlerFunc {
	if rdb == nil || max <= 0 || window <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		now := time.Now()
		bucket := now.UnixNano() / int64(window)
		key := fmt.Sprintf("ratelimit:%s:%s:%d", scope, c.ClientIP(), bucket)

		ctx := c.Request.Context()
		var incr *redis.IntCmd
		_, err := rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
			incr = p.Incr(ctx, key)
			p.Expire(ctx, key, window)
			return nil
		})
		if err != nil {
			slog.WarnContext(ctx, "rate limit unavailable", "scope", scope, "error", err)
			c.Next()
			return
		}

		count := incr.Val()
		remaining := int64(max) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(max))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(max) {
			resetAt := time.Unix(0, (bucket+1)*int64(window))
			retry := int(time.Until(resetAt).Seconds()) + 1
			c.Header("Retry-After", strconv.Itoa(retry))
			httperr.Respond(c, "rate_limit", httperr.ErrRateLimited)
			return
		}

		c.Next()
	}
}
