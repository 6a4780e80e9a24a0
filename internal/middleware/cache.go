package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

const HeaderCache = "X-Cache"

type captureWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// CacheKey is the path plus the query with keys sorted.
func CacheKey(r *http.Request) string {
	key := "cache:" + r.URL.Path
	if q := r.URL.Query().Encode(); q != "" {
		key += "?" + q
	}
	return key
}

// ResponseCache stores 200 JSON bodies of GET requests for ttl. It is a
// no-op without redis.
func ResponseCache(rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	if rdb == nil || ttl <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := CacheKey(c.Request)

		if body, err := rdb.Get(ctx, key).Bytes(); err == nil {
			c.Header(HeaderCache, "HIT")
			c.Data(http.StatusOK, "application/json; charset=utf-8", body)
			c.Abort()
			return
		} else if !errors.Is(err, redis.Nil) {
			slog.WarnContext(ctx, "cache read failed", "key", key, "error", err)
		}

		cw := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = cw
		c.Header(HeaderCache, "MISS")

		c.Next()

		if cw.Status() != http.StatusOK || cw.buf.Len() == 0 {
			return
		}
		// detached from the request context
		if err := rdb.Set(context.Background(), key, cw.buf.Bytes(), ttl).Err(); err != nil {
			slog.WarnContext(ctx, "cache write failed", "key", key, "error", err)
		}
	}
}
