package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"salary-bench/internal/shared/apperror"
	"salary-bench/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	IdempotencyKeyHeader     = "Idempotency-Key"
	IdempotentReplayedHeader = "Idempotent-Replayed"
	idempotencyLockTTL       = 30 * time.Second
	DefaultIdempotencyReplay = 24 * time.Hour
)

type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        string `json:"body"`
}

type capturingWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *capturingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *capturingWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// IdempotencyCacheKey is the redis key holding the replayable response for
// a POST to fullPath with rawQuery and the caller supplied key.
func IdempotencyCacheKey(fullPath, rawQuery, key string) string {
	return fmt.Sprintf("idemp:%s?%s:%s", fullPath, rawQuery, key)
}

// Idempotency replays the stored response of a POST carrying an
// Idempotency-Key seen within ttl. A second request arriving while the
// first is still running gets 409. Only 2xx responses are stored.
func Idempotency(rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	logger := zap.L().Named("middleware.idempotency")

	return func(c *gin.Context) {
		idempKey := c.GetHeader(IdempotencyKeyHeader)
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		cacheKey := IdempotencyCacheKey(c.FullPath(), c.Request.URL.RawQuery, idempKey)
		lockKey := cacheKey + ":lock"

		val, err := rdb.Get(ctx, cacheKey).Result()
		switch {
		case err == nil:
			var cached cachedResponse
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				c.Header(IdempotentReplayedHeader, "true")
				c.Data(cached.Status, cached.ContentType, []byte(cached.Body))
				c.Abort()
				return
			}
			logger.Warn("discarding unreadable idempotency entry", zap.String("key", cacheKey))
		case !errors.Is(err, redis.Nil):
			// Redis outages fall through to the handler.
			logger.Error("idempotency lookup failed", zap.Error(err))
			c.Next()
			return
		}

		isNew, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			logger.Error("idempotency lock failed", zap.Error(err))
			c.Next()
			return
		}
		if !isNew {
			response.FromError(c, apperror.ErrRequestInProgress)
			c.Abort()
			return
		}

		writer := &capturingWriter{ResponseWriter: c.Writer}
		c.Writer = writer

		c.Next()

		storeCtx := context.WithoutCancel(ctx)
		status := writer.Status()
		if status >= http.StatusOK && status < http.StatusMultipleChoices {
			data, _ := json.Marshal(cachedResponse{
				Status:      status,
				ContentType: writer.Header().Get("Content-Type"),
				Body:        writer.body.String(),
			})
			if err := rdb.Set(storeCtx, cacheKey, string(data), ttl).Err(); err != nil {
				logger.Error("store idempotent response failed", zap.Error(err))
			}
		}
		if err := rdb.Del(storeCtx, lockKey).Err(); err != nil {
			logger.Error("release idempotency lock failed", zap.Error(err))
		}
	}
}
