package benchmark

import (
	"salary-bench/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	// A run hits the database three times; keep callers from stacking runs
	// on top of each other.
	runHandlers := []gin.HandlerFunc{middleware.RateLimitByIP(0.5, 2)}
	if redisClient != nil {
		runHandlers = append(runHandlers, middleware.Idempotency(redisClient, middleware.DefaultIdempotencyReplay))
	}
	runHandlers = append(runHandlers, h.Run)

	benchmarks := r.Group("/benchmarks/latest-salaries")
	{
		benchmarks.POST("", runHandlers...)
		benchmarks.GET("/history",
			middleware.RateLimitByIP(5, 10),
			h.History,
		)
	}
}
