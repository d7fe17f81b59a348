package app

import (
	"net/http"

	"salary-bench/internal/benchmark"
	"salary-bench/internal/middleware"
	"salary-bench/internal/salary"
	"salary-bench/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func newHistoryRepository(infra *infrastructure, cfg Config) benchmark.HistoryRepository {
	if infra.rdb == nil {
		return nil
	}
	return benchmark.NewHistoryRepository(infra.rdb, cfg.HistoryLimit)
}

func newEventPublisher(infra *infrastructure) benchmark.EventPublisher {
	if infra.writer == nil {
		return nil
	}
	return benchmark.NewKafkaEventPublisher(infra.writer)
}

func registerModules(router *gin.Engine, infra *infrastructure, cfg Config) {
	// --- Repositories ---
	salaryRepo := salary.NewRepository(infra.gormDB, infra.sqlDB)
	historyRepo := newHistoryRepository(infra, cfg)

	// --- Services ---
	benchmarkService := benchmark.NewServiceWithPublisher(
		salaryRepo,
		historyRepo,
		nil,
		newEventPublisher(infra),
	)

	// --- Handlers ---
	benchmarkHandler := benchmark.NewHandler(benchmarkService)

	// --- Routes Registration ---
	router.GET("/healthz", func(c *gin.Context) {
		response.Success(c, http.StatusOK, nil)
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")
	api.Use(
		middleware.RequestID(),
		middleware.ContextLogger(zap.L().Named("http")),
	)
	{
		benchmark.RegisterRoutes(api, benchmarkHandler, infra.rdb)
	}
}
