package app

import (
	"context"
	"io"

	"salary-bench/internal/benchmark"
	"salary-bench/internal/salary"

	"go.uber.org/zap"
)

// RunBenchmark runs the three variants once against cfg.Department and
// prints the report to w.
func RunBenchmark(ctx context.Context, cfg Config, w io.Writer) error {
	logger := zap.L().Named("app.bench")

	infra, err := connect(ctx, cfg, true)
	if err != nil {
		return err
	}
	defer func() {
		if err := infra.Close(); err != nil {
			logger.Error("close connections failed", zap.Error(err))
		}
	}()

	service := benchmark.NewServiceWithPublisher(
		salary.NewRepository(infra.gormDB, infra.sqlDB),
		newHistoryRepository(infra, cfg),
		benchmark.NewTextReporter(w),
		newEventPublisher(infra),
	)

	report, err := service.Run(ctx, cfg.Department)
	if err != nil {
		return err
	}

	logger.Debug("benchmark finished",
		zap.String("run_id", report.ID),
		zap.Int("divergences", len(report.Divergences)),
	)
	return nil
}
