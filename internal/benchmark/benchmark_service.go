package benchmark

import (
	"context"
	"fmt"
	"strings"
	"time"

	benchmarkerrors "salary-bench/internal/benchmark/errors"
	"salary-bench/internal/salary"
	"salary-bench/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type Service interface {
	Run(ctx context.Context, departmentName string) (Report, error)
	History(ctx context.Context, departmentName string, limit int) ([]Report, error)
}

type service struct {
	repo      salary.Repository
	history   HistoryRepository
	reporter  Reporter
	publisher EventPublisher
	sf        *singleflight.Group
	now       func() time.Time
	logger    *zap.Logger
}

// NewService wires a runner. history and reporter may be nil.
func NewService(repo salary.Repository, history HistoryRepository, reporter Reporter, logger ...*zap.Logger) Service {
	return newService(repo, history, reporter, nil, time.Now, logger...)
}

// NewServiceWithPublisher is NewService that also announces every finished
// run through publisher.
func NewServiceWithPublisher(
	repo salary.Repository,
	history HistoryRepository,
	reporter Reporter,
	publisher EventPublisher,
	logger ...*zap.Logger,
) Service {
	return newService(repo, history, reporter, publisher, time.Now, logger...)
}

// NewServiceWithClock is NewService with an injectable clock. now must
// return readings with a monotonic component for real measurements.
func NewServiceWithClock(
	repo salary.Repository,
	history HistoryRepository,
	reporter Reporter,
	now func() time.Time,
	logger ...*zap.Logger,
) Service {
	return newService(repo, history, reporter, nil, now, logger...)
}

func newService(
	repo salary.Repository,
	history HistoryRepository,
	reporter Reporter,
	publisher EventPublisher,
	now func() time.Time,
	logger ...*zap.Logger,
) *service {
	l := zap.L().Named("benchmark.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("benchmark.service")
	}
	if publisher == nil {
		publisher = noopEventPublisher{}
	}
	return &service{
		repo:      repo,
		history:   history,
		reporter:  reporter,
		publisher: publisher,
		sf:        &singleflight.Group{},
		now:       now,
		logger:    l,
	}
}

type step struct {
	variant Variant
	find    func(ctx context.Context, departmentName string) ([]salary.LatestSalary, error)
}

func (s *service) steps() []step {
	return []step{
		{variant: VariantNaive, find: s.repo.FindLatestNaive},
		{variant: VariantJoined, find: s.repo.FindLatestJoined},
		{variant: VariantProcedure, find: s.repo.FindLatestByProcedure},
	}
}

// Run executes every variant in order against departmentName. Concurrent
// calls for the same department share a single run.
func (s *service) Run(ctx context.Context, departmentName string) (Report, error) {
	if strings.TrimSpace(departmentName) == "" {
		return Report{}, benchmarkerrors.ErrDepartmentNameRequired
	}

	v, err, shared := s.sf.Do(departmentName, func() (any, error) {
		return s.run(ctx, departmentName)
	})
	if err != nil {
		return Report{}, err
	}
	if shared {
		contextutil.GetLogger(ctx, s.logger).Debug("benchmark run shared with concurrent caller",
			zap.String("department", departmentName),
		)
	}
	return v.(Report), nil
}

func (s *service) run(ctx context.Context, departmentName string) (Report, error) {
	logger := contextutil.GetLogger(ctx, s.logger).With(
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("department", departmentName),
	)

	report := Report{
		ID:         uuid.NewString(),
		Department: departmentName,
		StartedAt:  s.now().UTC(),
	}
	logger.Debug("benchmark run started", zap.String("run_id", report.ID))

	for _, st := range s.steps() {
		start := s.now()
		rows, err := st.find(ctx, departmentName)
		elapsed := s.now().Sub(start)
		if err != nil {
			RunsTotal.WithLabelValues("failed").Inc()
			logger.Error("benchmark variant failed",
				zap.String("variant", string(st.variant)),
				zap.Duration("elapsed", elapsed),
				zap.Error(err),
			)
			return Report{}, fmt.Errorf("%s: %w", st.variant, err)
		}

		result := Result{
			Variant: st.variant,
			Count:   len(rows),
			Elapsed: elapsed,
			Rows:    rows,
		}
		if len(rows) > 0 {
			result.FirstName = rows[0].FirstName
		}

		QueryDuration.WithLabelValues(string(st.variant)).Observe(elapsed.Seconds())
		QueryRows.WithLabelValues(string(st.variant), departmentName).Set(float64(result.Count))
		logger.Info("benchmark variant finished",
			zap.String("variant", string(st.variant)),
			zap.Int("rows", result.Count),
			zap.Duration("elapsed", elapsed),
		)

		if s.reporter != nil {
			s.reporter.VariantFinished(result)
		}
		report.Results = append(report.Results, result)
	}

	report.Divergences = detectDivergences(report.Results)
	for _, d := range report.Divergences {
		DivergencesTotal.WithLabelValues(string(d.Variant)).Inc()
		logger.Warn("benchmark variant row count diverged",
			zap.String("variant", string(d.Variant)),
			zap.Int("rows", d.Count),
			zap.Int("naive_rows", d.Expected),
			zap.String("note", d.Note()),
		)
	}

	if s.reporter != nil {
		s.reporter.RunFinished(report)
	}

	if s.history != nil {
		if err := s.history.Save(ctx, report); err != nil {
			logger.Error("save benchmark history failed",
				zap.String("run_id", report.ID),
				zap.Error(err),
			)
		}
	}

	if err := s.publisher.PublishBenchmarkCompleted(ctx, report); err != nil {
		logger.Error("publish benchmark completed failed",
			zap.String("run_id", report.ID),
			zap.Error(err),
		)
	}

	RunsTotal.WithLabelValues("ok").Inc()
	return report, nil
}

func (s *service) History(ctx context.Context, departmentName string, limit int) ([]Report, error) {
	if strings.TrimSpace(departmentName) == "" {
		return nil, benchmarkerrors.ErrDepartmentNameRequired
	}
	if s.history == nil {
		return nil, benchmarkerrors.ErrHistoryDisabled
	}

	reports, err := s.history.List(ctx, departmentName, limit)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("list benchmark history failed",
			zap.String("department", departmentName),
			zap.Error(err),
		)
		return nil, err
	}
	return reports, nil
}
