package benchmark

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

const (
	historyKeyPrefix    = "salarybench:history:"
	DefaultHistoryLimit = 10
)

type HistoryRepository interface {
	Save(ctx context.Context, report Report) error
	List(ctx context.Context, departmentName string, limit int) ([]Report, error)
}

type historyRepository struct {
	rdb  *redis.Client
	keep int64
}

// NewHistoryRepository keeps at most keep reports per department, newest
// first.
func NewHistoryRepository(rdb *redis.Client, keep int) HistoryRepository {
	if keep <= 0 {
		keep = 50
	}
	return &historyRepository{rdb: rdb, keep: int64(keep)}
}

func HistoryKey(departmentName string) string {
	return historyKeyPrefix + strings.ToLower(strings.TrimSpace(departmentName))
}

func (r *historyRepository) Save(ctx context.Context, report Report) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	key := HistoryKey(report.Department)
	if err := r.rdb.LPush(ctx, key, string(payload)).Err(); err != nil {
		return fmt.Errorf("push report: %w", err)
	}
	if err := r.rdb.LTrim(ctx, key, 0, r.keep-1).Err(); err != nil {
		return fmt.Errorf("trim history: %w", err)
	}
	return nil
}

func (r *historyRepository) List(ctx context.Context, departmentName string, limit int) ([]Report, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if int64(limit) > r.keep {
		limit = int(r.keep)
	}

	raw, err := r.rdb.LRange(ctx, HistoryKey(departmentName), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}

	reports := make([]Report, 0, len(raw))
	for _, item := range raw {
		var report Report
		if err := json.Unmarshal([]byte(item), &report); err != nil {
			return nil, fmt.Errorf("decode report: %w", err)
		}
		reports = append(reports, report)
	}
	return reports, nil
}
