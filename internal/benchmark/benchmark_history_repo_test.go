package benchmark_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"salary-bench/internal/benchmark"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport(id string) benchmark.Report {
	return benchmark.Report{
		ID:         id,
		Department: "Finance",
		StartedAt:  time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC),
		Results: []benchmark.Result{
			{Variant: benchmark.VariantNaive, Count: 2, Elapsed: 12 * time.Millisecond, FirstName: "Alice"},
			{Variant: benchmark.VariantJoined, Count: 1, Elapsed: 4 * time.Millisecond, FirstName: "Alice"},
			{Variant: benchmark.VariantProcedure, Count: 2, Elapsed: 2 * time.Millisecond, FirstName: "Alice"},
		},
		Divergences: []benchmark.Divergence{
			{Variant: benchmark.VariantJoined, Count: 1, Expected: 2},
		},
	}
}

func TestHistoryKey(t *testing.T) {
	assert.Equal(t, "salarybench:history:finance", benchmark.HistoryKey(" Finance "))
}

func TestHistoryRepository_Save(t *testing.T) {
	ctx := context.Background()
	report := sampleReport("r1")
	payload, err := json.Marshal(report)
	require.NoError(t, err)

	t.Run("pushes and trims", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		repo := benchmark.NewHistoryRepository(rdb, 20)

		mock.ExpectLPush("salarybench:history:finance", string(payload)).SetVal(1)
		mock.ExpectLTrim("salarybench:history:finance", 0, 19).SetVal("OK")

		assert.NoError(t, repo.Save(ctx, report))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("push failure", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		repo := benchmark.NewHistoryRepository(rdb, 20)

		mock.ExpectLPush("salarybench:history:finance", string(payload)).SetErr(errors.New("READONLY"))

		err := repo.Save(ctx, report)

		assert.ErrorContains(t, err, "push report")
	})
}

func TestHistoryRepository_List(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes newest first", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		repo := benchmark.NewHistoryRepository(rdb, 50)

		newer, _ := json.Marshal(sampleReport("r2"))
		older, _ := json.Marshal(sampleReport("r1"))
		mock.ExpectLRange("salarybench:history:finance", 0, 4).SetVal([]string{string(newer), string(older)})

		reports, err := repo.List(ctx, "Finance", 5)

		require.NoError(t, err)
		require.Len(t, reports, 2)
		assert.Equal(t, "r2", reports[0].ID)
		assert.Equal(t, 12*time.Millisecond, reports[0].Results[0].Elapsed)
		assert.Equal(t, benchmark.VariantJoined, reports[0].Divergences[0].Variant)
		assert.Nil(t, reports[0].Results[0].Rows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("limit defaults and caps at keep", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		repo := benchmark.NewHistoryRepository(rdb, 3)

		mock.ExpectLRange("salarybench:history:finance", 0, 2).SetVal([]string{})

		reports, err := repo.List(ctx, "Finance", 0)

		require.NoError(t, err)
		assert.Empty(t, reports)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("corrupt entry", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		repo := benchmark.NewHistoryRepository(rdb, 50)

		mock.ExpectLRange("salarybench:history:finance", 0, 9).SetVal([]string{"{not json"})

		_, err := repo.List(ctx, "Finance", 0)

		assert.ErrorContains(t, err, "decode report")
	})
}
