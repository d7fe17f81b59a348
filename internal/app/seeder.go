package app

import (
	"context"

	"salary-bench/internal/salary"
)

// RunSeeder inserts the demo departments, employees and salaries.
func RunSeeder(ctx context.Context, cfg Config) error {
	infra, err := connect(ctx, cfg, false)
	if err != nil {
		return err
	}
	defer infra.Close()

	_, err = salary.Seed(ctx, infra.gormDB, salary.SeedOptions{
		Employees:   cfg.Seed.Employees,
		MonthsOfPay: cfg.Seed.MonthsOfPay,
	})
	return err
}
