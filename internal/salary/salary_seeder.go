package salary

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SeedOptions struct {
	// Employees is the number of generated employees, spread round robin
	// over the seeded departments.
	Employees int
	// MonthsOfPay is the number of monthly salary rows per generated employee.
	MonthsOfPay int
	BatchSize   int
}

type SeedStats struct {
	Departments int
	Employees   int
	Salaries    int
}

type seedData struct {
	departments []Department
	employees   []Employee
	salaries    []Salary
}

var (
	seedDepartments = []string{"Finance", "IT", "HR"}
	seedFirstNames  = []string{"Bella", "Chris", "Dana", "Evan", "Fiona", "George", "Hana", "Ivan", "Julia", "Kenji"}
	seedLastNames   = []string{"Tan", "Putra", "Wijaya", "Santoso", "Lim", "Halim", "Gunawan", "Salim"}
	seedPayStart    = time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
)

// buildSeedData is deterministic. Every department gets one employee with
// no salary rows, and Finance always holds Alice with pay on 2022-01-01
// (5000.00) and 2023-01-01 (5500.00).
func buildSeedData(opts SeedOptions) seedData {
	var data seedData

	for i, name := range seedDepartments {
		data.departments = append(data.departments, Department{ID: i + 1, Name: name})
	}

	nextEmployeeID := 1
	var nextSalaryID int64 = 1
	addEmployee := func(first, last string, departmentID int) int {
		id := nextEmployeeID
		nextEmployeeID++
		data.employees = append(data.employees, Employee{
			ID:           id,
			FirstName:    first,
			LastName:     last,
			DepartmentID: departmentID,
		})
		return id
	}
	addSalary := func(employeeID int, amount decimal.Decimal, payDate time.Time) {
		data.salaries = append(data.salaries, Salary{
			ID:         nextSalaryID,
			EmployeeID: employeeID,
			Amount:     amount,
			PayDate:    payDate,
		})
		nextSalaryID++
	}

	alice := addEmployee("Alice", "Smith", 1)
	addSalary(alice, decimal.RequireFromString("5000.00"), time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC))
	addSalary(alice, decimal.RequireFromString("5500.00"), time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC))

	for _, d := range data.departments {
		addEmployee("Zed", fmt.Sprintf("Unpaid%d", d.ID), d.ID)
	}

	for i := 0; i < opts.Employees; i++ {
		first := seedFirstNames[i%len(seedFirstNames)]
		last := fmt.Sprintf("%s%d", seedLastNames[i%len(seedLastNames)], i)
		departmentID := data.departments[i%len(data.departments)].ID
		id := addEmployee(first, last, departmentID)

		base := decimal.NewFromInt(int64(3000 + (i%20)*250))
		for m := 0; m < opts.MonthsOfPay; m++ {
			raise := decimal.NewFromInt(int64(m / 12 * 150))
			addSalary(id, base.Add(raise), seedPayStart.AddDate(0, m, 0))
		}
	}

	return data
}

// Seed inserts demo rows. Rows whose primary key already exists are left
// alone, so running it twice is harmless.
func Seed(ctx context.Context, db *gorm.DB, opts SeedOptions) (SeedStats, error) {
	logger := zap.L().Named("salary.seeder")
	if opts.BatchSize <= 0 {
		opts.BatchSize = 500
	}

	data := buildSeedData(opts)
	tx := db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Session(&gorm.Session{})

	if err := tx.CreateInBatches(data.departments, opts.BatchSize).Error; err != nil {
		return SeedStats{}, fmt.Errorf("seed departments: %w", mapRepositoryError(err))
	}
	if err := tx.CreateInBatches(data.employees, opts.BatchSize).Error; err != nil {
		return SeedStats{}, fmt.Errorf("seed employees: %w", mapRepositoryError(err))
	}
	if len(data.salaries) > 0 {
		if err := tx.CreateInBatches(data.salaries, opts.BatchSize).Error; err != nil {
			return SeedStats{}, fmt.Errorf("seed salaries: %w", mapRepositoryError(err))
		}
	}

	stats := SeedStats{
		Departments: len(data.departments),
		Employees:   len(data.employees),
		Salaries:    len(data.salaries),
	}
	logger.Info("seed finished",
		zap.Int("departments", stats.Departments),
		zap.Int("employees", stats.Employees),
		zap.Int("salaries", stats.Salaries),
	)
	return stats, nil
}
