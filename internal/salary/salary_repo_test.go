package salary_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"salary-bench/internal/salary"
	salaryerrors "salary-bench/internal/salary/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	naiveEmployeesQuery = `SELECT .* FROM "employees" LEFT JOIN "departments" "Department" ON .* WHERE "Department"."name" = \$1 ORDER BY employees.first_name ASC`
	naiveSalariesQuery  = `SELECT \* FROM "salaries" WHERE "salaries"."employee_id" IN`
	joinedQuery         = `FROM employees AS e JOIN departments AS d .* JOIN salaries AS s .* JOIN \(SELECT employee_id, MAX\(pay_date\) AS latest_pay_date FROM "salaries" GROUP BY .*\) AS latest ON .* WHERE d.name = \$1 ORDER BY e.first_name ASC`
	procedureQuery      = `SELECT \* FROM get_latest_salaries_by_department\(\$1\)`
)

var (
	jan2022 = time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	jan2023 = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
)

func setupRepoTest(t *testing.T) (salary.Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return salary.NewRepository(gormDB, db), mock
}

func employeeRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "first_name", "last_name", "department_id", "Department__id", "Department__name",
	})
}

func latestRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"employee_id", "first_name", "last_name", "department", "amount", "pay_date",
	})
}

func TestRepository_FindLatestNaive(t *testing.T) {
	ctx := context.Background()

	t.Run("picks latest salary in process and keeps employees without salaries", func(t *testing.T) {
		repo, mock := setupRepoTest(t)

		mock.ExpectQuery(naiveEmployeesQuery).
			WithArgs("Finance").
			WillReturnRows(employeeRows().
				AddRow(1, "Alice", "Smith", 10, 10, "Finance").
				AddRow(2, "Bob", "Jones", 10, 10, "Finance"))
		mock.ExpectQuery(naiveSalariesQuery).
			WillReturnRows(sqlmock.NewRows([]string{"id", "employee_id", "amount", "pay_date"}).
				AddRow(100, 1, "5500.00", jan2023).
				AddRow(101, 1, "5000.00", jan2022))

		rows, err := repo.FindLatestNaive(ctx, "Finance")

		require.NoError(t, err)
		require.Len(t, rows, 2)

		assert.Equal(t, "Alice", rows[0].FirstName)
		assert.Equal(t, "Finance", rows[0].Department)
		assert.True(t, rows[0].HasSalary())
		assert.True(t, decimal.RequireFromString("5500.00").Equal(rows[0].Amount.Decimal))
		assert.True(t, jan2023.Equal(rows[0].PayDate.Time))

		assert.Equal(t, "Bob", rows[1].FirstName)
		assert.False(t, rows[1].HasSalary())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown department returns empty result", func(t *testing.T) {
		repo, mock := setupRepoTest(t)

		mock.ExpectQuery(naiveEmployeesQuery).
			WithArgs("Nonexistent").
			WillReturnRows(employeeRows())

		rows, err := repo.FindLatestNaive(ctx, "Nonexistent")

		assert.NoError(t, err)
		assert.Empty(t, rows)
		assert.NotNil(t, rows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("connection failure is classified", func(t *testing.T) {
		repo, mock := setupRepoTest(t)

		mock.ExpectQuery(naiveEmployeesQuery).
			WithArgs("Finance").
			WillReturnError(&pgconn.PgError{Code: "08006", Message: "connection failure"})

		_, err := repo.FindLatestNaive(ctx, "Finance")

		assert.ErrorIs(t, err, salaryerrors.ErrDatabaseUnavailable)
	})
}

func TestRepository_FindLatestJoined(t *testing.T) {
	ctx := context.Background()

	t.Run("returns one row per salaried employee", func(t *testing.T) {
		repo, mock := setupRepoTest(t)

		mock.ExpectQuery(joinedQuery).
			WithArgs("Finance").
			WillReturnRows(latestRows().
				AddRow(1, "Alice", "Smith", "Finance", "5500.00", jan2023))

		rows, err := repo.FindLatestJoined(ctx, "Finance")

		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, 1, rows[0].EmployeeID)
		assert.Equal(t, "Smith", rows[0].LastName)
		assert.True(t, decimal.RequireFromString("5500").Equal(rows[0].Amount.Decimal))
		assert.True(t, jan2023.Equal(rows[0].PayDate.Time))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown department returns empty result", func(t *testing.T) {
		repo, mock := setupRepoTest(t)

		mock.ExpectQuery(joinedQuery).
			WithArgs("Nonexistent").
			WillReturnRows(latestRows())

		rows, err := repo.FindLatestJoined(ctx, "Nonexistent")

		assert.NoError(t, err)
		assert.NotNil(t, rows)
		assert.Empty(t, rows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("syntax error is classified", func(t *testing.T) {
		repo, mock := setupRepoTest(t)

		mock.ExpectQuery(joinedQuery).
			WithArgs("Finance").
			WillReturnError(&pgconn.PgError{Code: "42P01", Message: `relation "salaries" does not exist`})

		_, err := repo.FindLatestJoined(ctx, "Finance")

		assert.ErrorIs(t, err, salaryerrors.ErrMalformedQuery)

		var pgErr *pgconn.PgError
		assert.ErrorAs(t, err, &pgErr)
	})
}

func TestRepository_FindLatestByProcedure(t *testing.T) {
	ctx := context.Background()

	t.Run("maps columns by position", func(t *testing.T) {
		repo, mock := setupRepoTest(t)

		mock.ExpectQuery(procedureQuery).
			WithArgs("Finance").
			WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name", "department", "amount", "pay_date"}).
				AddRow(1, "Alice", "Smith", "Finance", "5500.00", jan2023).
				AddRow(2, "Bob", "Jones", "Finance", nil, nil))

		rows, err := repo.FindLatestByProcedure(ctx, "Finance")

		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, 1, rows[0].EmployeeID)
		assert.Equal(t, "Alice", rows[0].FirstName)
		assert.Equal(t, "Smith", rows[0].LastName)
		assert.Equal(t, "Finance", rows[0].Department)
		assert.True(t, decimal.RequireFromString("5500.00").Equal(rows[0].Amount.Decimal))
		assert.True(t, jan2023.Equal(rows[0].PayDate.Time))
		assert.False(t, rows[1].HasSalary())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown department returns empty result", func(t *testing.T) {
		repo, mock := setupRepoTest(t)

		mock.ExpectQuery(procedureQuery).
			WithArgs("Nonexistent").
			WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name", "department", "amount", "pay_date"}))

		rows, err := repo.FindLatestByProcedure(ctx, "Nonexistent")

		assert.NoError(t, err)
		assert.NotNil(t, rows)
		assert.Empty(t, rows)
	})

	t.Run("wrong column count", func(t *testing.T) {
		repo, mock := setupRepoTest(t)

		mock.ExpectQuery(procedureQuery).
			WithArgs("Finance").
			WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "amount"}).
				AddRow(1, "Alice", "5500.00"))

		_, err := repo.FindLatestByProcedure(ctx, "Finance")

		assert.ErrorIs(t, err, salaryerrors.ErrMalformedResult)
	})

	t.Run("unscannable column", func(t *testing.T) {
		repo, mock := setupRepoTest(t)

		mock.ExpectQuery(procedureQuery).
			WithArgs("Finance").
			WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name", "department", "amount", "pay_date"}).
				AddRow("not-a-number", "Alice", "Smith", "Finance", "5500.00", jan2023))

		_, err := repo.FindLatestByProcedure(ctx, "Finance")

		assert.ErrorIs(t, err, salaryerrors.ErrMalformedResult)
	})

	t.Run("missing procedure", func(t *testing.T) {
		repo, mock := setupRepoTest(t)

		mock.ExpectQuery(procedureQuery).
			WithArgs("Finance").
			WillReturnError(&pgconn.PgError{Code: "42883", Message: "function get_latest_salaries_by_department(unknown) does not exist"})

		_, err := repo.FindLatestByProcedure(ctx, "Finance")

		assert.ErrorIs(t, err, salaryerrors.ErrProcedureNotFound)
		assert.False(t, errors.Is(err, salaryerrors.ErrMalformedQuery))
	})
}
