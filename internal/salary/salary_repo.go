package salary

import (
	"context"
	"database/sql"
	"fmt"

	salaryerrors "salary-bench/internal/salary/errors"

	"gorm.io/gorm"
)

// LatestSalariesProcedure is the server side function backing
// FindLatestByProcedure. It takes the department name and returns
// (id, first_name, last_name, department, amount, pay_date).
const LatestSalariesProcedure = "get_latest_salaries_by_department"

const procedureColumns = 6

//go:generate mockgen -source=salary_repo.go -destination=mock/salary_repo_mock.go -package=mock
type Repository interface {
	FindLatestNaive(ctx context.Context, departmentName string) ([]LatestSalary, error)
	FindLatestJoined(ctx context.Context, departmentName string) ([]LatestSalary, error)
	FindLatestByProcedure(ctx context.Context, departmentName string) ([]LatestSalary, error)
}

type repository struct {
	db    *gorm.DB
	sqlDB *sql.DB
}

func NewRepository(db *gorm.DB, sqlDB *sql.DB) Repository {
	return &repository{db: db, sqlDB: sqlDB}
}

// FindLatestNaive loads the department's employees with every salary row
// they have and picks the latest one in process.
func (r *repository) FindLatestNaive(ctx context.Context, departmentName string) ([]LatestSalary, error) {
	var employees []Employee
	err := r.db.WithContext(ctx).
		Joins("Department").
		Scopes(departmentNamed(`"Department"."name"`, departmentName)).
		Preload("Salaries").
		Order("employees.first_name ASC").
		Find(&employees).Error
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	result := make([]LatestSalary, 0, len(employees))
	for _, e := range employees {
		result = append(result, toLatestSalary(e))
	}
	return result, nil
}

// FindLatestJoined lets the database compute MAX(pay_date) per employee and
// joins it back onto salaries. Employees without salary rows fall out of the
// inner join, and tied pay dates produce one row per tied salary.
func (r *repository) FindLatestJoined(ctx context.Context, departmentName string) ([]LatestSalary, error) {
	latest := r.db.
		Model(&Salary{}).
		Select("employee_id, MAX(pay_date) AS latest_pay_date").
		Group("employee_id")

	var result []LatestSalary
	err := r.db.WithContext(ctx).
		Table("employees AS e").
		Select("e.id AS employee_id, e.first_name, e.last_name, d.name AS department, s.amount, s.pay_date").
		Joins("JOIN departments AS d ON d.id = e.department_id").
		Joins("JOIN salaries AS s ON s.employee_id = e.id").
		Joins("JOIN (?) AS latest ON latest.employee_id = s.employee_id AND latest.latest_pay_date = s.pay_date", latest).
		Scopes(departmentNamed("d.name", departmentName)).
		Order("e.first_name ASC").
		Scan(&result).Error
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	if result == nil {
		result = []LatestSalary{}
	}
	return result, nil
}

// FindLatestByProcedure calls LatestSalariesProcedure on a dedicated
// connection that is returned to the pool before this method returns.
func (r *repository) FindLatestByProcedure(ctx context.Context, departmentName string) ([]LatestSalary, error) {
	conn, err := r.sqlDB.Conn(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	defer conn.Close()

	query := fmt.Sprintf("SELECT * FROM %s($1)", LatestSalariesProcedure)
	rows, err := conn.QueryContext(ctx, query, departmentName)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	if len(columns) != procedureColumns {
		return nil, fmt.Errorf("%w: got %d columns, want %d",
			salaryerrors.ErrMalformedResult, len(columns), procedureColumns)
	}

	result := make([]LatestSalary, 0)
	for rows.Next() {
		var row LatestSalary
		if err := rows.Scan(
			&row.EmployeeID,
			&row.FirstName,
			&row.LastName,
			&row.Department,
			&row.Amount,
			&row.PayDate,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", salaryerrors.ErrMalformedResult, err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, mapRepositoryError(err)
	}

	return result, nil
}
