package salary

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

type Department struct {
	ID        int    `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null;uniqueIndex"`
	Employees []Employee
}

type Employee struct {
	ID           int    `gorm:"primaryKey"`
	FirstName    string `gorm:"size:100;not null"`
	LastName     string `gorm:"size:100;not null"`
	DepartmentID int    `gorm:"not null;index"`
	Department   Department
	Salaries     []Salary
}

type Salary struct {
	ID         int64           `gorm:"primaryKey"`
	EmployeeID int             `gorm:"not null;index"`
	Amount     decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	PayDate    time.Time       `gorm:"not null"`
	Employee   *Employee
}

// LatestSalary is one employee with the salary row carrying the greatest pay
// date. Amount and PayDate are null when the employee has no salary rows.
type LatestSalary struct {
	EmployeeID int
	FirstName  string
	LastName   string
	Department string
	Amount     decimal.NullDecimal
	PayDate    sql.NullTime
}

func (l LatestSalary) HasSalary() bool {
	return l.Amount.Valid && l.PayDate.Valid
}

// latestOf picks the salary with the greatest pay date. Equal pay dates
// resolve to the highest id.
func latestOf(salaries []Salary) (Salary, bool) {
	var latest Salary
	found := false
	for _, s := range salaries {
		if !found ||
			s.PayDate.After(latest.PayDate) ||
			(s.PayDate.Equal(latest.PayDate) && s.ID > latest.ID) {
			latest = s
			found = true
		}
	}
	return latest, found
}

func toLatestSalary(e Employee) LatestSalary {
	row := LatestSalary{
		EmployeeID: e.ID,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		Department: e.Department.Name,
	}
	if s, ok := latestOf(e.Salaries); ok {
		row.Amount = decimal.NullDecimal{Decimal: s.Amount, Valid: true}
		row.PayDate = sql.NullTime{Time: s.PayDate, Valid: true}
	}
	return row
}
