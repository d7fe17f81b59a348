package salary

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestLatestOf(t *testing.T) {
	t.Run("greatest pay date wins regardless of order", func(t *testing.T) {
		latest, ok := latestOf([]Salary{
			{ID: 1, PayDate: day(2023, 6, 1), Amount: decimal.NewFromInt(6000)},
			{ID: 2, PayDate: day(2023, 1, 1), Amount: decimal.NewFromInt(5000)},
		})

		assert.True(t, ok)
		assert.Equal(t, int64(1), latest.ID)
		assert.True(t, day(2023, 6, 1).Equal(latest.PayDate))
	})

	t.Run("tie resolves to highest id", func(t *testing.T) {
		latest, ok := latestOf([]Salary{
			{ID: 7, PayDate: day(2023, 6, 1)},
			{ID: 9, PayDate: day(2023, 6, 1)},
			{ID: 8, PayDate: day(2023, 6, 1)},
		})

		assert.True(t, ok)
		assert.Equal(t, int64(9), latest.ID)
	})

	t.Run("no salaries", func(t *testing.T) {
		_, ok := latestOf(nil)
		assert.False(t, ok)
	})
}

func TestToLatestSalary(t *testing.T) {
	alice := Employee{
		ID:         1,
		FirstName:  "Alice",
		LastName:   "Smith",
		Department: Department{ID: 10, Name: "Finance"},
		Salaries: []Salary{
			{ID: 1, EmployeeID: 1, Amount: decimal.RequireFromString("5000.00"), PayDate: day(2022, 1, 1)},
			{ID: 2, EmployeeID: 1, Amount: decimal.RequireFromString("5500.00"), PayDate: day(2023, 1, 1)},
		},
	}

	row := toLatestSalary(alice)

	assert.Equal(t, "Finance", row.Department)
	assert.True(t, row.HasSalary())
	assert.Equal(t, "5500", row.Amount.Decimal.String())
	assert.True(t, day(2023, 1, 1).Equal(row.PayDate.Time))

	alice.Salaries = nil
	assert.False(t, toLatestSalary(alice).HasSalary())
}
