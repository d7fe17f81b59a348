package salary

import "gorm.io/gorm"

// departmentNamed filters on a department name column, which differs per
// query depending on how the departments table is aliased.
func departmentNamed(column, name string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", name)
	}
}
