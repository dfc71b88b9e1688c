package owner

import "gorm.io/gorm"

// Scope restricts a query to records owned by one user (the accountant
// account). Every business table carries an id_user column.
func Scope(userID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("id_user = ?", userID)
	}
}
