package db

import (
	"gorm.io/gorm"
)

// OwnedBy restricts a query to rows whose column equals *userID. A nil
// userID leaves the query unrestricted.
//
//	tx.Scopes(db.OwnedBy("t.requester_user_id", scope.RequesterUserID)).Find(&rows)
func OwnedBy(column string, userID *uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if userID == nil {
			return db
		}
		return db.Where(column+" = ?", *userID)
	}
}

// Newest orders by column DESC with id as a stable tie-break.
func Newest(column, idColumn string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(column + " DESC").Order(idColumn + " DESC")
	}
}

// Oldest orders by column ASC with id as a stable tie-break.
func Oldest(column, idColumn string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(column + " ASC").Order(idColumn + " ASC")
	}
}
