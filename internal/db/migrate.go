package db

import (
	"tododesk/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// Migrate ensures the users and todos tables exist. Idempotent: running it
// against an already migrated database changes nothing.
func Migrate(gdb *gorm.DB) error {
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	return gdb.AutoMigrate(&domain.User{}, &domain.Todo{})
}
