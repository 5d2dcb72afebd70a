package db

import (
	"fmt"

	appLogger "github.com/ikkim/creme-backend/pkg/logger"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens a migrated in-memory SQLite store. The pool is pinned to
// one connection because every new ":memory:" connection is a new database.
func SetupTestDB() (*gorm.DB, error) {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open test database: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("test database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := gdb.AutoMigrate(Models()...); err != nil {
		return nil, fmt.Errorf("migrate test database: %w", err)
	}
	return gdb, nil
}

func CleanupTestDB(gdb *gorm.DB) {
	sqlDB, err := gdb.DB()
	if err == nil {
		err = sqlDB.Close()
	}
	if err != nil {
		appLogger.Warn("Failed to close test database", appLogger.Fields{
			"error": err.Error(),
		})
	}
}
