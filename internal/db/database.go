package db

import (
	"context"
	"fmt"
	"time"

	"github.com/ikkim/creme-backend/config"
	appLogger "github.com/ikkim/creme-backend/pkg/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	slowQueryThreshold = 200 * time.Millisecond
	pingTimeout        = 5 * time.Second
	maxIdleConns       = 5
	maxOpenConns       = 25
)

// DB stays nil when no remote store is configured. Callers treat a nil handle
// as "serve the fallback menu".
var DB *gorm.DB

// Initialize opens the remote menu store when one is configured. A store
// that is configured but unreachable is not an error: the handle is kept,
// reads fall back through the gateway until the store answers, and writes
// surface the connection error.
func Initialize(cfg *config.DatabaseConfig) error {
	if !cfg.Configured() {
		appLogger.Warn("No menu store configured, serving fallback data", nil)
		DB = nil
		return nil
	}

	appLogger.Info("Connecting to database", map[string]interface{}{
		"host":     cfg.Host,
		"port":     cfg.Port,
		"database": cfg.DBName,
		"from_url": cfg.URL != "",
	})

	gdb, err := Open(cfg)
	if err != nil {
		DB = nil
		return err
	}
	DB = gdb

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := Ping(ctx, gdb); err != nil {
		appLogger.Warn("Menu store unreachable, serving fallback data until it answers", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}

	appLogger.Info("Database connection established successfully", map[string]interface{}{
		"max_idle_conns": maxIdleConns,
		"max_open_conns": maxOpenConns,
	})
	return nil
}

// Open builds a pool for cfg without connecting. It only fails on a
// malformed DSN.
func Open(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn, err := cfg.DSN()
	if err != nil {
		return nil, err
	}

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:               appLogger.NewGormLogger(appLogger.Get(), slowQueryThreshold),
		DisableAutomaticPing: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetMaxOpenConns(maxOpenConns)
	return gdb, nil
}

// Ping checks that the store answers.
func Ping(ctx context.Context, gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close closes the database connection
func Close() error {
	if DB == nil {
		return nil
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// GetDB returns the database instance, nil when unconfigured.
func GetDB() *gorm.DB {
	return DB
}
