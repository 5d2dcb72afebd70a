package redis

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/ikkim/creme-backend/config"
	"github.com/ikkim/creme-backend/pkg/logger"
	"github.com/redis/go-redis/v9"
)

const dialCheckTimeout = 5 * time.Second

var client *redis.Client

// Init connects to Redis when a host is configured. Without one it leaves
// GetClient nil and callers fall back to in-process state.
func Init(cfg *config.RedisConfig) error {
	if !cfg.Configured() {
		logger.Info("Redis not configured, skipping", nil)
		return nil
	}

	addr := net.JoinHostPort(cfg.Host, cfg.Port)
	c := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), dialCheckTimeout)
	defer cancel()

	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return fmt.Errorf("redis ping %s: %w", addr, err)
	}

	client = c
	logger.Info("Redis connected", logger.Fields{
		"addr": addr,
		"db":   cfg.DB,
	})
	return nil
}

// GetClient returns the shared client, nil when unconfigured.
func GetClient() *redis.Client {
	return client
}

func Close() error {
	if client == nil {
		return nil
	}
	err := client.Close()
	client = nil
	return err
}
