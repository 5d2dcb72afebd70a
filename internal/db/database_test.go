package db

import (
	"context"
	"testing"

	"github.com/ikkim/creme-backend/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Nothing listens on port 1, so every connection attempt is refused.
func unreachableConfig() *config.DatabaseConfig {
	return &config.DatabaseConfig{
		Host:     "127.0.0.1",
		Port:     "1",
		User:     "creme",
		Password: "creme",
		DBName:   "creme",
		SSLMode:  "disable",
	}
}

func TestInitialize_Unconfigured(t *testing.T) {
	t.Cleanup(func() { DB = nil })

	require.NoError(t, Initialize(&config.DatabaseConfig{}))
	assert.Nil(t, GetDB())
	assert.NoError(t, Migrate())
	assert.NoError(t, Seed())
	assert.NoError(t, Close())
}

func TestInitialize_UnreachableStoreKeepsHandle(t *testing.T) {
	t.Cleanup(func() {
		_ = Close()
		DB = nil
	})

	require.NoError(t, Initialize(unreachableConfig()))
	require.NotNil(t, GetDB(), "the pool is kept so the store can come back")

	assert.Error(t, Ping(context.Background(), GetDB()))
	assert.Error(t, Migrate(), "migrations need a live store and report it")
}

func TestOpen_DoesNotConnect(t *testing.T) {
	gdb, err := Open(unreachableConfig())
	require.NoError(t, err)
	defer CleanupTestDB(gdb)

	assert.Error(t, Ping(context.Background(), gdb))
}

func TestOpen_RejectsMalformedURL(t *testing.T) {
	_, err := Open(&config.DatabaseConfig{URL: "postgres://%zz"})
	assert.Error(t, err)
}
