package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "admin_session:abc", Key("abc"))
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	active, err := store.IsActive(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, active)

	require.NoError(t, store.Activate(ctx, "s1"))
	active, err = store.IsActive(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, active)

	active, err = store.IsActive(ctx, "s2")
	require.NoError(t, err)
	assert.False(t, active)

	require.NoError(t, store.Clear(ctx, "s1"))
	active, err = store.IsActive(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, active)

	// Clearing an unknown session is not an error.
	assert.NoError(t, store.Clear(ctx, "missing"))
}
