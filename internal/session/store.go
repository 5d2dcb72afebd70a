package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix  = "admin_session:"
	flagActive = "true"
)

// Store persists the admin session flag per session id. Flags do not expire;
// they are cleared on logout.
type Store interface {
	Activate(ctx context.Context, sessionID string) error
	IsActive(ctx context.Context, sessionID string) (bool, error)
	Clear(ctx context.Context, sessionID string) error
}

func Key(sessionID string) string {
	return keyPrefix + sessionID
}

type redisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func (s *redisStore) Activate(ctx context.Context, sessionID string) error {
	if err := s.client.Set(ctx, Key(sessionID), flagActive, 0).Err(); err != nil {
		return fmt.Errorf("failed to store admin session: %w", err)
	}
	return nil
}

func (s *redisStore) IsActive(ctx context.Context, sessionID string) (bool, error) {
	val, err := s.client.Get(ctx, Key(sessionID)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read admin session: %w", err)
	}
	return val == flagActive, nil
}

func (s *redisStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, Key(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to clear admin session: %w", err)
	}
	return nil
}

type memoryStore struct {
	mu    sync.RWMutex
	flags map[string]string
}

// NewMemoryStore keeps flags in process memory. Sessions are lost on restart.
func NewMemoryStore() Store {
	return &memoryStore{flags: make(map[string]string)}
}

func (s *memoryStore) Activate(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags[Key(sessionID)] = flagActive
	return nil
}

func (s *memoryStore) IsActive(_ context.Context, sessionID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.flags[Key(sessionID)] == flagActive, nil
}

func (s *memoryStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.flags, Key(sessionID))
	return nil
}
