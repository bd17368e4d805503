package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrNotFound = errors.New("session not found")

// Store issues and resolves bearer session tokens.
type Store interface {
	Create(ctx context.Context, username string) (string, error)
	Get(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}

// Redis keeps sessions in redis with a TTL, shared across restarts.
type Redis struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedis(addr string, ttl time.Duration) (*Redis, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return &Redis{rdb: rdb, ttl: ttl}, nil
}

func sessionKey(token string) string {
	return "session:" + token
}

func (r *Redis) Create(ctx context.Context, username string) (string, error) {
	token := uuid.NewString()
	if err := r.rdb.Set(ctx, sessionKey(token), username, r.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (r *Redis) Get(ctx context.Context, token string) (string, error) {
	username, err := r.rdb.Get(ctx, sessionKey(token)).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return username, nil
}

func (r *Redis) Delete(ctx context.Context, token string) error {
	return r.rdb.Del(ctx, sessionKey(token)).Err()
}

// Memory is the in-process fallback when no redis address is configured.
type Memory struct {
	sessions map[string]string
	mu       sync.RWMutex
}

func NewMemory() *Memory {
	return &Memory{sessions: make(map[string]string)}
}

func (m *Memory) Create(ctx context.Context, username string) (string, error) {
	token := uuid.NewString()
	m.mu.Lock()
	m.sessions[token] = username
	m.mu.Unlock()
	return token, nil
}

func (m *Memory) Get(ctx context.Context, token string) (string, error) {
	m.mu.RLock()
	username, ok := m.sessions[token]
	m.mu.RUnlock()
	if !ok {
		return "", ErrNotFound
	}
	return username, nil
}

func (m *Memory) Delete(ctx context.Context, token string) error {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
	return nil
}
