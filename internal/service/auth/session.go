package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jobra/portal_backend/config"
	"github.com/jobra/portal_backend/internal/catalog"
)

// SessionStore persists the mapping from an opaque session token to the
// logged-in principal. The Redis implementation is used in production; tests
// substitute an in-memory fake.
type SessionStore interface {
	Save(ctx context.Context, token string, u catalog.User, ttl time.Duration) error
	// Load returns ErrSessionNotFound when the token is unknown or expired.
	Load(ctx context.Context, token string) (catalog.User, error)
	Delete(ctx context.Context, token string) error
}

type redisSessionStore struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisSessionStore returns a SessionStore backed by the given Redis
// client. Records are stored under "<prefix><token>" as the JSON encoding of
// the sanitized user.
func NewRedisSessionStore(rdb *redis.Client, cfg *config.Config) SessionStore {
	return &redisSessionStore{
		rdb:    rdb,
		prefix: cfg.Session.Prefix(),
	}
}

func (s *redisSessionStore) key(token string) string { return s.prefix + token }

func (s *redisSessionStore) Save(ctx context.Context, token string, u catalog.User, ttl time.Duration) error {
	payload, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("marshal session user: %w", err)
	}
	if err := s.rdb.Set(ctx, s.key(token), payload, ttl).Err(); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

func (s *redisSessionStore) Load(ctx context.Context, token string) (catalog.User, error) {
	raw, err := s.rdb.Get(ctx, s.key(token)).Bytes()
	if err == redis.Nil {
		return catalog.User{}, ErrSessionNotFound
	}
	if err != nil {
		return catalog.User{}, fmt.Errorf("get session: %w", err)
	}
	var u catalog.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return catalog.User{}, fmt.Errorf("decode session user: %w", err)
	}
	return u, nil
}

func (s *redisSessionStore) Delete(ctx context.Context, token string) error {
	if err := s.rdb.Del(ctx, s.key(token)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
