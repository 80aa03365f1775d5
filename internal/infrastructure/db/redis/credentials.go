package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "admin_session:"

// CredentialStore maps gateway session IDs to bearer tokens.
// Key format: admin_session:<session_id>, expiring after the session TTL.
type CredentialStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCredentialStore creates a CredentialStore wrapping the given Redis
// client. Entries expire after ttl.
func NewCredentialStore(client *redis.Client, ttl time.Duration) *CredentialStore {
	return &CredentialStore{client: client, ttl: ttl}
}

// Bind associates a session with a bearer token, refreshing the TTL.
func (s *CredentialStore) Bind(ctx context.Context, sessionID, token string) error {
	if err := s.client.Set(ctx, s.key(sessionID), token, s.ttl).Err(); err != nil {
		return fmt.Errorf("session bind: %w", err)
	}
	return nil
}

// Token returns the bearer token bound to a session, if any.
func (s *CredentialStore) Token(ctx context.Context, sessionID string) (string, bool, error) {
	token, err := s.client.Get(ctx, s.key(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("session lookup: %w", err)
	}
	return token, true, nil
}

// Unbind removes a session's credential. Unbinding an unknown session is not
// an error.
func (s *CredentialStore) Unbind(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("session unbind: %w", err)
	}
	return nil
}

func (s *CredentialStore) key(sessionID string) string {
	return keyPrefix + sessionID
}
