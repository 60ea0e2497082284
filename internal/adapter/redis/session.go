package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/sm8ta/webike_rental_admin_nikita/internal/core/domain"
)

const sessionPrefix = "adminSession:"

// SessionStore keeps the admin session (backend bearer token, user
// identity, login timestamp) in Redis with a TTL matching the gateway
// token lifetime.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{
		client: client,
		ttl:    ttl,
	}
}

func (s *SessionStore) Save(ctx context.Context, session *domain.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	return s.client.Set(ctx, sessionPrefix+session.SessionID.String(), data, s.ttl).Err()
}

func (s *SessionStore) Get(ctx context.Context, sessionID uuid.UUID) (*domain.Session, error) {
	data, err := s.client.Get(ctx, sessionPrefix+sessionID.String()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.NewBackendError(domain.ErrKindAuth, 0, "session expired")
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

func (s *SessionStore) Delete(ctx context.Context, sessionID uuid.UUID) error {
	return s.client.Del(ctx, sessionPrefix+sessionID.String()).Err()
}
