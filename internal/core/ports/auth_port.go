package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/sm8ta/webike_rental_admin_nikita/internal/core/domain"
)

type TokenService interface {
	IssueToken(payload *domain.TokenPayload) (string, error)
	VerifyToken(token string) (*domain.TokenPayload, error)
}

// AuthBackend is the externally owned login collaborator.
type AuthBackend interface {
	Login(ctx context.Context, credentials domain.Credentials) (string, *domain.UserProfile, error)
}

type SessionStore interface {
	Save(ctx context.Context, session *domain.Session) error
	Get(ctx context.Context, sessionID uuid.UUID) (*domain.Session, error)
	Delete(ctx context.Context, sessionID uuid.UUID) error
}
