package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sm8ta/webike_rental_admin_nikita/internal/core/domain"
	"github.com/sm8ta/webike_rental_admin_nikita/internal/core/ports"
)

type AuthService struct {
	backend  ports.AuthBackend
	sessions ports.SessionStore
	tokens   ports.TokenService
	logger   ports.LoggerPort
}

func NewAuthService(
	backend ports.AuthBackend,
	sessions ports.SessionStore,
	tokens ports.TokenService,
	logger ports.LoggerPort,
) *AuthService {
	return &AuthService{
		backend:  backend,
		sessions: sessions,
		tokens:   tokens,
		logger:   logger,
	}
}

// Login exchanges credentials with the auth collaborator, persists the
// session and issues the gateway token the SPA stores.
func (s *AuthService) Login(ctx context.Context, credentials domain.Credentials) (string, *domain.Session, error) {
	if strings.TrimSpace(credentials.Email) == "" || credentials.Password == "" {
		return "", nil, domain.NewBackendError(domain.ErrKindValidation, 0, "email and password are required")
	}

	backendToken, profile, err := s.backend.Login(ctx, credentials)
	if err != nil {
		return "", nil, err
	}

	if profile.Role != domain.Admin && profile.Role != domain.Staff {
		s.logger.Warn("Login rejected for non-admin account", map[string]interface{}{
			"user_id": profile.UserID.String(),
			"role":    string(profile.Role),
		})
		return "", nil, domain.NewBackendError(domain.ErrKindForbidden, 0, "account has no admin access")
	}

	session := &domain.Session{
		SessionID:    uuid.New(),
		UserID:       profile.UserID,
		UserName:     profile.Name,
		Role:         profile.Role,
		BackendToken: backendToken,
		LoggedInAt:   time.Now(),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		s.logger.Error("Failed to save session", map[string]interface{}{
			"user_id": profile.UserID.String(),
			"error":   err.Error(),
		})
		return "", nil, err
	}

	gatewayToken, err := s.tokens.IssueToken(&domain.TokenPayload{
		ID:        uuid.New(),
		SessionID: session.SessionID,
		UserID:    profile.UserID,
		Role:      profile.Role,
	})
	if err != nil {
		s.logger.Error("Failed to issue gateway token", map[string]interface{}{
			"user_id": profile.UserID.String(),
			"error":   err.Error(),
		})
		return "", nil, err
	}

	s.logger.Info("Admin logged in", map[string]interface{}{
		"user_id": profile.UserID.String(),
		"role":    string(profile.Role),
	})
	return gatewayToken, session, nil
}

func (s *AuthService) Session(ctx context.Context, sessionID uuid.UUID) (*domain.Session, error) {
	return s.sessions.Get(ctx, sessionID)
}

// Logout clears the persisted session in full.
func (s *AuthService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		s.logger.Error("Failed to delete session", map[string]interface{}{
			"session_id": sessionID.String(),
			"error":      err.Error(),
		})
		return err
	}

	s.logger.Info("Admin logged out", map[string]interface{}{
		"session_id": sessionID.String(),
	})
	return nil
}

// Invalidate drops a session after the backend answered 401: the bearer
// token is dead, the SPA must re-authenticate.
func (s *AuthService) Invalidate(ctx context.Context, sessionID uuid.UUID) {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		s.logger.Warn("Failed to invalidate session", map[string]interface{}{
			"session_id": sessionID.String(),
			"error":      err.Error(),
		})
	}
}
