package backend

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sm8ta/webike_rental_admin_nikita/internal/core/domain"
	"github.com/sm8ta/webike_rental_admin_nikita/internal/core/ports"
)

type AuthClient struct {
	client *Client
	logger ports.LoggerPort
}

func NewAuthClient(client *Client, logger ports.LoggerPort) *AuthClient {
	return &AuthClient{
		client: client,
		logger: logger,
	}
}

// Login exchanges admin credentials for a backend bearer token and the
// user profile.
func (a *AuthClient) Login(ctx context.Context, credentials domain.Credentials) (string, *domain.UserProfile, error) {
	env, err := a.client.send(ctx, http.MethodPost, "/auth/login", credentials)
	if err != nil {
		a.logger.Warn("Backend login failed", map[string]interface{}{
			"email": credentials.Email,
			"error": err.Error(),
		})
		return "", nil, err
	}

	var payload struct {
		Token string             `json:"token"`
		User  domain.UserProfile `json:"user"`
	}
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		return "", nil, domain.NewBackendError(domain.ErrKindServer, 0, "decode login response")
	}
	if payload.Token == "" {
		return "", nil, domain.NewBackendError(domain.ErrKindAuth, 0, "login response without token")
	}

	return payload.Token, &payload.User, nil
}
