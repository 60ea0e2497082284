package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sm8ta/webike_rental_admin_nikita/internal/adapter/backend"
	"github.com/sm8ta/webike_rental_admin_nikita/internal/core/ports"
	"github.com/sm8ta/webike_rental_admin_nikita/internal/core/services"
)

// AuthMiddleware verifies the gateway token, loads the stored session and
// plants the backend bearer token into the request context, so every
// repository call downstream authenticates against the rental backend
// without the handlers touching credentials.
func AuthMiddleware(tokens ports.TokenService, auth *services.AuthService, logger ports.LoggerPort) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			logger.Warn("Missing bearer token", map[string]interface{}{
				"ip":   c.ClientIP(),
				"path": c.FullPath(),
			})
			newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		payload, err := tokens.VerifyToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			logger.Warn("Invalid gateway token", map[string]interface{}{
				"error": err.Error(),
				"ip":    c.ClientIP(),
			})
			newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		session, err := auth.Session(c.Request.Context(), payload.SessionID)
		if err != nil {
			logger.Warn("Session lookup failed", map[string]interface{}{
				"session_id": payload.SessionID.String(),
				"error":      err.Error(),
			})
			newErrorResponse(c, http.StatusUnauthorized, "Session expired")
			return
		}

		c.Set(authPayloadKey, payload)
		c.Set(sessionKey, session)
		c.Set(sessionInvalidateKey, func() {
			auth.Invalidate(context.Background(), payload.SessionID)
		})

		c.Request = c.Request.WithContext(backend.WithToken(c.Request.Context(), session.BackendToken))
		c.Next()
	}
}
