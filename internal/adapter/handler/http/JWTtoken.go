package http

import (
	"errors"
	"time"

	"github.com/sm8ta/webike_rental_admin_nikita/internal/core/domain"
	"github.com/sm8ta/webike_rental_admin_nikita/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type JWTTokenService struct {
	secretKey []byte
	ttl       time.Duration
	logger    ports.LoggerPort
}

func NewJWTTokenService(secretKey string, ttl time.Duration, logger ports.LoggerPort) *JWTTokenService {
	return &JWTTokenService{
		secretKey: []byte(secretKey),
		ttl:       ttl,
		logger:    logger,
	}
}

// выпуск жвт шлюза
func (j *JWTTokenService) IssueToken(payload *domain.TokenPayload) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":         payload.ID.String(),
		"session_id": payload.SessionID.String(),
		"user_id":    payload.UserID.String(),
		"role":       string(payload.Role),
		"iat":        now.Unix(),
		"exp":        now.Add(j.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(j.secretKey)
	if err != nil {
		j.logger.Error("Failed to sign jwt", map[string]interface{}{
			"error":  err.Error(),
			"method": "IssueToken",
		})
		return "", err
	}
	return signed, nil
}

// проверка жвт
func (j *JWTTokenService) VerifyToken(token string) (*domain.TokenPayload, error) {
	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return j.secretKey, nil
	})
	if err != nil {
		j.logger.Error("Failed to parse jwt", map[string]interface{}{
			"error":  err.Error(),
			"method": "VerifyToken",
		})
		return nil, err
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok {
		j.logger.Error("Failed claims from token", map[string]interface{}{
			"method": "VerifyToken",
		})
		return nil, errors.New("failed to verify")
	}

	idStr, ok := claims["id"].(string)
	if !ok {
		return nil, errors.New("invalid id convert")
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, errors.New("invalid parse id")
	}

	sessionIDStr, ok := claims["session_id"].(string)
	if !ok {
		return nil, errors.New("invalid session_id claims")
	}
	sessionID, err := uuid.Parse(sessionIDStr)
	if err != nil {
		return nil, errors.New("invalid parse session_id")
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return nil, errors.New("invalid user_id claims")
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, errors.New("invalid parse user_id")
	}

	roleClaimed, ok := claims["role"].(string)
	if !ok {
		return nil, errors.New("invalid role")
	}

	role := domain.UserRole(roleClaimed)
	if role != domain.Admin && role != domain.Staff {
		j.logger.Warn("Invalid role in token", map[string]interface{}{
			"role":   roleClaimed,
			"method": "VerifyToken",
		})
		return nil, errors.New("invalid role value")
	}

	payload := &domain.TokenPayload{
		ID:        id,
		SessionID: sessionID,
		UserID:    userID,
		Role:      role,
	}

	return payload, nil
}
