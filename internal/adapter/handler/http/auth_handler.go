package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sm8ta/webike_rental_admin_nikita/internal/core/domain"
	"github.com/sm8ta/webike_rental_admin_nikita/internal/core/ports"
	"github.com/sm8ta/webike_rental_admin_nikita/internal/core/services"
)

type AuthHandler struct {
	authService *services.AuthService
	logger      ports.LoggerPort
	metrics     ports.MetricsPort
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"admin@webike.ru"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

type LoginResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

type UserInfo struct {
	UserID     uuid.UUID `json:"user_id"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	LoggedInAt time.Time `json:"logged_in_at"`
}

type LogoutResponse struct {
	Message string `json:"message"`
}

func NewAuthHandler(
	authService *services.AuthService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
		metrics:     metrics,
	}
}

// @Summary Вход администратора
// @Description Аутентификация администратора и выдача токена шлюза
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Учетные данные"
// @Success 200 {object} LoginResponse "Успешный вход"
// @Failure 400 {object} errorResponse "Неверный запрос"
// @Failure 401 {object} errorResponse "Неверные учетные данные"
// @Failure 403 {object} errorResponse "Нет прав администратора"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in login", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	token, session, err := h.authService.Login(c.Request.Context(), domain.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.logger.Warn("Login failed", map[string]interface{}{
			"email": req.Email,
			"ip":    c.ClientIP(),
			"error": err.Error(),
		})
		respondServiceError(c, err)
		return
	}

	h.metrics.RecordLogin()

	c.JSON(http.StatusOK, LoginResponse{
		Token: token,
		User: UserInfo{
			UserID:     session.UserID,
			Name:       session.UserName,
			Role:       string(session.Role),
			LoggedInAt: session.LoggedInAt,
		},
	})
}

// @Summary Выход
// @Description Завершение сессии администратора
// @Tags auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 200 {object} LogoutResponse "Сессия завершена"
// @Failure 401 {object} errorResponse "Не авторизован"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authPayloadKey)
	if !exists {
		h.logger.Warn("Unauthorized access attempt to Logout", map[string]interface{}{
			"ip": c.ClientIP(),
		})
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.authService.Logout(c.Request.Context(), payload.SessionID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, LogoutResponse{Message: "Logged out successfully"})
}

// @Summary Текущий пользователь
// @Description Информация о текущей сессии администратора
// @Tags auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 200 {object} UserInfo "Данные пользователя"
// @Failure 401 {object} errorResponse "Не авторизован"
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authPayloadKey)
	if !exists {
		h.logger.Warn("Unauthorized access attempt to Me", map[string]interface{}{
			"ip": c.ClientIP(),
		})
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	session, err := h.authService.Session(c.Request.Context(), payload.SessionID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, UserInfo{
		UserID:     session.UserID,
		Name:       session.UserName,
		Role:       string(session.Role),
		LoggedInAt: session.LoggedInAt,
	})
}
