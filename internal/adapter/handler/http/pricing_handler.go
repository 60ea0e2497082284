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

type PricingHandler struct {
	pricing *services.PricingService
	logger  ports.LoggerPort
	metrics ports.MetricsPort
}

type PricingPreviewRequest struct {
	CategoryID string    `json:"category_id" example:"3fa85f64-5717-4562-b3fc-2c963f66afa6"`
	StartsAt   time.Time `json:"starts_at" binding:"required" example:"2026-09-01T10:00:00Z"`
	EndsAt     time.Time `json:"ends_at" binding:"required" example:"2026-09-02T15:00:00Z"`
}

func NewPricingHandler(
	pricing *services.PricingService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *PricingHandler {
	return &PricingHandler{
		pricing: pricing,
		logger:  logger,
		metrics: metrics,
	}
}

// @Summary Предпросмотр тарификации
// @Description Разбор длительности аренды и подбор подходящих тарифов категории
// @Tags pricing
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body PricingPreviewRequest true "Интервал аренды"
// @Success 200 {object} services.PricingPreview "Расчет"
// @Failure 400 {object} errorResponse "Неверный интервал"
// @Failure 401 {object} errorResponse "Не авторизован"
// @Router /pricing/preview [post]
func (h *PricingHandler) Preview(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req PricingPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in pricing preview", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	categoryID := uuid.Nil
	if req.CategoryID != "" {
		parsed, err := uuid.Parse(req.CategoryID)
		if err != nil {
			newErrorResponse(c, http.StatusBadRequest, "Invalid category ID")
			return
		}
		categoryID = parsed
	}

	preview, err := h.pricing.Preview(c.Request.Context(), categoryID, domain.DateRange{
		Start: req.StartsAt,
		End:   req.EndsAt,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.metrics.RecordPricingPreview()
	c.JSON(http.StatusOK, preview)
}
