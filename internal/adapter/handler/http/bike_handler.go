package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sm8ta/webike_rental_admin_nikita/internal/core/domain"
	"github.com/sm8ta/webike_rental_admin_nikita/internal/core/ports"
	"github.com/sm8ta/webike_rental_admin_nikita/internal/core/services"
	"github.com/sm8ta/webike_rental_admin_nikita/internal/core/validation"
)

// bikeFilters are the query parameters the fleet screen may forward to
// the backend list endpoint.
var bikeFilters = []string{"brand_id", "model_id", "category_id", "vehicle_type_id", "store_id", "is_active"}

type BikeHandler struct {
	*ResourceHandler[domain.Bike]
	bikes  *services.MediaService[domain.Bike]
	images *services.ImageResolver
}

type BikeResponse struct {
	domain.Bike
	ImageURL string `json:"image_url,omitempty"`
}

func NewBikeHandler(
	bikes *services.MediaService[domain.Bike],
	images *services.ImageResolver,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *BikeHandler {
	return &BikeHandler{
		ResourceHandler: NewMediaHandler[domain.Bike](
			bikes,
			"bikes",
			bikeFilters,
			jsonForm(validation.ValidateBike),
			images,
			services.ImagesBikes,
			logger,
			metrics,
		),
		bikes:  bikes,
		images: images,
	}
}

// @Summary Список байков
// @Description Постраничный список байков парка с поиском и фильтрами
// @Tags bikes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param page query int false "Номер страницы" example(0)
// @Param size query int false "Размер страницы" example(10)
// @Param sort_by query string false "Поле сортировки" example(name)
// @Param sort_dir query string false "Направление сортировки" Enums(ASC, DESC)
// @Param search query string false "Поисковый запрос"
// @Success 200 {object} listResponse[BikeResponse] "Страница байков"
// @Failure 401 {object} errorResponse "Не авторизован"
// @Failure 502 {object} errorResponse "Бэкенд недоступен"
// @Router /bikes [get]
func (h *BikeHandler) List(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	query := bindPageQuery(c, h.filters)
	result, err := h.bikes.List(c.Request.Context(), query)
	if err != nil {
		h.logger.Error("Failed to list bikes", map[string]interface{}{
			"error": err.Error(),
		})
		respondServiceError(c, err)
		return
	}

	items := make([]BikeResponse, len(result.Items))
	for i, bike := range result.Items {
		items[i] = h.present(bike)
	}

	c.JSON(http.StatusOK, listResponse[BikeResponse]{
		Items:         items,
		PageIndex:     result.PageIndex,
		TotalPages:    result.TotalPages,
		TotalElements: result.TotalElements,
		HasNext:       result.HasNext,
		HasPrevious:   result.HasPrevious,
	})
}

// @Summary Получить байк
// @Description Получение байка по ID
// @Tags bikes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "ID байка" example:"3fa85f64-5717-4562-b3fc-2c963f66afa6"
// @Success 200 {object} BikeResponse "Байк найден"
// @Failure 401 {object} errorResponse "Не авторизован"
// @Failure 404 {object} errorResponse "Байк не найден"
// @Router /bikes/{id} [get]
func (h *BikeHandler) Get(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	id, ok := h.pathID(c)
	if !ok {
		return
	}

	bike, err := h.bikes.GetByID(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("Failed to get bike", map[string]interface{}{
			"bike_id": id.String(),
			"error":   err.Error(),
		})
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.present(*bike))
}

// @Summary Создать байк
// @Description Создание байка. Принимает JSON или multipart с полем data и файлом image
// @Tags bikes
// @Security BearerAuth
// @Accept json
// @Accept mpfd
// @Produce json
// @Success 201 {object} BikeResponse "Байк создан"
// @Failure 400 {object} errorResponse "Неверный запрос"
// @Failure 401 {object} errorResponse "Не авторизован"
// @Failure 422 {object} fieldErrorsResponse "Ошибки валидации формы"
// @Router /bikes [post]
func (h *BikeHandler) Create(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	entity, image, ok := h.decodeBody(c)
	if !ok {
		return
	}

	created, err := h.bikes.CreateWithImage(c.Request.Context(), entity, image)
	if err != nil {
		h.logger.Error("Failed to create bike", map[string]interface{}{
			"error": err.Error(),
		})
		respondServiceError(c, err)
		return
	}

	h.logger.Info("Bike created successfully", map[string]interface{}{
		"bike_id": created.BikeID.String(),
	})
	c.JSON(http.StatusCreated, h.present(*created))
}

// @Summary Обновить байк
// @Description Обновление байка. Принимает JSON или multipart с полем data и файлом image
// @Tags bikes
// @Security BearerAuth
// @Accept json
// @Accept mpfd
// @Produce json
// @Param id path string true "ID байка" example:"3fa85f64-5717-4562-b3fc-2c963f66afa6"
// @Success 200 {object} BikeResponse "Байк обновлен"
// @Failure 400 {object} errorResponse "Неверный запрос"
// @Failure 401 {object} errorResponse "Не авторизован"
// @Failure 404 {object} errorResponse "Байк не найден"
// @Failure 422 {object} fieldErrorsResponse "Ошибки валидации формы"
// @Router /bikes/{id} [put]
func (h *BikeHandler) Update(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	id, ok := h.pathID(c)
	if !ok {
		return
	}
	entity, image, ok := h.decodeBody(c)
	if !ok {
		return
	}

	updated, err := h.bikes.UpdateWithImage(c.Request.Context(), id, entity, image)
	if err != nil {
		h.logger.Error("Failed to update bike", map[string]interface{}{
			"bike_id": id.String(),
			"error":   err.Error(),
		})
		respondServiceError(c, err)
		return
	}

	h.logger.Info("Bike updated successfully", map[string]interface{}{
		"bike_id": id.String(),
	})
	c.JSON(http.StatusOK, h.present(*updated))
}

func (h *BikeHandler) present(bike domain.Bike) BikeResponse {
	return BikeResponse{
		Bike:     bike,
		ImageURL: h.images.Resolve(services.ImagesBikes, bike.ImagePath),
	}
}
