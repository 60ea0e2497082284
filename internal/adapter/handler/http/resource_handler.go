package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sm8ta/webike_rental_admin_nikita/internal/core/ports"
	"github.com/sm8ta/webike_rental_admin_nikita/internal/core/services"
	"github.com/sm8ta/webike_rental_admin_nikita/internal/core/validation"
	"github.com/sm8ta/webike_rental_admin_nikita/pkg/collection"
)

type resourceService[T any] interface {
	List(ctx context.Context, query collection.PageQuery) (*collection.PageResult[T], error)
	GetByID(ctx context.Context, id uuid.UUID) (*T, error)
	Create(ctx context.Context, entity *T) (*T, error)
	Update(ctx context.Context, id uuid.UUID, entity *T) (*T, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ToggleStatus(ctx context.Context, id uuid.UUID) (*T, error)
	References(ctx context.Context) ([]T, error)
}

type mediaService[T any] interface {
	resourceService[T]
	CreateWithImage(ctx context.Context, entity *T, image *ports.Upload) (*T, error)
	UpdateWithImage(ctx context.Context, id uuid.UUID, entity *T, image *ports.Upload) (*T, error)
}

// jsonForm adapts a typed form validator to the raw-body hook the generic
// handler calls before unmarshalling into the entity.
func jsonForm[F any](validate func(F) validation.Errors) func([]byte) validation.Errors {
	return func(raw []byte) validation.Errors {
		var form F
		if err := json.Unmarshal(raw, &form); err != nil {
			return validation.Errors{"body": "invalid JSON format"}
		}
		return validate(form)
	}
}

// ResourceHandler serves the shared endpoint shape of the catalog
// resources: paginated list, reference list, get, create, update, delete
// and status toggle. The flagship screens (bikes, offers, price lists)
// keep dedicated handlers; everything else is an instance of this one.
type ResourceHandler[T any] struct {
	svc       resourceService[T]
	media     mediaService[T]
	resource  string
	filters   []string
	validate  func([]byte) validation.Errors
	images    *services.ImageResolver
	subfolder string
	logger    ports.LoggerPort
	metrics   ports.MetricsPort
}

func NewResourceHandler[T any](
	svc resourceService[T],
	resource string,
	filters []string,
	validate func([]byte) validation.Errors,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *ResourceHandler[T] {
	return &ResourceHandler[T]{
		svc:      svc,
		resource: resource,
		filters:  filters,
		validate: validate,
		logger:   logger,
		metrics:  metrics,
	}
}

// NewMediaHandler is the image-bearing variant: multipart submissions with
// a "data" JSON field and an optional "image" file part are accepted on
// create and update, and every response carries the resolved public
// image_url next to the stored image_path.
func NewMediaHandler[T any](
	svc mediaService[T],
	resource string,
	filters []string,
	validate func([]byte) validation.Errors,
	images *services.ImageResolver,
	subfolder string,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *ResourceHandler[T] {
	handler := NewResourceHandler[T](svc, resource, filters, validate, logger, metrics)
	handler.media = svc
	handler.images = images
	handler.subfolder = subfolder
	return handler
}

// present flattens the entity into a JSON document with the resolved
// image_url appended. Non-media handlers return the entity untouched.
func (h *ResourceHandler[T]) present(entity T) interface{} {
	if h.images == nil {
		return entity
	}
	raw, err := json.Marshal(entity)
	if err != nil {
		return entity
	}
	doc := map[string]interface{}{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return entity
	}
	path, _ := doc["image_path"].(string)
	if url := h.images.Resolve(h.subfolder, path); url != "" {
		doc["image_url"] = url
	}
	return doc
}

func (h *ResourceHandler[T]) Register(group *gin.RouterGroup) {
	group.GET("", h.List)
	group.GET("/references", h.References)
	group.GET("/:id", h.Get)
	group.POST("", h.Create)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
	group.PATCH("/:id/toggle-status", h.ToggleStatus)
}

func (h *ResourceHandler[T]) List(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	query := bindPageQuery(c, h.filters)
	result, err := h.svc.List(c.Request.Context(), query)
	if err != nil {
		h.logger.Error("Failed to list resource", map[string]interface{}{
			"resource": h.resource,
			"error":    err.Error(),
		})
		respondServiceError(c, err)
		return
	}

	if h.images != nil {
		items := make([]interface{}, len(result.Items))
		for i, item := range result.Items {
			items[i] = h.present(item)
		}
		c.JSON(http.StatusOK, listResponse[interface{}]{
			Items:         items,
			PageIndex:     result.PageIndex,
			TotalPages:    result.TotalPages,
			TotalElements: result.TotalElements,
			HasNext:       result.HasNext,
			HasPrevious:   result.HasPrevious,
		})
		return
	}
	c.JSON(http.StatusOK, newListResponse(result))
}

func (h *ResourceHandler[T]) References(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	items, err := h.svc.References(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to load references", map[string]interface{}{
			"resource": h.resource,
			"error":    err.Error(),
		})
		respondServiceError(c, err)
		return
	}
	if items == nil {
		items = []T{}
	}

	if h.images != nil {
		presented := make([]interface{}, len(items))
		for i, item := range items {
			presented[i] = h.present(item)
		}
		c.JSON(http.StatusOK, gin.H{"items": presented, "count": len(presented)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
}

func (h *ResourceHandler[T]) Get(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	id, ok := h.pathID(c)
	if !ok {
		return
	}

	entity, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("Failed to get resource", map[string]interface{}{
			"resource": h.resource,
			"id":       id.String(),
			"error":    err.Error(),
		})
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.present(*entity))
}

func (h *ResourceHandler[T]) Create(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	entity, image, ok := h.decodeBody(c)
	if !ok {
		return
	}

	var created *T
	var err error
	if h.media != nil && image != nil {
		created, err = h.media.CreateWithImage(c.Request.Context(), entity, image)
	} else {
		created, err = h.svc.Create(c.Request.Context(), entity)
	}
	if err != nil {
		h.logger.Error("Failed to create resource", map[string]interface{}{
			"resource": h.resource,
			"error":    err.Error(),
		})
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, h.present(*created))
}

func (h *ResourceHandler[T]) Update(c *gin.Context) {
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

	var updated *T
	var err error
	if h.media != nil && image != nil {
		updated, err = h.media.UpdateWithImage(c.Request.Context(), id, entity, image)
	} else {
		updated, err = h.svc.Update(c.Request.Context(), id, entity)
	}
	if err != nil {
		h.logger.Error("Failed to update resource", map[string]interface{}{
			"resource": h.resource,
			"id":       id.String(),
			"error":    err.Error(),
		})
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.present(*updated))
}

func (h *ResourceHandler[T]) Delete(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		h.logger.Error("Failed to delete resource", map[string]interface{}{
			"resource": h.resource,
			"id":       id.String(),
			"error":    err.Error(),
		})
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: "Deleted successfully"})
}

func (h *ResourceHandler[T]) ToggleStatus(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	id, ok := h.pathID(c)
	if !ok {
		return
	}

	toggled, err := h.svc.ToggleStatus(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("Failed to toggle resource status", map[string]interface{}{
			"resource": h.resource,
			"id":       id.String(),
			"error":    err.Error(),
		})
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.present(*toggled))
}

func (h *ResourceHandler[T]) pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.logger.Warn("Invalid resource ID format", map[string]interface{}{
			"resource": h.resource,
			"id":       c.Param("id"),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid ID")
		return uuid.Nil, false
	}
	return id, true
}

// decodeBody reads the submitted entity from a JSON body or a multipart
// "data" field, runs the form validator and picks up the optional image
// part. The image file is buffered in memory, admin uploads are small.
func (h *ResourceHandler[T]) decodeBody(c *gin.Context) (*T, *ports.Upload, bool) {
	var raw []byte
	var image *ports.Upload

	if c.ContentType() == "multipart/form-data" {
		raw = []byte(c.PostForm("data"))

		if file, err := c.FormFile("image"); err == nil && file != nil {
			opened, err := file.Open()
			if err != nil {
				newErrorResponse(c, http.StatusBadRequest, "Failed to read image")
				return nil, nil, false
			}
			data, err := io.ReadAll(opened)
			opened.Close()
			if err != nil {
				newErrorResponse(c, http.StatusBadRequest, "Failed to read image")
				return nil, nil, false
			}
			image = &ports.Upload{
				FileName:    file.Filename,
				ContentType: file.Header.Get("Content-Type"),
				Reader:      bytes.NewReader(data),
			}
		}
	} else {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			newErrorResponse(c, http.StatusBadRequest, "Failed to read body")
			return nil, nil, false
		}
		raw = body
	}

	if len(raw) == 0 {
		newErrorResponse(c, http.StatusBadRequest, "Empty request body")
		return nil, nil, false
	}

	if h.validate != nil {
		if errs := h.validate(raw); !errs.Valid() {
			newFieldErrorsResponse(c, errs)
			return nil, nil, false
		}
	}

	var entity T
	if err := json.Unmarshal(raw, &entity); err != nil {
		h.logger.Error("Failed JSON parse", map[string]interface{}{
			"resource": h.resource,
			"error":    err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return nil, nil, false
	}
	return &entity, image, true
}
