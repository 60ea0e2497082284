package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sm8ta/webike_rental_admin_nikita/internal/core/domain"
	"github.com/sm8ta/webike_rental_admin_nikita/internal/core/validation"
	"github.com/sm8ta/webike_rental_admin_nikita/pkg/collection"
)

const (
	authPayloadKey       = "authorization_payload"
	sessionKey           = "session"
	sessionInvalidateKey = "session_invalidate"
)

type errorResponse struct {
	Error string `json:"error"`
}

type fieldErrorsResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type listResponse[T any] struct {
	Items         []T  `json:"items"`
	PageIndex     int  `json:"page_index"`
	TotalPages    int  `json:"total_pages"`
	TotalElements int  `json:"total_elements"`
	HasNext       bool `json:"has_next"`
	HasPrevious   bool `json:"has_previous"`
}

func newListResponse[T any](result *collection.PageResult[T]) listResponse[T] {
	items := result.Items
	if items == nil {
		items = []T{}
	}
	return listResponse[T]{
		Items:         items,
		PageIndex:     result.PageIndex,
		TotalPages:    result.TotalPages,
		TotalElements: result.TotalElements,
		HasNext:       result.HasNext,
		HasPrevious:   result.HasPrevious,
	}
}

func newErrorResponse(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, errorResponse{Error: message})
}

// newFieldErrorsResponse renders a failed form validation: one message per
// field, keyed by the json field name.
func newFieldErrorsResponse(c *gin.Context, errs validation.Errors) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, fieldErrorsResponse{
		Error:  "validation failed",
		Fields: errs,
	})
}

// respondServiceError translates the error taxonomy of the rental backend
// into HTTP statuses. An auth error additionally drops the stored session:
// the upstream token is dead and the SPA has to log in again.
func respondServiceError(c *gin.Context, err error) {
	kind := domain.KindOf(err)

	status := http.StatusInternalServerError
	switch kind {
	case domain.ErrKindValidation:
		status = http.StatusBadRequest
	case domain.ErrKindAuth:
		status = http.StatusUnauthorized
		if fn, ok := c.Get(sessionInvalidateKey); ok {
			if invalidate, ok := fn.(func()); ok {
				invalidate()
			}
		}
	case domain.ErrKindForbidden:
		status = http.StatusForbidden
	case domain.ErrKindNotFound:
		status = http.StatusNotFound
	case domain.ErrKindConflict:
		status = http.StatusConflict
	case domain.ErrKindNetwork, domain.ErrKindServer:
		status = http.StatusBadGateway
	}

	newErrorResponse(c, status, err.Error())
}

func getAuthPayload(c *gin.Context, key string) (*domain.TokenPayload, bool) {
	value, exists := c.Get(key)
	if !exists {
		return nil, false
	}
	payload, ok := value.(*domain.TokenPayload)
	return payload, ok
}

// bindPageQuery reads the list query parameters every collection endpoint
// shares. Only whitelisted filter keys are forwarded to the backend.
func bindPageQuery(c *gin.Context, filterKeys []string) collection.PageQuery {
	query := collection.PageQuery{
		PageSize:      collection.DefaultPageSize,
		SortDirection: collection.SortAsc,
	}

	if page, err := strconv.Atoi(c.Query("page")); err == nil && page >= 0 {
		query.PageIndex = page
	}
	if size, err := strconv.Atoi(c.Query("size")); err == nil && size > 0 {
		query.PageSize = size
	}
	if sortBy := c.Query("sort_by"); sortBy != "" {
		query.SortField = sortBy
	}
	if dir := c.Query("sort_dir"); dir == string(collection.SortDesc) {
		query.SortDirection = collection.SortDesc
	}
	query.SearchTerm = c.Query("search")

	for _, key := range filterKeys {
		if value := c.Query(key); value != "" {
			if query.Filters == nil {
				query.Filters = make(map[string]string)
			}
			query.Filters[key] = value
		}
	}
	return query
}
