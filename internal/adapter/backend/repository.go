package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/sm8ta/webike_rental_admin_nikita/internal/core/domain"
	"github.com/sm8ta/webike_rental_admin_nikita/internal/core/ports"
	"github.com/sm8ta/webike_rental_admin_nikita/pkg/collection"
)

// Repository is the REST counterpart of a database repository: one
// instance per backend resource, all sharing the envelope and endpoint
// conventions of the rental API.
type Repository[T any] struct {
	client   *Client
	resource string
	logger   ports.LoggerPort
}

func NewRepository[T any](client *Client, resource string, logger ports.LoggerPort) *Repository[T] {
	return &Repository[T]{
		client:   client,
		resource: resource,
		logger:   logger,
	}
}

func (r *Repository[T]) List(ctx context.Context, query collection.PageQuery) (*collection.PageResult[T], error) {
	env, err := r.client.get(ctx, "/"+r.resource, buildQuery(query))
	if err != nil {
		return nil, err
	}

	items := []T{}
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &items); err != nil {
			return nil, domain.NewBackendError(domain.ErrKindServer, 0, fmt.Sprintf("decode %s list: %v", r.resource, err))
		}
	}

	result := &collection.PageResult[T]{Items: items}
	if env.Pagination != nil {
		result.PageIndex = env.Pagination.CurrentPage
		result.TotalPages = env.Pagination.TotalPages
		result.TotalElements = env.Pagination.TotalElements
		result.HasNext = env.Pagination.HasNext
		result.HasPrevious = env.Pagination.HasPrevious
	}
	return result, nil
}

func (r *Repository[T]) GetByID(ctx context.Context, id uuid.UUID) (*T, error) {
	env, err := r.client.get(ctx, fmt.Sprintf("/%s/%s", r.resource, id), nil)
	if err != nil {
		return nil, err
	}
	return r.decodeEntity(env)
}

func (r *Repository[T]) Create(ctx context.Context, entity *T) (*T, error) {
	env, err := r.client.send(ctx, http.MethodPost, "/"+r.resource, entity)
	if err != nil {
		return nil, err
	}
	return r.decodeEntity(env)
}

func (r *Repository[T]) Update(ctx context.Context, id uuid.UUID, entity *T) (*T, error) {
	env, err := r.client.send(ctx, http.MethodPut, fmt.Sprintf("/%s/%s", r.resource, id), entity)
	if err != nil {
		return nil, err
	}
	return r.decodeEntity(env)
}

func (r *Repository[T]) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.client.send(ctx, http.MethodDelete, fmt.Sprintf("/%s/%s", r.resource, id), nil)
	return err
}

func (r *Repository[T]) ToggleStatus(ctx context.Context, id uuid.UUID) (*T, error) {
	env, err := r.client.send(ctx, http.MethodPatch, fmt.Sprintf("/%s/%s/toggle-status", r.resource, id), nil)
	if err != nil {
		return nil, err
	}
	return r.decodeEntity(env)
}

func (r *Repository[T]) CreateWithImage(ctx context.Context, entity *T, image *ports.Upload) (*T, error) {
	fields, err := r.metadataFields(entity)
	if err != nil {
		return nil, err
	}
	env, err := r.client.sendMultipart(ctx, http.MethodPost, "/"+r.resource, fields, image)
	if err != nil {
		return nil, err
	}
	return r.decodeEntity(env)
}

func (r *Repository[T]) UpdateWithImage(ctx context.Context, id uuid.UUID, entity *T, image *ports.Upload) (*T, error) {
	fields, err := r.metadataFields(entity)
	if err != nil {
		return nil, err
	}
	env, err := r.client.sendMultipart(ctx, http.MethodPut, fmt.Sprintf("/%s/%s", r.resource, id), fields, image)
	if err != nil {
		return nil, err
	}
	return r.decodeEntity(env)
}

func (r *Repository[T]) decodeEntity(env *envelope) (*T, error) {
	var entity T
	if len(env.Data) == 0 {
		return nil, domain.NewBackendError(domain.ErrKindServer, 0, fmt.Sprintf("empty %s payload", r.resource))
	}
	if err := json.Unmarshal(env.Data, &entity); err != nil {
		return nil, domain.NewBackendError(domain.ErrKindServer, 0, fmt.Sprintf("decode %s: %v", r.resource, err))
	}
	return &entity, nil
}

// metadataFields flattens the entity into the single JSON form field the
// multipart endpoints expect next to the image part.
func (r *Repository[T]) metadataFields(entity *T) (map[string]string, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return nil, domain.NewBackendError(domain.ErrKindValidation, 0, fmt.Sprintf("encode %s: %v", r.resource, err))
	}
	return map[string]string{"data": string(data)}, nil
}
