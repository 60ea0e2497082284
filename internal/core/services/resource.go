package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sm8ta/webike_rental_admin_nikita/internal/core/ports"
	"github.com/sm8ta/webike_rental_admin_nikita/pkg/collection"
)

const (
	referenceCachePrefix = "ref:"
	referenceCacheTTL    = 15 * time.Minute
	referencePageSize    = 100

	listCachePrefix = "list:"
	listCacheTTL    = 30 * time.Second
)

// ResourceService mediates between the admin surface and one backend
// resource. Mutations follow mutate-then-reconcile: the caller re-fetches
// the owning page after success and the reference cache is invalidated
// here.
type ResourceService[T any] struct {
	repo     ports.Repository[T]
	resource string
	logger   ports.LoggerPort
	cache    ports.CachePort
}

func NewResourceService[T any](
	repo ports.Repository[T],
	resource string,
	logger ports.LoggerPort,
	cache ports.CachePort,
) *ResourceService[T] {
	return &ResourceService[T]{
		repo:     repo,
		resource: resource,
		logger:   logger,
		cache:    cache,
	}
}

// List serves identical page queries from a short-lived cache. Every
// mutation on the resource drops all of its cached pages, so the admin
// table refresh after a confirmed write always sees its own change.
func (s *ResourceService[T]) List(ctx context.Context, query collection.PageQuery) (*collection.PageResult[T], error) {
	cacheKey := s.listCacheKey(query)
	if cached, err := s.cache.Get(cacheKey); err == nil {
		var result collection.PageResult[T]
		if err := json.Unmarshal(cached, &result); err == nil {
			return &result, nil
		}
	}

	result, err := s.repo.List(ctx, query)
	if err != nil {
		s.logger.Error("Failed to list resource", map[string]interface{}{
			"resource": s.resource,
			"page":     query.PageIndex,
			"error":    err.Error(),
		})
		return nil, err
	}

	if data, err := json.Marshal(result); err == nil {
		if err := s.cache.Set(cacheKey, data, listCacheTTL); err != nil {
			s.logger.Warn("Failed to cache list page", map[string]interface{}{
				"resource": s.resource,
				"error":    err.Error(),
			})
		}
	}
	return result, nil
}

func (s *ResourceService[T]) GetByID(ctx context.Context, id uuid.UUID) (*T, error) {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to get resource", map[string]interface{}{
			"resource": s.resource,
			"id":       id.String(),
			"error":    err.Error(),
		})
		return nil, err
	}
	return entity, nil
}

func (s *ResourceService[T]) Create(ctx context.Context, entity *T) (*T, error) {
	created, err := s.repo.Create(ctx, entity)
	if err != nil {
		s.logger.Error("Failed to create resource", map[string]interface{}{
			"resource": s.resource,
			"error":    err.Error(),
		})
		return nil, err
	}

	s.invalidateCaches()
	s.logger.Info("Resource created", map[string]interface{}{
		"resource": s.resource,
	})
	return created, nil
}

func (s *ResourceService[T]) Update(ctx context.Context, id uuid.UUID, entity *T) (*T, error) {
	updated, err := s.repo.Update(ctx, id, entity)
	if err != nil {
		s.logger.Error("Failed to update resource", map[string]interface{}{
			"resource": s.resource,
			"id":       id.String(),
			"error":    err.Error(),
		})
		return nil, err
	}

	s.invalidateCaches()
	s.logger.Info("Resource updated", map[string]interface{}{
		"resource": s.resource,
		"id":       id.String(),
	})
	return updated, nil
}

func (s *ResourceService[T]) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete resource", map[string]interface{}{
			"resource": s.resource,
			"id":       id.String(),
			"error":    err.Error(),
		})
		return err
	}

	s.invalidateCaches()
	s.logger.Info("Resource deleted", map[string]interface{}{
		"resource": s.resource,
		"id":       id.String(),
	})
	return nil
}

func (s *ResourceService[T]) ToggleStatus(ctx context.Context, id uuid.UUID) (*T, error) {
	toggled, err := s.repo.ToggleStatus(ctx, id)
	if err != nil {
		s.logger.Error("Failed to toggle resource status", map[string]interface{}{
			"resource": s.resource,
			"id":       id.String(),
			"error":    err.Error(),
		})
		return nil, err
	}

	s.invalidateCaches()
	return toggled, nil
}

// References returns the active items used to populate form dropdowns,
// cached for 15 minutes.
func (s *ResourceService[T]) References(ctx context.Context) ([]T, error) {
	cacheKey := referenceCacheKey(s.resource)
	if cached, err := s.cache.Get(cacheKey); err == nil {
		var items []T
		if err := json.Unmarshal(cached, &items); err == nil {
			return items, nil
		}
	}

	result, err := s.repo.List(ctx, collection.PageQuery{
		PageSize:      referencePageSize,
		SortDirection: collection.SortAsc,
		Filters:       map[string]string{"is_active": "true"},
	})
	if err != nil {
		s.logger.Error("Failed to fetch reference data", map[string]interface{}{
			"resource": s.resource,
			"error":    err.Error(),
		})
		return nil, err
	}

	if data, err := json.Marshal(result.Items); err == nil {
		if err := s.cache.Set(cacheKey, data, referenceCacheTTL); err != nil {
			s.logger.Warn("Failed to cache reference data", map[string]interface{}{
				"resource": s.resource,
				"error":    err.Error(),
			})
		}
	}

	return result.Items, nil
}

func (s *ResourceService[T]) Resource() string {
	return s.resource
}

func (s *ResourceService[T]) invalidateCaches() {
	if err := s.cache.Delete(referenceCacheKey(s.resource)); err != nil {
		s.logger.Warn("Failed to invalidate reference cache", map[string]interface{}{
			"resource": s.resource,
			"error":    err.Error(),
		})
	}
	if err := s.cache.DeleteByPrefix(listCachePrefix + s.resource + ":"); err != nil {
		s.logger.Warn("Failed to invalidate list cache", map[string]interface{}{
			"resource": s.resource,
			"error":    err.Error(),
		})
	}
}

// listCacheKey builds a stable key from every field of the page query.
// Filters are appended in sorted order, map iteration is not stable.
func (s *ResourceService[T]) listCacheKey(query collection.PageQuery) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s%s:p=%d&s=%d&sf=%s&sd=%s&q=%s",
		listCachePrefix, s.resource,
		query.PageIndex, query.PageSize,
		query.SortField, query.SortDirection, query.SearchTerm)

	keys := make([]string, 0, len(query.Filters))
	for key := range query.Filters {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(&b, "&%s=%s", key, query.Filters[key])
	}
	return b.String()
}

// MediaService extends ResourceService for the image-bearing entities.
type MediaService[T any] struct {
	*ResourceService[T]
	imageRepo ports.ImageRepository[T]
}

func NewMediaService[T any](
	repo ports.ImageRepository[T],
	resource string,
	logger ports.LoggerPort,
	cache ports.CachePort,
) *MediaService[T] {
	return &MediaService[T]{
		ResourceService: NewResourceService[T](repo, resource, logger, cache),
		imageRepo:       repo,
	}
}

func (s *MediaService[T]) CreateWithImage(ctx context.Context, entity *T, image *ports.Upload) (*T, error) {
	if image == nil {
		return s.Create(ctx, entity)
	}

	created, err := s.imageRepo.CreateWithImage(ctx, entity, image)
	if err != nil {
		s.logger.Error("Failed to create resource with image", map[string]interface{}{
			"resource": s.resource,
			"file":     image.FileName,
			"error":    err.Error(),
		})
		return nil, err
	}

	s.invalidateCaches()
	s.logger.Info("Resource created", map[string]interface{}{
		"resource": s.resource,
		"file":     image.FileName,
	})
	return created, nil
}

func (s *MediaService[T]) UpdateWithImage(ctx context.Context, id uuid.UUID, entity *T, image *ports.Upload) (*T, error) {
	if image == nil {
		return s.Update(ctx, id, entity)
	}

	updated, err := s.imageRepo.UpdateWithImage(ctx, id, entity, image)
	if err != nil {
		s.logger.Error("Failed to update resource with image", map[string]interface{}{
			"resource": s.resource,
			"id":       id.String(),
			"error":    err.Error(),
		})
		return nil, err
	}

	s.invalidateCaches()
	return updated, nil
}

func referenceCacheKey(resource string) string {
	return fmt.Sprintf("%s%s", referenceCachePrefix, resource)
}
