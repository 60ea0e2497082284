package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sm8ta/webike_rental_admin_nikita/internal/core/domain"
	"github.com/sm8ta/webike_rental_admin_nikita/pkg/collection"
)

type nopLogger struct{}

func (nopLogger) Debug(msg string, fields map[string]interface{}) {}
func (nopLogger) Info(msg string, fields map[string]interface{})  {}
func (nopLogger) Warn(msg string, fields map[string]interface{})  {}
func (nopLogger) Error(msg string, fields map[string]interface{}) {}

type memoryCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string][]byte{}}
}

func (c *memoryCache) Get(key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	value, ok := c.data[key]
	if !ok {
		return nil, errors.New("cache miss")
	}
	return value, nil
}

func (c *memoryCache) Set(key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *memoryCache) Delete(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *memoryCache) DeleteByPrefix(prefix string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.data {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			delete(c.data, key)
		}
	}
	return nil
}

// brandRepo is an in-memory double of the backend brands resource.
type brandRepo struct {
	mu        sync.Mutex
	brands    map[uuid.UUID]*domain.Brand
	listCalls int
}

func newBrandRepo() *brandRepo {
	return &brandRepo{brands: map[uuid.UUID]*domain.Brand{}}
}

func (r *brandRepo) List(ctx context.Context, query collection.PageQuery) (*collection.PageResult[domain.Brand], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listCalls++

	items := make([]domain.Brand, 0, len(r.brands))
	for _, brand := range r.brands {
		items = append(items, *brand)
	}
	return &collection.PageResult[domain.Brand]{
		Items:         items,
		TotalElements: len(items),
		TotalPages:    1,
	}, nil
}

func (r *brandRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Brand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	brand, ok := r.brands[id]
	if !ok {
		return nil, domain.NewBackendError(domain.ErrKindNotFound, 404, "brand not found")
	}
	clone := *brand
	return &clone, nil
}

func (r *brandRepo) Create(ctx context.Context, brand *domain.Brand) (*domain.Brand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	created := *brand
	created.BrandID = uuid.New()
	created.IsActive = true
	r.brands[created.BrandID] = &created
	clone := created
	return &clone, nil
}

func (r *brandRepo) Update(ctx context.Context, id uuid.UUID, brand *domain.Brand) (*domain.Brand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.brands[id]
	if !ok {
		return nil, domain.NewBackendError(domain.ErrKindNotFound, 404, "brand not found")
	}
	existing.Name = brand.Name
	clone := *existing
	return &clone, nil
}

func (r *brandRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.brands, id)
	return nil
}

func (r *brandRepo) ToggleStatus(ctx context.Context, id uuid.UUID) (*domain.Brand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	brand, ok := r.brands[id]
	if !ok {
		return nil, domain.NewBackendError(domain.ErrKindNotFound, 404, "brand not found")
	}
	brand.IsActive = !brand.IsActive
	clone := *brand
	return &clone, nil
}

func TestToggleStatusIsIdempotentInPairs(t *testing.T) {
	repo := newBrandRepo()
	svc := NewResourceService[domain.Brand](repo, "brands", nopLogger{}, newMemoryCache())
	ctx := context.Background()

	created, err := svc.Create(ctx, &domain.Brand{Name: "Stels"})
	require.NoError(t, err)
	require.True(t, created.IsActive)

	once, err := svc.ToggleStatus(ctx, created.BrandID)
	require.NoError(t, err)
	assert.False(t, once.IsActive)

	twice, err := svc.ToggleStatus(ctx, created.BrandID)
	require.NoError(t, err)
	assert.Equal(t, created.IsActive, twice.IsActive)
}

func TestListPagesAreCachedPerQueryAndInvalidatedOnMutation(t *testing.T) {
	repo := newBrandRepo()
	svc := NewResourceService[domain.Brand](repo, "brands", nopLogger{}, newMemoryCache())
	ctx := context.Background()

	_, err := svc.Create(ctx, &domain.Brand{Name: "Stels"})
	require.NoError(t, err)

	query := collection.PageQuery{PageSize: 10, SortDirection: collection.SortAsc}
	_, err = svc.List(ctx, query)
	require.NoError(t, err)
	callsAfterFirst := repo.listCalls

	_, err = svc.List(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, callsAfterFirst, repo.listCalls, "identical query must hit the cache")

	// a different page is a different key
	other := query
	other.PageIndex = 1
	_, err = svc.List(ctx, other)
	require.NoError(t, err)
	assert.Equal(t, callsAfterFirst+1, repo.listCalls)

	// a mutation drops every cached page of the resource
	created, err := svc.Create(ctx, &domain.Brand{Name: "Forward"})
	require.NoError(t, err)

	page, err := svc.List(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, callsAfterFirst+2, repo.listCalls)

	names := make([]string, 0, len(page.Items))
	for _, item := range page.Items {
		names = append(names, item.Name)
	}
	assert.Contains(t, names, created.Name)
}

func TestReferencesAreCachedAndInvalidatedOnMutation(t *testing.T) {
	repo := newBrandRepo()
	cache := newMemoryCache()
	svc := NewResourceService[domain.Brand](repo, "brands", nopLogger{}, cache)
	ctx := context.Background()

	_, err := svc.Create(ctx, &domain.Brand{Name: "Stels"})
	require.NoError(t, err)

	_, err = svc.References(ctx)
	require.NoError(t, err)
	callsAfterFirst := repo.listCalls

	_, err = svc.References(ctx)
	require.NoError(t, err)
	assert.Equal(t, callsAfterFirst, repo.listCalls, "second read must hit the cache")

	// a mutation invalidates the reference cache
	created, err := svc.Create(ctx, &domain.Brand{Name: "Forward"})
	require.NoError(t, err)

	refs, err := svc.References(ctx)
	require.NoError(t, err)
	assert.Equal(t, callsAfterFirst+1, repo.listCalls)

	names := make([]string, 0, len(refs))
	for _, ref := range refs {
		names = append(names, ref.Name)
	}
	assert.Contains(t, names, created.Name)
}
