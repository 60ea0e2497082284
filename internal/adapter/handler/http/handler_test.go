package http

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sm8ta/webike_rental_admin_nikita/internal/adapter/backend"
	"github.com/sm8ta/webike_rental_admin_nikita/internal/core/domain"
	"github.com/sm8ta/webike_rental_admin_nikita/internal/core/ports"
	"github.com/sm8ta/webike_rental_admin_nikita/internal/core/services"
	"github.com/sm8ta/webike_rental_admin_nikita/pkg/collection"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type nopLogger struct{}

func (nopLogger) Debug(msg string, fields map[string]interface{}) {}
func (nopLogger) Info(msg string, fields map[string]interface{})  {}
func (nopLogger) Warn(msg string, fields map[string]interface{})  {}
func (nopLogger) Error(msg string, fields map[string]interface{}) {}

type nopMetrics struct{}

func (nopMetrics) RecordMetrics(c *gin.Context, start time.Time) {}
func (nopMetrics) RecordLogin()                                  {}
func (nopMetrics) RecordPricingPreview()                         {}

type memCache struct {
	mu     sync.Mutex
	values map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{values: make(map[string][]byte)}
}

func (c *memCache) Get(key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	value, ok := c.values[key]
	if !ok {
		return nil, domain.NewBackendError(domain.ErrKindNotFound, 0, "cache miss")
	}
	return value, nil
}

func (c *memCache) Set(key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = value
	return nil
}

func (c *memCache) Delete(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.values, key)
	return nil
}

func (c *memCache) DeleteByPrefix(prefix string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.values {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			delete(c.values, key)
		}
	}
	return nil
}

type brandRepo struct {
	mu     sync.Mutex
	brands map[uuid.UUID]domain.Brand
}

func newBrandRepo() *brandRepo {
	return &brandRepo{brands: make(map[uuid.UUID]domain.Brand)}
}

func (r *brandRepo) List(ctx context.Context, query collection.PageQuery) (*collection.PageResult[domain.Brand], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]domain.Brand, 0, len(r.brands))
	for _, brand := range r.brands {
		items = append(items, brand)
	}
	return &collection.PageResult[domain.Brand]{
		Items:         items,
		PageIndex:     query.PageIndex,
		TotalPages:    1,
		TotalElements: len(items),
	}, nil
}

func (r *brandRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Brand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	brand, ok := r.brands[id]
	if !ok {
		return nil, domain.NewBackendError(domain.ErrKindNotFound, 404, "brand not found")
	}
	return &brand, nil
}

func (r *brandRepo) Create(ctx context.Context, brand *domain.Brand) (*domain.Brand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	created := *brand
	created.BrandID = uuid.New()
	created.IsActive = true
	r.brands[created.BrandID] = created
	return &created, nil
}

func (r *brandRepo) Update(ctx context.Context, id uuid.UUID, brand *domain.Brand) (*domain.Brand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.brands[id]
	if !ok {
		return nil, domain.NewBackendError(domain.ErrKindNotFound, 404, "brand not found")
	}
	updated := *brand
	updated.BrandID = id
	updated.IsActive = existing.IsActive
	r.brands[id] = updated
	return &updated, nil
}

func (r *brandRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.brands[id]; !ok {
		return domain.NewBackendError(domain.ErrKindNotFound, 404, "brand not found")
	}
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
	r.brands[id] = brand
	return &brand, nil
}

func (r *brandRepo) CreateWithImage(ctx context.Context, brand *domain.Brand, image *ports.Upload) (*domain.Brand, error) {
	created, err := r.Create(ctx, brand)
	if err != nil {
		return nil, err
	}
	if image != nil {
		r.mu.Lock()
		withImage := *created
		withImage.ImagePath = "uploads/brands/" + image.FileName
		r.brands[withImage.BrandID] = withImage
		r.mu.Unlock()
		return &withImage, nil
	}
	return created, nil
}

func (r *brandRepo) UpdateWithImage(ctx context.Context, id uuid.UUID, brand *domain.Brand, image *ports.Upload) (*domain.Brand, error) {
	return r.Update(ctx, id, brand)
}

func newBrandRouter(t *testing.T) (*gin.Engine, *brandRepo) {
	t.Helper()
	repo := newBrandRepo()
	svc := services.NewMediaService[domain.Brand](repo, "brands", nopLogger{}, newMemCache())
	images := services.NewImageResolver("https://api.webike.example")
	handler := NewMediaHandler[domain.Brand](svc, "brands", []string{"is_active"}, BrandValidator(), images, services.ImagesBrands, nopLogger{}, nopMetrics{})

	router := gin.New()
	handler.Register(router.Group("/brands"))
	return router, repo
}

func TestResourceHandlerListReturnsEnvelope(t *testing.T) {
	router, repo := newBrandRouter(t)
	_, err := repo.Create(context.Background(), &domain.Brand{Name: "Cube"})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/brands?page=0&size=10", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Items         []domain.Brand `json:"items"`
		TotalElements int            `json:"total_elements"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Items, 1)
	assert.Equal(t, 1, resp.TotalElements)
	assert.Equal(t, "Cube", resp.Items[0].Name)
}

func TestResourceHandlerCreateRejectsInvalidForm(t *testing.T) {
	router, _ := newBrandRouter(t)

	body := bytes.NewBufferString(`{"name": "   "}`)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/brands", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp fieldErrorsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Fields, "name")
}

func TestResourceHandlerCreateAndToggle(t *testing.T) {
	router, _ := newBrandRouter(t)

	body := bytes.NewBufferString(`{"name": "Giant", "country": "Taiwan"}`)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/brands", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created domain.Brand
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.True(t, created.IsActive)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPatch, "/brands/"+created.BrandID.String()+"/toggle-status", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var toggled domain.Brand
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &toggled))
	assert.False(t, toggled.IsActive)
}

func TestMediaHandlerResolvesImageURL(t *testing.T) {
	router, _ := newBrandRouter(t)

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	require.NoError(t, form.WriteField("data", `{"name": "Cube", "country": "Germany"}`))
	part, err := form.CreateFormFile("image", "logo.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, form.Close())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/brands", &body)
	req.Header.Set("Content-Type", form.FormDataContentType())
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "uploads/brands/logo.png", created["image_path"])
	assert.Equal(t, "https://api.webike.example/uploads/brands/logo.png", created["image_url"])

	// the list screen gets the same resolved URL
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/brands", nil)
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var page struct {
		Items []map[string]interface{} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	require.Len(t, page.Items, 1)
	assert.Equal(t, "https://api.webike.example/uploads/brands/logo.png", page.Items[0]["image_url"])
}

func TestMediaHandlerOmitsImageURLWithoutImage(t *testing.T) {
	router, _ := newBrandRouter(t)

	body := bytes.NewBufferString(`{"name": "Merida"}`)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/brands", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotContains(t, created, "image_url")
}

func TestResourceHandlerRejectsMalformedID(t *testing.T) {
	router, _ := newBrandRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/brands/not-a-uuid", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

type fakeAuthBackend struct {
	token   string
	profile *domain.UserProfile
	err     error
}

func (f *fakeAuthBackend) Login(ctx context.Context, credentials domain.Credentials) (string, *domain.UserProfile, error) {
	if f.err != nil {
		return "", nil, f.err
	}
	return f.token, f.profile, nil
}

type memSessionStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]domain.Session
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: make(map[uuid.UUID]domain.Session)}
}

func (s *memSessionStore) Save(ctx context.Context, session *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.SessionID] = *session
	return nil
}

func (s *memSessionStore) Get(ctx context.Context, sessionID uuid.UUID) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, domain.NewBackendError(domain.ErrKindAuth, 0, "session expired")
	}
	return &session, nil
}

func (s *memSessionStore) Delete(ctx context.Context, sessionID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

func newAuthRouter(t *testing.T, backendStub *fakeAuthBackend) (*gin.Engine, *memSessionStore) {
	t.Helper()
	sessions := newMemSessionStore()
	tokens := NewJWTTokenService("test-secret", time.Hour, nopLogger{})
	auth := services.NewAuthService(backendStub, sessions, tokens, nopLogger{})
	handler := NewAuthHandler(auth, nopLogger{}, nopMetrics{})

	router := gin.New()
	router.POST("/auth/login", handler.Login)

	protected := router.Group("")
	protected.Use(AuthMiddleware(tokens, auth, nopLogger{}))
	protected.GET("/auth/me", handler.Me)
	protected.POST("/auth/logout", handler.Logout)
	protected.GET("/token-echo", func(c *gin.Context) {
		token, ok := backend.TokenFromContext(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"backend_token": token, "present": ok})
	})
	return router, sessions
}

func login(t *testing.T, router *gin.Engine) LoginResponse {
	t.Helper()
	body := bytes.NewBufferString(`{"email": "admin@webike.ru", "password": "secret123"}`)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp
}

func TestLoginIssuesGatewayTokenAndMiddlewarePlantsBackendToken(t *testing.T) {
	router, _ := newAuthRouter(t, &fakeAuthBackend{
		token: "backend-bearer-token",
		profile: &domain.UserProfile{
			UserID: uuid.New(),
			Name:   "Admin",
			Role:   domain.Admin,
		},
	})

	resp := login(t, router)
	assert.Equal(t, "admin", resp.User.Role)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/token-echo", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var echo struct {
		BackendToken string `json:"backend_token"`
		Present      bool   `json:"present"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &echo))
	assert.True(t, echo.Present)
	assert.Equal(t, "backend-bearer-token", echo.BackendToken)
}

func TestLoginRejectsNonAdminRole(t *testing.T) {
	router, _ := newAuthRouter(t, &fakeAuthBackend{
		token: "backend-bearer-token",
		profile: &domain.UserProfile{
			UserID: uuid.New(),
			Name:   "Customer",
			Role:   domain.UserRole("customer"),
		},
	})

	body := bytes.NewBufferString(`{"email": "user@webike.ru", "password": "secret123"}`)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestMiddlewareRejectsMissingAndGarbageTokens(t *testing.T) {
	router, _ := newAuthRouter(t, &fakeAuthBackend{
		token:   "backend-bearer-token",
		profile: &domain.UserProfile{UserID: uuid.New(), Name: "Admin", Role: domain.Admin},
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogoutInvalidatesSession(t *testing.T) {
	router, sessions := newAuthRouter(t, &fakeAuthBackend{
		token:   "backend-bearer-token",
		profile: &domain.UserProfile{UserID: uuid.New(), Name: "Admin", Role: domain.Admin},
	})

	resp := login(t, router)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	require.Empty(t, sessions.sessions)

	// the gateway token is now orphaned
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTRoundTripKeepsPayload(t *testing.T) {
	tokens := NewJWTTokenService("test-secret", time.Hour, nopLogger{})
	payload := &domain.TokenPayload{
		ID:        uuid.New(),
		SessionID: uuid.New(),
		UserID:    uuid.New(),
		Role:      domain.Staff,
	}

	signed, err := tokens.IssueToken(payload)
	require.NoError(t, err)

	verified, err := tokens.VerifyToken(signed)
	require.NoError(t, err)
	assert.Equal(t, payload.SessionID, verified.SessionID)
	assert.Equal(t, payload.UserID, verified.UserID)
	assert.Equal(t, domain.Staff, verified.Role)
}

func TestPricingPreviewEndpoint(t *testing.T) {
	priceLists := services.NewPriceListService(
		backend.NewRepository[domain.PriceListEntry](backend.NewClient("http://127.0.0.1:1", time.Second, 1, nopLogger{}), "price-lists", nopLogger{}),
		nopLogger{},
		newMemCache(),
	)
	pricing := services.NewPricingService(priceLists, nopLogger{})
	handler := NewPricingHandler(pricing, nopLogger{}, nopMetrics{})

	router := gin.New()
	router.POST("/pricing/preview", handler.Preview)

	body := bytes.NewBufferString(`{"starts_at": "2026-09-01T10:00:00Z", "ends_at": "2026-09-01T17:00:00Z"}`)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/pricing/preview", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var preview services.PricingPreview
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &preview))
	assert.Equal(t, domain.BillingFullDayFlat, preview.Billing.Mode)
	assert.InDelta(t, 7, preview.Breakdown.TotalHours, 1e-9)

	// inverted range
	body = bytes.NewBufferString(`{"starts_at": "2026-09-02T10:00:00Z", "ends_at": "2026-09-01T10:00:00Z"}`)
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/pricing/preview", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
