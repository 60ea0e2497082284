package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sm8ta/webike_rental_admin_nikita/internal/core/domain"
	"github.com/sm8ta/webike_rental_admin_nikita/internal/core/ports"
	"github.com/sm8ta/webike_rental_admin_nikita/pkg/collection"
)

type nopLogger struct{}

func (nopLogger) Debug(msg string, fields map[string]interface{}) {}
func (nopLogger) Info(msg string, fields map[string]interface{})  {}
func (nopLogger) Warn(msg string, fields map[string]interface{})  {}
func (nopLogger) Error(msg string, fields map[string]interface{}) {}

func newTestClient(url string) *Client {
	return NewClient(url, 2*time.Second, 3, nopLogger{})
}

func TestListDecodesEnvelopeAndPagination(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"page":   r.URL.Query().Get("page"),
			"size":   r.URL.Query().Get("size"),
			"sortBy": r.URL.Query().Get("sortBy"),
			"search": r.URL.Query().Get("search"),
		}
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": []map[string]interface{}{
				{"brand_id": uuid.New(), "name": "Stels", "is_active": true},
				{"brand_id": uuid.New(), "name": "Merida", "is_active": false},
			},
			"pagination": map[string]interface{}{
				"currentPage":   2,
				"totalPages":    4,
				"totalElements": 38,
				"hasNext":       true,
				"hasPrevious":   true,
			},
		})
	}))
	defer server.Close()

	repo := NewRepository[domain.Brand](newTestClient(server.URL), "brands", nopLogger{})
	ctx := WithToken(context.Background(), "token-123")

	result, err := repo.List(ctx, collection.PageQuery{
		PageIndex:     2,
		PageSize:      10,
		SortField:     "name",
		SortDirection: collection.SortAsc,
		SearchTerm:    "st",
	})
	require.NoError(t, err)

	assert.Equal(t, "2", gotQuery["page"])
	assert.Equal(t, "10", gotQuery["size"])
	assert.Equal(t, "name", gotQuery["sortBy"])
	assert.Equal(t, "st", gotQuery["search"])

	assert.Len(t, result.Items, 2)
	assert.Equal(t, "Stels", result.Items[0].Name)
	assert.Equal(t, 2, result.PageIndex)
	assert.Equal(t, 4, result.TotalPages)
	assert.Equal(t, 38, result.TotalElements)
	assert.True(t, result.HasNext)
	assert.True(t, result.HasPrevious)
}

func TestGetRetriesServerErrorsWithBackoff(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    map[string]interface{}{"city_id": uuid.New(), "name": "Kazan"},
		})
	}))
	defer server.Close()

	repo := NewRepository[domain.City](newTestClient(server.URL), "cities", nopLogger{})
	city, err := repo.GetByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, "Kazan", city.Name)
	assert.Equal(t, int32(3), calls.Load())
}

func TestMutationsAreNotRetried(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	repo := NewRepository[domain.Brand](newTestClient(server.URL), "brands", nopLogger{})
	_, err := repo.Create(context.Background(), &domain.Brand{Name: "Stels"})
	require.Error(t, err)
	assert.Equal(t, domain.ErrKindServer, domain.KindOf(err))
	assert.Equal(t, int32(1), calls.Load())
}

func TestErrorKindMapping(t *testing.T) {
	tests := []struct {
		status int
		kind   domain.ErrorKind
	}{
		{http.StatusUnauthorized, domain.ErrKindAuth},
		{http.StatusForbidden, domain.ErrKindForbidden},
		{http.StatusNotFound, domain.ErrKindNotFound},
		{http.StatusConflict, domain.ErrKindConflict},
		{http.StatusUnprocessableEntity, domain.ErrKindValidation},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				json.NewEncoder(w).Encode(map[string]interface{}{
					"success": false,
					"message": "nope",
				})
			}))
			defer server.Close()

			repo := NewRepository[domain.Offer](newTestClient(server.URL), "offers", nopLogger{})
			_, err := repo.ToggleStatus(context.Background(), uuid.New())
			require.Error(t, err)
			assert.Equal(t, tt.kind, domain.KindOf(err))

			var backendErr *domain.BackendError
			require.ErrorAs(t, err, &backendErr)
			assert.Equal(t, "nope", backendErr.Message)
		})
	}
}

func TestNetworkFailureMapsToNetworkKind(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", 200*time.Millisecond, 1, nopLogger{})
	repo := NewRepository[domain.Bike](client, "bikes", nopLogger{})

	_, err := repo.GetByID(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, domain.ErrKindNetwork, domain.KindOf(err))
}

func TestCreateWithImageSendsMultipart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		var brand domain.Brand
		require.NoError(t, json.Unmarshal([]byte(r.FormValue("data")), &brand))
		assert.Equal(t, "Forward", brand.Name)

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "logo.png", header.Filename)

		brand.BrandID = uuid.New()
		brand.ImagePath = "uploads/brands/logo.png"
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    brand,
		})
	}))
	defer server.Close()

	repo := NewRepository[domain.Brand](newTestClient(server.URL), "brands", nopLogger{})
	upload := &ports.Upload{
		FileName:    "logo.png",
		ContentType: "image/png",
		Reader:      strings.NewReader("fake image bytes"),
	}
	created, err := repo.CreateWithImage(context.Background(), &domain.Brand{Name: "Forward"}, upload)
	require.NoError(t, err)
	assert.Equal(t, "uploads/brands/logo.png", created.ImagePath)
}
