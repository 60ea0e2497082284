package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sm8ta/webike_rental_admin_nikita/internal/core/domain"
	"github.com/sm8ta/webike_rental_admin_nikita/internal/core/ports"
)

type contextKey string

const tokenContextKey contextKey = "backend_token"

// WithToken attaches the bearer token of the current session to the
// context. The auth middleware sets it once per request.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey, token)
}

func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenContextKey).(string)
	return token, ok && token != ""
}

// Client talks to the externally owned rental REST backend. Every response
// is wrapped in the backend envelope, every failure is translated into a
// domain.BackendError before it leaves this package.
type Client struct {
	baseURL    string
	httpClient *http.Client
	retries    int
	logger     ports.LoggerPort
}

func NewClient(baseURL string, timeout time.Duration, retries int, logger ports.LoggerPort) *Client {
	if retries < 1 {
		retries = 1
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		retries:    retries,
		logger:     logger,
	}
}

type envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Pagination *paginationMeta `json:"pagination"`
}

type paginationMeta struct {
	CurrentPage   int  `json:"currentPage"`
	TotalPages    int  `json:"totalPages"`
	TotalElements int  `json:"totalElements"`
	HasNext       bool `json:"hasNext"`
	HasPrevious   bool `json:"hasPrevious"`
}

// get performs an idempotent read with capped backoff on network and 5xx
// failures.
func (c *Client) get(ctx context.Context, path string, query url.Values) (*envelope, error) {
	var lastErr error
	for attempt := 1; attempt <= c.retries; attempt++ {
		env, err := c.execute(ctx, http.MethodGet, path, query, nil, "")
		if err == nil {
			return env, nil
		}
		lastErr = err
		if !domain.IsRetryable(err) {
			return nil, err
		}
		if attempt == c.retries {
			break
		}

		delay := time.Duration(attempt) * 500 * time.Millisecond
		c.logger.Warn("Backend fetch failed, retrying", map[string]interface{}{
			"path":    path,
			"attempt": attempt,
			"delay":   delay.String(),
			"error":   err.Error(),
		})
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, domain.NewBackendError(domain.ErrKindNetwork, 0, ctx.Err().Error())
		}
	}
	return nil, lastErr
}

// send performs a mutation with a JSON body. Mutations are never retried
// automatically.
func (c *Client) send(ctx context.Context, method, path string, payload interface{}) (*envelope, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, domain.NewBackendError(domain.ErrKindValidation, 0, fmt.Sprintf("encode request: %v", err))
		}
		body = bytes.NewReader(data)
	}
	return c.execute(ctx, method, path, nil, body, "application/json")
}

// sendMultipart submits JSON-encoded metadata fields together with an
// optional image file, for the file-bearing entities.
func (c *Client) sendMultipart(ctx context.Context, method, path string, fields map[string]string, image *ports.Upload) (*envelope, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, domain.NewBackendError(domain.ErrKindValidation, 0, fmt.Sprintf("encode form field %s: %v", name, err))
		}
	}
	if image != nil {
		part, err := writer.CreateFormFile("image", image.FileName)
		if err != nil {
			return nil, domain.NewBackendError(domain.ErrKindValidation, 0, fmt.Sprintf("encode image part: %v", err))
		}
		if _, err := io.Copy(part, image.Reader); err != nil {
			return nil, domain.NewBackendError(domain.ErrKindNetwork, 0, fmt.Sprintf("read image: %v", err))
		}
	}
	if err := writer.Close(); err != nil {
		return nil, domain.NewBackendError(domain.ErrKindValidation, 0, err.Error())
	}

	return c.execute(ctx, method, path, nil, &buf, writer.FormDataContentType())
}

func (c *Client) execute(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) (*envelope, error) {
	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		return nil, domain.NewBackendError(domain.ErrKindValidation, 0, err.Error())
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token, ok := TokenFromContext(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewBackendError(domain.ErrKindNetwork, 0, err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewBackendError(domain.ErrKindNetwork, resp.StatusCode, err.Error())
	}

	var env envelope
	if len(raw) > 0 {
		// a broken payload on an error status must not mask the status
		if err := json.Unmarshal(raw, &env); err != nil && resp.StatusCode < 400 {
			return nil, domain.NewBackendError(domain.ErrKindServer, resp.StatusCode, "malformed backend response")
		}
	}

	if resp.StatusCode >= 400 {
		message := env.Message
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return nil, domain.NewBackendError(kindFromStatus(resp.StatusCode), resp.StatusCode, message)
	}
	if !env.Success {
		message := env.Message
		if message == "" {
			message = "request rejected"
		}
		return nil, domain.NewBackendError(domain.ErrKindValidation, resp.StatusCode, message)
	}

	return &env, nil
}

func kindFromStatus(status int) domain.ErrorKind {
	switch {
	case status == http.StatusUnauthorized:
		return domain.ErrKindAuth
	case status == http.StatusForbidden:
		return domain.ErrKindForbidden
	case status == http.StatusNotFound:
		return domain.ErrKindNotFound
	case status == http.StatusConflict:
		return domain.ErrKindConflict
	case status >= 500:
		return domain.ErrKindServer
	default:
		return domain.ErrKindValidation
	}
}
