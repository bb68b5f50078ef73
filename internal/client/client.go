// Package client talks to the authoritative record store over HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"credit-tracker/internal/dto"
	apierrors "credit-tracker/internal/errors"
	"credit-tracker/internal/models"
	"credit-tracker/internal/ordering"
)

// RecordStoreInterface is the typed surface of the record store API
type RecordStoreInterface interface {
	FetchAll(ctx context.Context) ([]models.Account, error)
	Create(ctx context.Context, patch models.AccountPatch) (*models.Account, error)
	Update(ctx context.Context, id string, patch models.AccountPatch) (*models.Account, error)
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, id string, dir ordering.Direction) ([]models.Account, error)
	Migrate(ctx context.Context, accounts []models.Account) (int, error)
	Diagnostics(ctx context.Context) (*models.StoreDiagnostics, error)
	BreakerState() models.CircuitBreakerState
}

// Config configures the record store client
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	Breaker    CircuitBreakerConfig
	HTTPClient *http.Client
	// Logger receives breaker transitions; nil means slog.Default()
	Logger *slog.Logger
}

type recordStoreClient struct {
	baseURL string
	http    *http.Client
	breaker CircuitBreakerInterface
	logger  *slog.Logger
}

// New creates a record store client
func New(cfg Config) RecordStoreInterface {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	breakerCfg := cfg.Breaker
	if breakerCfg.MaxFailures == 0 {
		breakerCfg = DefaultCircuitBreakerConfig()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &recordStoreClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    httpClient,
		breaker: NewCircuitBreaker(breakerCfg),
		logger:  logger,
	}
}

// wireAccount accepts both "id" and a store-native "_id"
type wireAccount struct {
	models.Account
	NativeID string `json:"_id,omitempty"`
}

func (w wireAccount) normalize() models.Account {
	a := w.Account
	if a.ID == "" {
		a.ID = w.NativeID
	}
	return a
}

func normalizeAll(in []wireAccount) []models.Account {
	out := make([]models.Account, len(in))
	for i, w := range in {
		out[i] = w.normalize()
	}
	return out
}

func (c *recordStoreClient) FetchAll(ctx context.Context) ([]models.Account, error) {
	var wire []wireAccount
	if err := c.do(ctx, http.MethodGet, "/accounts", nil, &wire); err != nil {
		return nil, err
	}
	return normalizeAll(wire), nil
}

func (c *recordStoreClient) Create(ctx context.Context, patch models.AccountPatch) (*models.Account, error) {
	var wire wireAccount
	if err := c.do(ctx, http.MethodPost, "/accounts", patch, &wire); err != nil {
		return nil, err
	}
	account := wire.normalize()
	return &account, nil
}

func (c *recordStoreClient) Update(ctx context.Context, id string, patch models.AccountPatch) (*models.Account, error) {
	var wire wireAccount
	if err := c.do(ctx, http.MethodPut, "/accounts/"+url.PathEscape(id), patch, &wire); err != nil {
		return nil, err
	}
	account := wire.normalize()
	return &account, nil
}

func (c *recordStoreClient) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/accounts/"+url.PathEscape(id), nil, nil)
}

func (c *recordStoreClient) Reorder(ctx context.Context, id string, dir ordering.Direction) ([]models.Account, error) {
	req := dto.ReorderRequest{AccountID: id, Direction: string(dir)}
	var wire []wireAccount
	if err := c.do(ctx, http.MethodPost, "/accounts/reorder", req, &wire); err != nil {
		return nil, err
	}
	return normalizeAll(wire), nil
}

func (c *recordStoreClient) Migrate(ctx context.Context, accounts []models.Account) (int, error) {
	var resp dto.MigrateResponse
	if err := c.do(ctx, http.MethodPost, "/accounts/migrate", dto.MigrateRequest{Accounts: accounts}, &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

func (c *recordStoreClient) Diagnostics(ctx context.Context) (*models.StoreDiagnostics, error) {
	var diag models.StoreDiagnostics
	if err := c.do(ctx, http.MethodGet, "/diagnostics", nil, &diag); err != nil {
		return nil, err
	}
	return &diag, nil
}

func (c *recordStoreClient) BreakerState() models.CircuitBreakerState {
	return c.breaker.GetState()
}

// do sends one request. Transport failures and 5xx answers count against the
// breaker; any other answer proves the store is up.
func (c *recordStoreClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	if c.breaker.IsOpen() {
		return fmt.Errorf("%w: %w", ErrRemoteUnavailable, ErrCircuitBreakerOpen)
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.recordFailure(method, path, err)
		return fmt.Errorf("%w: %s %s: %w", ErrRemoteUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newAPIError(resp.StatusCode, decodeEnvelope(resp.Body))
		if errors.Is(apiErr, ErrRemoteUnavailable) {
			c.recordFailure(method, path, apiErr)
		} else {
			c.breaker.RecordSuccess()
		}
		return apiErr
	}

	c.breaker.RecordSuccess()

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %w", ErrRemoteUnavailable, err)
	}
	return nil
}

func (c *recordStoreClient) recordFailure(method, path string, err error) {
	before := c.breaker.GetState()
	c.breaker.RecordFailure()
	if after := c.breaker.GetState(); after != before && after == StateOpen {
		c.logger.Warn("record store circuit breaker opened",
			"method", method,
			"path", path,
			"failures", c.breaker.GetFailureCount(),
			"error", err)
	}
}

func decodeEnvelope(r io.Reader) *apierrors.ErrorResponse {
	data, err := io.ReadAll(io.LimitReader(r, 64<<10))
	if err != nil || len(data) == 0 {
		return nil
	}

	var envelope apierrors.ErrorResponse
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Error.Code != "" {
		return &envelope
	}

	// plain {"error": "..."} bodies
	var plain struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &plain); err == nil && plain.Error != "" {
		return &apierrors.ErrorResponse{Error: apierrors.ErrorDetail{Message: plain.Error}}
	}
	return nil
}
