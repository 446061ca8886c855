package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"admin-console/internal/api"
)

const (
	// AdminIDPlaceholder is the path segment substituted when admin ID
	// resolution is enabled.
	AdminIDPlaceholder = ":adminId"
	DefaultEndpoint    = "http://localhost:3000/api/v1/dashboard/admin/createUser/:adminId"

	maxResponseBytes = 1 << 20
)

// ErrInvalidResponse means the user service answered with a body that is not JSON.
var ErrInvalidResponse = errors.New("invalid response body")

// RejectedError is a non-2xx answer carrying a JSON body.
type RejectedError struct {
	StatusCode int
	Message    string
	Body       json.RawMessage
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("user service rejected request (%d): %s", e.StatusCode, e.Message)
}

// Doer is satisfied by *http.Client.
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

type Option func(*UserAPI)

func WithHTTPClient(d Doer) Option {
	return func(c *UserAPI) { c.http = d }
}

// WithAdminIDResolution replaces the :adminId segment with the caller's ID.
func WithAdminIDResolution(on bool) Option {
	return func(c *UserAPI) { c.resolveAdminID = on }
}

// UserAPI sends create-user requests to the user service.
type UserAPI struct {
	endpoint       string
	resolveAdminID bool
	http           Doer
}

func NewUserAPI(endpoint string, opts ...Option) *UserAPI {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	// no client Timeout; the caller's context deadline bounds each call
	c := &UserAPI{
		endpoint: endpoint,
		http:     &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// URL returns the endpoint a request from adminID is sent to.
func (c *UserAPI) URL(adminID int) string {
	if c.resolveAdminID && adminID > 0 {
		return strings.Replace(c.endpoint, AdminIDPlaceholder, strconv.Itoa(adminID), 1)
	}
	return c.endpoint
}

// CreateUser posts req as JSON. A 2xx answer returns its JSON body; a
// non-2xx answer returns *RejectedError; anything else is a transport or
// decoding failure.
func (c *UserAPI) CreateUser(ctx context.Context, adminID int, req api.CreateUserRequest) (json.RawMessage, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL(adminID), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("CreateUser: read body: %w", err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if !json.Valid(raw) {
			return nil, fmt.Errorf("CreateUser: status %d: %w", resp.StatusCode, ErrInvalidResponse)
		}
		return json.RawMessage(raw), nil
	}

	var payload api.ErrorResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("CreateUser: status %d: %w", resp.StatusCode, ErrInvalidResponse)
	}
	return nil, &RejectedError{
		StatusCode: resp.StatusCode,
		Message:    payload.Message,
		Body:       json.RawMessage(raw),
	}
}
