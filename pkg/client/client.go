// Package client is the Go SDK for the salonsuite API.
//
// Reads go through a non-authoritative cache of last-known server state;
// writes go through the mutation executor, which invalidates the affected
// cache keys only after the server confirms success.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/salonsuite/backend/pkg/client/cache"
)

const apiPrefix = "/api/v1"

// Client talks to the salonsuite API on behalf of one principal
type Client struct {
	baseURL string
	httpc   *http.Client
	cache   cache.Store
	exec    *MutationExecutor
	token   string
	userID  string
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient sets a custom http.Client (timeouts are the client's
// concern; the server never cancels its own work)
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) { c.httpc = httpc }
}

// WithToken sets the Bearer token used to authenticate requests
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithUserID sets the X-User-ID dev header instead of a token
func WithUserID(userID string) Option {
	return func(c *Client) { c.userID = userID }
}

// WithCache sets the cache backend, default is a fresh MemoryStore
func WithCache(store cache.Store) Option {
	return func(c *Client) { c.cache = store }
}

// New creates an API client for the given base URL, e.g. "http://localhost:8080"
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.cache == nil {
		c.cache = cache.NewMemoryStore()
	}
	c.exec = newMutationExecutor(c)
	return c
}

// Cache exposes the underlying cache store, mainly so consumers can
// subscribe to invalidations
func (c *Client) Cache() cache.Store { return c.cache }

// Close releases the cache backend
func (c *Client) Close() error { return c.cache.Close() }

// Typed collection accessors

// Services returns the services collection
func (c *Client) Services() Collection[Service] { return NewCollection[Service](c, "services") }

// Products returns the products collection
func (c *Client) Products() Collection[Product] { return NewCollection[Product](c, "products") }

// Clients returns the clients collection
func (c *Client) Clients() Collection[Customer] { return NewCollection[Customer](c, "clients") }

// Professionals returns the professionals collection
func (c *Client) Professionals() Collection[Professional] {
	return NewCollection[Professional](c, "professionals")
}

// Appointments returns the appointments collection
func (c *Client) Appointments() Collection[Appointment] {
	return NewCollection[Appointment](c, "appointments")
}

// FinancialEntries returns the financial entries collection
func (c *Client) FinancialEntries() Collection[FinancialEntry] {
	return NewCollection[FinancialEntry](c, "financial-entries")
}

// envelope mirrors the server's uniform response shape
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Errors []FieldError `json:"errors"`
	ID     string       `json:"id"`
}

// do issues one request and decodes the envelope. Non-2xx statuses come back
// as *APIError; network failures come back as *TransportError.
func (c *Client) do(ctx context.Context, method, path string, body any) (*envelope, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+apiPrefix+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	} else if c.userID != "" {
		req.Header.Set("X-User-ID", c.userID)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, &TransportError{Err: fmt.Errorf("unexpected response shape: %w", err)}
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode, Fields: env.Errors}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
		}
		return nil, apiErr
	}
	return &env, nil
}
