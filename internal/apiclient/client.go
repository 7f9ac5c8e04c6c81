// Package apiclient is the configured request pipeline toward the upstream
// course-management API. Every outgoing request gets the bearer token attached
// when one is persisted; every 401 response clears the persisted token and
// fires the injected auth-failure policy. No call site handles either by hand.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	xerrors "campus-portal/internal/pkg/errors"
	"campus-portal/internal/pkg/requestid"
	"campus-portal/internal/pkg/token"

	"go.uber.org/zap"
)

// RequestInterceptor runs before a request is sent.
type RequestInterceptor func(ctx context.Context, req *http.Request) error

// ResponseInterceptor runs after a response arrives, before status handling.
type ResponseInterceptor func(ctx context.Context, resp *http.Response) error

// AuthFailureHandler is invoked once per 401 response. The default handler
// removes the persisted token; the serving layer turns the resulting
// ErrSessionExpired into a navigation to the login entry point.
type AuthFailureHandler func(ctx context.Context)

// APIError is a non-2xx upstream response other than 401.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream responded %d: %s", e.Status, e.Message)
}

type Client struct {
	baseURL       string
	httpClient    *http.Client
	tokens        token.Store
	onAuthFailure AuthFailureHandler
	logger        *zap.Logger

	reqInterceptors  []RequestInterceptor
	respInterceptors []ResponseInterceptor
}

type Option func(*Client)

// WithHTTPClient replaces the underlying transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTokens sets the default token store. A request-scoped store attached to
// the context (token.NewContext) always takes precedence.
func WithTokens(ts token.Store) Option {
	return func(c *Client) { c.tokens = ts }
}

// WithOnAuthFailure swaps the 401 policy.
func WithOnAuthFailure(h AuthFailureHandler) Option {
	return func(c *Client) { c.onAuthFailure = h }
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithRequestInterceptor appends an interceptor to the request phase.
func WithRequestInterceptor(ic RequestInterceptor) Option {
	return func(c *Client) { c.reqInterceptors = append(c.reqInterceptors, ic) }
}

// WithResponseInterceptor appends an interceptor to the response phase.
func WithResponseInterceptor(ic ResponseInterceptor) Option {
	return func(c *Client) { c.respInterceptors = append(c.respInterceptors, ic) }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// effectiveTokens resolves the store for this call: request-scoped first,
// client default second.
func (c *Client) effectiveTokens(ctx context.Context) token.Store {
	if ts, ok := token.FromContext(ctx); ok {
		return ts
	}
	return c.tokens
}

func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return xerrors.Wrap(err, "failed to encode request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return xerrors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Request phase: bearer injection, request id, then custom interceptors.
	if ts := c.effectiveTokens(ctx); ts != nil {
		if tok, ok := ts.Get(); ok {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}
	if rid, ok := requestid.FromContext(ctx); ok {
		req.Header.Set(requestid.Header, rid)
	}
	for _, ic := range c.reqInterceptors {
		if err := ic(ctx, req); err != nil {
			return err
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("upstream request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return xerrors.Wrap(err, "upstream request failed")
	}
	defer resp.Body.Close()

	for _, ic := range c.respInterceptors {
		if err := ic(ctx, resp); err != nil {
			return err
		}
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		// Hard reset: the persisted token is dead no matter which endpoint
		// noticed first. Multiple in-flight requests may land here at once;
		// removal is idempotent.
		c.logger.Warn("authentication failure from upstream",
			zap.String("method", method),
			zap.String("path", path),
		)
		c.handleAuthFailure(ctx)
		return xerrors.ErrSessionExpired

	case resp.StatusCode == http.StatusForbidden:
		// Authorization failure: the caller is authenticated but lacks
		// permission. The session stays intact.
		return xerrors.ErrForbidden

	case resp.StatusCode >= 400:
		return &APIError{Status: resp.StatusCode, Message: readMessage(resp.Body)}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return xerrors.Wrap(err, "failed to decode upstream response")
	}
	return nil
}

func (c *Client) handleAuthFailure(ctx context.Context) {
	if c.onAuthFailure != nil {
		c.onAuthFailure(ctx)
		return
	}
	if ts := c.effectiveTokens(ctx); ts != nil {
		ts.Remove()
	}
}

// readMessage pulls the human-readable message out of an upstream error body.
func readMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 64<<10))
	if err != nil || len(raw) == 0 {
		return "request failed"
	}
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if envelope.Message != "" {
			return envelope.Message
		}
		if envelope.Error != "" {
			return envelope.Error
		}
	}
	return string(raw)
}
