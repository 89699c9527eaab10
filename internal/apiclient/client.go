// Package apiclient is the HTTP layer every resource service goes through. It
// attaches the persisted session headers, maps failures into typed errors,
// logs them, and drops the persisted session on any 401.
package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"net/url"
	"sync"
	"syscall"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/Rajvenkat512/fruits-webapp/internal/config"
	"github.com/Rajvenkat512/fruits-webapp/internal/devicestore"
)

const (
	headerUserID    = "x-user-id"
	headerRequestID = "X-Request-ID"
)

// Client performs JSON requests against the storefront API.
type Client struct {
	rest   *resty.Client
	creds  devicestore.Storage
	logger *log.Logger

	mu             sync.RWMutex
	onUnauthorized []func()
}

// Option customizes a Client.
type Option func(*Client)

// WithLogger sets the logger used for request failures.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTransport replaces the underlying round tripper.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		if rt != nil {
			c.rest.SetTransport(rt)
		}
	}
}

// New builds a Client for cfg. creds supplies the token and user id attached to
// each request and is cleared on 401 responses.
func New(cfg config.Client, creds devicestore.Storage, opts ...Option) *Client {
	rest := resty.New().
		SetBaseURL(cfg.BaseURL()).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	c := &Client{
		rest:   rest,
		creds:  creds,
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(c)
	}
	rest.OnBeforeRequest(c.attachSession)
	return c
}

// OnUnauthorized registers fn to run after a 401 response cleared the
// persisted session.
func (c *Client) OnUnauthorized(fn func()) {
	c.mu.Lock()
	c.onUnauthorized = append(c.onUnauthorized, fn)
	c.mu.Unlock()
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	req := c.rest.R().SetContext(ctx).SetHeader(headerRequestID, uuid.NewString())
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		err = classifyTransport(err)
		c.logger.Printf("api: %s %s error=%v", method, path, err)
		return err
	}

	if resp.IsError() {
		apiErr := &Error{
			StatusCode: resp.StatusCode(),
			Message:    messageFromBody(resp.Body()),
			Method:     method,
			Path:       path,
			Body:       resp.Body(),
		}
		c.logger.Printf("api: %s %s status=%d message=%q", method, path, apiErr.StatusCode, apiErr.Message)
		if apiErr.StatusCode == http.StatusUnauthorized {
			c.invalidateSession(ctx)
		}
		return apiErr
	}

	if out == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		c.logger.Printf("api: %s %s decode error=%v", method, path, err)
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func (c *Client) attachSession(_ *resty.Client, r *resty.Request) error {
	if c.creds == nil {
		return nil
	}
	ctx := r.Context()
	token, ok, err := c.creds.Get(ctx, devicestore.KeyToken)
	if err != nil {
		c.logger.Printf("api: read token error=%v", err)
	} else if ok && token != "" {
		r.SetHeader("Authorization", "Bearer "+token)
	}
	userID, ok, err := c.creds.Get(ctx, devicestore.KeyUserID)
	if err != nil {
		c.logger.Printf("api: read user id error=%v", err)
	} else if ok && userID != "" {
		r.SetHeader(headerUserID, userID)
	}
	return nil
}

func (c *Client) invalidateSession(ctx context.Context) {
	if c.creds != nil {
		if err := c.creds.Remove(context.WithoutCancel(ctx), devicestore.KeyToken, devicestore.KeyUserID); err != nil {
			c.logger.Printf("api: clear session error=%v", err)
		}
	}
	c.mu.RLock()
	hooks := append([]func(){}, c.onUnauthorized...)
	c.mu.RUnlock()
	for _, fn := range hooks {
		fn()
	}
}

func classifyTransport(err error) error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	case errors.Is(err, syscall.ECONNREFUSED):
		return fmt.Errorf("%w: %w", ErrUnreachable, err)
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return fmt.Errorf("%w: %w", ErrUnreachable, err)
	}
	return err
}
