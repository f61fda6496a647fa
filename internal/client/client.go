package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

var (
	// ErrUnauthorized is returned when the server rejects the session.
	ErrUnauthorized = errors.New("client unauthorized")
)

// APIError carries the server's error body for non-2xx responses.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client is the typed HTTP client behind the data hooks. One Client is
// shared by all hooks; the bearer token is guarded for concurrent use.
type Client struct {
	http *resty.Client
	// sse has no request timeout; event streams stay open until the caller
	// cancels its context.
	sse *resty.Client

	mu    sync.RWMutex
	token string
}

func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:5001"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	base := strings.TrimRight(cfg.BaseURL, "/")
	return &Client{
		http: resty.New().SetBaseURL(base).SetTimeout(cfg.Timeout),
		sse:  resty.New().SetBaseURL(base),
	}
}

func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// BaseURL exposes the configured server address for the stream endpoints.
func (c *Client) BaseURL() string { return c.http.BaseURL }

// Login authenticates and stores the returned access token on the client.
func (c *Client) Login(ctx context.Context, email, password string) error {
	var resp struct {
		AccessToken string `json:"accessToken"`
	}
	r, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&resp).
		Post("/auth/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	if err := mapHTTPError(r); err != nil {
		return err
	}
	c.SetToken(resp.AccessToken)
	return nil
}

func (c *Client) request(ctx context.Context) *resty.Request {
	return c.authorize(c.http.R().SetContext(ctx))
}

func (c *Client) streamRequest(ctx context.Context) *resty.Request {
	return c.authorize(c.sse.R().SetContext(ctx))
}

func (c *Client) authorize(r *resty.Request) *resty.Request {
	if tok := c.Token(); tok != "" {
		r.SetHeader("Authorization", "Bearer "+tok)
	}
	return r
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	r, err := c.request(ctx).SetResult(out).Get(path)
	if err != nil {
		return err
	}
	return mapHTTPError(r)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	r, err := c.request(ctx).SetHeader("Content-Type", "application/json").
		SetBody(body).SetResult(out).Post(path)
	if err != nil {
		return err
	}
	return mapHTTPError(r)
}

func (c *Client) put(ctx context.Context, path string, body, out interface{}) error {
	req := c.request(ctx).SetHeader("Content-Type", "application/json").SetResult(out)
	if body != nil {
		req.SetBody(body)
	}
	r, err := req.Put(path)
	if err != nil {
		return err
	}
	return mapHTTPError(r)
}

func (c *Client) del(ctx context.Context, path string) error {
	r, err := c.request(ctx).Delete(path)
	if err != nil {
		return err
	}
	return mapHTTPError(r)
}

func mapHTTPError(r *resty.Response) error {
	if r.IsSuccess() {
		return nil
	}
	if r.StatusCode() == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	var body struct {
		Error string `json:"error"`
	}
	msg := r.Status()
	if err := json.Unmarshal(r.Body(), &body); err == nil && body.Error != "" {
		msg = body.Error
	}
	return &APIError{Status: r.StatusCode(), Message: msg}
}
