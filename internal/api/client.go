package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ytget/rickmorty/internal/model"
)

// Client defaults
const (
	DefaultBaseURL = "http://localhost:8080/api/characters"
	DefaultTimeout = 10 * time.Second

	// MaxRetries is the number of retries after the first attempt. There is
	// no backoff between attempts.
	MaxRetries = 2

	RequestIDHeader = "X-Request-Id"
	RequestIDPrefix = "req-"

	maxBodyBytes  = 10 << 20
	maxImageBytes = 5 << 20
)

// Client calls the characters REST API
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	timeout    time.Duration
	logger     *zap.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the per-attempt timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger sets the logger used for request tracing
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient creates a client for the collection endpoint at baseURL
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url must start with http:// or https://, got %q", baseURL)
	}

	c := &Client{
		baseURL:    u,
		httpClient: http.DefaultClient,
		timeout:    DefaultTimeout,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the collection endpoint the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// ListCharacters fetches the whole collection
func (c *Client) ListCharacters(ctx context.Context) ([]model.Character, error) {
	var characters []model.Character
	err := c.getWithRetry(ctx, c.endpoint(nil), func(body []byte) error {
		var decodeErr error
		characters, decodeErr = decodeCollection(body)
		return decodeErr
	})
	if err != nil {
		return nil, err
	}
	return characters, nil
}

// GetCharacter fetches a single character by id
func (c *Client) GetCharacter(ctx context.Context, id int) (model.Character, error) {
	var character model.Character
	endpoint := c.baseURL.JoinPath(strconv.Itoa(id))
	err := c.getWithRetry(ctx, endpoint, func(body []byte) error {
		return json.Unmarshal(body, &character)
	})
	if err != nil {
		return model.Character{}, err
	}
	return character, nil
}

// SearchByName fetches the characters matching the name filter
func (c *Client) SearchByName(ctx context.Context, name string) ([]model.Character, error) {
	var characters []model.Character
	err := c.getWithRetry(ctx, c.endpoint(url.Values{"name": {name}}), func(body []byte) error {
		var decodeErr error
		characters, decodeErr = decodeCollection(body)
		return decodeErr
	})
	if err != nil {
		return nil, err
	}
	return characters, nil
}

// FetchImage downloads an avatar image. It is attempted once.
func (c *Client) FetchImage(ctx context.Context, imageURL string) ([]byte, error) {
	u, err := url.Parse(imageURL)
	if err != nil || u.Scheme == "" {
		return nil, &Error{Kind: KindClient, Err: fmt.Errorf("invalid image url %q", imageURL)}
	}

	var data []byte
	err = c.getOnce(ctx, u, RequestIDPrefix+uuid.NewString(), maxImageBytes, func(body []byte) error {
		data = body
		return nil
	})
	return data, err
}

// endpoint returns the collection URL with the given query
func (c *Client) endpoint(query url.Values) *url.URL {
	u := *c.baseURL
	if len(query) > 0 {
		q := u.Query()
		for key, values := range query {
			for _, v := range values {
				q.Add(key, v)
			}
		}
		u.RawQuery = q.Encode()
	}
	return &u
}

// getWithRetry attempts the request once plus MaxRetries retries
func (c *Client) getWithRetry(ctx context.Context, u *url.URL, decode func([]byte) error) error {
	requestID := RequestIDPrefix + uuid.NewString()
	log := c.logger.With(zap.String("request_id", requestID), zap.String("url", u.String()))

	var lastErr error
	for attempt := 0; attempt <= MaxRetries; attempt++ {
		if attempt > 0 {
			if ctx.Err() != nil {
				return lastErr
			}
			log.Debug("retrying request", zap.Int("attempt", attempt+1))
		}

		err := c.getOnce(ctx, u, requestID, maxBodyBytes, decode)
		if err == nil {
			return nil
		}

		lastErr = err
		fields := []zap.Field{zap.Int("attempt", attempt+1)}
		var apiErr *Error
		if errors.As(err, &apiErr) {
			fields = append(fields, zap.String("kind", apiErr.Kind.String()), zap.Int("status", apiErr.Status), zap.String("detail", apiErr.Detail()))
		}
		log.Warn("request attempt failed", fields...)

		if ctx.Err() != nil {
			return lastErr
		}
	}

	return lastErr
}

// getOnce performs a single GET and hands the body of a 2xx answer to decode
func (c *Client) getOnce(ctx context.Context, u *url.URL, requestID string, limit int64, decode func([]byte) error) error {
	attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, u.String(), nil)
	if err != nil {
		return &Error{Kind: KindClient, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Kind: KindConnection, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return statusError(resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, limit))
	if err != nil {
		return &Error{Kind: KindConnection, Status: resp.StatusCode, Err: err}
	}

	if err := decode(body); err != nil {
		return &Error{Kind: KindClient, Status: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// decodeCollection accepts either a bare JSON array or the paginated envelope
func decodeCollection(body []byte) ([]model.Character, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var characters []model.Character
		if err := json.Unmarshal(trimmed, &characters); err != nil {
			return nil, err
		}
		return characters, nil
	}

	var page model.Page
	if err := json.Unmarshal(trimmed, &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}
