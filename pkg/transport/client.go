// Package transport talks to the keyword research service over HTTP. A search
// is one request-response exchange; failures are returned as errors and never
// retried here.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"github.com/goliatone/go-keywordform/pkg/model"
	"github.com/goliatone/go-keywordform/pkg/submission"
)

// Service endpoints relative to the base URL.
const (
	SearchPath = "/api/v1/keywords/search"
	HealthPath = "/api/v1/keywords/health"
)

// maxErrorBody caps how much of an error response is kept for logs.
const maxErrorBody = 512

// Health is the service health payload.
type Health struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Client calls the keyword research service.
type Client struct {
	baseURL   string
	timeout   time.Duration
	http      *fasthttp.Client
	validator ResponseValidator
	logger    zerolog.Logger
	userAgent string
}

var _ submission.Transport = (*Client)(nil)

// New builds a client for the service at baseURL.
func New(baseURL string, options ...Option) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		return nil, ErrBaseURLRequired
	}
	c := &Client{
		baseURL: base,
		timeout: DefaultTimeout,
		logger:  zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	c.http = &fasthttp.Client{
		Name:                "go-keywordform",
		MaxIdleConnDuration: 90 * time.Second,
	}
	return c, nil
}

// BaseURL returns the normalised service address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Search posts form to the service and decodes the result.
func (c *Client) Search(ctx context.Context, form model.FormState) (model.ResultData, error) {
	body, err := json.Marshal(form.Clone())
	if err != nil {
		return model.ResultData{}, fmt.Errorf("transport: encode request: %w", err)
	}

	raw, err := c.do(ctx, fasthttp.MethodPost, SearchPath, body)
	if err != nil {
		return model.ResultData{}, err
	}

	if c.validator != nil {
		if err := c.validator.ValidateResponse(raw); err != nil {
			return model.ResultData{}, fmt.Errorf("transport: response contract: %w", err)
		}
	}

	var result model.ResultData
	if err := json.Unmarshal(raw, &result); err != nil {
		return model.ResultData{}, fmt.Errorf("transport: decode response: %w", err)
	}
	return result, nil
}

// Health queries the service health endpoint.
func (c *Client) Health(ctx context.Context) (Health, error) {
	raw, err := c.do(ctx, fasthttp.MethodGet, HealthPath, nil)
	if err != nil {
		return Health{}, err
	}
	var out Health
	if err := json.Unmarshal(raw, &out); err != nil {
		return Health{}, fmt.Errorf("transport: decode health: %w", err)
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	timeout, err := c.effectiveTimeout(ctx)
	if err != nil {
		return nil, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	url := c.baseURL + path
	req.SetRequestURI(url)
	req.Header.SetMethod(method)
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.SetUserAgent(c.userAgent)
	}
	if body != nil {
		req.Header.SetContentType("application/json")
		req.SetBody(body)
	}

	c.logger.Debug().
		Str("method", method).
		Str("url", url).
		Int("request_size", len(body)).
		Dur("timeout", timeout).
		Msg("sending request")

	if err := c.http.DoTimeout(req, resp, timeout); err != nil {
		if errors.Is(err, fasthttp.ErrTimeout) {
			return nil, fmt.Errorf("%w after %s: %s", ErrTimeout, timeout, url)
		}
		return nil, fmt.Errorf("transport: %s %s: %w", method, url, err)
	}

	status := resp.StatusCode()
	if status < 200 || status > 299 {
		return nil, &StatusError{StatusCode: status, Body: truncate(string(resp.Body()), maxErrorBody)}
	}

	// resp is released on return; copy the body out.
	out := append([]byte(nil), resp.Body()...)
	c.logger.Debug().
		Int("status", status).
		Int("response_size", len(out)).
		Msg("response received")
	return out, nil
}

func (c *Client) effectiveTimeout(ctx context.Context) (time.Duration, error) {
	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return 0, context.DeadlineExceeded
		}
		if remaining < timeout {
			timeout = remaining
		}
	}
	return timeout, nil
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
