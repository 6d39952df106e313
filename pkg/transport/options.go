package transport

import (
	"time"

	"github.com/rs/zerolog"
)

// DefaultTimeout bounds a search. The service usually needs 20-30 seconds.
const DefaultTimeout = 90 * time.Second

// ResponseValidator checks a raw response body before it is decoded.
type ResponseValidator interface {
	ValidateResponse(body []byte) error
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides DefaultTimeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithResponseValidator rejects responses that do not match the service
// contract. Rejected responses surface as search failures.
func WithResponseValidator(v ResponseValidator) Option {
	return func(c *Client) {
		c.validator = v
	}
}

// WithLogger sets the debug log channel.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}
