package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOption configures a client built by [NewHTTPClient]. Options
// given a zero value leave the client untouched.
type HTTPClientOption func(*resty.Client)

// WithBaseURL sets the URL every relative request path is resolved against.
func WithBaseURL(baseURL string) HTTPClientOption {
	return func(c *resty.Client) {
		if baseURL != "" {
			c.SetBaseURL(baseURL)
		}
	}
}

// WithTimeout bounds each request.
func WithTimeout(d time.Duration) HTTPClientOption {
	return func(c *resty.Client) {
		if d > 0 {
			c.SetTimeout(d)
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) HTTPClientOption {
	return func(c *resty.Client) {
		if ua != "" {
			c.SetHeader("User-Agent", ua)
		}
	}
}

// WithCookies attaches cookies to every request.
func WithCookies(cookies []*http.Cookie) HTTPClientOption {
	return func(c *resty.Client) {
		if len(cookies) > 0 {
			c.SetCookies(cookies)
		}
	}
}

// NewHTTPClient returns an independent client that asks for JSON and never
// retries, with opts applied in order.
func NewHTTPClient(opts ...HTTPClientOption) *HTTPClient {
	client := resty.New().
		SetRetryCount(0).
		SetHeader("Accept", "application/json")

	for _, opt := range opts {
		opt(client)
	}

	return &HTTPClient{Client: client}
}
