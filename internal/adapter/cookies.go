package adapter

import (
	"fmt"
	"net/http"
	"strings"
)

// ParseCookies splits a Cookie header value into individual cookies.
// Returns [ErrEmptyCookies] for a blank string and [ErrMalformedCookie] when
// any pair is not a valid name=value cookie.
func ParseCookies(raw string) ([]*http.Cookie, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrEmptyCookies
	}

	cookies, err := http.ParseCookie(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedCookie, err)
	}
	if len(cookies) == 0 {
		return nil, ErrEmptyCookies
	}

	return cookies, nil
}
