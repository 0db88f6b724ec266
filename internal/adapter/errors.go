package adapter

import "errors"

// Transport errors mapped from HTTP status codes.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("rate limited")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("site unavailable")
)

// Construction and input errors.
var (
	// ErrInvalidBaseURL is returned when the configured base URL is empty or
	// lacks a scheme or host.
	ErrInvalidBaseURL = errors.New("invalid base url")
	// ErrEmptyCookies is returned when a session client is requested with no
	// cookies at all.
	ErrEmptyCookies = errors.New("empty cookies")
	// ErrMalformedCookie is returned when the cookie string cannot be parsed.
	ErrMalformedCookie = errors.New("malformed cookie")
	// ErrInvalidKey is returned for keys the API cannot address.
	ErrInvalidKey = errors.New("invalid key")
)
