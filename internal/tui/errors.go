// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/labrat-client/internal/adapter"
	"github.com/MKhiriev/labrat-client/internal/bridge"
)

// ErrUserQuit is returned by Run when the user leaves the program.
var ErrUserQuit = errors.New("user quit")

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return "Not logged in. Store your cookies with -cookies and restart."
	case errors.Is(err, bridge.ErrInvalidCredentials), errors.Is(err, bridge.ErrClientConstruction):
		return "Stored cookies are unusable: " + err.Error()
	case errors.Is(err, adapter.ErrForbidden):
		return "The site refused the request; reload the page and try again."
	case errors.Is(err, adapter.ErrTooManyRequests):
		return "Too many requests, wait a minute and try again."
	case errors.Is(err, adapter.ErrServiceUnavailable), errors.Is(err, adapter.ErrBadGateway):
		return "The site is down right now"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or the site is unavailable"
	}

	return err.Error()
}
