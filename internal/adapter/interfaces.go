// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client for the remote site API.
//
// The primary abstraction is [RemoteAPI], which decouples the bridge from the
// underlying protocol. The package ships an HTTP/JSON implementation built on
// resty ([NewHTTPRemoteAPI], [NewHTTPRemoteAPIWithCookies]) and a [Factory]
// that produces either flavour on demand.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/labrat-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_api_mock.go -package=mock

// RemoteAPI is a client for the remote site. A value is bound to one session
// for its whole life: logging in produces a new value rather than mutating an
// existing one.
//
// Implementations are not required to be safe for concurrent use.
type RemoteAPI interface {
	// Journal fetches a journal entry with its comments.
	Journal(ctx context.Context, key models.JournalKey) (models.Response[models.Journal], error)

	// View fetches a submission page. Anonymous sessions can read views but
	// receive no fav token.
	View(ctx context.Context, key models.ViewKey) (models.Response[models.View], error)

	// Reply posts text as a reply to the comment addressed by key. Requires
	// a session.
	Reply(ctx context.Context, key models.CommentReplyKey, text string) error

	// Fav adds the submission to the session's favorites and returns the
	// refreshed view. Requires a session.
	Fav(ctx context.Context, key models.FavKey) (models.Response[models.View], error)

	// Unfav removes the submission from the session's favorites and returns
	// the refreshed view. Requires a session.
	Unfav(ctx context.Context, key models.FavKey) (models.Response[models.View], error)

	// Others fetches every non-submission notification. Requires a session.
	Others(ctx context.Context) (models.Response[models.Others], error)

	// Submissions fetches one page of the submissions inbox. Requires a
	// session.
	Submissions(ctx context.Context, key models.SubmissionsKey) (models.Response[models.Submissions], error)

	// ClearSubmissions removes the given submissions from the inbox.
	// Requires a session.
	ClearSubmissions(ctx context.Context, keys []models.ViewKey) error
}

// Factory builds [RemoteAPI] values. The bridge installs the value returned
// by Default before serving any request and swaps in WithCookies values on
// login.
type Factory interface {
	// Default returns an anonymous client.
	Default() (RemoteAPI, error)

	// WithCookies returns a client bound to the session carried by cookies,
	// a "name=value; name2=value2" string as sent in a Cookie header.
	WithCookies(cookies string) (RemoteAPI, error)
}
