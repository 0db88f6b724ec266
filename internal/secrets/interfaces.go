// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package secrets keeps the session cookie string between runs.
//
// Two backends are provided: an sqlite database whose values are sealed
// with a passphrase ([NewSQLiteSecrets]), and an in-memory store for tests
// and for runs without a database ([NewMemorySecrets]).
package secrets

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/secrets_mock.go -package=mock

// Secrets stores the cookies used to log in to the remote site.
type Secrets interface {
	// Get returns the stored cookie string, or [ErrSecretNotFound].
	Get(ctx context.Context) (string, error)

	// Set replaces the stored cookie string.
	Set(ctx context.Context, cookies string) error

	// Clear forgets the stored cookie string. Clearing an empty store is not
	// an error.
	Clear(ctx context.Context) error

	// Close releases the backend.
	Close() error
}
