// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the client.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, and an optional config
// file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the credential sealing
	// passphrase.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local credential store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds settings for the remote API client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// FilePath is the optional path to a JSON or TOML configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	FilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// SecretKey is the passphrase the stored session cookie is sealed with.
	// Required whenever a credential database is configured.
	// Env: APP_SECRET_KEY
	SecretKey string `env:"SECRET_KEY"`

	// Cookies is an optional session cookie string. When set, it is written
	// to the credential store on startup, replacing any stored value.
	// Env: APP_COOKIES
	Cookies string `env:"COOKIES"`
}

// Storage groups the configuration for the local credential store.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path (e.g. "labrat.db"). An empty DSN keeps
	// credentials in memory for the lifetime of the process only.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds settings for the remote API client.
type Adapter struct {
	// BaseURL is the root URL of the remote API (e.g. "https://example.net").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds a single outbound request (e.g. "30s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// UserAgent is sent with every request.
	// Env: ADAPTER_USER_AGENT
	UserAgent string `env:"USER_AGENT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// PollInterval is how often notification counters are refreshed.
	// Env: WORKERS_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`
}

// Defaults applied for fields no source has set.
const (
	DefaultBaseURL        = "https://www.furaffinity.net"
	DefaultRequestTimeout = 30 * time.Second
	DefaultUserAgent      = "labrat-client/0.1"
	DefaultPollInterval   = 5 * time.Minute
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			BaseURL:        DefaultBaseURL,
			RequestTimeout: DefaultRequestTimeout,
			UserAgent:      DefaultUserAgent,
		},
		Workers: Workers{PollInterval: DefaultPollInterval},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources. args are the command-line arguments without the
// program name.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withFile().
		withDefaults().
		build()
}
