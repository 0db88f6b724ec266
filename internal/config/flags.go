package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// ParseFlags parses all configuration flags from args.
//
// Flags:
//
//	-u remote API base URL
//	-d credential database path
//	-c/-config config file path (JSON or TOML)
//	-secret-key passphrase used to seal stored credentials
//	-cookies session cookie string to store
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-user-agent user agent sent with every request
//	-poll-interval notification poll interval (e.g., "5m")
func ParseFlags(args []string) (*StructuredConfig, error) {
	var baseURL string
	var databaseDSN string
	var configPath string
	var secretKey string
	var cookies string
	var requestTimeout time.Duration
	var userAgent string
	var pollInterval time.Duration

	fs := flag.NewFlagSet("labrat", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&baseURL, "u", "", "Remote API base URL")
	fs.StringVar(&databaseDSN, "d", "", "Credential database path")
	fs.StringVar(&configPath, "c", "", "Config file path")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")
	fs.StringVar(&secretKey, "secret-key", "", "Credential sealing passphrase")
	fs.StringVar(&cookies, "cookies", "", "Session cookie string")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&userAgent, "user-agent", "", "User agent")
	fs.DurationVar(&pollInterval, "poll-interval", 0, "Notification poll interval (e.g., 5m)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			SecretKey: secretKey,
			Cookies:   cookies,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Adapter: Adapter{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
			UserAgent:      userAgent,
		},
		Workers:  Workers{PollInterval: pollInterval},
		FilePath: configPath,
	}, nil
}
