package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFile_JSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	body := `{
		"app": {"secret_key": "s3cret", "cookies": "a=b"},
		"storage": {"db": {"dsn": "labrat.db"}},
		"adapter": {"base_url": "http://api.local", "request_timeout": "30s", "user_agent": "ua"},
		"workers": {"poll_interval": "10m"}
	}`
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	cfg, err := parseFile(p)
	require.NoError(t, err)

	assert.Equal(t, "s3cret", cfg.App.SecretKey)
	assert.Equal(t, "a=b", cfg.App.Cookies)
	assert.Equal(t, "labrat.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "http://api.local", cfg.Adapter.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "ua", cfg.Adapter.UserAgent)
	assert.Equal(t, 10*time.Minute, cfg.Workers.PollInterval)
	assert.Empty(t, cfg.FilePath)
}

func TestParseFile_TOMLBadDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(p, []byte("[adapter]\nrequest_timeout = \"forever\"\n"), 0o600))

	_, err := parseFile(p)
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"1m30s"`, want: 90 * time.Second},
		{name: "nanoseconds number", input: `1000`, want: 1000},
		{name: "bad string", input: `"later"`, wantErr: true},
		{name: "bad json", input: `{`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(2 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"2s"`, string(b))
}
