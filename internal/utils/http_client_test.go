package utils

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Defaults(t *testing.T) {
	client := NewHTTPClient()

	require.NotNil(t, client.Client)
	assert.Equal(t, "application/json", client.Header.Get("Accept"))
	assert.Equal(t, 0, client.RetryCount)
	assert.Empty(t, client.Header.Get("User-Agent"))
	assert.Empty(t, client.Cookies)
}

func TestNewHTTPClient_Independent(t *testing.T) {
	assert.NotSame(t, NewHTTPClient().Client, NewHTTPClient().Client)
}

func TestNewHTTPClient_Options(t *testing.T) {
	cookies := []*http.Cookie{{Name: "a", Value: "1"}}
	client := NewHTTPClient(
		WithBaseURL("http://example.test"),
		WithTimeout(3*time.Second),
		WithUserAgent("labrat/test"),
		WithCookies(cookies),
	)

	assert.Equal(t, "http://example.test", client.BaseURL)
	assert.Equal(t, 3*time.Second, client.GetClient().Timeout)
	assert.Equal(t, "labrat/test", client.Header.Get("User-Agent"))
	assert.Equal(t, cookies, client.Cookies)
}

func TestNewHTTPClient_ZeroOptionsIgnored(t *testing.T) {
	client := NewHTTPClient(WithBaseURL(""), WithTimeout(0), WithUserAgent(""), WithCookies(nil))

	assert.Empty(t, client.BaseURL)
	assert.Zero(t, client.GetClient().Timeout)
	assert.Empty(t, client.Header.Get("User-Agent"))
}
