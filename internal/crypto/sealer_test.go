package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSealer_EmptyPassphrase(t *testing.T) {
	_, err := NewSealer("")
	assert.ErrorIs(t, err, ErrEmptyPassphrase)
}

func TestSealOpen_RoundTrip(t *testing.T) {
	s, err := NewSealer("correct horse battery staple")
	require.NoError(t, err)

	salt, blob, err := s.Seal([]byte("a=1; b=2"))
	require.NoError(t, err)
	assert.Len(t, salt, saltSize)
	assert.False(t, bytes.Contains(blob, []byte("a=1")), "blob must not contain plaintext")

	got, err := s.Open(salt, blob)
	require.NoError(t, err)
	assert.Equal(t, "a=1; b=2", string(got))
}

func TestSeal_FreshSaltAndNonce(t *testing.T) {
	s, err := NewSealer("pw")
	require.NoError(t, err)

	salt1, blob1, err := s.Seal([]byte("same"))
	require.NoError(t, err)
	salt2, blob2, err := s.Seal([]byte("same"))
	require.NoError(t, err)

	assert.NotEqual(t, salt1, salt2)
	assert.NotEqual(t, blob1, blob2)
}

func TestOpen_WrongPassphrase(t *testing.T) {
	s1, err := NewSealer("right")
	require.NoError(t, err)
	s2, err := NewSealer("wrong")
	require.NoError(t, err)

	salt, blob, err := s1.Seal([]byte("secret"))
	require.NoError(t, err)

	_, err = s2.Open(salt, blob)
	assert.ErrorIs(t, err, ErrDecrypt)
}

func TestOpen_Tampered(t *testing.T) {
	s, err := NewSealer("pw")
	require.NoError(t, err)

	salt, blob, err := s.Seal([]byte("secret"))
	require.NoError(t, err)

	blob[len(blob)-1] ^= 0xFF
	_, err = s.Open(salt, blob)
	assert.ErrorIs(t, err, ErrDecrypt)

	_, err = s.Open(salt, []byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrDecrypt)
}
