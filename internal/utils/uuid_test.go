package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_OrderedV7(t *testing.T) {
	g := NewUUIDGenerator()

	first := g.Generate()
	time.Sleep(2 * time.Millisecond)
	second := g.Generate()

	u, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), u.Version())
	assert.Less(t, first, second)
}

func TestRequestIDTime(t *testing.T) {
	before := time.Now().Truncate(time.Millisecond)
	id := NewUUIDGenerator().Generate()
	after := time.Now()

	created, ok := RequestIDTime(id)
	require.True(t, ok)
	assert.False(t, created.Before(before), "created %v before %v", created, before)
	assert.False(t, created.After(after), "created %v after %v", created, after)
}

func TestRequestIDTime_Fixed(t *testing.T) {
	// 0x018f_3c2a_1b00 ms since the epoch.
	created, ok := RequestIDTime("018f3c2a-1b00-7000-8000-000000000000")
	require.True(t, ok)
	assert.Equal(t, int64(0x018f3c2a1b00), created.UnixMilli())
}

func TestRequestIDTime_Rejects(t *testing.T) {
	for _, id := range []string{"", "req-1", uuid.NewString()} {
		_, ok := RequestIDTime(id)
		assert.False(t, ok, id)
	}
}
