package utils

import (
	"time"

	"github.com/google/uuid"
)

// UUIDGenerator produces the bridge's request ids. Ids are UUIDv7, so they
// sort by creation time and carry it: see [RequestIDTime].
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string, falling back to a random v4 if the
// clock-based generator fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// RequestIDTime returns the millisecond creation time embedded in a UUIDv7
// request id. It reports false for any other id, including the v4 fallback.
func RequestIDTime(id string) (time.Time, bool) {
	u, err := uuid.Parse(id)
	if err != nil || u.Version() != 7 {
		return time.Time{}, false
	}

	// The first 48 bits are the Unix time in milliseconds, big endian.
	var ms int64
	for _, b := range u[:6] {
		ms = ms<<8 | int64(b)
	}
	return time.UnixMilli(ms), true
}
