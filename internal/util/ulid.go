package util

import (
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string.
// It uses a default entropy source seeded with the current time.
// Question IDs are assigned once at bank load, so a fresh entropy source
// per call is acceptable here; high-frequency generators should share a
// monotonic source instead.
func NewULID() string {
	entropy := ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}
