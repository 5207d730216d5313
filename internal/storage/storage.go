// Package storage provides the persistence and clock ports the note
// store is built against, plus the SQLite-backed and in-memory adapters.
package storage

import "time"

// Persistence is the key-value blob port. One JSON blob per key, read
// and written whole. A missing key reads back as the empty string with
// no error; only real I/O failures produce errors.
type Persistence interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}

// Clock abstracts the current time so filtering and timestamp logic can
// be tested deterministically.
type Clock interface {
	Now() time.Time
}

// SystemClock is the real clock.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same instant. Test helper.
type FixedClock struct {
	Time time.Time
}

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time {
	return c.Time
}
