// Package clock provides the current-time collaborator used by components
// whose behavior depends on "now" (token expiry, date-range windows).
// Injecting a Clock keeps that behavior deterministic in tests.
package clock

import "time"

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

// realClock reads the wall clock.
type realClock struct{}

// Now returns the current UTC instant.
func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// New returns a Clock backed by the wall clock. Instants are always UTC.
func New() Clock {
	return realClock{}
}

// Fixed is a Clock pinned to a single instant. Tests use it to make token
// expiry and date-window resolution deterministic.
type Fixed struct {
	Instant time.Time
}

// Now returns the pinned instant.
func (f *Fixed) Now() time.Time {
	return f.Instant
}

// NewFixed creates a Clock pinned to the given instant.
func NewFixed(instant time.Time) *Fixed {
	return &Fixed{Instant: instant}
}

// Advance moves the pinned instant forward by d.
func (f *Fixed) Advance(d time.Duration) {
	f.Instant = f.Instant.Add(d)
}
