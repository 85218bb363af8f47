// Package clockfake provides a controllable clock for deterministic tests.
// A Fake clock is frozen at a chosen instant and only moves when the test
// tells it to, so TTL and timestamp logic can be exercised without sleeping.
//
// Example usage:
//
//	clock := clockfake.NewAt(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	store := cachefake.NewStore(cachefake.WithClock(clock))
//	store.SetTTL("session", "abc", time.Minute)
//	clock.Advance(2 * time.Minute) // session is now expired
package clockfake

import "time"

// Clock is the minimal time source consumed by the other fakes.
type Clock interface {
	// Now returns the clock's current instant.
	Now() time.Time
}

// Fake is a Clock frozen at a fixed instant until explicitly moved.
// It is not safe for concurrent mutation.
type Fake struct {
	now time.Time
}

// New creates a Fake clock frozen at the current wall-clock time.
func New() *Fake {
	return &Fake{now: time.Now()}
}

// NewAt creates a Fake clock frozen at the given instant.
func NewAt(t time.Time) *Fake {
	return &Fake{now: t}
}

// Now returns the frozen instant.
func (f *Fake) Now() time.Time {
	return f.now
}

// Advance moves the clock forward (or backward, with a negative duration).
func (f *Fake) Advance(d time.Duration) {
	f.now = f.now.Add(d)
}

// SetTime moves the clock to an absolute instant.
func (f *Fake) SetTime(t time.Time) {
	f.now = t
}

// Since returns the elapsed duration between t and the frozen instant.
func (f *Fake) Since(t time.Time) time.Duration {
	return f.now.Sub(t)
}

// systemClock delegates to the real wall clock.
type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// System returns a Clock backed by the real wall clock. It is the default
// time source for fakes that accept a Clock.
func System() Clock {
	return systemClock{}
}
