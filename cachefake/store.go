// Package cachefake provides in-memory cache fakes in two flavors: Store, a
// flat key-value map with TTL semantics, and Pool/Item, a deferred-save
// cache. Both expose their backing maps directly so tests can assert on the
// stored state without going through the cache surface, and both take their
// notion of "now" from a clockfake.Clock so expiry is deterministic.
package cachefake

import (
	"time"

	"github.com/aatumaykin/fakekit/clockfake"
)

// Entry is one stored cache value. A zero ExpiresAt means the entry never
// expires.
type Entry struct {
	Value     any
	ExpiresAt time.Time
}

// Store is a fake flat cache. Items is the backing map, exported for direct
// inspection. Not safe for concurrent use.
type Store struct {
	Items map[string]Entry

	clock clockfake.Clock
}

// StoreOption configures a Store at construction time.
type StoreOption func(*Store)

// WithClock injects the time source used for expiry checks. The default is
// the real wall clock.
func WithClock(clock clockfake.Clock) StoreOption {
	return func(s *Store) { s.clock = clock }
}

// NewStore creates an empty Store.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		Items: make(map[string]Entry),
		clock: clockfake.System(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Set stores value under key with no expiry.
func (s *Store) Set(key string, value any) {
	s.Items[key] = Entry{Value: value}
}

// SetTTL stores value under key, expiring ttl from now. An entry whose
// expiry is at or before the clock's current instant is already expired, so
// a zero ttl stores an entry no lookup will ever see.
func (s *Store) SetTTL(key string, value any, ttl time.Duration) {
	s.Items[key] = Entry{Value: value, ExpiresAt: s.clock.Now().Add(ttl)}
}

// Get returns the live value stored under key. Expired entries are dropped
// on the way out.
func (s *Store) Get(key string) (any, bool) {
	entry, ok := s.Items[key]
	if !ok {
		return nil, false
	}
	if s.expired(entry) {
		delete(s.Items, key)
		return nil, false
	}
	return entry.Value, true
}

// Has reports whether a live value is stored under key.
func (s *Store) Has(key string) bool {
	_, ok := s.Get(key)
	return ok
}

// Delete removes the entry stored under key, expired or not.
func (s *Store) Delete(key string) {
	delete(s.Items, key)
}

// Clear removes every entry.
func (s *Store) Clear() {
	s.Items = make(map[string]Entry)
}

// Len returns the number of live entries, dropping expired ones as it
// counts.
func (s *Store) Len() int {
	for key, entry := range s.Items {
		if s.expired(entry) {
			delete(s.Items, key)
		}
	}
	return len(s.Items)
}

func (s *Store) expired(entry Entry) bool {
	if entry.ExpiresAt.IsZero() {
		return false
	}
	return !entry.ExpiresAt.After(s.clock.Now())
}
