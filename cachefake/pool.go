package cachefake

import (
	"time"

	"github.com/aatumaykin/fakekit/clockfake"
)

// Item is one cache pool entry. An item fetched for a key that was never
// saved reports IsHit false; its value becomes meaningful once Set.
type Item struct {
	key       string
	value     any
	hit       bool
	expiresAt time.Time
}

// Key returns the key the item was fetched or created for.
func (i *Item) Key() string { return i.key }

// Get returns the item's value (nil for a miss that was never Set).
func (i *Item) Get() any { return i.value }

// IsHit reports whether the item was found live in the pool.
func (i *Item) IsHit() bool { return i.hit }

// Set replaces the item's value.
func (i *Item) Set(value any) *Item {
	i.value = value
	return i
}

// ExpiresAt pins the item's expiry to an absolute instant. The zero time
// clears the expiry.
func (i *Item) ExpiresAt(t time.Time) *Item {
	i.expiresAt = t
	return i
}

// Pool is a fake cache pool with deferred saves. Saved and Deferred are the
// backing maps, exported for direct inspection. Not safe for concurrent
// use.
type Pool struct {
	Saved    map[string]*Item
	Deferred map[string]*Item

	clock clockfake.Clock
}

// PoolOption configures a Pool at construction time.
type PoolOption func(*Pool)

// WithPoolClock injects the time source used for expiry checks.
func WithPoolClock(clock clockfake.Clock) PoolOption {
	return func(p *Pool) { p.clock = clock }
}

// NewPool creates an empty Pool.
func NewPool(opts ...PoolOption) *Pool {
	p := &Pool{
		Saved:    make(map[string]*Item),
		Deferred: make(map[string]*Item),
		clock:    clockfake.System(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ExpiresAfter pins the item's expiry relative to the pool's clock. A zero
// or negative duration makes the item immediately expired.
func (p *Pool) ExpiresAfter(item *Item, d time.Duration) *Item {
	return item.ExpiresAt(p.clock.Now().Add(d))
}

// GetItem returns the item saved under key, or a fresh miss item for it.
// Expired items are dropped and reported as misses.
func (p *Pool) GetItem(key string) *Item {
	item, ok := p.Saved[key]
	if ok && !p.expired(item) {
		return item
	}
	if ok {
		delete(p.Saved, key)
	}
	return &Item{key: key}
}

// HasItem reports whether a live item is saved under key.
func (p *Pool) HasItem(key string) bool {
	item, ok := p.Saved[key]
	if !ok {
		return false
	}
	if p.expired(item) {
		delete(p.Saved, key)
		return false
	}
	return true
}

// Save stores the item immediately and marks it a hit for later fetches.
func (p *Pool) Save(item *Item) {
	item.hit = true
	p.Saved[item.key] = item
}

// SaveDeferred queues the item; it becomes visible only after Commit.
func (p *Pool) SaveDeferred(item *Item) {
	p.Deferred[item.key] = item
}

// Commit moves every deferred item into the saved map.
func (p *Pool) Commit() {
	for key, item := range p.Deferred {
		item.hit = true
		p.Saved[key] = item
		delete(p.Deferred, key)
	}
}

// DeleteItem removes the item saved under key.
func (p *Pool) DeleteItem(key string) {
	delete(p.Saved, key)
}

// Clear removes every saved and deferred item.
func (p *Pool) Clear() {
	p.Saved = make(map[string]*Item)
	p.Deferred = make(map[string]*Item)
}

func (p *Pool) expired(item *Item) bool {
	if item.expiresAt.IsZero() {
		return false
	}
	return !item.expiresAt.After(p.clock.Now())
}
