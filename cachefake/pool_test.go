package cachefake

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_MissThenSave(t *testing.T) {
	pool := NewPool()

	item := pool.GetItem("user:1")
	assert.Equal(t, "user:1", item.Key())
	assert.False(t, item.IsHit())
	assert.Nil(t, item.Get())

	pool.Save(item.Set("alice"))

	again := pool.GetItem("user:1")
	assert.True(t, again.IsHit())
	assert.Equal(t, "alice", again.Get())
}

func TestPool_DeferredInvisibleUntilCommit(t *testing.T) {
	pool := NewPool()

	pool.SaveDeferred(pool.GetItem("a").Set(1))
	pool.SaveDeferred(pool.GetItem("b").Set(2))

	assert.False(t, pool.HasItem("a"))
	assert.Len(t, pool.Deferred, 2)
	assert.Empty(t, pool.Saved)

	pool.Commit()

	assert.True(t, pool.HasItem("a"))
	assert.True(t, pool.HasItem("b"))
	assert.Empty(t, pool.Deferred)
	assert.Equal(t, 2, pool.Saved["b"].Get())
}

func TestPool_Expiry(t *testing.T) {
	clock := testClock()
	pool := NewPool(WithPoolClock(clock))

	item := pool.GetItem("session").Set("abc")
	pool.Save(pool.ExpiresAfter(item, time.Minute))

	require.True(t, pool.HasItem("session"))

	clock.Advance(time.Minute)
	assert.False(t, pool.HasItem("session"), "expiry equal to now means expired")
	assert.False(t, pool.GetItem("session").IsHit())
	assert.NotContains(t, pool.Saved, "session")
}

func TestPool_ZeroDurationExpiresImmediately(t *testing.T) {
	clock := testClock()
	pool := NewPool(WithPoolClock(clock))

	pool.Save(pool.ExpiresAfter(pool.GetItem("flash").Set(1), 0))

	assert.False(t, pool.HasItem("flash"))
}

func TestPool_AbsoluteExpiry(t *testing.T) {
	clock := testClock()
	pool := NewPool(WithPoolClock(clock))

	item := pool.GetItem("job").Set("payload")
	pool.Save(item.ExpiresAt(clock.Now().Add(time.Hour)))

	clock.Advance(59 * time.Minute)
	assert.True(t, pool.HasItem("job"))

	clock.Advance(time.Minute)
	assert.False(t, pool.HasItem("job"))
}

func TestPool_DeleteAndClear(t *testing.T) {
	pool := NewPool()
	pool.Save(pool.GetItem("a").Set(1))
	pool.SaveDeferred(pool.GetItem("b").Set(2))

	pool.DeleteItem("a")
	assert.False(t, pool.HasItem("a"))

	pool.Clear()
	assert.Empty(t, pool.Saved)
	assert.Empty(t, pool.Deferred)
}
