package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestCache(capacity int, ttl time.Duration) (*LRUCache, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	return NewLRUCache(capacity, ttl, WithClock(clock.now)), clock
}

func TestLRUCache(t *testing.T) {
	tests := []struct {
		name    string
		actions func(t *testing.T, c *LRUCache, clock *fakeClock)
	}{
		{
			name: "hit within ttl",
			actions: func(t *testing.T, c *LRUCache, clock *fakeClock) {
				c.Set("ORD_1", []byte("1"))
				clock.advance(time.Second - time.Nanosecond)

				v, ok := c.Get("ORD_1")
				require.True(t, ok)
				assert.Equal(t, []byte("1"), v)
			},
		},
		{
			name: "miss at ttl",
			actions: func(t *testing.T, c *LRUCache, clock *fakeClock) {
				c.Set("ORD_1", []byte("1"))
				clock.advance(time.Second)

				_, ok := c.Get("ORD_1")
				assert.False(t, ok)
				assert.Equal(t, 0, c.Len())
			},
		},
		{
			name: "least recently used evicted",
			actions: func(t *testing.T, c *LRUCache, _ *fakeClock) {
				c.Set("ORD_1", []byte("1"))
				c.Set("ORD_2", []byte("2"))
				c.Get("ORD_1")
				c.Set("ORD_3", []byte("3"))

				_, ok := c.Get("ORD_2")
				assert.False(t, ok)
				_, ok = c.Get("ORD_1")
				assert.True(t, ok)
				_, ok = c.Get("ORD_3")
				assert.True(t, ok)
			},
		},
		{
			name: "overwrite restarts ttl",
			actions: func(t *testing.T, c *LRUCache, clock *fakeClock) {
				c.Set("ORD_1", []byte("1"))
				clock.advance(600 * time.Millisecond)
				c.Set("ORD_1", []byte("2"))
				clock.advance(600 * time.Millisecond)

				v, ok := c.Get("ORD_1")
				require.True(t, ok)
				assert.Equal(t, []byte("2"), v)
				assert.Equal(t, 1, c.Len())
			},
		},
		{
			name: "delete",
			actions: func(t *testing.T, c *LRUCache, _ *fakeClock) {
				c.Set("ORD_1", []byte("1"))
				c.Delete("ORD_1")
				c.Delete("ORD_missing")

				_, ok := c.Get("ORD_1")
				assert.False(t, ok)
				assert.Equal(t, 0, c.Len())
			},
		},
		{
			name: "sweep drops only expired",
			actions: func(t *testing.T, c *LRUCache, clock *fakeClock) {
				c.Set("ORD_1", []byte("1"))
				clock.advance(700 * time.Millisecond)
				c.Set("ORD_2", []byte("2"))
				clock.advance(400 * time.Millisecond)

				assert.Equal(t, 1, c.sweep())
				_, ok := c.Get("ORD_2")
				assert.True(t, ok)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, clock := newTestCache(2, time.Second)
			tt.actions(t, c, clock)
		})
	}
}

func TestLRUCache_Janitor(t *testing.T) {
	c := NewLRUCache(10, time.Millisecond, WithJanitorInterval(5*time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, c.Start(ctx))
	c.Set("ORD_1", []byte("1"))

	assert.Eventually(t, func() bool { return c.Len() == 0 }, time.Second, 5*time.Millisecond)
}
