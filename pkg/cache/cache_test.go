package cache

import (
	"context"
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func (f *fakeClock) now() time.Time          { return f.t }
func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func TestLRUCache(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		capacity int
		ttl      time.Duration
		actions  func(c *LRUCache, clock *fakeClock, t *testing.T)
	}{
		{
			name:     "set and get within TTL",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache, _ *fakeClock, t *testing.T) {
				c.Set(ctx, "a", []byte("1"))
				if v, ok := c.Get(ctx, "a"); !ok || string(v) != "1" {
					t.Errorf("expected value=1, got=%v, ok=%v", v, ok)
				}
			},
		},
		{
			name:     "get after expiration",
			capacity: 2,
			ttl:      time.Minute,
			actions: func(c *LRUCache, clock *fakeClock, t *testing.T) {
				c.Set(ctx, "a", []byte("1"))
				clock.advance(time.Minute + time.Second)
				if _, ok := c.Get(ctx, "a"); ok {
					t.Errorf("expected key to be expired")
				}
				if c.Size() != 0 {
					t.Errorf("expected expired key to be dropped, size=%d", c.Size())
				}
			},
		},
		{
			name:     "evict oldest when over capacity",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache, _ *fakeClock, t *testing.T) {
				c.Set(ctx, "a", []byte("1"))
				c.Set(ctx, "b", []byte("2"))
				c.Set(ctx, "c", []byte("3"))
				if _, ok := c.Get(ctx, "a"); ok {
					t.Errorf("expected key 'a' to be evicted")
				}
				if v, ok := c.Get(ctx, "b"); !ok || string(v) != "2" {
					t.Errorf("expected b=2, got %v", v)
				}
				if v, ok := c.Get(ctx, "c"); !ok || string(v) != "3" {
					t.Errorf("expected c=3, got %v", v)
				}
			},
		},
		{
			name:     "get refreshes recency",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache, _ *fakeClock, t *testing.T) {
				c.Set(ctx, "a", []byte("1"))
				c.Set(ctx, "b", []byte("2"))
				c.Get(ctx, "a")
				c.Set(ctx, "c", []byte("3"))
				if _, ok := c.Get(ctx, "b"); ok {
					t.Errorf("expected key 'b' to be evicted")
				}
				if _, ok := c.Get(ctx, "a"); !ok {
					t.Errorf("expected key 'a' to survive")
				}
			},
		},
		{
			name:     "update value resets TTL",
			capacity: 2,
			ttl:      time.Minute,
			actions: func(c *LRUCache, clock *fakeClock, t *testing.T) {
				c.Set(ctx, "a", []byte("1"))
				clock.advance(40 * time.Second)
				c.Set(ctx, "a", []byte("2"))
				clock.advance(40 * time.Second)
				if v, ok := c.Get(ctx, "a"); !ok || string(v) != "2" {
					t.Errorf("expected updated value=2, got=%v", v)
				}
			},
		},
		{
			name:     "delete removes key",
			capacity: 2,
			ttl:      time.Minute,
			actions: func(c *LRUCache, _ *fakeClock, t *testing.T) {
				c.Set(ctx, "a", []byte("1"))
				c.Delete(ctx, "a")
				c.Delete(ctx, "missing")
				if _, ok := c.Get(ctx, "a"); ok {
					t.Errorf("expected key to be deleted")
				}
			},
		},
		{
			name:     "cleanup removes expired",
			capacity: 3,
			ttl:      time.Minute,
			actions: func(c *LRUCache, clock *fakeClock, t *testing.T) {
				c.Set(ctx, "a", []byte("1"))
				clock.advance(30 * time.Second)
				c.Set(ctx, "b", []byte("2"))
				clock.advance(45 * time.Second)

				c.cleanup()

				if c.Size() != 1 {
					t.Errorf("expected only 'b' to remain, size=%d", c.Size())
				}
				if _, ok := c.Get(ctx, "b"); !ok {
					t.Errorf("expected 'b' to survive cleanup")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
			c := NewLRUCache(tt.capacity, tt.ttl)
			c.now = clock.now
			tt.actions(c, clock, t)
		})
	}
}
