package cache

import (
	"strconv"
	"sync"
	"testing"
)

func TestGetSet(t *testing.T) {
	c := New[string, int](4)

	if _, ok := c.Get("missing"); ok {
		t.Error("empty cache reported a hit")
	}

	got := c.GetOrCreate("a", func() int { return 42 })
	if got != 42 {
		t.Errorf("GetOrCreate = %d, want 42", got)
	}

	got, ok := c.Get("a")
	if !ok || got != 42 {
		t.Errorf("Get = %d, %v, want 42, true", got, ok)
	}
}

func TestGetOrCreateBuildsOnce(t *testing.T) {
	c := New[string, int](4)
	builds := 0
	build := func() int { builds++; return 7 }

	for i := 0; i < 5; i++ {
		if got := c.GetOrCreate("k", build); got != 7 {
			t.Fatalf("GetOrCreate = %d, want 7", got)
		}
	}
	if builds != 1 {
		t.Errorf("build ran %d times, want 1", builds)
	}
}

func TestEviction(t *testing.T) {
	c := New[int, int](2)

	// Overfill well past total capacity; the cache must stay bounded.
	for i := 0; i < 100; i++ {
		c.GetOrCreate(i, func() int { return i })
	}
	if got, limit := c.Len(), 2*shardCount; got > limit {
		t.Errorf("Len = %d, want <= %d", got, limit)
	}
}

func TestLRUKeepsRecent(t *testing.T) {
	c := New[int, int](2)

	// With capacity 2, touching a key before inserting more keeps it alive
	// longer than untouched peers in the same shard. Drive a single shard
	// deterministically by checking survival of the refreshed key.
	c.GetOrCreate(1, func() int { return 1 })
	c.Get(1)
	for i := 2; i < 50; i++ {
		c.GetOrCreate(i, func() int { return i })
		c.Get(1)
	}
	if _, ok := c.Get(1); !ok {
		t.Error("constantly refreshed key was evicted")
	}
}

func TestConcurrent(t *testing.T) {
	c := New[string, string](32)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := strconv.Itoa(i % 50)
				v := c.GetOrCreate(key, func() string { return key })
				if v != key {
					t.Errorf("GetOrCreate(%q) = %q", key, v)
					return
				}
			}
		}()
	}
	wg.Wait()
}
