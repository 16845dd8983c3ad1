package cache

import (
	"strconv"
	"testing"
)

func TestNew(t *testing.T) {
	c := New[string, int](100)
	if c.Capacity() != 100 {
		t.Errorf("expected capacity 100, got %d", c.Capacity())
	}
	if c.Len() != 0 {
		t.Errorf("expected empty cache, got %d entries", c.Len())
	}

	if d := New[string, int](0); d.Capacity() != DefaultCapacity {
		t.Errorf("expected default capacity %d, got %d", DefaultCapacity, d.Capacity())
	}
}

func TestCacheGetSet(t *testing.T) {
	c := New[string, int](10)
	c.Set("key1", 42)

	val, ok := c.Get("key1")
	if !ok || val != 42 {
		t.Errorf("Get(key1) = %d, %v; want 42, true", val, ok)
	}
	if _, ok := c.Get("nonexistent"); ok {
		t.Error("expected nonexistent key to not exist")
	}

	c.Set("key1", 43)
	if val, _ := c.Get("key1"); val != 43 {
		t.Errorf("expected updated value 43, got %d", val)
	}
	if c.Len() != 1 {
		t.Errorf("update must not add an entry, got %d", c.Len())
	}
}

func TestCacheGetOrCreate(t *testing.T) {
	c := New[string, int](10)
	calls := 0
	create := func() int {
		calls++
		return 100 * calls
	}

	if v := c.GetOrCreate("k", create); v != 100 {
		t.Errorf("first GetOrCreate = %d, want 100", v)
	}
	if v := c.GetOrCreate("k", create); v != 100 {
		t.Errorf("second GetOrCreate = %d, want cached 100", v)
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[string, int](3)
	for i := 0; i < 3; i++ {
		c.Set(strconv.Itoa(i), i)
	}

	// Touch "0" so "1" becomes the oldest.
	c.Get("0")
	c.Set("3", 3)

	if _, ok := c.Get("1"); ok {
		t.Error("expected key 1 to be evicted")
	}
	for _, k := range []string{"0", "2", "3"} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("expected key %s to survive eviction", k)
		}
	}
	if c.Len() != 3 {
		t.Errorf("expected 3 entries, got %d", c.Len())
	}
	if s := c.Stats(); s.Evictions != 1 {
		t.Errorf("expected 1 eviction, got %d", s.Evictions)
	}
}

func TestCacheDeleteAndClear(t *testing.T) {
	c := New[string, int](10)
	c.Set("a", 1)
	c.Set("b", 2)

	if !c.Delete("a") {
		t.Error("expected Delete to return true for existing key")
	}
	if c.Delete("a") {
		t.Error("expected Delete to return false for removed key")
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("expected 0 entries after clear, got %d", c.Len())
	}
	c.Set("c", 3)
	if v, ok := c.Get("c"); !ok || v != 3 {
		t.Error("cache must be usable after Clear")
	}
}

func TestCacheStats(t *testing.T) {
	c := New[int, int](4)
	c.Set(1, 1)
	c.Get(1)
	c.Get(2)

	s := c.Stats()
	if s.Hits != 1 || s.Misses != 1 || s.Len != 1 || s.Capacity != 4 {
		t.Errorf("unexpected stats %+v", s)
	}
}
