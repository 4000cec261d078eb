package cache

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/bibgo/resource"
)

func TestLRU_GetSet(t *testing.T) {
	c := NewLRUCache(100, nil)
	ctx := context.Background()

	c.Set(ctx, "a", []byte("alpha"))

	val, ok := c.Get(ctx, "a")
	assert.True(t, ok)
	assert.Equal(t, []byte("alpha"), val)

	_, ok = c.Get(ctx, "b")
	assert.False(t, ok)
}

func TestLRU_Eviction(t *testing.T) {
	c := NewLRUCache(10, nil)
	ctx := context.Background()

	c.Set(ctx, "a", []byte("aaaa")) // 4 bytes
	c.Set(ctx, "b", []byte("bbbb")) // 8 bytes total

	// Touch "a" so "b" becomes the eviction candidate.
	c.Get(ctx, "a")

	c.Set(ctx, "c", []byte("cccc")) // would be 12, evicts LRU

	_, ok := c.Get(ctx, "b")
	assert.False(t, ok, "least recently used entry should be evicted")
	_, ok = c.Get(ctx, "a")
	assert.True(t, ok)
	_, ok = c.Get(ctx, "c")
	assert.True(t, ok)
	assert.LessOrEqual(t, c.Size(), int64(10))
}

func TestLRU_EdgeCases(t *testing.T) {
	rc := resource.NewController(resource.Config{MemoryLimitBytes: 100})
	c := NewLRUCache(50, rc)
	ctx := context.Background()

	// 1. Item larger than capacity
	big := make([]byte, 60)
	c.Set(ctx, "big", big)
	_, ok := c.Get(ctx, "big")
	assert.False(t, ok, "item > capacity should not be cached")

	// 2. Update existing item
	c.Set(ctx, "k", make([]byte, 10))
	assert.Equal(t, int64(10), c.Size())

	c.Set(ctx, "k", make([]byte, 20))
	assert.Equal(t, int64(20), c.Size())

	c.Set(ctx, "k", make([]byte, 5))
	assert.Equal(t, int64(5), c.Size())

	// 3. Update rejected by controller limit
	rc2 := resource.NewController(resource.Config{MemoryLimitBytes: 10})
	c2 := NewLRUCache(50, rc2)
	c2.Set(ctx, "k", make([]byte, 8))

	// Growing to 12 bytes needs +4, but only 2 remain under the limit.
	c2.Set(ctx, "k", make([]byte, 12))

	val, ok := c2.Get(ctx, "k")
	assert.True(t, ok)
	assert.Len(t, val, 8, "update should have been rejected by the controller")
}

func TestLRU_ReleasesMemoryOnEvict(t *testing.T) {
	rc := resource.NewController(resource.Config{MemoryLimitBytes: 1000})
	c := NewLRUCache(10, rc)
	ctx := context.Background()

	for i := range 20 {
		c.Set(ctx, fmt.Sprintf("obj-%d", i), make([]byte, 5))
	}

	// Only two 5-byte entries fit; everything evicted must have been
	// released back to the controller.
	assert.Equal(t, c.Size(), rc.MemoryUsage())
	assert.LessOrEqual(t, rc.MemoryUsage(), int64(10))
}

func TestLRU_Stats(t *testing.T) {
	c := NewLRUCache(100, nil)
	ctx := context.Background()

	c.Set(ctx, "a", []byte{1})
	c.Get(ctx, "a") // Hit
	c.Get(ctx, "b") // Miss

	hits, misses := c.Stats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(1), misses)
}

func TestLRU_Invalidate(t *testing.T) {
	c := NewLRUCache(100, nil)
	ctx := context.Background()

	c.Set(ctx, "collections/1/papers.json", []byte("a"))
	c.Set(ctx, "collections/1/books.json", []byte("b"))
	c.Set(ctx, "MANIFEST-000001", []byte("c"))

	c.Invalidate(func(name string) bool {
		return name == "collections/1/papers.json"
	})

	_, ok := c.Get(ctx, "collections/1/papers.json")
	assert.False(t, ok)
	_, ok = c.Get(ctx, "collections/1/books.json")
	assert.True(t, ok)
	_, ok = c.Get(ctx, "MANIFEST-000001")
	assert.True(t, ok)
}
