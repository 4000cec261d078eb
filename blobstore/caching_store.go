package blobstore

import (
	"bytes"
	"context"
	"io"

	"github.com/hupe1980/bibgo/internal/cache"
	"github.com/hupe1980/bibgo/resource"
)

// DefaultCacheCapacity is the object cache capacity used when none is given.
const DefaultCacheCapacity = 32 << 20 // 32MB

// CachingStore wraps a Store and caches whole objects on open.
//
// Archive objects are immutable once written, so the cache only needs
// invalidation when a name is overwritten or deleted.
type CachingStore struct {
	inner Store
	cache cache.ObjectCache
}

// NewCachingStore creates a new CachingStore.
// capacity is the cache size in bytes and defaults to DefaultCacheCapacity
// if <= 0. If rc is provided, cached bytes count against its memory limit.
func NewCachingStore(inner Store, capacity int64, rc *resource.Controller) *CachingStore {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	return &CachingStore{
		inner: inner,
		cache: cache.NewLRUCache(capacity, rc),
	}
}

// Open returns the cached object when present and reads through otherwise.
func (s *CachingStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if data, ok := s.cache.Get(ctx, name); ok {
		return io.NopCloser(bytes.NewReader(data)), nil
	}

	rc, err := s.inner.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(rc)
	closeErr := rc.Close()
	if err != nil {
		return nil, err
	}
	if closeErr != nil {
		return nil, closeErr
	}

	s.cache.Set(ctx, name, data)
	return io.NopCloser(bytes.NewReader(data)), nil
}

// Create passes through to the inner store. The cached entry for the name
// is dropped once the new blob is published.
func (s *CachingStore) Create(ctx context.Context, name string) (WritableBlob, error) {
	w, err := s.inner.Create(ctx, name)
	if err != nil {
		return nil, err
	}
	return &invalidatingBlob{WritableBlob: w, store: s, name: name}, nil
}

// Put writes through and invalidates the cached entry.
func (s *CachingStore) Put(ctx context.Context, name string, data []byte) error {
	if err := s.inner.Put(ctx, name, data); err != nil {
		return err
	}
	s.invalidate(name)
	return nil
}

// Delete removes the blob and its cached entry.
func (s *CachingStore) Delete(ctx context.Context, name string) error {
	if err := s.inner.Delete(ctx, name); err != nil {
		return err
	}
	s.invalidate(name)
	return nil
}

// List passes through to the inner store.
func (s *CachingStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}

// Stats returns cache hit/miss counters.
func (s *CachingStore) Stats() (hits, misses int64) {
	return s.cache.Stats()
}

// Close releases the cache. The inner store is not closed.
func (s *CachingStore) Close() error {
	return s.cache.Close()
}

func (s *CachingStore) invalidate(name string) {
	s.cache.Invalidate(func(key string) bool { return key == name })
}

// invalidatingBlob drops the cached entry when a streamed write is published.
type invalidatingBlob struct {
	WritableBlob
	store *CachingStore
	name  string
}

func (b *invalidatingBlob) Close() error {
	err := b.WritableBlob.Close()
	if err == nil {
		b.store.invalidate(b.name)
	}
	return err
}
