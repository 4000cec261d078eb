package blobstore

import (
	"context"
	"fmt"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Lifecycle(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "obj", []byte("data")))
	assert.Equal(t, 1, store.Len())

	rc, err := store.Open(ctx, "obj")
	require.NoError(t, err)
	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "data", string(content))

	require.NoError(t, store.Delete(ctx, "obj"))
	assert.Zero(t, store.Len())

	_, err = store.Open(ctx, "obj")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_CreateStreams(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	w, err := store.Create(ctx, "obj")
	require.NoError(t, err)

	_, err = w.Write([]byte("part1 "))
	require.NoError(t, err)
	_, err = w.Write([]byte("part2"))
	require.NoError(t, err)

	// Not visible before Close.
	_, err = store.Open(ctx, "obj")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, w.Close())

	rc, err := store.Open(ctx, "obj")
	require.NoError(t, err)
	content, _ := io.ReadAll(rc)
	rc.Close()
	assert.Equal(t, "part1 part2", string(content))
}

func TestMemoryStore_CallerMutationIsolated(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	data := []byte("original")
	require.NoError(t, store.Put(ctx, "obj", data))

	// Mutating the caller's slice must not affect the stored blob.
	data[0] = 'X'

	rc, err := store.Open(ctx, "obj")
	require.NoError(t, err)
	content, _ := io.ReadAll(rc)
	rc.Close()
	assert.Equal(t, "original", string(content))
}

func TestMemoryStore_ListPrefix(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "collections/1/a.json", nil))
	require.NoError(t, store.Put(ctx, "collections/2/b.json", nil))
	require.NoError(t, store.Put(ctx, "MANIFEST-000001", nil))

	names, err := store.List(ctx, "collections/")
	require.NoError(t, err)
	assert.Equal(t, []string{"collections/1/a.json", "collections/2/b.json"}, names)

	all, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestMemoryStore_PutIfNotExists(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.PutIfNotExists(ctx, "obj", []byte("v1")))
	require.ErrorIs(t, store.PutIfNotExists(ctx, "obj", []byte("v2")), ErrConflict)

	// The first write wins.
	rc, err := store.Open(ctx, "obj")
	require.NoError(t, err)
	content, _ := io.ReadAll(rc)
	rc.Close()
	assert.Equal(t, "v1", string(content))
}

func TestMemoryStore_Concurrent(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := range 50 {
				name := fmt.Sprintf("obj-%d-%d", n, j)
				if err := store.Put(ctx, name, []byte(name)); err != nil {
					t.Error(err)
					return
				}
				rc, err := store.Open(ctx, name)
				if err != nil {
					t.Error(err)
					return
				}
				io.ReadAll(rc)
				rc.Close()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 400, store.Len())
}
