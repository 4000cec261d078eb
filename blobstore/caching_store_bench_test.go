package blobstore

import (
	"context"
	"io"
	"testing"
)

func benchmarkOpen(b *testing.B, store Store) {
	b.Helper()
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		rc, err := store.Open(ctx, "obj")
		if err != nil {
			b.Fatal(err)
		}
		if _, err := io.Copy(io.Discard, rc); err != nil {
			b.Fatal(err)
		}
		_ = rc.Close()
	}
}

func BenchmarkOpen(b *testing.B) {
	ctx := context.Background()
	data := make([]byte, 64*1024)

	inner := NewMemoryStore()
	if err := inner.Put(ctx, "obj", data); err != nil {
		b.Fatal(err)
	}

	b.Run("memory", func(b *testing.B) { benchmarkOpen(b, inner) })
	b.Run("cached", func(b *testing.B) { benchmarkOpen(b, NewCachingStore(inner, 1<<20, nil)) })
}
