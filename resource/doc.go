// Package resource implements a Controller for global limits and governance.
//
// The Controller provides centralized management of three resource types:
//
//   - Memory: Track and limit memory held by caches and rebuild buffers
//   - Concurrency: Limit background jobs (index rebuilds, archive exports)
//   - IO: Rate-limit archive IO to avoid starving foreground operations
//
// # Memory Management
//
// Memory tracking uses a weighted semaphore for hard limits and atomic
// counters for usage tracking:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 1 << 30, // 1GB limit
//	})
//
//	if err := rc.AcquireMemory(ctx, 1024*1024); err != nil {
//	    return err // canceled while waiting for headroom
//	}
//	defer rc.ReleaseMemory(1024 * 1024)
//
// TryAcquireMemory is the non-blocking variant used by caches, which simply
// skip admission when no headroom is left.
//
// # Background Worker Limits
//
// Limits concurrent background operations (index rebuilds, archive exports):
//
//	rc := resource.NewController(resource.Config{
//	    MaxBackgroundWorkers: 4,
//	})
//
//	if err := rc.AcquireBackground(ctx); err != nil {
//	    return err
//	}
//	defer rc.ReleaseBackground()
//
// # IO Rate Limiting
//
// Token bucket rate limiter for background IO:
//
//	rc := resource.NewController(resource.Config{
//	    IOLimitBytesPerSec: 100 * 1024 * 1024, // 100MB/s
//	})
//
//	w := resource.NewRateLimitedWriter(ctx, blob, rc)
//	r := resource.NewRateLimitedReader(ctx, body, rc)
//
// # Thread Safety
//
// All Controller methods are safe for concurrent use.
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully - they become no-ops. This
// allows optional resource limiting without nil checks everywhere.
package resource
