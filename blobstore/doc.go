// Package blobstore provides storage abstraction for bibgo's archive objects.
//
// Store is the interface for reading and writing data blobs (collection
// objects, manifests). Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: Local filesystem with atomic rename-based writes
//   - MemoryStore: In-memory store for testing
//   - s3.Store: Amazon S3 with streaming uploads and CRC32C checksums
//   - minio.Store: MinIO and other S3-compatible object storage
//
// # Custom Implementations
//
// Implement the Store interface to support custom storage backends:
//
//	type Store interface {
//	    Open(ctx, name) (io.ReadCloser, error)   // Open for reading
//	    Create(ctx, name) (WritableBlob, error)  // Create for streaming writes
//	    Put(ctx, name, data) error               // One-call write
//	    Delete(ctx, name) error
//	    List(ctx, prefix) ([]string, error)
//	}
//
// Implementations should return blobstore.ErrNotFound from Open when the
// named blob does not exist.
package blobstore
