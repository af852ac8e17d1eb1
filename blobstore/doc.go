// Package blobstore provides storage abstraction for book texts and snapshots.
//
// BlobStore is the interface for reading and writing data blobs.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: Local filesystem with mmap reads
//   - MemoryStore: In-memory store for tests
//   - s3.Store: Amazon S3 with range reads and multipart uploads
//   - minio.Store: MinIO and other S3-compatible storage
//   - RateLimitedStore: wraps any store with a read-throughput limit
//
// # Custom Implementations
//
// Implement the BlobStore interface to support custom storage backends.
// For cloud backends, implement ReadRange for efficient partial reads.
package blobstore
