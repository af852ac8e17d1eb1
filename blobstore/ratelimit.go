package blobstore

import (
	"context"
	"io"

	"golang.org/x/time/rate"
)

// RateLimitedStore wraps a BlobStore with a read-throughput limit.
// Useful when bulk-loading a shelf of books from shared storage without
// starving foreground traffic.
type RateLimitedStore struct {
	inner   BlobStore
	limiter *rate.Limiter
}

// NewRateLimitedStore wraps inner with a bytes-per-second read limit.
// A limit of 0 disables limiting.
func NewRateLimitedStore(inner BlobStore, bytesPerSec int64) *RateLimitedStore {
	var limiter *rate.Limiter
	if bytesPerSec > 0 {
		limiter = rate.NewLimiter(rate.Limit(bytesPerSec), int(bytesPerSec))
	}
	return &RateLimitedStore{inner: inner, limiter: limiter}
}

// wait blocks until the limiter allows n bytes.
func (s *RateLimitedStore) wait(ctx context.Context, n int) error {
	if s.limiter == nil || n <= 0 {
		return nil
	}
	// WaitN rejects bursts larger than the limiter allows; split them.
	burst := s.limiter.Burst()
	for n > burst {
		if err := s.limiter.WaitN(ctx, burst); err != nil {
			return err
		}
		n -= burst
	}
	return s.limiter.WaitN(ctx, n)
}

// Open opens a blob for reading. Reads through the returned Blob count
// against the throughput limit.
func (s *RateLimitedStore) Open(ctx context.Context, name string) (Blob, error) {
	blob, err := s.inner.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	return &rateLimitedBlob{Blob: blob, store: s}, nil
}

// Create passes through to the inner store. Writes are not limited.
func (s *RateLimitedStore) Create(ctx context.Context, name string) (WritableBlob, error) {
	return s.inner.Create(ctx, name)
}

// Put passes through to the inner store.
func (s *RateLimitedStore) Put(ctx context.Context, name string, data []byte) error {
	return s.inner.Put(ctx, name, data)
}

// Delete passes through to the inner store.
func (s *RateLimitedStore) Delete(ctx context.Context, name string) error {
	return s.inner.Delete(ctx, name)
}

// List passes through to the inner store.
func (s *RateLimitedStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}

type rateLimitedBlob struct {
	Blob
	store *RateLimitedStore
}

func (b *rateLimitedBlob) ReadAt(ctx context.Context, p []byte, off int64) (int, error) {
	if err := b.store.wait(ctx, len(p)); err != nil {
		return 0, err
	}
	return b.Blob.ReadAt(ctx, p, off)
}

func (b *rateLimitedBlob) ReadRange(ctx context.Context, off, length int64) (io.ReadCloser, error) {
	if err := b.store.wait(ctx, int(length)); err != nil {
		return nil, err
	}
	return b.Blob.ReadRange(ctx, off, length)
}
