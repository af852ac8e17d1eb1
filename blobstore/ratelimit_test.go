package blobstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitedStore_PassThrough(t *testing.T) {
	ctx := context.Background()
	inner := NewMemoryStore()
	store := NewRateLimitedStore(inner, 0) // unlimited

	require.NoError(t, store.Put(ctx, "book.txt", []byte("some text")))

	got, err := ReadAll(ctx, store, "book.txt")
	require.NoError(t, err)
	assert.Equal(t, "some text", string(got))

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"book.txt"}, names)

	require.NoError(t, store.Delete(ctx, "book.txt"))
	_, err = store.Open(ctx, "book.txt")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRateLimitedStore_ThrottlesReads(t *testing.T) {
	ctx := context.Background()
	inner := NewMemoryStore()
	data := make([]byte, 4096)
	require.NoError(t, inner.Put(ctx, "big.txt", data))

	// 1KB/s with the initial burst covering 1KB: reading 4KB needs
	// roughly 3 seconds of waiting.
	store := NewRateLimitedStore(inner, 1024)

	blob, err := store.Open(ctx, "big.txt")
	require.NoError(t, err)
	defer blob.Close()

	start := time.Now()
	buf := make([]byte, len(data))
	_, err = blob.ReadAt(ctx, buf, 0)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 2*time.Second)
}

func TestRateLimitedStore_ContextCancellation(t *testing.T) {
	ctx := context.Background()
	inner := NewMemoryStore()
	require.NoError(t, inner.Put(ctx, "big.txt", make([]byte, 1<<20)))

	store := NewRateLimitedStore(inner, 64)

	blob, err := store.Open(ctx, "big.txt")
	require.NoError(t, err)
	defer blob.Close()

	cancelCtx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()

	_, err = blob.ReadAt(cancelCtx, make([]byte, 1<<20), 0)
	assert.Error(t, err)
}
