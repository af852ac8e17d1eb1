package blobstore

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	t.Run("NotFound", func(t *testing.T) {
		_, err := store.Open(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("PutAndOpen", func(t *testing.T) {
		data := []byte("O gato subiu no telhado.")
		require.NoError(t, store.Put(ctx, "books/gato.txt", data))

		blob, err := store.Open(ctx, "books/gato.txt")
		require.NoError(t, err)
		defer blob.Close()

		assert.Equal(t, int64(len(data)), blob.Size())

		buf := make([]byte, len(data))
		n, err := blob.ReadAt(ctx, buf, 0)
		require.NoError(t, err)
		assert.Equal(t, len(data), n)
		assert.Equal(t, data, buf)
	})

	t.Run("ReadRange", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "range.txt", []byte("hello world")))

		blob, err := store.Open(ctx, "range.txt")
		require.NoError(t, err)
		defer blob.Close()

		rc, err := blob.ReadRange(ctx, 6, 5)
		require.NoError(t, err)
		defer rc.Close()

		got, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "world", string(got))
	})

	t.Run("CreateStreaming", func(t *testing.T) {
		w, err := store.Create(ctx, "streamed.txt")
		require.NoError(t, err)
		_, err = w.Write([]byte("part one "))
		require.NoError(t, err)
		_, err = w.Write([]byte("part two"))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		got, err := ReadAll(ctx, store, "streamed.txt")
		require.NoError(t, err)
		assert.Equal(t, "part one part two", string(got))
	})

	t.Run("List", func(t *testing.T) {
		names, err := store.List(ctx, "books/")
		require.NoError(t, err)
		assert.Equal(t, []string{"books/gato.txt"}, names)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "gone.txt", []byte("x")))
		require.NoError(t, store.Delete(ctx, "gone.txt"))

		_, err := store.Open(ctx, "gone.txt")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("OpenReturnsCopy", func(t *testing.T) {
		data := []byte("original")
		require.NoError(t, store.Put(ctx, "copy.txt", data))
		data[0] = 'X'

		got, err := ReadAll(ctx, store, "copy.txt")
		require.NoError(t, err)
		assert.Equal(t, "original", string(got))
	})
}
