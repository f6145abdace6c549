package blobstore

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "points.csv"), []byte("1,2\n3,4\n"), 0o600))

	t.Run("Rooted", func(t *testing.T) {
		store := NewLocalStore(dir)
		rc, err := store.Open(context.Background(), "points.csv")
		require.NoError(t, err)
		defer rc.Close()

		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "1,2\n3,4\n", string(data))
	})

	t.Run("AbsoluteName", func(t *testing.T) {
		store := NewLocalStore("")
		rc, err := store.Open(context.Background(), filepath.Join(dir, "points.csv"))
		require.NoError(t, err)
		assert.NoError(t, rc.Close())
	})

	t.Run("NotFound", func(t *testing.T) {
		store := NewLocalStore(dir)
		_, err := store.Open(context.Background(), "missing.csv")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewLocalStore(dir).Open(ctx, "points.csv")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()

	data := []byte("0,0\n")
	store.Put("a", data)
	data[0] = '9'

	rc, err := store.Open(context.Background(), "a")
	require.NoError(t, err)
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "0,0\n", string(got))

	_, err = store.Open(context.Background(), "b")
	assert.ErrorIs(t, err, ErrNotFound)
}
