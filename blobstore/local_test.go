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

func TestLocalBlobStore_Lifecycle(t *testing.T) {
	tmpDir := t.TempDir()
	store := NewLocalStore(tmpDir)

	ctx := context.Background()

	// 1. Put a blob
	blobName := "purchases/data-001.txt"
	data := []byte("00000100100\n01000001001\n00010010010\n")

	require.NoError(t, store.Put(ctx, blobName, data))

	// Verify file exists on disk
	_, err := os.Stat(filepath.Join(tmpDir, "purchases", "data-001.txt"))
	require.NoError(t, err)

	// 2. Open and ReadAt
	blob, err := store.Open(ctx, blobName)
	require.NoError(t, err)
	defer blob.Close()

	require.Equal(t, int64(len(data)), blob.Size())

	buf := make([]byte, 11)
	n, err := blob.ReadAt(ctx, buf, 12)
	require.NoError(t, err)
	require.Equal(t, 11, n)
	require.Equal(t, "01000001001", string(buf))

	// 3. ReadRange
	rangeReader, err := blob.ReadRange(ctx, 24, 11)
	require.NoError(t, err)
	defer rangeReader.Close()

	rangeContent, err := io.ReadAll(rangeReader)
	require.NoError(t, err)
	require.Equal(t, "00010010010", string(rangeContent))

	// 4. List
	require.NoError(t, store.Put(ctx, "purchases/data-002.txt", []byte("1\n")))
	require.NoError(t, store.Put(ctx, "other.json", []byte("{}")))

	names, err := store.List(ctx, "purchases/")
	require.NoError(t, err)
	require.Equal(t, []string{"purchases/data-001.txt", "purchases/data-002.txt"}, names)

	all, err := store.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func TestLocalBlobStore_ReadRange_Boundaries(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	ctx := context.Background()

	data := []byte("0123456789")
	require.NoError(t, store.Put(ctx, "boundary.bin", data))

	blob, err := store.Open(ctx, "boundary.bin")
	require.NoError(t, err)
	defer blob.Close()

	// Case 1: Read full range
	r, err := blob.ReadRange(ctx, 0, 10)
	require.NoError(t, err)
	content, _ := io.ReadAll(r)
	r.Close()
	require.Equal(t, data, content)

	// Case 2: Read past end
	r, err = blob.ReadRange(ctx, 8, 5)
	require.NoError(t, err)
	content, err = io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, "89", string(content))
	r.Close()

	// Case 3: Offset past EOF
	_, err = blob.ReadRange(ctx, 20, 5)
	require.ErrorIs(t, err, io.EOF)
}

func TestLocalBlobStore_PutReplaces(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "rows.txt", []byte("0101\n")))
	require.NoError(t, store.Put(ctx, "rows.txt", []byte("1111\n0000\n")))

	blob, err := store.Open(ctx, "rows.txt")
	require.NoError(t, err)
	defer blob.Close()

	data, err := ReadAll(ctx, blob)
	require.NoError(t, err)
	assert.Equal(t, "1111\n0000\n", string(data))

	_, ok := blob.(Mappable)
	assert.True(t, ok)
}

func TestLocalBlobStore_NotFound(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	_, err := store.Open(context.Background(), "missing.txt")
	assert.ErrorIs(t, err, ErrNotFound)
}
