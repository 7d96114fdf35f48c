package minio

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/artgo/blobstore"
)

func TestIsNotFound(t *testing.T) {
	assert.True(t, isNotFound(minio.ErrorResponse{Code: "NoSuchKey"}))
	assert.True(t, isNotFound(minio.ErrorResponse{Code: "NotFound"}))
	assert.False(t, isNotFound(minio.ErrorResponse{Code: "AccessDenied"}))
	assert.False(t, isNotFound(errors.New("dial tcp: connection refused")))
}

func TestStore_Keys(t *testing.T) {
	s := NewStore(nil, "bucket", "datasets/")
	assert.Equal(t, "datasets/purchases.txt", s.key("purchases.txt"))
	assert.Equal(t, "purchases.txt", s.relative("datasets/purchases.txt"))

	bare := NewStore(nil, "bucket", "")
	assert.Equal(t, "a/b.json", bare.key("a/b.json"))
	assert.Equal(t, "a/b.json", bare.relative("a/b.json"))
}

// TestMinioStore_Integration requires a running MinIO instance.
// Skip if not available.
func TestMinioStore_Integration(t *testing.T) {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	if endpoint == "" {
		endpoint = "localhost:9000"
	}
	bucket := "test-artgo"

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
		Secure: false,
	})
	if err != nil {
		t.Skipf("MinIO client creation failed: %v", err)
	}

	ctx := context.Background()

	// Check if MinIO is reachable
	if _, err = client.ListBuckets(ctx); err != nil {
		t.Skipf("MinIO not available: %v", err)
	}

	exists, err := client.BucketExists(ctx, bucket)
	require.NoError(t, err)
	if !exists {
		require.NoError(t, client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}))
	}

	store := NewStore(client, bucket, "test-prefix/")

	data := []byte("0110\n1001\n")
	require.NoError(t, store.Put(ctx, "rows.txt", data))

	blob, err := store.Open(ctx, "rows.txt")
	require.NoError(t, err)
	require.Equal(t, int64(len(data)), blob.Size())

	buf := make([]byte, 4)
	n, err := blob.ReadAt(ctx, buf, 5)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, "1001", string(buf))

	got, err := blobstore.ReadAll(ctx, blob)
	require.NoError(t, err)
	require.Equal(t, data, got)

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	require.Contains(t, names, "rows.txt")

	_, err = store.Open(ctx, "missing.txt")
	require.ErrorIs(t, err, blobstore.ErrNotFound)
}
