package minio

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"

	"github.com/hupe1980/kmeans/blobstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Open_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)

	store, err := New(u.Host, "bucket",
		WithCredentials("minioadmin", "minioadmin"),
		WithRegion("us-east-1"),
		WithPrefix("datasets"),
	)
	require.NoError(t, err)
	assert.Equal(t, "datasets/points.csv", store.key("points.csv"))

	_, err = store.Open(context.Background(), "points.csv")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}

func TestNew_InvalidEndpoint(t *testing.T) {
	_, err := New("http://not a host", "bucket")
	assert.Error(t, err)
}

// TestMinioStore_Integration requires a running MinIO instance with an object
// named by MINIO_POINTS_KEY in the bucket named by MINIO_BUCKET.
func TestMinioStore_Integration(t *testing.T) {
	bucket := os.Getenv("MINIO_BUCKET")
	key := os.Getenv("MINIO_POINTS_KEY")
	if bucket == "" || key == "" {
		t.Skip("MinIO not configured: MINIO_BUCKET or MINIO_POINTS_KEY not set")
	}

	endpoint := os.Getenv("MINIO_ENDPOINT")
	if endpoint == "" {
		endpoint = "localhost:9000"
	}

	store, err := New(endpoint, bucket)
	require.NoError(t, err)

	ctx := context.Background()
	rc, err := store.Open(ctx, key)
	if err != nil {
		t.Skipf("MinIO not available: %v", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
