package minio

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/hupe1980/kmeans/blobstore"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Store implements blobstore.Store for MinIO and S3-compatible storage.
type Store struct {
	client *minio.Client
	bucket string
	prefix string
}

type settings struct {
	creds  *credentials.Credentials
	secure bool
	region string
	prefix string
}

// Option configures New.
type Option func(*settings)

// WithCredentials sets static access credentials.
func WithCredentials(accessKey, secretKey string) Option {
	return func(s *settings) {
		s.creds = credentials.NewStaticV4(accessKey, secretKey, "")
	}
}

// WithSecure enables HTTPS.
func WithSecure(secure bool) Option {
	return func(s *settings) { s.secure = secure }
}

// WithRegion sets the region and skips bucket location lookups.
func WithRegion(region string) Option {
	return func(s *settings) { s.region = region }
}

// WithPrefix prepends prefix to every key.
func WithPrefix(prefix string) Option {
	return func(s *settings) { s.prefix = prefix }
}

// New creates a MinIO client for endpoint ("host:port") and returns a Store
// for bucket.
func New(endpoint, bucket string, opts ...Option) (*Store, error) {
	var st settings
	for _, opt := range opts {
		opt(&st)
	}
	if st.creds == nil {
		st.creds = credentials.NewChainCredentials([]credentials.Provider{
			&credentials.EnvMinio{},
			&credentials.EnvAWS{},
		})
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  st.creds,
		Secure: st.secure,
		Region: st.region,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client %s: %w", endpoint, err)
	}
	return NewStore(client, bucket, st.prefix), nil
}

// NewStore creates a new MinIO store.
// bucket is the MinIO bucket name.
// rootPrefix is prepended to all keys (e.g. "datasets/").
func NewStore(client *minio.Client, bucket, rootPrefix string) *Store {
	return &Store{
		client: client,
		bucket: bucket,
		prefix: rootPrefix,
	}
}

func (s *Store) key(name string) string {
	return path.Join(s.prefix, name)
}

// Open opens an object for reading. Existence is checked before returning.
func (s *Store) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	key := s.key(name)

	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, mapError(err)
	}
	// GetObject is lazy; Stat surfaces a missing key.
	if _, err := obj.Stat(); err != nil {
		_ = obj.Close()
		return nil, mapError(err)
	}
	return obj, nil
}

func mapError(err error) error {
	errResp := minio.ToErrorResponse(err)
	if errResp.Code == "NoSuchKey" || errResp.Code == "NotFound" || errResp.Code == "NoSuchBucket" {
		return blobstore.ErrNotFound
	}
	return err
}
