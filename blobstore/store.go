package blobstore

import (
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when an object does not exist.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Store is an abstraction for reading named input objects.
type Store interface {
	// Open opens an object for sequential reading.
	// The caller must close the returned reader.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// OpenDecompressed opens name from s and decodes it according to its suffix.
func OpenDecompressed(ctx context.Context, s Store, name string) (io.ReadCloser, error) {
	rc, err := s.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	return Decompress(name, rc)
}
