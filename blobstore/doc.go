// Package blobstore opens named input objects for streaming reads.
//
// Store is the interface every input source implements. Implementations must
// be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem
//   - MemoryStore: in-memory, for tests
//   - s3.Store: Amazon S3 (AWS SDK v2)
//   - minio.Store: MinIO and other S3-compatible storage
//
// # Compressed Objects
//
// Decompress wraps a reader based on the object name: ".zst" is decoded with
// zstd and ".lz4" with the LZ4 frame format. Other names pass through.
//
//	rc, err := store.Open(ctx, "points.csv.zst")
//	if err != nil {
//	    return err
//	}
//	rc, err = blobstore.Decompress("points.csv.zst", rc)
package blobstore
