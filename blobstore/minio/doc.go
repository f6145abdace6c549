// Package minio provides a blobstore.Store implementation using the MinIO client.
//
// MinIO is an S3-compatible object storage system. This package uses the
// official MinIO Go client library and works with other S3-compatible systems
// like Ceph, SeaweedFS and Garage.
//
// # Basic Usage
//
//	store, err := minio.New("localhost:9000", "my-bucket",
//	    minio.WithCredentials("minioadmin", "minioadmin"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	rc, err := store.Open(ctx, "points.csv")
//
// Without WithCredentials the MINIO_ACCESS_KEY/MINIO_SECRET_KEY and then the
// AWS_ACCESS_KEY_ID/AWS_SECRET_ACCESS_KEY environment variables are used.
package minio
