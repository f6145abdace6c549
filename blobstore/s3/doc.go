// Package s3 provides an S3 implementation of the blobstore.Store interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("datasets/"),
//	    s3.WithRegion("us-east-1"),
//	)
//	rc, err := store.Open(ctx, "points.csv.zst")
//
// Credentials and region come from the default AWS configuration chain unless
// overridden by options. WithConcurrentDownload fetches an object in parallel
// ranged parts before handing it to the caller.
package s3
