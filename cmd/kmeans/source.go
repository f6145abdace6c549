package main

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/hupe1980/kmeans/blobstore"
	"github.com/hupe1980/kmeans/blobstore/minio"
	"github.com/hupe1980/kmeans/blobstore/s3"
)

// location is a parsed -input value.
type location struct {
	scheme      string // "", "file", "s3" or "minio"
	host        string // minio endpoint
	bucket      string
	key         string
	secure      bool
	concurrency int // s3 ranged download workers; 0 streams the object
}

// name is the object name used to pick a decompressor.
func (l location) name() string {
	return l.key
}

func parseLocation(uri string) (location, error) {
	if uri == "" || uri == "-" {
		return location{}, nil
	}

	switch {
	case strings.HasPrefix(uri, "s3://"):
		u, err := url.Parse(uri)
		if err != nil {
			return location{}, fmt.Errorf("input %q: %w", uri, err)
		}
		key := strings.TrimPrefix(u.Path, "/")
		if u.Host == "" || key == "" {
			return location{}, fmt.Errorf("%w: input %q: want s3://bucket/key", errUsage, uri)
		}
		loc := location{scheme: "s3", bucket: u.Host, key: key}
		if v := u.Query().Get("concurrency"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 {
				return location{}, fmt.Errorf("%w: input %q: concurrency must be a positive integer", errUsage, uri)
			}
			loc.concurrency = n
		}
		return loc, nil

	case strings.HasPrefix(uri, "minio://"):
		u, err := url.Parse(uri)
		if err != nil {
			return location{}, fmt.Errorf("input %q: %w", uri, err)
		}
		bucket, key, _ := strings.Cut(strings.TrimPrefix(u.Path, "/"), "/")
		if u.Host == "" || bucket == "" || key == "" {
			return location{}, fmt.Errorf("%w: input %q: want minio://host[:port]/bucket/key", errUsage, uri)
		}
		return location{
			scheme: "minio",
			host:   u.Host,
			bucket: bucket,
			key:    key,
			secure: u.Query().Get("secure") == "true",
		}, nil

	default:
		return location{scheme: "file", key: strings.TrimPrefix(uri, "file://")}, nil
	}
}

// openInput opens the -input source. Object names ending in .zst or .lz4 are
// decompressed.
func openInput(ctx context.Context, uri string, stdin io.Reader) (io.ReadCloser, error) {
	loc, err := parseLocation(uri)
	if err != nil {
		return nil, err
	}

	var store blobstore.Store
	switch loc.scheme {
	case "":
		return io.NopCloser(stdin), nil
	case "file":
		store = blobstore.NewLocalStore("")
	case "s3":
		var opts []s3.Option
		if loc.concurrency > 0 {
			opts = append(opts, s3.WithConcurrentDownload(s3.DefaultPartSize, loc.concurrency))
		}
		store, err = s3.New(ctx, loc.bucket, opts...)
	case "minio":
		store, err = minio.New(loc.host, loc.bucket, minio.WithSecure(loc.secure))
	}
	if err != nil {
		return nil, err
	}

	return blobstore.OpenDecompressed(ctx, store, loc.name())
}
