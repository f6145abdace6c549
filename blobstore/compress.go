package blobstore

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies the encoding of an object.
type Compression int

const (
	// CompressionNone means the object is read as is.
	CompressionNone Compression = iota
	// CompressionZstd is the zstd frame format.
	CompressionZstd
	// CompressionLZ4 is the LZ4 frame format.
	CompressionLZ4
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// CompressionFor returns the compression implied by the name's suffix.
func CompressionFor(name string) Compression {
	switch {
	case strings.HasSuffix(name, ".zst"), strings.HasSuffix(name, ".zstd"):
		return CompressionZstd
	case strings.HasSuffix(name, ".lz4"):
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

// Decompress wraps rc with a decoder chosen by name. Closing the returned
// reader closes rc. On error rc is closed.
func Decompress(name string, rc io.ReadCloser) (io.ReadCloser, error) {
	switch CompressionFor(name) {
	case CompressionZstd:
		dec, err := zstd.NewReader(rc, zstd.WithDecoderConcurrency(1))
		if err != nil {
			_ = rc.Close()
			return nil, fmt.Errorf("zstd %s: %w", name, err)
		}
		return &decodedReader{r: dec, close: func() error {
			dec.Close()
			return rc.Close()
		}}, nil
	case CompressionLZ4:
		return &decodedReader{r: lz4.NewReader(rc), close: rc.Close}, nil
	default:
		return rc, nil
	}
}

type decodedReader struct {
	r     io.Reader
	close func() error
}

func (d *decodedReader) Read(p []byte) (int, error) {
	n, err := d.r.Read(p)
	if err != nil && !errors.Is(err, io.EOF) {
		err = fmt.Errorf("decompress: %w", err)
	}
	return n, err
}

func (d *decodedReader) Close() error {
	return d.close()
}
