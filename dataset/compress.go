package dataset

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies a container format around a document.
type Compression uint8

const (
	// CompressionNone stores the document as is.
	CompressionNone Compression = iota
	// CompressionGzip uses gzip (RFC 1952).
	CompressionGzip
	// CompressionZstd uses a Zstandard frame.
	CompressionZstd
	// CompressionLZ4 uses an LZ4 frame.
	CompressionLZ4
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionGzip:
		return "gzip"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("Compression(%d)", uint8(c))
	}
}

var (
	magicGzip = []byte{0x1f, 0x8b}
	magicZstd = []byte{0x28, 0xb5, 0x2f, 0xfd}
	magicLZ4  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// Detect returns the compression of data judging by its magic bytes.
func Detect(data []byte) Compression {
	switch {
	case bytes.HasPrefix(data, magicZstd):
		return CompressionZstd
	case bytes.HasPrefix(data, magicLZ4):
		return CompressionLZ4
	case bytes.HasPrefix(data, magicGzip):
		return CompressionGzip
	default:
		return CompressionNone
	}
}

// DefaultMaxDecodedSize caps the decompressed size of a document.
const DefaultMaxDecodedSize = 256 << 20

// minZstdMemory is the lowest memory limit handed to the zstd decoder. The
// exact cap is enforced on the decoded stream.
const minZstdMemory = 8 << 20

func decompress(data []byte, limit int64) ([]byte, error) {
	c := Detect(data)

	var r io.Reader
	switch c {
	case CompressionZstd:
		zr, zerr := zstd.NewReader(bytes.NewReader(data),
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderMaxMemory(max(uint64(limit)+1, minZstdMemory)),
		)
		if zerr != nil {
			return nil, zstdError(zerr, limit)
		}
		defer zr.Close()
		r = zr
	case CompressionGzip:
		zr, zerr := gzip.NewReader(bytes.NewReader(data))
		if zerr != nil {
			return nil, fmt.Errorf("dataset: gzip: %w", zerr)
		}
		defer zr.Close()
		r = zr
	case CompressionLZ4:
		r = lz4.NewReader(bytes.NewReader(data))
	default:
		return data, nil
	}

	out, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		if c == CompressionZstd {
			return nil, zstdError(err, limit)
		}
		return nil, fmt.Errorf("dataset: %s: %w", c, err)
	}
	if int64(len(out)) > limit {
		return nil, fmt.Errorf("%w: %s document expands beyond %d bytes", ErrTooLarge, c, limit)
	}
	return out, nil
}

func zstdError(err error, limit int64) error {
	if errors.Is(err, zstd.ErrDecoderSizeExceeded) || errors.Is(err, zstd.ErrWindowSizeExceeded) {
		return fmt.Errorf("%w: zstd document exceeds %d bytes: %v", ErrTooLarge, limit, err)
	}
	return fmt.Errorf("dataset: zstd: %w", err)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// compressor wraps w; closing the result flushes the frame but leaves w open.
func compressor(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case CompressionNone:
		return nopWriteCloser{w}, nil
	case CompressionGzip:
		return gzip.NewWriter(w), nil
	case CompressionZstd:
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	case CompressionLZ4:
		return lz4.NewWriter(w), nil
	default:
		return nil, fmt.Errorf("dataset: unknown compression %s", c)
	}
}
