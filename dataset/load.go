package dataset

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/hupe1980/artgo/blobstore"
	"github.com/hupe1980/artgo/codec"
	"github.com/hupe1980/artgo/internal/resource"
)

// Format identifies a document format.
type Format uint8

const (
	// FormatAuto picks JSON when the document starts with '{' and text otherwise.
	FormatAuto Format = iota
	// FormatText is the line-oriented text format.
	FormatText
	// FormatJSON is the JSON document format.
	FormatJSON
)

type options struct {
	format      Format
	codec       codec.Codec
	compression Compression
	maxDecoded  int64
	rc          *resource.Controller
}

// Option configures Parse, Load and Encode.
type Option func(*options)

// WithFormat forces a document format. Encode defaults to FormatText.
func WithFormat(f Format) Option {
	return func(o *options) {
		o.format = f
	}
}

// WithCodec sets the JSON codec (codec.Default when unset).
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		o.codec = c
	}
}

// WithCompression sets the compression used by Encode. Parsing detects
// compression by itself.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithMaxDecodedSize caps the decompressed size of a document
// (DefaultMaxDecodedSize when unset or not positive).
func WithMaxDecodedSize(n int64) Option {
	return func(o *options) {
		o.maxDecoded = n
	}
}

// WithIOLimit throttles Load to bytesPerSec.
func WithIOLimit(bytesPerSec int64) Option {
	return func(o *options) {
		if bytesPerSec > 0 {
			o.rc = resource.NewController(resource.Config{IOLimitBytesPerSec: bytesPerSec})
		}
	}
}

func applyOptions(optFns []Option) options {
	o := options{codec: codec.Default}
	for _, fn := range optFns {
		fn(&o)
	}
	if o.codec == nil {
		o.codec = codec.Default
	}
	if o.maxDecoded <= 0 {
		o.maxDecoded = DefaultMaxDecodedSize
	}
	return o
}

// Parse decompresses data if needed, decodes it and validates the result.
func Parse(data []byte, optFns ...Option) (*Matrix, error) {
	o := applyOptions(optFns)

	data, err := decompress(data, o.maxDecoded)
	if err != nil {
		return nil, err
	}

	format := o.format
	if format == FormatAuto {
		format = FormatText
		if trimmed := bytes.TrimLeft(data, " \t\r\n"); len(trimmed) > 0 && trimmed[0] == '{' {
			format = FormatJSON
		}
	}

	var m *Matrix
	switch format {
	case FormatJSON:
		m, err = ParseJSON(data, o.codec)
	default:
		m, err = ParseText(bytes.NewReader(data))
	}
	if err != nil {
		return nil, err
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Load reads the named blob from store and parses it.
func Load(ctx context.Context, store blobstore.BlobStore, name string, optFns ...Option) (*Matrix, error) {
	o := applyOptions(optFns)

	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", name, err)
	}
	defer blob.Close()

	data, err := read(ctx, blob, o.rc)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", name, err)
	}

	m, err := Parse(data, optFns...)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", name, err)
	}
	return m, nil
}

func read(ctx context.Context, blob blobstore.Blob, rc *resource.Controller) ([]byte, error) {
	if rc == nil || blob.Size() == 0 {
		return blobstore.ReadAll(ctx, blob)
	}

	r, err := blob.ReadRange(ctx, 0, blob.Size())
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return io.ReadAll(resource.NewRateLimitedReader(ctx, r, rc))
}

// Encode writes m to w in the configured format and compression.
func Encode(w io.Writer, m *Matrix, optFns ...Option) error {
	o := applyOptions(optFns)

	zw, err := compressor(w, o.compression)
	if err != nil {
		return err
	}

	switch o.format {
	case FormatJSON:
		data, err := MarshalJSON(m, o.codec)
		if err != nil {
			zw.Close()
			return err
		}
		if _, err := zw.Write(data); err != nil {
			zw.Close()
			return err
		}
	default:
		if err := WriteText(zw, m); err != nil {
			zw.Close()
			return err
		}
	}
	return zw.Close()
}

// Save encodes m and stores it under name.
func Save(ctx context.Context, store blobstore.BlobStore, name string, m *Matrix, optFns ...Option) error {
	var buf bytes.Buffer
	if err := Encode(&buf, m, optFns...); err != nil {
		return err
	}
	return store.Put(ctx, name, buf.Bytes())
}
