// Package codec selects the JSON implementation used for dataset documents.
//
// Both codecs decode strictly: a document must be a single JSON value whose
// objects carry only known fields, so a misspelled "feature" key fails
// instead of silently yielding zero.
package codec

import (
	"errors"
	"fmt"
)

// ErrStrict is wrapped when a document has data after its single value.
var ErrStrict = errors.New("codec: strict decoding")

// Codec encodes and decodes dataset documents.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by name ("json" or "go-json").
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// MustMarshal marshals v with c (Default when nil) and panics on error.
// Meant for fixtures.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s: marshal: %w", c.Name(), err))
	}
	return b
}
