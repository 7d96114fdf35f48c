package codec

import (
	"bytes"

	gojson "github.com/goccy/go-json"
)

// GoJSON is backed by github.com/goccy/go-json. It follows the same strict
// decoding rules as JSON.
type GoJSON struct{}

// Marshal encodes the value to JSON.
func (GoJSON) Marshal(v any) ([]byte, error) { return gojson.Marshal(v) }

// Unmarshal decodes exactly one JSON value into v.
func (GoJSON) Unmarshal(data []byte, v any) error {
	dec := gojson.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	return trailing(dec.Decode(&struct{}{}))
}

// Name returns "go-json".
func (GoJSON) Name() string { return "go-json" }
