package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// JSON is the standard-library codec.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes exactly one JSON value into v. Unknown object fields and
// trailing data are errors.
func (JSON) Unmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	return trailing(dec.Decode(&struct{}{}))
}

// Name returns "json".
func (JSON) Name() string { return "json" }

// Default is the codec used for dataset documents.
var Default Codec = GoJSON{}

func trailing(err error) error {
	if err == io.EOF {
		return nil
	}
	return fmt.Errorf("%w: trailing data after document", ErrStrict)
}
