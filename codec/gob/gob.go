// Package gob provides a gob codec implementation.
//
// gob is the in-process native boundary primitive: it refuses functions,
// channels, and nil top-level values outright, with no stand-in involved.
// Concrete types carried inside interface values must be registered with
// encoding/gob before they can cross.
package gob

import (
	"bytes"
	"encoding/gob"

	"github.com/zoobzio/airlock"
)

// gobCodec implements airlock.Codec for gob.
type gobCodec struct{}

// New returns a gob codec.
func New() airlock.Codec {
	return &gobCodec{}
}

// ContentType returns the MIME type for gob.
func (c *gobCodec) ContentType() string {
	return "application/x-gob"
}

// Marshal encodes v as gob.
func (c *gobCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes gob data into v.
func (c *gobCodec) Unmarshal(data []byte, v any) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}
