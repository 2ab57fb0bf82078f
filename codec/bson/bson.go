// Package bson provides a BSON codec implementation.
//
// BSON is a document format: only struct and map roots marshal. A probe
// built on this codec therefore rejects every bare scalar, the narrowest
// capability surface of the provided codecs.
package bson

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/zoobzio/airlock"
)

// bsonCodec implements airlock.Codec for BSON.
type bsonCodec struct{}

// New returns a BSON codec.
func New() airlock.Codec {
	return &bsonCodec{}
}

// ContentType returns the MIME type for BSON.
func (c *bsonCodec) ContentType() string {
	return "application/bson"
}

// Marshal encodes v as BSON.
func (c *bsonCodec) Marshal(v any) ([]byte, error) {
	return bson.Marshal(v)
}

// Unmarshal decodes BSON data into v.
func (c *bsonCodec) Unmarshal(data []byte, v any) error {
	return bson.Unmarshal(data, v)
}
