// Package relay ships sanitized values across a message channel as sealed
// envelopes.
//
// A Relay sanitizes every outbound value with an airlock.Sanitizer before
// encoding it, so nothing enters the channel that cannot survive it. Values
// that cannot be serialized at all do not fail the relay: the peer receives
// a notice envelope saying the value existed, which is what an end user
// needs to hear about a thrown or returned value that could not travel.
//
// The real wire lives outside this module; Transport is the boundary, and
// MemoryTransport covers in-process wiring and tests.
package relay

import (
	"encoding/hex"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"
)

// Kind tags what an envelope carries.
type Kind string

const (
	// KindResult carries a sanitized return value.
	KindResult Kind = "result"

	// KindError carries a flattened error value.
	KindError Kind = "error"

	// KindNotice tells the peer a value existed but could not be
	// serialized for transport.
	KindNotice Kind = "notice"
)

// Envelope is one sealed message bound for the peer context. The digest
// lets the receiving side verify the payload survived the channel intact.
type Envelope struct {
	ID          string            `json:"id"`
	Kind        Kind              `json:"kind"`
	ContentType string            `json:"content_type"`
	Payload     []byte            `json:"payload"`
	Digest      string            `json:"digest"`
	Meta        map[string]string `json:"meta,omitempty"`
}

// seal builds an envelope around an encoded payload.
func seal(kind Kind, contentType string, payload []byte, meta map[string]string) Envelope {
	sum := blake2b.Sum256(payload)
	return Envelope{
		ID:          uuid.NewString(),
		Kind:        kind,
		ContentType: contentType,
		Payload:     payload,
		Digest:      hex.EncodeToString(sum[:]),
		Meta:        meta,
	}
}

// Verify recomputes the payload digest and compares it to the sealed one.
func (e Envelope) Verify() bool {
	sum := blake2b.Sum256(e.Payload)
	return hex.EncodeToString(sum[:]) == e.Digest
}
