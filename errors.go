package airlock

import "errors"

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrUnserializable indicates a value cannot cross the serialization
	// boundary. It is the single distinguished signal for that condition:
	// callers compare with errors.Is rather than inspecting error types,
	// and the relay layer uses it to tell "could not transmit" apart from
	// every other failure.
	ErrUnserializable = errors.New("value cannot be serialized for transport")

	// ErrNilProbe indicates a Sanitizer or Oracle was constructed without
	// a clone capability probe.
	ErrNilProbe = errors.New("nil probe")
)
