// Package airlock decides whether runtime values can survive a
// structured-clone-style serialization boundary and produces best-effort
// serializable substitutes for the values that cannot.
//
// Values relayed between isolated execution contexts (a driver and a remote
// agent, a parent frame and a cross-origin frame) must survive the channel's
// clone semantics, and those semantics differ subtly across host
// environments. Rather than failing outright when a value cannot cross,
// airlock strips what will not survive and passes the rest through.
//
// # Components
//
// Three components cooperate, leaves first:
//
//   - Oracle: the per-value serializability predicate. Wraps a clone
//     capability probe and corrects its answer for documented host quirks.
//   - Flattener: collapses a composite value's full shape chain (struct
//     embedding levels plus the accessor surface of error values) into a
//     plain Record, keeping only members the Oracle accepts.
//   - Sanitizer: the entry point. Classifies a value as sequence, composite,
//     or scalar, filters sequences element-wise, flattens composites, and
//     rejects unserializable scalars with ErrUnserializable.
//
// # Classification
//
// Routing is structural:
//
//   - Sequence: slices and arrays, except byte slices. Elements the Oracle
//     rejects are dropped; survivors are sanitized recursively.
//   - Composite: structs, maps, and pointers to either. Flattened into a
//     Record containing only Oracle-accepted members.
//   - Scalar: everything else (numbers, strings, bools, byte slices, time
//     values, funcs, channels). Passed through unchanged or rejected whole.
//
// # Basic Usage
//
//	probe := airlock.NewProbe(json.New(), false)
//
//	s, err := airlock.New(
//	    airlock.WithProbe(probe),
//	    airlock.WithEnvironment(hostenv.Parse(peerAgent)),
//	)
//	if err != nil {
//	    return err
//	}
//
//	out, err := s.Sanitize(ctx, value)
//	if errors.Is(err, airlock.ErrUnserializable) {
//	    // value cannot cross the boundary at all
//	}
//
// # Host Quirks
//
// Clone capability differs by host environment, and a permissive stand-in
// probe can accept values the real channel later refuses. The known quirk
// table covers Firefox, whose native channel rejects error values. Pass the
// peer's identity via WithEnvironment to activate quirk handling; the
// default identity is hostenv.Unknown(), which participates in no quirks.
//
// # Codec Providers
//
// A Probe is built from any Codec via NewProbe. The following codec
// implementations are available as subpackages:
//
//   - codec/gob - gob encoding, the in-process native primitive
//   - codec/json - JSON encoding (application/json)
//   - codec/yaml - YAML encoding (application/yaml)
//   - codec/msgpack - MessagePack encoding (application/msgpack)
//   - codec/bson - BSON encoding (application/bson)
package airlock

// Codec provides content-type aware marshaling.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}

// Probe is the clone capability primitive consulted by the Oracle. Check
// reports whether a value can cross the serialization boundary; a non-nil
// error (or a panic, which the Oracle absorbs) means it cannot.
//
// Native distinguishes the host's own boundary primitive from a stand-in
// for a remote one. The distinction feeds quirk handling only: a stand-in
// can be more permissive than the channel it fronts, and the Oracle
// corrects the documented cases.
type Probe interface {
	// ContentType identifies the encoding the probe exercises.
	ContentType() string

	// Native reports whether this probe is the host's own primitive
	// rather than a stand-in.
	Native() bool

	// Check attempts the capability test on v. A non-nil error means v
	// cannot cross the boundary.
	Check(v any) error
}
