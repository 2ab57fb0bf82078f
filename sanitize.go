package airlock

import (
	"context"
	"fmt"
	"time"

	"github.com/gotomicro/ekit/bean/option"

	"github.com/zoobzio/airlock/hostenv"
)

// Sanitizer decides, recursively, whether a value passes through the
// boundary untouched, is stripped down to its serializable members, or is
// rejected with ErrUnserializable.
//
// A Sanitizer holds no state beyond its probe and peer environment; every
// call is an independent single pass and concurrent use is safe.
type Sanitizer struct {
	probe  Probe
	env    hostenv.Identity
	oracle *Oracle
}

// New builds a Sanitizer. WithProbe is required; New fails with ErrNilProbe
// when it is absent. The peer environment defaults to hostenv.Unknown()
// when WithEnvironment is not given.
func New(opts ...option.Option[Sanitizer]) (*Sanitizer, error) {
	s := &Sanitizer{env: hostenv.Unknown()}
	for _, opt := range opts {
		opt(s)
	}

	oracle, err := NewOracle(s.probe, s.env)
	if err != nil {
		return nil, err
	}
	s.oracle = oracle

	emitSanitizerCreated(context.Background(), s.probe.ContentType(), s.env.Family)
	return s, nil
}

// Environment returns the peer identity the Sanitizer was built with.
func (s *Sanitizer) Environment() hostenv.Identity {
	return s.env
}

// IsSerializable reports whether v can cross the boundary as-is.
func (s *Sanitizer) IsSerializable(v any) bool {
	return s.oracle.CanSerialize(v)
}

// Sanitize prepares v for transport.
//
// Sequences come back as []any with unserializable elements dropped and
// survivors sanitized recursively; composites come back flattened into a
// Record; scalars come back unchanged. A scalar the Oracle rejects, or a
// composite whose chain walk fails, raises ErrUnserializable.
func (s *Sanitizer) Sanitize(ctx context.Context, v any) (any, error) {
	start := time.Now()
	emitSanitizeStart(ctx, s.probe.ContentType(), typeLabel(v))

	out, err := s.sanitize(v)
	emitSanitizeComplete(ctx, s.probe.ContentType(), typeLabel(v), time.Since(start), err)
	return out, err
}

// sanitize is the recursive pipeline behind Sanitize. Classification
// precedence is sequence, composite, scalar.
func (s *Sanitizer) sanitize(v any) (any, error) {
	switch classify(v) {
	case kindSequence:
		// Elements are filtered, not failed: a rejected element drops out
		// silently. A raise from the recursive call still propagates.
		rv, _ := indirect(v)
		out := make([]any, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			elem := rv.Index(i).Interface()
			if !s.oracle.CanSerialize(elem) {
				continue
			}
			cleaned, err := s.sanitize(elem)
			if err != nil {
				return nil, err
			}
			out = append(out, cleaned)
		}
		return out, nil

	case kindComposite:
		rec, err := flatten(s.oracle, v)
		if err != nil {
			return nil, fmt.Errorf("%w: flatten %s: %v", ErrUnserializable, typeLabel(v), err)
		}
		return rec, nil

	default:
		if !s.oracle.CanSerialize(v) {
			return nil, fmt.Errorf("%w: %s", ErrUnserializable, typeLabel(v))
		}
		return v, nil
	}
}

// Omit returns a copy of m keeping only entries whose values pass the
// Oracle. One level only: no recursion, no chain walk. Use it when the
// mapping's shape is already under the caller's control.
func (s *Sanitizer) Omit(ctx context.Context, m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if s.oracle.CanSerialize(v) {
			out[k] = v
		}
	}

	emitOmitComplete(ctx, s.probe.ContentType(), len(m), len(m)-len(out))
	return out
}
