package airlock

import (
	"github.com/zoobzio/airlock/hostenv"
)

// cloneQuirk documents one environment/value-kind combination where a
// permissive probe disagrees with the channel it stands in for. A quirk is
// consulted only after the probe has accepted the value, and only when the
// active probe is not the native primitive.
type cloneQuirk struct {
	family string
	match  func(v any) bool
}

// knownCloneQuirks lists the documented mismatches between capability
// probes and real transports.
//
// Firefox's channel refuses to clone error values while stand-in probes
// generally accept them. Trusting the probe there produces a false positive
// that fails for real at transport time, so the otherwise-true answer is
// overridden.
var knownCloneQuirks = []cloneQuirk{
	{family: hostenv.FamilyFirefox, match: isErrorLike},
}

// Oracle is the per-value serializability predicate. It wraps a clone
// capability probe and corrects the probe's answer for documented host
// environment quirks.
//
// An Oracle is a pure function of (value, environment, probe): it holds no
// state across calls and is safe for concurrent use.
type Oracle struct {
	probe Probe
	env   hostenv.Identity
}

// NewOracle builds an Oracle over probe for the given peer environment.
func NewOracle(probe Probe, env hostenv.Identity) (*Oracle, error) {
	if probe == nil {
		return nil, ErrNilProbe
	}
	return &Oracle{probe: probe, env: env}, nil
}

// CanSerialize reports whether v can cross the serialization boundary.
// Probe errors and probe panics both mean no; neither propagates.
func (o *Oracle) CanSerialize(v any) bool {
	if !o.check(v) {
		return false
	}
	if o.probe.Native() {
		return true
	}
	for _, q := range knownCloneQuirks {
		if o.env.Matches(q.family) && q.match(v) {
			return false
		}
	}
	return true
}

// check runs the probe with panic absorption.
func (o *Oracle) check(v any) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return o.probe.Check(v) == nil
}
