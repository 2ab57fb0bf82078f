package airlock

import (
	"github.com/gotomicro/ekit/bean/option"

	"github.com/zoobzio/airlock/hostenv"
)

// WithProbe selects the clone capability probe the Oracle consults.
// Required; New fails with ErrNilProbe when no probe is configured.
func WithProbe(p Probe) option.Option[Sanitizer] {
	return func(s *Sanitizer) {
		s.probe = p
	}
}

// WithEnvironment sets the peer execution context's identity, enabling
// environment-specific quirk handling. Defaults to hostenv.Unknown().
func WithEnvironment(env hostenv.Identity) option.Option[Sanitizer] {
	return func(s *Sanitizer) {
		s.env = env
	}
}
