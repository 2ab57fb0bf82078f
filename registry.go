package airlock

import (
	"sync"

	"github.com/zoobzio/airlock/hostenv"
)

// registryKey combines probe identity and peer environment for cache lookup.
type registryKey struct {
	contentType string
	native      bool
	family      string
}

var (
	registry   = make(map[registryKey]*Sanitizer)
	registryMu sync.RWMutex
)

// Use returns a cached sanitizer for the probe/environment pair, building
// one on first use. Probes sharing a content type and native flag are
// treated as interchangeable.
func Use(probe Probe, env hostenv.Identity) (*Sanitizer, error) {
	if probe == nil {
		return nil, ErrNilProbe
	}
	key := registryKey{
		contentType: probe.ContentType(),
		native:      probe.Native(),
		family:      env.Family,
	}

	// Fast path: read-lock cache check
	registryMu.RLock()
	if cached, ok := registry[key]; ok {
		registryMu.RUnlock()
		return cached, nil
	}
	registryMu.RUnlock()

	// Slow path: build and cache with write-lock
	registryMu.Lock()
	defer registryMu.Unlock()

	// Double-check pattern
	if cached, ok := registry[key]; ok {
		return cached, nil
	}

	s, err := New(WithProbe(probe), WithEnvironment(env))
	if err != nil {
		return nil, err
	}

	registry[key] = s
	return s, nil
}

// Reset clears the sanitizer registry and the shape cache.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	registry = make(map[registryKey]*Sanitizer)
	registryMu.Unlock()

	resetShapes()
}
