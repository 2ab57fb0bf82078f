package airlock_test

import (
	"errors"
	"testing"

	"github.com/zoobzio/airlock"
	"github.com/zoobzio/airlock/codec/gob"
	"github.com/zoobzio/airlock/codec/json"
	"github.com/zoobzio/airlock/hostenv"
)

func TestUse_CachesByProbeAndEnvironment(t *testing.T) {
	airlock.Reset()

	env := hostenv.Unknown()

	s1, err := airlock.Use(airlock.NewProbe(json.New(), false), env)
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}

	// A second probe with the same content type and native flag hits the
	// cache.
	s2, err := airlock.Use(airlock.NewProbe(json.New(), false), env)
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}

	if s1 != s2 {
		t.Error("Use() should return the cached sanitizer")
	}
}

func TestUse_DistinctEnvironments(t *testing.T) {
	airlock.Reset()

	probe := airlock.NewProbe(json.New(), false)

	s1, err := airlock.Use(probe, hostenv.Identity{Family: hostenv.FamilyFirefox})
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}
	s2, err := airlock.Use(probe, hostenv.Identity{Family: hostenv.FamilyChromium})
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}

	if s1 == s2 {
		t.Error("distinct environments should build distinct sanitizers")
	}
}

func TestUse_DistinctNativeFlags(t *testing.T) {
	airlock.Reset()

	env := hostenv.Unknown()

	s1, err := airlock.Use(airlock.NewProbe(json.New(), false), env)
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}
	s2, err := airlock.Use(airlock.NewProbe(json.New(), true), env)
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}

	if s1 == s2 {
		t.Error("native and stand-in probes should build distinct sanitizers")
	}
}

func TestUse_NilProbe(t *testing.T) {
	if _, err := airlock.Use(nil, hostenv.Unknown()); !errors.Is(err, airlock.ErrNilProbe) {
		t.Errorf("Use(nil) error = %v, want ErrNilProbe", err)
	}
}

func TestUse_GobProbe(t *testing.T) {
	airlock.Reset()

	s, err := airlock.Use(airlock.NewProbe(gob.New(), true), hostenv.Unknown())
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}

	if !s.IsSerializable(42) {
		t.Error("IsSerializable(int) = false, want true")
	}
	if s.IsSerializable(func() {}) {
		t.Error("IsSerializable(func) = true, want false")
	}
}

func TestReset_ClearsCache(t *testing.T) {
	probe := airlock.NewProbe(json.New(), false)

	s1, err := airlock.Use(probe, hostenv.Unknown())
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}

	airlock.Reset()

	s2, err := airlock.Use(probe, hostenv.Unknown())
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}

	if s1 == s2 {
		t.Error("Reset() should force a rebuild")
	}
}
