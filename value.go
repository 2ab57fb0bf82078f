package airlock

import (
	"reflect"
	"time"
)

// valueKind is the routing decision for a value entering the pipeline.
type valueKind int

const (
	kindScalar valueKind = iota
	kindSequence
	kindComposite
)

var timeType = reflect.TypeOf(time.Time{})

// classify routes v by structure. Pointers and interfaces are followed
// first; nil anywhere on the way is a scalar. Byte slices and time values
// are scalars because codecs encode them as a single token.
func classify(v any) valueKind {
	rv, ok := indirect(v)
	if !ok {
		return kindScalar
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return kindScalar
		}
		return kindSequence
	case reflect.Struct:
		if rv.Type() == timeType {
			return kindScalar
		}
		return kindComposite
	case reflect.Map:
		return kindComposite
	default:
		return kindScalar
	}
}

// indirect follows pointers and interfaces to the underlying value.
// ok is false when v is nil or bottoms out at a nil reference.
func indirect(v any) (reflect.Value, bool) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return reflect.Value{}, false
	}
	return rv, true
}

// isErrorLike reports whether v carries error semantics. The check runs on
// the value as given so pointer-receiver Error methods are honored.
func isErrorLike(v any) bool {
	_, ok := v.(error)
	return ok
}

// typeLabel names v's underlying type for records and diagnostics.
func typeLabel(v any) string {
	rv, ok := indirect(v)
	if !ok {
		return "nil"
	}
	rt := rv.Type()
	if rt.Name() != "" {
		return rt.Name()
	}
	return rt.String()
}
