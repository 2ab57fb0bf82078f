package airlock

import (
	"fmt"
	"reflect"
	"sort"
)

// Record is a flattened, chain-free snapshot of a composite value: a plain
// name to value mapping in which every entry was accepted by the Oracle at
// construction time. Entries are copied as resolved and are not
// re-validated recursively.
type Record map[string]any

// Members every error-like value inherits from the root of its chain.
const (
	// RecordMessage carries the rendered Error() text.
	RecordMessage = "message"

	// RecordName carries the concrete type name.
	RecordName = "name"
)

// flatten collapses a composite value into a Record by walking its chain
// of shape links from most derived to least derived. Struct values
// contribute one link per embedding depth; map values contribute a single
// link of their keys; error-like values inherit a root link carrying the
// rendered message and the concrete type name.
//
// Each discovered name is resolved exactly once, against the original
// value, and kept only when the Oracle accepts what it resolved to. The
// first link to claim a name wins; later links never re-resolve it. Names
// unreachable on this instance (a nil embed on the path) are skipped.
//
// An empty Record is a valid outcome, not a failure. flatten fails only
// when the walk itself cannot complete, such as an Error method panicking
// during resolution.
func flatten(o *Oracle, v any) (rec Record, err error) {
	defer func() {
		if r := recover(); r != nil {
			rec = nil
			err = fmt.Errorf("chain walk: %v", r)
		}
	}()

	rv, ok := indirect(v)
	if !ok {
		return Record{}, nil
	}

	rec = Record{}
	seen := make(map[string]bool)

	switch rv.Kind() {
	case reflect.Struct:
		shape := shapeOf(rv.Type())
		for _, link := range shape.links {
			for _, field := range link.fields {
				if seen[field.name] {
					continue
				}
				seen[field.name] = true

				fv, ok := resolveField(rv, field)
				if !ok {
					continue
				}
				val := fv.Interface()
				if o.CanSerialize(val) {
					rec[field.name] = val
				}
			}
		}

	case reflect.Map:
		for _, key := range sortedKeys(rv) {
			if seen[key.label] {
				continue
			}
			seen[key.label] = true

			val := rv.MapIndex(key.value).Interface()
			if o.CanSerialize(val) {
				rec[key.label] = val
			}
		}

	default:
		return Record{}, nil
	}

	if e, ok := v.(error); ok {
		if !seen[RecordMessage] {
			if msg := e.Error(); o.CanSerialize(msg) {
				rec[RecordMessage] = msg
			}
		}
		if !seen[RecordName] {
			if label := typeLabel(v); o.CanSerialize(label) {
				rec[RecordName] = label
			}
		}
	}

	return rec, nil
}

// resolveField navigates a member path, dereferencing pointer hops. ok is
// false when a nil embed makes the member unreachable on this instance.
func resolveField(rv reflect.Value, field fieldShape) (reflect.Value, bool) {
	if len(field.ptrIndices) == 0 {
		return rv.FieldByIndex(field.index), true
	}

	current := rv
	ptrSet := make(map[int]bool, len(field.ptrIndices))
	for _, idx := range field.ptrIndices {
		ptrSet[idx] = true
	}

	for i, idx := range field.index {
		current = current.Field(idx)

		if ptrSet[i] {
			if current.IsNil() {
				return reflect.Value{}, false
			}
			current = current.Elem()
		}
	}

	return current, true
}

// mapKey pairs a map key with its record label. Non-string keys are
// rendered with fmt.Sprint; an object shape carries string names only.
type mapKey struct {
	value reflect.Value
	label string
}

// sortedKeys lists a map's keys in label order so walks are deterministic.
func sortedKeys(rv reflect.Value) []mapKey {
	keys := make([]mapKey, 0, rv.Len())
	for _, kv := range rv.MapKeys() {
		label := ""
		if kv.Kind() == reflect.String {
			label = kv.String()
		} else {
			label = fmt.Sprint(kv.Interface())
		}
		keys = append(keys, mapKey{value: kv, label: label})
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].label < keys[j].label })
	return keys
}
