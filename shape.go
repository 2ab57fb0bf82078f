package airlock

import (
	"reflect"
	"strings"
	"sync"

	"github.com/zoobzio/sentinel"
	"golang.org/x/sync/singleflight"
)

func init() {
	// Record names honor json tags when present.
	sentinel.Tag("json")
}

// fieldShape locates one named member of a shape link.
type fieldShape struct {
	name       string // record name (json tag when present)
	index      []int  // reflect.Value.FieldByIndex access path
	ptrIndices []int  // indices where pointer dereference is needed
}

// shapeLink is the set of member names owned by one level of a type's
// embedding chain.
type shapeLink struct {
	fields []fieldShape
}

// typeShape is a struct type's full chain, most-derived level first.
// Link 0 holds the fields declared on the type itself; link n holds the
// fields contributed by structs embedded n levels deep, in declaration
// order.
type typeShape struct {
	typeName string
	links    []shapeLink
}

var (
	shapes      = make(map[reflect.Type]*typeShape)
	shapesMu    sync.RWMutex
	shapesGroup singleflight.Group
)

// shapeOf returns the cached chain for rt, building it on first use.
// Concurrent first encounters of the same type collapse into one build.
func shapeOf(rt reflect.Type) *typeShape {
	shapesMu.RLock()
	if s, ok := shapes[rt]; ok {
		shapesMu.RUnlock()
		return s
	}
	shapesMu.RUnlock()

	s, _, _ := shapesGroup.Do(rt.String(), func() (any, error) {
		shapesMu.Lock()
		defer shapesMu.Unlock()
		if cached, ok := shapes[rt]; ok {
			return cached, nil
		}
		built := buildShape(rt)
		shapes[rt] = built
		return built, nil
	})
	return s.(*typeShape)
}

// resetShapes clears the chain cache.
func resetShapes() {
	shapesMu.Lock()
	defer shapesMu.Unlock()
	shapes = make(map[reflect.Type]*typeShape)
}

// Register pre-warms shape metadata for T, typically from an init function.
// Sanitize builds metadata lazily on first encounter; Register moves that
// cost to startup. Non-struct types have no chain and are ignored.
func Register[T any]() {
	rt := reflect.TypeFor[T]()
	if rt.Kind() != reflect.Struct {
		return
	}
	sentinel.Scan[T]()
	shapeOf(rt)
}

// chainNode is one struct reached by the embedding walk.
type chainNode struct {
	rt         reflect.Type
	index      []int
	ptrIndices []int
}

// buildShape assembles the embedding chain for a struct type, breadth
// first so every embedding depth lands in its own link. Pointer embeds are
// followed; embedding cycles terminate because each struct type joins the
// chain at most once.
func buildShape(rt reflect.Type) *typeShape {
	shape := &typeShape{typeName: rt.Name()}
	if shape.typeName == "" {
		shape.typeName = rt.String()
	}

	level := []chainNode{{rt: rt}}
	visited := map[reflect.Type]bool{rt: true}

	for len(level) > 0 {
		var link shapeLink
		var next []chainNode

		for _, node := range level {
			meta := shapeMetadata(node.rt)
			for _, field := range meta.Fields {
				sf := node.rt.FieldByIndex(field.Index)
				fullIndex := append(append([]int{}, node.index...), field.Index...)

				if sf.Anonymous {
					// A json tag stops promotion: the embed becomes a
					// named member instead.
					if _, tagged := field.Tags["json"]; !tagged {
						et := sf.Type
						ptrs := append([]int{}, node.ptrIndices...)
						if et.Kind() == reflect.Ptr && et.Elem().Kind() == reflect.Struct {
							ptrs = append(ptrs, len(fullIndex)-1)
							et = et.Elem()
						}
						if et.Kind() == reflect.Struct {
							if !visited[et] {
								visited[et] = true
								next = append(next, chainNode{rt: et, index: fullIndex, ptrIndices: ptrs})
							}
							continue
						}
					}
					// Tagged and non-struct embeds surface as ordinary
					// named members, which needs an exported field name.
					if !sf.IsExported() {
						continue
					}
				}

				name := wireName(field)
				if name == "" {
					continue
				}
				link.fields = append(link.fields, fieldShape{
					name:       name,
					index:      fullIndex,
					ptrIndices: node.ptrIndices,
				})
			}
		}

		if len(link.fields) > 0 {
			shape.links = append(shape.links, link)
		}
		level = next
	}

	return shape
}

// shapeMetadata returns sentinel metadata for rt, scanning directly when
// the type was never registered.
func shapeMetadata(rt reflect.Type) sentinel.Metadata {
	if meta, ok := sentinel.Lookup(rt.String()); ok {
		return meta
	}

	meta := sentinel.Metadata{
		TypeName:    rt.Name(),
		PackageName: rt.PkgPath(),
		Fields:      make([]sentinel.FieldMetadata, 0, rt.NumField()),
	}

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		// Unexported fields stay private, but an embed of an unexported
		// struct type still promotes its exported members.
		if !sf.IsExported() && !sf.Anonymous {
			continue
		}

		fm := sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
			Tags:        wireTags(sf.Tag),
		}

		switch sf.Type.Kind() {
		case reflect.Struct:
			fm.Kind = sentinel.KindStruct
		case reflect.Ptr:
			fm.Kind = sentinel.KindPointer
		case reflect.Slice, reflect.Array:
			fm.Kind = sentinel.KindSlice
		case reflect.Map:
			fm.Kind = sentinel.KindMap
		case reflect.Interface:
			fm.Kind = sentinel.KindInterface
		default:
			fm.Kind = sentinel.KindScalar
		}

		meta.Fields = append(meta.Fields, fm)
	}

	return meta
}

// wireTags extracts the struct tags the flattener consumes.
func wireTags(tag reflect.StructTag) map[string]string {
	tags := make(map[string]string)
	if val, ok := tag.Lookup("json"); ok {
		tags["json"] = val
	}
	return tags
}

// wireName resolves a field's record name. A json tag overrides the Go
// name; "-" excludes the field entirely.
func wireName(field sentinel.FieldMetadata) string {
	tag, ok := field.Tags["json"]
	if !ok {
		return field.Name
	}
	if tag == "-" {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return field.Name
	}
	return name
}
