// Package objectmap is the object-type registry consulted by the type
// resolver. Domain types are registered up front — from Go structs or
// protobuf message descriptors — and looked up by bare name or
// fully-qualified name during schema derivation.
package objectmap

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"unicode"

	"github.com/methodql/methodql/internal/schema"
	"github.com/methodql/methodql/internal/typemap"
)

// Registry maps type names to named object schema types. It implements
// typemap.ObjectMapper.
type Registry struct {
	types   map[string]*schema.Type
	aliases map[string]string // bare and fully-qualified names -> canonical name
}

var _ typemap.ObjectMapper = (*Registry)(nil)

func NewRegistry() *Registry {
	return &Registry{
		types:   map[string]*schema.Type{},
		aliases: map[string]string{},
	}
}

// MapTypeName returns a reference to a registered object type.
func (r *Registry) MapTypeName(name string) (*schema.TypeRef, error) {
	canonical, ok := r.aliases[name]
	if !ok {
		return nil, &typemap.UnresolvableTypeError{Type: name}
	}
	return schema.NamedType(canonical), nil
}

// Types returns all registered object types, sorted by name.
func (r *Registry) Types() []*schema.Type {
	out := make([]*schema.Type, 0, len(r.types))
	for _, t := range r.types {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// RegisterStruct derives a named object type from a Go struct (or
// pointer to struct) via reflection. Exported fields become schema
// fields; the json tag overrides the default lowerCamel name and "-"
// skips the field. Nested structs and slices register recursively.
func (r *Registry) RegisterStruct(v any) (*schema.TypeRef, error) {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct || t.Name() == "" {
		return nil, fmt.Errorf("objectmap: %s is not a named struct type", t)
	}
	return r.registerStructType(t)
}

func (r *Registry) registerStructType(t reflect.Type) (*schema.TypeRef, error) {
	name := t.Name()
	if canonical, ok := r.aliases[name]; ok {
		return schema.NamedType(canonical), nil
	}

	// Register the name before walking fields so self-referential
	// structs terminate.
	obj := schema.NewType(name, schema.TypeKindObject, "")
	r.types[name] = obj
	r.aliases[name] = name
	if t.PkgPath() != "" {
		r.aliases[t.PkgPath()+"."+name] = name
	}

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue // unexported
		}
		fieldName, skip := jsonFieldName(f)
		if skip {
			continue
		}
		ref, err := r.fieldTypeRef(f.Type)
		if err != nil {
			return nil, fmt.Errorf("objectmap: %s.%s: %w", name, f.Name, err)
		}
		if ref == nil {
			continue // unmappable kind (func, chan, map)
		}
		obj.AddField(schema.NewField(fieldName, "", ref))
	}
	return schema.NamedType(name), nil
}

func (r *Registry) fieldTypeRef(t reflect.Type) (*schema.TypeRef, error) {
	nullable := false
	for t.Kind() == reflect.Pointer {
		nullable = true
		t = t.Elem()
	}

	var ref *schema.TypeRef
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		ref = schema.NamedType("Int")
	case reflect.Float32, reflect.Float64:
		ref = schema.NamedType("Float")
	case reflect.Bool:
		ref = schema.NamedType("Boolean")
	case reflect.String:
		ref = schema.NamedType("String")
	case reflect.Struct:
		inner, err := r.registerStructType(t)
		if err != nil {
			return nil, err
		}
		ref = inner
	case reflect.Slice, reflect.Array:
		elem, err := r.fieldTypeRef(t.Elem())
		if err != nil || elem == nil {
			return nil, err
		}
		ref = schema.ListType(elem)
	default:
		return nil, nil
	}

	if nullable {
		return ref, nil
	}
	return schema.NonNullType(ref), nil
}

func jsonFieldName(f reflect.StructField) (name string, skip bool) {
	tag := f.Tag.Get("json")
	parts := strings.Split(tag, ",")
	if parts[0] == "-" {
		return "", true
	}
	if parts[0] != "" {
		return parts[0], false
	}
	return lowerCamel(f.Name), false
}

func lowerCamel(s string) string {
	var b strings.Builder
	for i, r := range s {
		if i == 0 {
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
