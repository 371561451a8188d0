// Package typemap resolves a value position into a concrete schema type
// reference. Two partially-overlapping sources feed it: the native
// signature (authoritative, fast, possibly underspecified) and the
// docblock type candidates (consulted only for the genuinely ambiguous
// shapes — bare containers and untyped positions).
package typemap

import (
	"strings"

	"github.com/methodql/methodql/internal/docblock"
	"github.com/methodql/methodql/internal/methodmeta"
	"github.com/methodql/methodql/internal/schema"
)

// ObjectMapper owns the object-type registry. The resolver delegates
// every object-like name to it and never duplicates the registry.
type ObjectMapper interface {
	// MapTypeName returns the named object schema type for a
	// fully-qualified or docblock type name.
	MapTypeName(name string) (*schema.TypeRef, error)
}

type Resolver struct {
	objects ObjectMapper
}

func NewResolver(objects ObjectMapper) *Resolver {
	return &Resolver{objects: objects}
}

var scalarNames = map[string]string{
	"int":     "Int",
	"integer": "Int",
	"float":   "Float",
	"double":  "Float",
	"bool":    "Boolean",
	"boolean": "Boolean",
	"string":  "String",
	"id":      "ID",
}

// Resolve merges the native signature with the docblock candidates into
// a single schema type reference, Non-Null wrapped unless nullability is
// established by either source.
func (r *Resolver) Resolve(native methodmeta.NativeType, doc []docblock.TypeExpr, nullable bool) (*schema.TypeRef, error) {
	if native.IsAmbiguous() {
		// The native signature cannot express nullability here, so
		// the docblock null marker is the only remaining source.
		if !nullable {
			nullable = hasNullMarker(doc)
		}
		candidates := withoutNullMarkers(doc)
		switch len(candidates) {
		case 0:
			return nil, &UnresolvableTypeError{Type: native.String()}
		case 1:
			ref, err := r.resolveDoc(candidates[0])
			if err != nil {
				return nil, err
			}
			return wrap(ref, nullable), nil
		default:
			names := make([]string, len(candidates))
			for i, c := range candidates {
				names[i] = c.String()
			}
			return nil, &UnsupportedUnionTypeError{Candidates: names}
		}
	}

	ref, err := r.resolveNative(native)
	if err != nil {
		return nil, err
	}
	return wrap(ref, nullable), nil
}

func (r *Resolver) resolveNative(native methodmeta.NativeType) (*schema.TypeRef, error) {
	switch native.Kind {
	case methodmeta.KindInt:
		return schema.NamedType("Int"), nil
	case methodmeta.KindFloat:
		return schema.NamedType("Float"), nil
	case methodmeta.KindBool:
		return schema.NamedType("Boolean"), nil
	case methodmeta.KindString:
		return schema.NamedType("String"), nil
	case methodmeta.KindObject:
		return r.objects.MapTypeName(native.Name)
	case methodmeta.KindArray:
		elem, err := r.resolveNative(*native.Elem)
		if err != nil {
			return nil, err
		}
		if !native.Elem.Nullable {
			elem = schema.NonNullType(elem)
		}
		return schema.ListType(elem), nil
	}
	return nil, &UnresolvableTypeError{Type: native.String()}
}

func (r *Resolver) resolveDoc(t docblock.TypeExpr) (*schema.TypeRef, error) {
	if t.Elem != nil {
		elem, err := r.resolveDoc(*t.Elem)
		if err != nil {
			return nil, err
		}
		return schema.ListType(schema.NonNullType(elem)), nil
	}
	if t.IsNull() || t.Named == "" {
		return nil, &UnresolvableTypeError{Type: t.String()}
	}
	if scalar, ok := scalarNames[strings.ToLower(t.Named)]; ok {
		return schema.NamedType(scalar), nil
	}
	return r.objects.MapTypeName(t.Named)
}

func wrap(ref *schema.TypeRef, nullable bool) *schema.TypeRef {
	if nullable {
		return ref
	}
	return schema.NonNullType(ref)
}

func hasNullMarker(doc []docblock.TypeExpr) bool {
	for _, t := range doc {
		if t.IsNull() {
			return true
		}
	}
	return false
}

func withoutNullMarkers(doc []docblock.TypeExpr) []docblock.TypeExpr {
	out := make([]docblock.TypeExpr, 0, len(doc))
	for _, t := range doc {
		if !t.IsNull() {
			out = append(out, t)
		}
	}
	return out
}
