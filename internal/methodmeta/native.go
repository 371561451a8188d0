package methodmeta

import "reflect"

// Kind classifies a native type signature as seen by the type resolver.
type Kind int

const (
	KindInvalid Kind = iota
	KindInt
	KindFloat
	KindBool
	KindString
	KindObject
	KindArray
	KindAny
)

// NativeType is the type information the language's own type system
// attaches to a parameter or return position. It is authoritative but
// possibly underspecified: KindAny and a KindArray with a nil Elem are
// the ambiguous shapes the docblock layer disambiguates.
type NativeType struct {
	Kind     Kind
	Name     string      // fully-qualified name for KindObject ("pkgpath.Type")
	Elem     *NativeType // element for KindArray; nil means the element is unknown
	Nullable bool
}

// String renders the signature for error messages.
func (t NativeType) String() string {
	switch t.Kind {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindObject:
		return t.Name
	case KindArray:
		if t.Elem == nil {
			return "array"
		}
		return "array<" + t.Elem.String() + ">"
	case KindAny:
		return "any"
	}
	return "invalid"
}

// IsAmbiguous reports whether the native signature alone cannot name a
// concrete schema type.
func (t NativeType) IsAmbiguous() bool {
	return t.Kind == KindAny || (t.Kind == KindArray && t.Elem == nil)
}

var anyType = reflect.TypeOf((*any)(nil)).Elem()

// NativeOf derives the NativeType and nullability for a reflected Go
// type. Pointers are the native nullability marker; the empty interface
// cannot express nullability at all, which is why the resolver falls
// back to docblock null markers for it.
func NativeOf(t reflect.Type) (NativeType, bool) {
	nullable := false
	for t.Kind() == reflect.Pointer {
		nullable = true
		t = t.Elem()
	}

	nt := nativeOfValue(t)
	nt.Nullable = nullable
	return nt, nullable
}

func nativeOfValue(t reflect.Type) NativeType {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return NativeType{Kind: KindInt}
	case reflect.Float32, reflect.Float64:
		return NativeType{Kind: KindFloat}
	case reflect.Bool:
		return NativeType{Kind: KindBool}
	case reflect.String:
		return NativeType{Kind: KindString}
	case reflect.Interface:
		if t == anyType {
			return NativeType{Kind: KindAny}
		}
		return NativeType{Kind: KindObject, Name: fullName(t)}
	case reflect.Struct:
		if t.Name() == "" {
			return NativeType{Kind: KindInvalid}
		}
		return NativeType{Kind: KindObject, Name: fullName(t)}
	case reflect.Slice, reflect.Array:
		if t.Elem() == anyType {
			// []any is the bare container marker: the element type
			// must come from the docblock.
			return NativeType{Kind: KindArray}
		}
		elem, elemNullable := NativeOf(t.Elem())
		elem.Nullable = elemNullable
		return NativeType{Kind: KindArray, Elem: &elem}
	}
	return NativeType{Kind: KindInvalid}
}

func fullName(t reflect.Type) string {
	if t.PkgPath() == "" {
		return t.Name()
	}
	return t.PkgPath() + "." + t.Name()
}
