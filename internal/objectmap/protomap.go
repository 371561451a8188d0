package objectmap

import (
	"fmt"

	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/methodql/methodql/internal/schema"
)

// RegisterMessage derives a named object type from a protobuf message
// descriptor, for controllers whose domain types are proto-generated.
// The type is registered under both the short message name and the
// fully-qualified proto name. Nested message fields register
// recursively; map fields are not representable and are skipped.
func (r *Registry) RegisterMessage(md protoreflect.MessageDescriptor) (*schema.TypeRef, error) {
	name := string(md.Name())
	if canonical, ok := r.aliases[name]; ok {
		return schema.NamedType(canonical), nil
	}

	obj := schema.NewType(name, schema.TypeKindObject, "")
	r.types[name] = obj
	r.aliases[name] = name
	r.aliases[string(md.FullName())] = name

	fields := md.Fields()
	for i := 0; i < fields.Len(); i++ {
		fd := fields.Get(i)
		if fd.IsMap() {
			continue
		}
		ref, err := r.protoFieldTypeRef(fd)
		if err != nil {
			return nil, fmt.Errorf("objectmap: %s.%s: %w", name, fd.Name(), err)
		}
		obj.AddField(schema.NewField(fd.JSONName(), "", ref))
	}
	return schema.NamedType(name), nil
}

func (r *Registry) protoFieldTypeRef(fd protoreflect.FieldDescriptor) (*schema.TypeRef, error) {
	ref, err := r.protoScalarOrMessage(fd)
	if err != nil {
		return nil, err
	}
	if fd.IsList() {
		return schema.NonNullType(schema.ListType(schema.NonNullType(ref))), nil
	}
	// proto3 optional is the only nullability marker descriptors carry.
	if fd.HasOptionalKeyword() {
		return ref, nil
	}
	return schema.NonNullType(ref), nil
}

func (r *Registry) protoScalarOrMessage(fd protoreflect.FieldDescriptor) (*schema.TypeRef, error) {
	switch fd.Kind() {
	case protoreflect.Int32Kind, protoreflect.Sint32Kind, protoreflect.Uint32Kind,
		protoreflect.Int64Kind, protoreflect.Sint64Kind, protoreflect.Uint64Kind,
		protoreflect.Sfixed32Kind, protoreflect.Fixed32Kind,
		protoreflect.Sfixed64Kind, protoreflect.Fixed64Kind:
		return schema.NamedType("Int"), nil
	case protoreflect.FloatKind, protoreflect.DoubleKind:
		return schema.NamedType("Float"), nil
	case protoreflect.BoolKind:
		return schema.NamedType("Boolean"), nil
	case protoreflect.StringKind, protoreflect.BytesKind:
		return schema.NamedType("String"), nil
	case protoreflect.EnumKind:
		// Enum values travel as strings; a dedicated enum type is a
		// possible later refinement.
		return schema.NamedType("String"), nil
	case protoreflect.MessageKind, protoreflect.GroupKind:
		return r.RegisterMessage(fd.Message())
	}
	return nil, fmt.Errorf("unsupported proto kind %s", fd.Kind())
}
