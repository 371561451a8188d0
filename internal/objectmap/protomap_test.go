package objectmap

import (
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/structpb"
)

func TestRegisterMessageScalars(t *testing.T) {
	reg := NewRegistry()
	ref, err := reg.RegisterMessage((&durationpb.Duration{}).ProtoReflect().Descriptor())
	require.NoError(t, err)
	require.Equal(t, "Duration", ref.GetNamedType())

	types := reg.Types()
	require.Len(t, types, 1)
	fields := map[string]string{}
	for _, f := range types[0].Fields {
		fields[f.Name] = f.Type.String()
	}
	require.Equal(t, map[string]string{
		"seconds": "Int!",
		"nanos":   "Int!",
	}, fields)
}

func TestRegisterMessageAliases(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.RegisterMessage((&durationpb.Duration{}).ProtoReflect().Descriptor())
	require.NoError(t, err)

	ref, err := reg.MapTypeName("google.protobuf.Duration")
	require.NoError(t, err)
	require.Equal(t, "Duration", ref.GetNamedType())

	ref, err = reg.MapTypeName("Duration")
	require.NoError(t, err)
	require.Equal(t, "Duration", ref.GetNamedType())
}

func TestRegisterMessageRecursive(t *testing.T) {
	// structpb.ListValue references Value which references ListValue
	// back: registration must terminate and lists must wrap correctly.
	reg := NewRegistry()
	_, err := reg.RegisterMessage((&structpb.ListValue{}).ProtoReflect().Descriptor())
	require.NoError(t, err)

	names := map[string]bool{}
	for _, typ := range reg.Types() {
		names[typ.Name] = true
	}
	require.True(t, names["ListValue"])
	require.True(t, names["Value"])

	for _, typ := range reg.Types() {
		if typ.Name != "ListValue" {
			continue
		}
		require.Len(t, typ.Fields, 1)
		require.Equal(t, "values", typ.Fields[0].Name)
		require.Equal(t, "[Value!]!", typ.Fields[0].Type.String())
	}
}
