package objectmap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/methodql/methodql/internal/typemap"
)

type address struct {
	Street string `json:"street"`
	City   string `json:"city"`
}

type customer struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Nickname *string  `json:"nickname"`
	Home     address  `json:"home"`
	Tags     []string `json:"tags"`
	Secret   string   `json:"-"`
	internal int      //nolint:unused
}

func TestRegisterStruct(t *testing.T) {
	reg := NewRegistry()
	ref, err := reg.RegisterStruct(customer{})
	require.NoError(t, err)
	require.Equal(t, "customer", ref.GetNamedType())

	types := reg.Types()
	require.Len(t, types, 2) // customer + nested address

	byName := map[string]int{}
	for _, typ := range types {
		byName[typ.Name] = len(typ.Fields)
	}
	require.Equal(t, 5, byName["customer"]) // Secret and internal skipped
	require.Equal(t, 2, byName["address"])
}

func TestRegisterStructFieldTypes(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.RegisterStruct(&customer{})
	require.NoError(t, err)

	var fields = map[string]string{}
	for _, typ := range reg.Types() {
		if typ.Name != "customer" {
			continue
		}
		for _, f := range typ.Fields {
			fields[f.Name] = f.Type.String()
		}
	}
	require.Equal(t, map[string]string{
		"id":       "Int!",
		"name":     "String!",
		"nickname": "String",
		"home":     "address!",
		"tags":     "[String!]!",
	}, fields)
}

type node struct {
	Value int     `json:"value"`
	Next  *node   `json:"next"`
	Kids  []*node `json:"kids"`
}

func TestRegisterStructSelfReference(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.RegisterStruct(node{})
	require.NoError(t, err)

	types := reg.Types()
	require.Len(t, types, 1)
	var fields = map[string]string{}
	for _, f := range types[0].Fields {
		fields[f.Name] = f.Type.String()
	}
	require.Equal(t, "node", fields["next"])
	require.Equal(t, "[node]!", fields["kids"])
}

func TestMapTypeName(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.RegisterStruct(customer{})
	require.NoError(t, err)

	// Both bare and fully-qualified names resolve.
	ref, err := reg.MapTypeName("customer")
	require.NoError(t, err)
	require.Equal(t, "customer", ref.GetNamedType())

	ref, err = reg.MapTypeName("github.com/methodql/methodql/internal/objectmap.customer")
	require.NoError(t, err)
	require.Equal(t, "customer", ref.GetNamedType())
}

func TestMapTypeNameUnknown(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.MapTypeName("Ghost")
	var unresolvable *typemap.UnresolvableTypeError
	require.ErrorAs(t, err, &unresolvable)
	require.Equal(t, "Ghost", unresolvable.Type)
}

func TestRegisterStructRejectsNonStruct(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.RegisterStruct(42)
	require.Error(t, err)
}
