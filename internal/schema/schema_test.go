package schema

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestTypeRefString(t *testing.T) {
	tests := []struct {
		ref  *TypeRef
		want string
	}{
		{NamedType("Int"), "Int"},
		{NonNullType(NamedType("Int")), "Int!"},
		{ListType(NonNullType(NamedType("Item"))), "[Item!]"},
		{NonNullType(ListType(NonNullType(NamedType("Item")))), "[Item!]!"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.ref.String())
	}
}

func TestNonNullNeverNests(t *testing.T) {
	ref := NonNullType(NonNullType(NamedType("Int")))
	require.Equal(t, "Int!", ref.String())
	require.True(t, ref.IsNonNull())
	require.False(t, ref.Unwrap().IsNonNull())
}

func TestTypeRefHelpers(t *testing.T) {
	list := NonNullType(ListType(NonNullType(NamedType("Item"))))
	require.True(t, list.IsList())
	require.True(t, list.IsNonNull())
	require.Equal(t, "Item", list.GetNamedType())

	named := NamedType("User")
	require.False(t, named.IsList())
	require.Equal(t, "User", named.GetNamedType())
}

func TestRenderSchema(t *testing.T) {
	s := NewSchema("").AddBuiltins()

	user := NewType("User", TypeKindObject, "A registered user.")
	user.AddField(NewField("id", "", NonNullType(NamedType("Int"))))
	user.AddField(NewField("name", "", NamedType("String")).Deprecate("use fullName"))
	s.AddType(user)

	query := NewType("Query", TypeKindObject, "")
	field := NewField("user", "", NamedType("User"))
	field.AddArgument(NewInputValue("id", "", NonNullType(NamedType("Int"))))
	query.AddField(field)
	s.AddType(query).SetQueryType("Query")

	got := Render(s)
	want := `type Query {
  user(id: Int!): User
}

"""
A registered user.
"""
type User {
  id: Int!
  name: String @deprecated(reason: "use fullName")
}
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rendered SDL mismatch (-want +got):\n%s", diff)
	}
	require.NoError(t, ValidateSDL(got))
}

func TestRenderExcludesBuiltins(t *testing.T) {
	s := NewSchema("").AddBuiltins()
	query := NewType("Query", TypeKindObject, "")
	query.AddField(NewField("ok", "", NonNullType(NamedType("Boolean"))))
	s.AddType(query).SetQueryType("Query")

	got := Render(s)
	require.NotContains(t, got, "scalar String")
	require.NotContains(t, got, "directive @include")
}

func TestRenderInputObjectAndDefaults(t *testing.T) {
	s := NewSchema("").AddBuiltins()
	in := NewType("UserFilter", TypeKindInputObject, "")
	in.AddInputField(NewInputValue("limit", "", NamedType("Int")).SetDefault(10))
	s.AddType(in)

	query := NewType("Query", TypeKindObject, "")
	field := NewField("users", "", NonNullType(ListType(NonNullType(NamedType("Int")))))
	field.AddArgument(NewInputValue("filter", "", NamedType("UserFilter")))
	query.AddField(field)
	s.AddType(query).SetQueryType("Query")

	got := Render(s)
	require.Contains(t, got, "input UserFilter {\n  limit: Int = 10\n}")
	require.Contains(t, got, "users(filter: UserFilter): [Int!]!")
	require.NoError(t, ValidateSDL(got))
}

func TestValidateSDLRejectsInvalid(t *testing.T) {
	require.Error(t, ValidateSDL("type Query {"))
}
