package docblock

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAnnotations(t *testing.T) {
	block, err := Parse(`Returns a single user.
@Query
@Logged
@Right("admin")
@param id int
@return User|null`)
	require.NoError(t, err)

	require.Equal(t, "Returns a single user.", block.Description)
	require.True(t, block.Annotations.Query)
	require.False(t, block.Annotations.Mutation)
	require.True(t, block.Annotations.Logged)
	require.NotNil(t, block.Annotations.Right)
	require.Equal(t, "admin", *block.Annotations.Right)

	require.Equal(t, []string{"id"}, block.ParamOrder)
	require.Equal(t, []TypeExpr{{Named: "int"}}, block.Params["id"])
	require.Equal(t, []TypeExpr{{Named: "User"}, {Named: "null"}}, block.Return)
}

func TestParseRightNamedArgument(t *testing.T) {
	block, err := Parse(`@Mutation
@Right(name="catalog.write")`)
	require.NoError(t, err)
	require.True(t, block.Annotations.Mutation)
	require.Equal(t, "catalog.write", *block.Annotations.Right)
}

func TestParseCommentMarkersTolerated(t *testing.T) {
	block, err := Parse(`/**
 * Searches things.
 * @Query
 * @param query string
 */`)
	require.NoError(t, err)
	require.Equal(t, "Searches things.", block.Description)
	require.True(t, block.Annotations.Query)
	require.Equal(t, []TypeExpr{{Named: "string"}}, block.Params["query"])
}

func TestParseEmpty(t *testing.T) {
	block, err := Parse("")
	require.NoError(t, err)
	require.Equal(t, Annotations{}, block.Annotations)
	require.Empty(t, block.ParamOrder)
	require.Nil(t, block.Return)
}

func TestParseDeprecated(t *testing.T) {
	block, err := Parse(`@Query
@deprecated Use getUserV2 instead`)
	require.NoError(t, err)
	require.NotNil(t, block.Deprecated)
	require.Equal(t, "Use getUserV2 instead", *block.Deprecated)
}

func TestParseMalformedTags(t *testing.T) {
	for _, doc := range []string{
		`@Right(admin)`,
		`@param id`,
		`@return`,
		`@param id int!bad`,
	} {
		_, err := Parse(doc)
		require.Error(t, err, "doc: %s", doc)
	}
}

func TestParseDuplicateParam(t *testing.T) {
	_, err := Parse(`@param id int
@param id string`)
	require.Error(t, err)
}

func TestParseTypeList(t *testing.T) {
	tests := []struct {
		expr string
		want []TypeExpr
	}{
		{"int", []TypeExpr{{Named: "int"}}},
		{"int|string|null", []TypeExpr{{Named: "int"}, {Named: "string"}, {Named: "null"}}},
		{"Item[]", []TypeExpr{{Elem: &TypeExpr{Named: "Item"}}}},
		{"Item[][]", []TypeExpr{{Elem: &TypeExpr{Elem: &TypeExpr{Named: "Item"}}}}},
		{"Product[]|null", []TypeExpr{{Elem: &TypeExpr{Named: "Product"}}, {Named: "null"}}},
	}
	for _, tt := range tests {
		got, err := ParseTypeList(tt.expr)
		require.NoError(t, err, tt.expr)
		require.Equal(t, tt.want, got, tt.expr)
	}
}

func TestTypeExprString(t *testing.T) {
	require.Equal(t, "Item[]", TypeExpr{Elem: &TypeExpr{Named: "Item"}}.String())
	require.True(t, TypeExpr{Named: "NULL"}.IsNull())
	require.False(t, TypeExpr{Elem: &TypeExpr{Named: "null"}}.IsNull())
}
