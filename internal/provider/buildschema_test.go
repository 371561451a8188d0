package provider

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/methodql/methodql/internal/authz"
	"github.com/methodql/methodql/internal/methodmeta"
	"github.com/methodql/methodql/internal/objectmap"
	"github.com/methodql/methodql/internal/schema"
	"github.com/methodql/methodql/internal/typemap"
)

type catalogController struct{}

func (catalogController) GetItem(ctx context.Context, sku string) (*Item, error) {
	return nil, nil
}

func (catalogController) Retire(sku string) bool { return true }

var catalogDocs = map[string]string{
	"GetItem": `Returns one catalog item.
@Query
@param sku string`,
	"Retire": `@Mutation
@param sku string
@deprecated items are never retired anymore`,
}

func TestBuildSchemaRendersValidSDL(t *testing.T) {
	reg := objectmap.NewRegistry()
	_, err := reg.RegisterStruct(Item{})
	require.NoError(t, err)

	ctrl := methodmeta.New(catalogController{}, methodmeta.WithDocs(catalogDocs))
	p := New(ctrl, authz.NewGate(nil, nil), typemap.NewResolver(reg))

	s, err := BuildSchema(context.Background(), p, reg)
	require.NoError(t, err)
	require.Equal(t, "Query", s.QueryType)
	require.Equal(t, "Mutation", s.MutationType)
	require.NotNil(t, s.GetQueryType())
	require.NotNil(t, s.GetMutationType())

	sdl := schema.Render(s)
	require.NoError(t, schema.ValidateSDL(sdl))

	want := `type Item {
  sku: String!
}

type Mutation {
  retire(sku: String!): Boolean! @deprecated(reason: "items are never retired anymore")
}

type Query {
"""
Returns one catalog item.
"""
  getItem(sku: String!): Item
}
`
	if diff := cmp.Diff(want, sdl); diff != "" {
		t.Errorf("rendered SDL mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildSchemaOmitsEmptyMutationRoot(t *testing.T) {
	reg := objectmap.NewRegistry()
	_, err := reg.RegisterStruct(Item{})
	require.NoError(t, err)

	ctrl := methodmeta.New(catalogController{}, methodmeta.WithDocs(map[string]string{
		"GetItem": `@Query
@param sku string`,
	}))
	p := New(ctrl, authz.NewGate(nil, nil), typemap.NewResolver(reg))

	s, err := BuildSchema(context.Background(), p, reg)
	require.NoError(t, err)
	require.Empty(t, s.MutationType)
	require.Nil(t, s.GetMutationType())
	require.NoError(t, schema.ValidateSDL(schema.Render(s)))
}
