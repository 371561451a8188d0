package provider

import (
	"context"

	"github.com/methodql/methodql/internal/objectmap"
	"github.com/methodql/methodql/internal/schema"
)

// BuildSchema assembles a complete schema document from the provider's
// derived fields plus every object type the registry holds. The Mutation
// root is emitted only when at least one mutable field exists.
func BuildSchema(ctx context.Context, p *Provider, reg *objectmap.Registry) (*schema.Schema, error) {
	queries, err := p.Queries(ctx)
	if err != nil {
		return nil, err
	}
	mutations, err := p.Mutations(ctx)
	if err != nil {
		return nil, err
	}

	s := schema.NewSchema("").AddBuiltins()

	query := schema.NewType("Query", schema.TypeKindObject, "")
	for _, f := range queries {
		query.AddField(toSchemaField(f))
	}
	s.AddType(query).SetQueryType("Query")

	if len(mutations) > 0 {
		mutation := schema.NewType("Mutation", schema.TypeKindObject, "")
		for _, f := range mutations {
			mutation.AddField(toSchemaField(f))
		}
		s.AddType(mutation).SetMutationType("Mutation")
	}

	for _, t := range reg.Types() {
		s.AddType(t)
	}
	return s, nil
}

func toSchemaField(f *Field) *schema.Field {
	sf := schema.NewField(f.Name, f.Description, f.Type)
	for _, arg := range f.Args {
		sf.AddArgument(arg)
	}
	if f.DeprecationReason != nil {
		sf.Deprecate(*f.DeprecationReason)
	}
	return sf
}
