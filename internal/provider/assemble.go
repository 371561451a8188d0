package provider

import (
	"fmt"

	"github.com/methodql/methodql/internal/methodmeta"
	"github.com/methodql/methodql/internal/schema"
)

// assemble turns one gated method candidate into a schema field. Any
// resolution failure aborts this field; no partial field is emitted.
func (p *Provider) assemble(m *methodmeta.MethodCandidate) (*Field, error) {
	args := make([]*schema.InputValue, 0, len(m.Params))
	for _, param := range m.Params {
		// Argument nullability comes from the native parameter
		// signature only. The docblock layer reports it incorrectly
		// for parameters, so it is never consulted here.
		ref, err := p.resolver.Resolve(param.Native, param.Doc, param.Nullable)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", param.Name, err)
		}
		args = append(args, schema.NewInputValue(param.Name, "", ref))
	}

	native, nullable, err := m.ReturnType()
	if err != nil {
		return nil, err
	}
	ret, err := p.resolver.Resolve(native, m.ReturnDoc, nullable)
	if err != nil {
		return nil, fmt.Errorf("return value: %w", err)
	}

	return &Field{
		Name:              m.FieldName,
		Description:       m.Description,
		Args:              args,
		Type:              ret,
		DeprecationReason: m.Deprecated,
		Target:            newTarget(m.Invocation()),
	}, nil
}
