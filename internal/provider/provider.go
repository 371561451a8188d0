// Package provider is the public facade of schema derivation: it scans
// a controller's methods, filters them through the authorization gate
// and assembles the surviving ones into typed, invokable schema fields.
package provider

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/methodql/methodql/internal/authz"
	"github.com/methodql/methodql/internal/docblock"
	"github.com/methodql/methodql/internal/methodmeta"
	"github.com/methodql/methodql/internal/schema"
	"github.com/methodql/methodql/internal/typemap"
)

// Field is one derived schema entry point: a name, typed arguments, a
// typed return and a deferred invocation target for the execution
// runtime. Field identity is the name; uniqueness across providers is
// the caller's responsibility.
type Field struct {
	Name              string
	Description       string
	Args              []*schema.InputValue
	Type              *schema.TypeRef
	DeprecationReason *string
	Target            *Target
}

type fieldKind int

const (
	kindQuery fieldKind = iota
	kindMutation
)

func (k fieldKind) String() string {
	if k == kindMutation {
		return "mutation"
	}
	return "query"
}

// Provider derives queryable and mutable fields from one controller.
// Every build pass recomputes everything; nothing is cached.
type Provider struct {
	ctrl     *methodmeta.Controller
	gate     *authz.Gate
	resolver *typemap.Resolver
	tracer   trace.Tracer
}

func New(ctrl *methodmeta.Controller, gate *authz.Gate, resolver *typemap.Resolver) *Provider {
	return &Provider{
		ctrl:     ctrl,
		gate:     gate,
		resolver: resolver,
		tracer:   otel.Tracer("methodql/provider"),
	}
}

// Queries lists the fields derived from @Query methods, in extraction
// order.
func (p *Provider) Queries(ctx context.Context) ([]*Field, error) {
	return p.build(ctx, kindQuery)
}

// Mutations lists the fields derived from @Mutation methods, in
// extraction order.
func (p *Provider) Mutations(ctx context.Context) ([]*Field, error) {
	return p.build(ctx, kindMutation)
}

func (p *Provider) build(ctx context.Context, kind fieldKind) ([]*Field, error) {
	_, span := p.tracer.Start(ctx, "schema.build",
		trace.WithAttributes(attribute.String("schema.field_kind", kind.String())))
	defer span.End()

	candidates, err := p.ctrl.Methods()
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	var fields []*Field
	for _, m := range candidates {
		if !marked(m.Annotations, kind) {
			continue
		}
		// Gate before resolution: inaccessible fields never pay
		// type-resolution cost, and denial is silent by design.
		if !p.gate.Authorized(m.Annotations) {
			continue
		}
		f, err := p.assemble(m)
		if err != nil {
			err = fmt.Errorf("field %s: %w", m.FieldName, err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		fields = append(fields, f)
	}
	span.SetAttributes(attribute.Int("schema.field_count", len(fields)))
	return fields, nil
}

func marked(a docblock.Annotations, kind fieldKind) bool {
	if kind == kindMutation {
		return a.Mutation
	}
	return a.Query
}
