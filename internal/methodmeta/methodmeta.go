// Package methodmeta enumerates the public methods of a controller
// instance and exposes, per method, the native signature, the parsed
// docblock and the annotation set. It is the single source the schema
// provider reads; everything here is recomputed on each build pass.
package methodmeta

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/methodql/methodql/internal/docblock"
)

// DocProvider lets a controller carry its own method docblocks.
type DocProvider interface {
	MethodDocs() map[string]string
}

// Controller wraps one bound controller instance for metadata
// extraction. The instance outlives the build pass; Controller holds it
// only for reflection and for binding invocation targets.
type Controller struct {
	instance reflect.Value
	docs     map[string]string
}

type Option func(*Controller)

// WithDocs attaches docblocks keyed by Go method name. Docs given here
// take precedence over a DocProvider implementation.
func WithDocs(docs map[string]string) Option {
	return func(c *Controller) {
		if c.docs == nil {
			c.docs = map[string]string{}
		}
		for name, doc := range docs {
			c.docs[name] = doc
		}
	}
}

// New wraps a controller instance. If the instance implements
// DocProvider its docblocks are read first; options may override them.
func New(instance any, opts ...Option) *Controller {
	c := &Controller{instance: reflect.ValueOf(instance)}
	if dp, ok := instance.(DocProvider); ok {
		c.docs = map[string]string{}
		for name, doc := range dp.MethodDocs() {
			c.docs[name] = doc
		}
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Param is one schema-relevant method parameter.
type Param struct {
	Name     string
	Native   NativeType
	Nullable bool
	Doc      []docblock.TypeExpr
}

// MethodCandidate is one reflectable public method, with its docblock
// merged in. Transient: rebuilt on every extraction pass.
type MethodCandidate struct {
	Name        string // Go method name
	FieldName   string // schema field name (lowerCamel)
	Description string
	Annotations docblock.Annotations
	Deprecated  *string
	Params      []*Param
	ReturnDoc   []docblock.TypeExpr

	recv   reflect.Value
	method reflect.Method
}

// Invocation is the deferred callable bound to a candidate. It is never
// invoked during schema derivation.
type Invocation struct {
	Receiver reflect.Value
	Method   reflect.Method
}

func (m *MethodCandidate) Invocation() Invocation {
	return Invocation{Receiver: m.recv, Method: m.method}
}

var (
	errType = reflect.TypeOf((*error)(nil)).Elem()
	ctxType = reflect.TypeOf((*context.Context)(nil)).Elem()
)

// Methods lists every public method of the controller in the stable
// order reflection reports. MethodDocs (docblock) parse failures are
// caller errors and abort the pass.
func (c *Controller) Methods() ([]*MethodCandidate, error) {
	t := c.instance.Type()
	out := make([]*MethodCandidate, 0, t.NumMethod())
	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)
		if !m.IsExported() {
			continue
		}
		cand, err := c.candidate(m)
		if err != nil {
			return nil, fmt.Errorf("method %s: %w", m.Name, err)
		}
		out = append(out, cand)
	}
	return out, nil
}

func (c *Controller) candidate(m reflect.Method) (*MethodCandidate, error) {
	block, err := docblock.Parse(c.docs[m.Name])
	if err != nil {
		return nil, err
	}

	cand := &MethodCandidate{
		Name:        m.Name,
		FieldName:   fieldName(m.Name),
		Description: block.Description,
		Annotations: block.Annotations,
		Deprecated:  block.Deprecated,
		ReturnDoc:   block.Return,
		recv:        c.instance,
		method:      m,
	}

	mt := m.Type
	start := 1 // skip the receiver
	if mt.NumIn() > start && mt.In(start) == ctxType {
		start++ // context.Context is invoker plumbing, not a schema argument
	}
	for i := start; i < mt.NumIn(); i++ {
		native, nullable := NativeOf(mt.In(i))
		name := fmt.Sprintf("arg%d", i-start)
		if idx := i - start; idx < len(block.ParamOrder) {
			name = block.ParamOrder[idx]
		}
		cand.Params = append(cand.Params, &Param{
			Name:     name,
			Native:   native,
			Nullable: nullable,
			Doc:      block.Params[name],
		})
	}
	return cand, nil
}

// ReturnType resolves the native return signature: the first non-error
// result. A method with no such result has no resolvable return type,
// which is a caller error.
func (m *MethodCandidate) ReturnType() (NativeType, bool, error) {
	mt := m.method.Type
	for i := 0; i < mt.NumOut(); i++ {
		if mt.Out(i) == errType {
			continue
		}
		nt, nullable := NativeOf(mt.Out(i))
		return nt, nullable, nil
	}
	return NativeType{}, false, fmt.Errorf("method %s has no resolvable return type", m.Name)
}

// fieldName converts a Go method name "GetUser" into the schema field
// name "getUser".
func fieldName(s string) string {
	var b strings.Builder
	for i, r := range s {
		if i == 0 {
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
