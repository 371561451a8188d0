package provider

import (
	"context"
	"fmt"
	"reflect"

	"github.com/methodql/methodql/internal/methodmeta"
)

// Target is the deferred invocation bound to a field: the controller
// instance plus the method, never called during schema derivation. The
// execution runtime calls Invoke with hydrated arguments.
type Target struct {
	inv methodmeta.Invocation
}

func newTarget(inv methodmeta.Invocation) *Target {
	return &Target{inv: inv}
}

// MethodName returns the bound Go method name.
func (t *Target) MethodName() string { return t.inv.Method.Name }

// Invoke calls the bound method with positional arguments. The context
// is forwarded when the method's first parameter accepts one. Arguments
// must already be hydrated to assignable or convertible Go values; a
// trailing error result is unwrapped.
func (t *Target) Invoke(ctx context.Context, args ...any) (any, error) {
	mt := t.inv.Method.Type
	in := []reflect.Value{t.inv.Receiver}
	next := 1
	if mt.NumIn() > next && mt.In(next) == reflect.TypeOf((*context.Context)(nil)).Elem() {
		in = append(in, reflect.ValueOf(ctx))
		next++
	}
	if got, want := len(args), mt.NumIn()-next; got != want {
		return nil, fmt.Errorf("%s: want %d arguments, got %d", t.MethodName(), want, got)
	}
	for i, arg := range args {
		pt := mt.In(next + i)
		v, err := coerce(arg, pt)
		if err != nil {
			return nil, fmt.Errorf("%s argument %d: %w", t.MethodName(), i, err)
		}
		in = append(in, v)
	}

	out := t.inv.Method.Func.Call(in)
	var result any
	for _, v := range out {
		if v.Type() == reflect.TypeOf((*error)(nil)).Elem() {
			if !v.IsNil() {
				return nil, v.Interface().(error)
			}
			continue
		}
		result = v.Interface()
	}
	return result, nil
}

func coerce(arg any, want reflect.Type) (reflect.Value, error) {
	if arg == nil {
		switch want.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map:
			return reflect.Zero(want), nil
		}
		return reflect.Value{}, fmt.Errorf("cannot pass null for %s", want)
	}
	v := reflect.ValueOf(arg)
	if v.Type().AssignableTo(want) {
		return v, nil
	}
	if v.Type().ConvertibleTo(want) {
		return v.Convert(want), nil
	}
	return reflect.Value{}, fmt.Errorf("cannot use %T as %s", arg, want)
}
