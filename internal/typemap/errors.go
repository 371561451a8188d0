package typemap

import (
	"fmt"
	"strings"
)

// UnresolvableTypeError reports a value position whose type cannot be
// mapped to any schema type: neither the native signature nor the
// docblock candidates yield a usable type. Fatal for the field being
// built.
type UnresolvableTypeError struct {
	Type string
}

func (e *UnresolvableTypeError) Error() string {
	return fmt.Sprintf("don't know how to handle type %q", e.Type)
}

// UnsupportedUnionTypeError reports more than one non-null docblock
// candidate left for an ambiguous native type. Union parameter and
// return types are not supported; this is a hard failure, never a
// best-effort pick.
type UnsupportedUnionTypeError struct {
	Candidates []string
}

func (e *UnsupportedUnionTypeError) Error() string {
	return fmt.Sprintf("union types are not supported (got %s)", strings.Join(e.Candidates, "|"))
}
