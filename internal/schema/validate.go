package schema

import (
	"fmt"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

// ValidateSDL round-trips rendered SDL through the reference GraphQL
// parser and validator. Schema derivation is only trusted if its output
// is a spec-valid schema document.
func ValidateSDL(sdl string) error {
	_, err := gqlparser.LoadSchema(&ast.Source{Name: "derived.graphql", Input: sdl})
	if err != nil {
		return fmt.Errorf("derived schema is invalid: %w", err)
	}
	return nil
}
