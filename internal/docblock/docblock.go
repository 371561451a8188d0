// Package docblock parses the structured documentation comments that
// carry field annotations and type hints for controller methods.
//
// A docblock looks like:
//
//	Returns a single user by its identifier.
//	@Query
//	@Logged
//	@param id int
//	@return User|null
//
// Annotation tags (@Query, @Mutation, @Logged, @Right) decide whether and
// how a method is exposed; @param and @return supply type candidates that
// disambiguate positions the native signature leaves open.
package docblock

import (
	"fmt"
	"regexp"
	"strings"
)

// Annotations is the set of exposure and authorization markers found on
// one method.
type Annotations struct {
	Query    bool
	Mutation bool
	Logged   bool
	Right    *string
}

// Block is one parsed documentation comment.
type Block struct {
	Description string
	Annotations Annotations

	// Params holds @param type candidates keyed by parameter name;
	// ParamOrder preserves tag declaration order.
	Params     map[string][]TypeExpr
	ParamOrder []string

	// Return holds @return type candidates. Empty when the tag is absent.
	Return []TypeExpr

	// Deprecated is non-nil when the block carries a @deprecated tag;
	// the value is the (possibly empty) reason.
	Deprecated *string
}

// TypeExpr is a single documentation-derived type candidate. Elem is
// non-nil for list expressions such as "Item[]"; Named holds the scalar
// or object name otherwise.
type TypeExpr struct {
	Named string
	Elem  *TypeExpr
}

// IsNull reports whether the candidate is the explicit null marker.
func (t TypeExpr) IsNull() bool {
	return t.Elem == nil && strings.EqualFold(t.Named, "null")
}

func (t TypeExpr) String() string {
	if t.Elem != nil {
		return t.Elem.String() + "[]"
	}
	return t.Named
}

var rightPattern = regexp.MustCompile(`^@Right\(\s*(?:name\s*=\s*)?"([^"]*)"\s*\)$`)

// Parse extracts annotations, parameter and return type candidates, and
// the leading description from a documentation comment. Comment markers
// ("//", "/**", "*", "*/") are tolerated so callers can pass raw source
// comments verbatim.
func Parse(doc string) (*Block, error) {
	b := &Block{Params: map[string][]TypeExpr{}}
	var desc []string

	for _, raw := range strings.Split(doc, "\n") {
		line := trimCommentMarkers(raw)
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "@") {
			if len(b.ParamOrder) == 0 && b.Return == nil {
				desc = append(desc, line)
			}
			continue
		}
		if err := b.parseTag(line); err != nil {
			return nil, err
		}
	}
	b.Description = strings.Join(desc, "\n")
	return b, nil
}

func (b *Block) parseTag(line string) error {
	switch {
	case line == "@Query":
		b.Annotations.Query = true
	case line == "@Mutation":
		b.Annotations.Mutation = true
	case line == "@Logged":
		b.Annotations.Logged = true
	case strings.HasPrefix(line, "@Right"):
		m := rightPattern.FindStringSubmatch(line)
		if m == nil {
			return fmt.Errorf("malformed @Right tag %q", line)
		}
		b.Annotations.Right = &m[1]
	case strings.HasPrefix(line, "@param"):
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return fmt.Errorf("malformed @param tag %q: want \"@param <name> <type>\"", line)
		}
		name := fields[1]
		types, err := ParseTypeList(fields[2])
		if err != nil {
			return fmt.Errorf("@param %s: %w", name, err)
		}
		if _, dup := b.Params[name]; dup {
			return fmt.Errorf("duplicate @param tag for %q", name)
		}
		b.Params[name] = types
		b.ParamOrder = append(b.ParamOrder, name)
	case strings.HasPrefix(line, "@return"):
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return fmt.Errorf("malformed @return tag %q: want \"@return <type>\"", line)
		}
		types, err := ParseTypeList(fields[1])
		if err != nil {
			return fmt.Errorf("@return: %w", err)
		}
		b.Return = types
	case strings.HasPrefix(line, "@deprecated"):
		reason := strings.TrimSpace(strings.TrimPrefix(line, "@deprecated"))
		b.Deprecated = &reason
	default:
		// Unknown tags are tolerated so docblocks can carry
		// tooling-specific markers this package does not own.
	}
	return nil
}

// ParseTypeList parses a pipe-separated type candidate list such as
// "int|string|null" or "Item[]".
func ParseTypeList(expr string) ([]TypeExpr, error) {
	parts := strings.Split(expr, "|")
	out := make([]TypeExpr, 0, len(parts))
	for _, part := range parts {
		t, err := parseTypeExpr(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func parseTypeExpr(expr string) (TypeExpr, error) {
	if strings.HasSuffix(expr, "[]") {
		elem, err := parseTypeExpr(strings.TrimSuffix(expr, "[]"))
		if err != nil {
			return TypeExpr{}, err
		}
		return TypeExpr{Elem: &elem}, nil
	}
	if expr == "" || !isTypeName(expr) {
		return TypeExpr{}, fmt.Errorf("invalid type expression %q", expr)
	}
	return TypeExpr{Named: expr}, nil
}

func isTypeName(s string) bool {
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9' && i > 0:
		case r == '.' && i > 0:
		default:
			return false
		}
	}
	return true
}

func trimCommentMarkers(line string) string {
	line = strings.TrimSpace(line)
	for _, marker := range []string{"/**", "/*", "//"} {
		if strings.HasPrefix(line, marker) {
			line = strings.TrimPrefix(line, marker)
			break
		}
	}
	line = strings.TrimSuffix(line, "*/")
	line = strings.TrimPrefix(strings.TrimSpace(line), "* ")
	if line == "*" {
		line = ""
	}
	return strings.TrimSpace(line)
}
