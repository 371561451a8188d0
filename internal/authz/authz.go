// Package authz decides whether a discovered controller method becomes
// a schema field. It evaluates the @Logged and @Right annotations
// against injected authentication and authorization services; denial is
// a normal filtering outcome, not an error.
package authz

import "github.com/methodql/methodql/internal/docblock"

// AuthenticationService reports whether the current caller is logged in.
type AuthenticationService interface {
	IsLoggedIn() bool
}

// AuthorizationService reports whether the current caller holds a named
// right.
type AuthorizationService interface {
	IsAllowed(right string) bool
}

// Gate runs once per candidate method, before type resolution, so
// inaccessible fields never pay resolution cost.
type Gate struct {
	authn AuthenticationService
	authz AuthorizationService
}

func NewGate(authn AuthenticationService, authz AuthorizationService) *Gate {
	return &Gate{authn: authn, authz: authz}
}

// Authorized applies both checks AND-combined; either failing denies the
// method. Absence of an annotation is permissive. A protected method
// with no corresponding service configured is denied.
func (g *Gate) Authorized(a docblock.Annotations) bool {
	if a.Logged && (g.authn == nil || !g.authn.IsLoggedIn()) {
		return false
	}
	if a.Right != nil && (g.authz == nil || !g.authz.IsAllowed(*a.Right)) {
		return false
	}
	return true
}
