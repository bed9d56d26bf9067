package reactive

import "github.com/graphwire/reactive/internal/engine"

// Scope groups the lifetime of every Effect (and nested Scope) created while
// setup runs, so a single Stop tears the whole group down, in reverse
// creation order. Computeds created inside setup are not owned by the scope.
type Scope struct {
	node *engine.ScopeNode
}

// NewScope creates a Scope and immediately runs setup inside it.
func NewScope(setup func()) *Scope {
	return &Scope{node: rt().NewScope(setup)}
}

// Stop disposes every child of the scope, then runs the scope's own
// OnCleanup callbacks.
func (s *Scope) Stop() {
	s.node.Stop(rt())
}
