package reactive

import "github.com/graphwire/reactive/internal/engine"

// Hooks are the optional observability callbacks fired by node/link
// lifecycle events and value commits. See engine.Hooks for field docs.
type Hooks = engine.Hooks

// SetHooks installs the observability callbacks for the calling goroutine's
// runtime. Passing the zero Hooks{} disables them again.
func SetHooks(hooks Hooks) {
	rt().SetHooks(hooks)
}

// dumpNode renders the dependency graph reachable downward from a node's
// own subscribers as an ASCII tree, for debugging. label, if non-nil,
// formats a node for display; nil uses its kind and address.
func dumpNode(h *engine.Header, label func(*engine.Header) string) string {
	return engine.DumpGraph(h, label)
}

// DumpGraph renders the subscriber graph reachable from s as an ASCII tree.
func (s *Signal[T]) DumpGraph() string { return dumpNode(&s.node.Header, nil) }

// DumpGraph renders the subscriber graph reachable from c as an ASCII tree.
func (c *Computed[T]) DumpGraph() string { return dumpNode(&c.node.Header, nil) }
