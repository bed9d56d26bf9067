package engine

// ScopeNode groups the lifetime of every Effect and child Scope created
// while setup runs, so a single Stop tears the whole group down.
type ScopeNode struct {
	Header
	ownerMixin
}

// NewScope creates a Scope and immediately runs setup with the scope pushed
// as the active owner, so every Effect or nested Scope setup creates is
// torn down when the Scope is stopped.
func (rt *Runtime) NewScope(setup func()) *ScopeNode {
	s := &ScopeNode{}
	s.Kind = KindScope
	s.self = s
	rt.hooks.fireCreate(&s.Header, KindScope, "")

	rt.withGraphLock(func() { rt.trackChild(s) })

	prevOwner := rt.pushOwner(s)
	defer rt.popOwner(prevOwner)
	setup()
	return s
}

func (s *ScopeNode) stop(rt *Runtime) { s.Stop(rt) }

// Stop disposes every child (reverse creation order), then runs the scope's
// own OnCleanup callbacks, then marks the scope itself Stopped.
func (s *ScopeNode) Stop(rt *Runtime) {
	rt.withGraphLock(func() {
		if s.Flags.Has(Stopped) {
			return
		}
		s.disposeChildrenAndCleanups(rt)
		s.Flags.Set(Stopped)
	})
	rt.hooks.fireDispose(&s.Header)
}
