package engine

// EffectNode is a push-driven observer: it runs once at creation and again
// every time a dependency it read during its last run changes, scheduled
// via the runtime's FIFO effect queue rather than run inline from
// propagate, so a diamond that reaches the same effect through two paths
// still runs it exactly once per drain.
type EffectNode struct {
	Header
	ownerMixin

	fn func()
}

// NewEffect creates and immediately runs an Effect, establishing its
// initial dependency set.
func (rt *Runtime) NewEffect(fn func()) *EffectNode {
	e := &EffectNode{fn: fn}
	e.Kind = KindEffect
	e.Flags = Watching
	e.self = e
	rt.hooks.fireCreate(&e.Header, KindEffect, "")
	rt.withGraphLock(func() {
		rt.trackChild(e)
		rt.runEffect(e)
	})
	return e
}

// runEffect disposes the previous run's children and cleanups, then
// re-evaluates the body with dependency re-tracking, recovering and routing
// any panic to the runtime's error sink rather than letting it escape the
// drain loop.
func (rt *Runtime) runEffect(e *EffectNode) {
	h := &e.Header
	h.Flags.Clear(Queued)
	if h.Flags.Has(Stopped) {
		return
	}

	e.disposeChildrenAndCleanups(rt)

	if h.Flags.Has(RecursedCheck) {
		rt.reportEffectError(&BadReentranceError{})
		return
	}
	h.Flags.Set(RecursedCheck)

	prev := rt.pushSubscriber(h)
	prevOwner := rt.pushOwner(e)
	h.DepsTail = nil

	func() {
		defer func() {
			rt.popOwner(prevOwner)
			rt.popSubscriber(prev)
			h.Flags.Clear(RecursedCheck)
			truncateDeps(rt, h)

			if r := recover(); r != nil {
				var err error
				if ee, ok := r.(error); ok {
					err = &EffectError{Cause: ee}
				} else {
					err = &EffectError{Cause: r}
				}
				rt.reportEffectError(err)
			}
		}()
		e.fn()
	}()
}

func (e *EffectNode) stop(rt *Runtime) { e.Stop(rt) }

// Stop disposes the effect: its children and pending cleanups run, all
// dependency links are released, and the node is marked Stopped so a drain
// that still holds it queued skips it instead of running it.
func (e *EffectNode) Stop(rt *Runtime) {
	rt.withGraphLock(func() {
		if e.Flags.Has(Stopped) {
			return
		}
		e.disposeChildrenAndCleanups(rt)
		clearAllDeps(rt, &e.Header)
		e.Flags.Set(Stopped)
		e.Flags.Clear(Queued)
	})
	rt.hooks.fireDispose(&e.Header)
}
