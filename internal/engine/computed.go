package engine

// ComputedNode is a lazily-evaluated, memoized derivation. It never appears
// in the effect queue and never runs on its own initiative: a write only
// marks it PendingComputed; the getter runs on the next Get or
// Peek, or when an Effect pulls it during its own run.
type ComputedNode struct {
	Header

	cached    any
	hasCached bool

	// getter receives the previous cached value (and whether one exists)
	// so derivations like running totals can fold instead of recompute
	// from scratch.
	getter func(prev any, hasPrev bool) any
	equal  func(a, b any) bool
}

// NewComputed creates a Computed node. The node starts Dirty: nothing runs
// until the first Get/Peek.
func (rt *Runtime) NewComputed(getter func(prev any, hasPrev bool) any, equal func(a, b any) bool) *ComputedNode {
	if equal == nil {
		equal = defaultEqual
	}
	c := &ComputedNode{getter: getter, equal: equal}
	c.Kind = KindComputed
	c.Flags = Dirty
	c.self = c
	rt.hooks.fireCreate(&c.Header, KindComputed, "")
	return c
}

// Get validates (recomputing if necessary) and returns the current value,
// recording a dependency link on the active subscriber if one is tracking.
// A panic from the getter surfaces to the caller as *GetterError; a
// self-referential dependency chain surfaces as *CycleError.
func (c *ComputedNode) Get(rt *Runtime) any {
	var v any
	rt.withGraphLock(func() {
		rt.validate(c)
		if sub := rt.current; sub != nil {
			track(rt, &c.Header, sub)
		}
		v = c.cached
	})
	return v
}

// Peek validates and returns the current value without establishing a
// dependency link.
func (c *ComputedNode) Peek(rt *Runtime) any {
	var v any
	rt.withGraphLock(func() {
		rt.validate(c)
		v = c.cached
	})
	return v
}

// Dispose detaches the node from every dependency and subscriber. Links
// from subscribers that still depend on it are removed from both of their
// lists, so they stop being marked through it; the node itself, having no
// dependencies left, is never marked again. Scope teardown does not dispose
// Computeds; the public façade exposes this as Computed.Dispose.
func (c *ComputedNode) Dispose(rt *Runtime) {
	rt.withGraphLock(func() {
		clearAllDeps(rt, &c.Header)
		for l := c.Subs; l != nil; {
			next := l.nextSub
			detachDep(rt, l)
			l = next
		}
		c.Subs = nil
		c.SubsTail = nil
		c.Flags.Set(Stopped)
	})
	rt.hooks.fireDispose(&c.Header)
}
