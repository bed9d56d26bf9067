package engine

// SignalNode is a mutable reactive root: a value with a commit-pending slot.
// Writes never touch the visible value directly; they stage a pending value
// and let commitAndDrain apply it once propagation and (if inside a batch)
// every other queued write has been recorded, so an effect reading the
// signal mid-batch never observes a half-applied update.
type SignalNode struct {
	Header

	current any
	pending any
	dirty   bool // pending holds a value not yet committed to current

	equal func(a, b any) bool
}

// NewSignal creates a Signal node holding initial. equal defaults to
// reflect-free pointer/value equality (==) when nil; WithEqual-style
// options in the public façade pass a custom comparator for values that
// don't support ==, e.g. slices or structs compared by field.
func (rt *Runtime) NewSignal(initial any, equal func(a, b any) bool) *SignalNode {
	if equal == nil {
		equal = defaultEqual
	}
	s := &SignalNode{current: initial, equal: equal}
	s.Kind = KindSignal
	s.Flags = Mutable
	s.self = s
	rt.hooks.fireCreate(&s.Header, KindSignal, "")
	return s
}

func defaultEqual(a, b any) bool {
	defer func() { recover() }() // uncomparable dynamic types: never equal
	return a == b
}

// Read returns the signal's current value, recording a dependency link on
// the active subscriber if one is tracking.
func (s *SignalNode) Read(rt *Runtime) any {
	var v any
	rt.withGraphLock(func() {
		if sub := rt.current; sub != nil {
			track(rt, &s.Header, sub)
		}
		v = s.current
	})
	return v
}

// Peek returns the current value without establishing a dependency link.
func (s *SignalNode) Peek(rt *Runtime) any {
	var v any
	rt.withGraphLock(func() { v = s.current })
	return v
}

// Write stages newVal for commit. A value equal to the current one (per the
// signal's comparator), written while no other write is staged, is a
// complete no-op — no BadReentrance check, no propagation, no queued
// effects. Writing to a signal that the currently
// evaluating Computed already depends on is rejected with
// *BadReentranceError, since the in-flight recompute would then be working
// from a dependency value that is about to change underneath it.
func (s *SignalNode) Write(rt *Runtime, newVal any) error {
	var err error
	var shouldDrain bool

	rt.withGraphLock(func() {
		if s.equal(s.current, newVal) && !s.dirty {
			return
		}
		if sub := rt.current; sub != nil && sub.Kind == KindComputed {
			if linkTo(&s.Header, sub) != nil {
				err = &BadReentranceError{}
				return
			}
		}

		s.pending = newVal
		s.dirty = true
		rt.dirtySigs = append(rt.dirtySigs, s)

		rt.propagate(&s.Header)

		shouldDrain = rt.batchDepth == 0
	})

	if err == nil && shouldDrain {
		rt.withGraphLock(rt.commitAndDrain)
	}
	return err
}

// Update stages f(current) as the new value, the same as Write(f(Peek())).
func (s *SignalNode) Update(rt *Runtime, f func(any) any) error {
	return s.Write(rt, f(s.Peek(rt)))
}

// commit applies a staged write, bumping Version so PendingComputed
// subscribers can tell this particular dependency actually changed.
func (s *SignalNode) commit(rt *Runtime) {
	if !s.dirty {
		return
	}
	old := s.current
	s.current = s.pending
	s.pending = nil
	s.dirty = false
	s.Version++
	rt.hooks.fireCommit(&s.Header, old, s.current)
}

// Dispose removes the signal from the graph, unlinking every subscriber.
// Reading a disposed signal afterward is undefined by the public façade; the
// engine itself only guarantees the links are gone.
func (s *SignalNode) Dispose(rt *Runtime) {
	rt.withGraphLock(func() {
		for l := s.Subs; l != nil; {
			next := l.nextSub
			detachDep(rt, l)
			l = next
		}
		s.Subs = nil
		s.SubsTail = nil
	})
	rt.hooks.fireDispose(&s.Header)
}

// detachDep removes l from both its dependency's subscriber list and its
// subscriber's dependency list, used when a dependency disposes out from
// under a still-live subscriber.
func detachDep(rt *Runtime, l *Link) {
	removeSub(l)
	sub := l.Sub
	if l.prevDep != nil {
		l.prevDep.nextDep = l.nextDep
	} else if sub.Deps == l {
		sub.Deps = l.nextDep
	}
	if l.nextDep != nil {
		l.nextDep.prevDep = l.prevDep
	} else if sub.DepsTail == l {
		sub.DepsTail = l.prevDep
	}
	rt.hooks.fireLinkRemove(l.Dep, sub)
	rt.freeLink(l)
}
