package engine

// Link records one (dependency, subscriber) edge. It carries a version
// stamp copied from the dependency at the time the link was (re)established,
// used during PendingComputed validation to detect whether that particular
// dependency actually changed since the link was last observed.
type Link struct {
	Dep *Header
	Sub *Header

	Version uint64

	prevDep, nextDep *Link
	prevSub, nextSub *Link
}

// appendSub adds l to dep's incoming-subscriber list, at the tail.
func appendSub(dep *Header, l *Link) {
	if dep.SubsTail != nil {
		dep.SubsTail.nextSub = l
		l.prevSub = dep.SubsTail
	} else {
		dep.Subs = l
	}
	dep.SubsTail = l
}

// removeSub unlinks l from its dependency's subscriber list. It does not
// touch l's position in the subscriber's dep list.
func removeSub(l *Link) {
	dep := l.Dep
	if l.prevSub != nil {
		l.prevSub.nextSub = l.nextSub
	} else {
		dep.Subs = l.nextSub
	}
	if l.nextSub != nil {
		l.nextSub.prevSub = l.prevSub
	} else {
		dep.SubsTail = l.prevSub
	}
	l.prevSub = nil
	l.nextSub = nil
}

// track records (or reuses) a dependency link from dep to sub during sub's
// current evaluation. Consecutive reads of the same dep are deduplicated
// against the cursor (sub.DepsTail); a read that lands on the next link of
// the previous evaluation's chain reuses that link in place; anything else
// allocates a new link splice in front of the still-dangling remainder,
// which stays eligible for reuse later in the same pass.
func track(rt *Runtime, dep *Header, sub *Header) {
	if sub.DepsTail != nil && sub.DepsTail.Dep == dep {
		return
	}

	var old *Link
	if sub.DepsTail != nil {
		old = sub.DepsTail.nextDep
	} else {
		old = sub.Deps
	}

	if old != nil && old.Dep == dep {
		old.Version = dep.Version
		sub.DepsTail = old
		return
	}

	l := rt.allocLink(dep, sub)
	l.Version = dep.Version
	l.nextDep = old

	if sub.DepsTail != nil {
		sub.DepsTail.nextDep = l
		l.prevDep = sub.DepsTail
	} else {
		sub.Deps = l
	}
	if old != nil {
		old.prevDep = l
	}
	sub.DepsTail = l

	appendSub(dep, l)
	rt.hooks.fireLinkCreate(dep, sub)
}

// truncateDeps removes every dep link past the current cursor (sub.DepsTail)
// — the links that existed on a previous evaluation but were not reused on
// this one — unlinking each from its dependency's subscriber list and
// returning it to the runtime's free-link pool.
func truncateDeps(rt *Runtime, sub *Header) {
	var start *Link
	if sub.DepsTail != nil {
		start = sub.DepsTail.nextDep
		sub.DepsTail.nextDep = nil
	} else {
		start = sub.Deps
		sub.Deps = nil
	}

	for l := start; l != nil; {
		next := l.nextDep
		removeSub(l)
		rt.hooks.fireLinkRemove(l.Dep, sub)
		rt.freeLink(l)
		l = next
	}
}

// clearAllDeps unlinks and frees every dependency of sub, used on disposal.
func clearAllDeps(rt *Runtime, sub *Header) {
	for l := sub.Deps; l != nil; {
		next := l.nextDep
		removeSub(l)
		rt.hooks.fireLinkRemove(l.Dep, sub)
		rt.freeLink(l)
		l = next
	}
	sub.Deps = nil
	sub.DepsTail = nil
}

// linkTo reports whether dep already has a subscriber link targeting sub.
func linkTo(dep *Header, sub *Header) *Link {
	for l := dep.Subs; l != nil; l = l.nextSub {
		if l.Sub == sub {
			return l
		}
	}
	return nil
}
