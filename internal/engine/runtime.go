package engine

import (
	"log"
	"sync"

	"github.com/petermattis/goid"
)

// Runtime holds all mutable reactive state for one logical thread of
// execution. Go has no user-exposed thread-local storage, so — following
// the teacher's own approach — a Runtime is looked up by goroutine id and
// cached; every tracking cursor, batch depth, effect queue and free-link
// pool is therefore goroutine-local, matching the single-threaded
// cooperative scheduling model the spec assumes per logical runtime.
type Runtime struct {
	current *Header // active subscriber; nil means untracked

	batchDepth int
	dirtySigs  []*signalLike // signals written since the last commit

	effectQueue []*effectHolder

	linkFree *Link

	errorSink func(error)

	settled []func() // one-shot callbacks firing after the next full drain

	hooks Hooks

	ownerStack []owner // current Effect/Scope nesting, for OnCleanup/child targeting

	holdsGraphLock bool // this goroutine currently holds graphMu
}

// owner is anything that can own cleanup callbacks and child nodes: an
// EffectNode (children and cleanups run before each re-run and on Stop) or
// a ScopeNode (children and cleanups run once, on Stop).
type owner interface {
	addCleanup(fn func())
	addChild(c child)
}

func (rt *Runtime) pushOwner(o owner) owner {
	rt.ownerStack = append(rt.ownerStack, o)
	return o
}

func (rt *Runtime) popOwner(o owner) {
	if n := len(rt.ownerStack); n > 0 && rt.ownerStack[n-1] == o {
		rt.ownerStack = rt.ownerStack[:n-1]
	}
}

// currentOwner returns the innermost active Effect or Scope, or nil outside
// of one.
func (rt *Runtime) currentOwner() owner {
	if n := len(rt.ownerStack); n > 0 {
		return rt.ownerStack[n-1]
	}
	return nil
}

// OnCleanup registers fn against the innermost active Effect or Scope. It is
// a silent no-op outside of either, matching the teacher's own "no current
// owner" behavior for a top-level call.
func (rt *Runtime) OnCleanup(fn func()) {
	if o := rt.currentOwner(); o != nil {
		o.addCleanup(fn)
	}
}

// signalLike is an alias of SignalNode, the type the commit phase works on;
// declared here only to keep this file readable top-to-bottom.
type signalLike = SignalNode

type effectHolder = EffectNode

var runtimes sync.Map // goroutine id -> *Runtime

// graphMu guards every mutation of the shared node/link graph: two
// goroutines each holding their own goroutine-local Runtime can still read
// and write the same Signal, so the graph structure itself needs one lock
// independent of the per-goroutine tracking state, grounded on the
// teacher's own scheduler mutex.
var graphMu sync.Mutex

// withGraphLock runs fn holding graphMu, unless this goroutine's Runtime
// already holds it (a nested call from within fn itself, e.g. an Effect
// body reading another Signal) — Go's Mutex isn't reentrant, so the
// Runtime's own held-flag substitutes for a per-goroutine recursion guard.
func (rt *Runtime) withGraphLock(fn func()) {
	if rt.holdsGraphLock {
		fn()
		return
	}
	graphMu.Lock()
	rt.holdsGraphLock = true
	defer func() {
		rt.holdsGraphLock = false
		graphMu.Unlock()
	}()
	fn()
}

// Current returns the Runtime bound to the calling goroutine, creating one
// on first use.
func Current() *Runtime {
	gid := goid.Get()
	if r, ok := runtimes.Load(gid); ok {
		return r.(*Runtime)
	}
	r := newRuntime()
	runtimes.Store(gid, r)
	return r
}

func newRuntime() *Runtime {
	return &Runtime{
		errorSink: func(err error) { log.Printf("reactive: %v", err) },
	}
}

// SetErrorSink overrides where EffectError values are delivered. Passing nil
// restores the default (log.Printf) sink.
func (rt *Runtime) SetErrorSink(fn func(error)) {
	if fn == nil {
		fn = func(err error) { log.Printf("reactive: %v", err) }
	}
	rt.errorSink = fn
}

func (rt *Runtime) reportEffectError(err error) {
	rt.hooks.fireError(err)
	rt.errorSink(err)
}

// pushSubscriber makes h the active tracking target and returns the
// previous one, for the caller to restore via popSubscriber once done.
func (rt *Runtime) pushSubscriber(h *Header) *Header {
	prev := rt.current
	rt.current = h
	return prev
}

func (rt *Runtime) popSubscriber(prev *Header) {
	rt.current = prev
}

// ActiveSubscriber returns the currently-evaluating node, or nil if none (or
// inside Untrack).
func (rt *Runtime) ActiveSubscriber() *Header {
	return rt.current
}

func (rt *Runtime) allocLink(dep, sub *Header) *Link {
	if rt.linkFree == nil {
		return &Link{Dep: dep, Sub: sub}
	}
	l := rt.linkFree
	rt.linkFree = l.nextDep
	l.Dep, l.Sub = dep, sub
	l.Version = 0
	l.prevDep, l.nextDep, l.prevSub, l.nextSub = nil, nil, nil, nil
	return l
}

func (rt *Runtime) freeLink(l *Link) {
	l.Dep, l.Sub = nil, nil
	l.prevDep, l.prevSub, l.nextSub = nil, nil, nil
	l.nextDep = rt.linkFree
	rt.linkFree = l
}

// Untrack runs fn with no active subscriber, so reads inside it never
// establish dependency links.
func (rt *Runtime) Untrack(fn func()) {
	prev := rt.pushSubscriber(nil)
	defer rt.popSubscriber(prev)
	fn()
}

// OnSettled registers a one-shot callback that fires the next time a batch
// or un-batched write finishes draining its effect queue.
func (rt *Runtime) OnSettled(fn func()) {
	rt.settled = append(rt.settled, fn)
}
