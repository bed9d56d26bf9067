package reactive

import "github.com/graphwire/reactive/internal/engine"

// Effect is a push-driven observer: it runs once at creation, and again
// every time a dependency it read during its last run changes. A panic
// inside the body is recovered and routed to the error sink (see
// SetErrorSink); it never crashes the caller or the rest of the drain.
type Effect struct {
	node *engine.EffectNode
}

// NewEffect creates and immediately runs an Effect.
func NewEffect(fn func()) *Effect {
	return &Effect{node: rt().NewEffect(fn)}
}

// Stop disposes the effect: pending cleanups run, dependency links are
// released, and it never runs again.
func (e *Effect) Stop() {
	e.node.Stop(rt())
}
