// Package reactive is a push-pull reactive dependency-tracking runtime:
// Signal holds state, Computed derives it lazily, Effect observes it
// eagerly, and Scope owns the lifetime of a group of either.
package reactive

import "github.com/graphwire/reactive/internal/engine"

func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}
	return v.(T)
}

func rt() *engine.Runtime { return engine.Current() }

// Batch defers the commit and effect drain of every Signal write made
// inside fn to a single commit and drain, run once fn returns. Nested Batch calls
// compose: only the outermost one drains.
func Batch(fn func()) {
	rt().Batch(fn)
}

// Untrack runs fn with dependency tracking suspended, so reads inside it
// never become dependencies of whatever Computed or Effect called Untrack.
func Untrack[T any](fn func() T) T {
	var result T
	rt().Untrack(func() { result = fn() })
	return result
}

// OnCleanup registers fn against the innermost active Effect or Scope. It is
// a silent no-op outside of either.
func OnCleanup(fn func()) {
	rt().OnCleanup(fn)
}

// OnSettled registers a one-shot callback that fires the next time the
// current goroutine's runtime finishes draining a batch or un-batched
// write's effect queue.
func OnSettled(fn func()) {
	rt().OnSettled(fn)
}

// SetErrorSink overrides where panics recovered from effect bodies are
// reported. The default sink logs via the standard log package. Passing nil
// restores the default.
func SetErrorSink(fn func(error)) {
	rt().SetErrorSink(fn)
}
