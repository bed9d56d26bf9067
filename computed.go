package reactive

import "github.com/graphwire/reactive/internal/engine"

// Computed is a lazily-evaluated, memoized derivation of other Signals and
// Computeds. It never runs on its own: the getter runs on the next Read or
// Peek after a dependency changes.
type Computed[T any] struct {
	node *engine.ComputedNode
}

type computedConfig struct {
	equal func(a, b any) bool
}

// ComputedOption configures a Computed at construction time.
type ComputedOption[T any] func(*computedConfig)

// WithComputedEqual overrides the default equality check used to decide
// whether a recomputation actually changes the value (and so whether it
// propagates to subscribers).
func WithComputedEqual[T any](eq func(a, b T) bool) ComputedOption[T] {
	return func(c *computedConfig) {
		c.equal = func(a, b any) bool { return eq(a.(T), b.(T)) }
	}
}

// NewComputed creates a Computed that derives its value by calling fn, which
// receives the previously computed value (and whether one exists yet) so a
// running aggregate can fold instead of recomputing from scratch.
func NewComputed[T any](fn func(prev T, hasPrev bool) T, opts ...ComputedOption[T]) *Computed[T] {
	var cfg computedConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	getter := func(prev any, hasPrev bool) any {
		var p T
		if hasPrev {
			p = as[T](prev)
		}
		return fn(p, hasPrev)
	}
	return &Computed[T]{node: rt().NewComputed(getter, cfg.equal)}
}

// Memo creates a Computed whose getter ignores the previous value, the
// common case of deriving a value purely from other reactive reads.
func Memo[T any](fn func() T, opts ...ComputedOption[T]) *Computed[T] {
	return NewComputed(func(T, bool) T { return fn() }, opts...)
}

// Read validates (recomputing if a dependency actually changed) and returns
// the current value, tracking the dependency if called from within another
// Computed or an Effect evaluation. A panic from the getter surfaces here as
// *GetterError; a self-referential dependency chain surfaces as *CycleError.
func (c *Computed[T]) Read() T {
	return as[T](c.node.Get(rt()))
}

// Peek validates and returns the current value without tracking a
// dependency.
func (c *Computed[T]) Peek() T {
	return as[T](c.node.Peek(rt()))
}

// Dispose detaches the node from every dependency and subscriber.
func (c *Computed[T]) Dispose() {
	c.node.Dispose(rt())
}

// AsyncComputed is reserved for a future asynchronous derivation primitive;
// the synchronous/asynchronous state machine it needs is out of scope here.
type AsyncComputed[T any] struct{}

// NewAsyncComputed is not implemented.
func NewAsyncComputed[T any](fn func() (T, error)) *AsyncComputed[T] {
	return &AsyncComputed[T]{}
}

// Read always returns the zero value; AsyncComputed is not implemented.
func (c *AsyncComputed[T]) Read() (T, error) {
	return *new(T), nil
}
