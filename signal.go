package reactive

import "github.com/graphwire/reactive/internal/engine"

// Signal is a mutable reactive value: your typical read/write cell.
type Signal[T any] struct {
	node *engine.SignalNode
}

// signalConfig collects SignalOption settings before NewSignal builds the
// underlying node.
type signalConfig struct {
	equal func(a, b any) bool
}

// SignalOption configures a Signal at construction time.
type SignalOption[T any] func(*signalConfig)

// WithEqual overrides the default equality check used to decide whether a
// write actually changes the value. Use it for types == can't compare, like
// slices or structs you want compared by field.
func WithEqual[T any](eq func(a, b T) bool) SignalOption[T] {
	return func(c *signalConfig) {
		c.equal = func(a, b any) bool { return eq(a.(T), b.(T)) }
	}
}

// NewSignal creates a Signal holding initial.
func NewSignal[T any](initial T, opts ...SignalOption[T]) *Signal[T] {
	var cfg signalConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Signal[T]{node: rt().NewSignal(initial, cfg.equal)}
}

// Read returns the current value, tracking the dependency if called from
// within a Computed or Effect evaluation.
func (s *Signal[T]) Read() T {
	return as[T](s.node.Read(rt()))
}

// Peek returns the current value without tracking a dependency.
func (s *Signal[T]) Peek() T {
	return as[T](s.node.Peek(rt()))
}

// Write stores v, triggering re-evaluation of anything depending on this
// signal if v differs from the current value. Writing the current value is
// a no-op unless another write to this signal is still pending in a batch. Writing from inside a Computed that depends on this signal returns
// *BadReentranceError and leaves the value unchanged.
func (s *Signal[T]) Write(v T) error {
	return s.node.Write(rt(), v)
}

// Update stores f(current), the same as Write(f(Peek())).
func (s *Signal[T]) Update(f func(T) T) error {
	return s.node.Update(rt(), func(v any) any { return f(as[T](v)) })
}

// Dispose removes the signal from the graph, unlinking every subscriber.
func (s *Signal[T]) Dispose() {
	s.node.Dispose(rt())
}
