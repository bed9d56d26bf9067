package engine

// Kind discriminates the four node variants so propagation and validation
// code can dispatch without a type switch on every concrete struct.
type Kind uint8

const (
	KindSignal Kind = iota
	KindComputed
	KindEffect
	KindScope
)

// Header is the shared state every reactive node carries: its flags and the
// two doubly-linked lists connecting it to its dependencies and its
// subscribers. Signal, Computed, Effect and Scope each embed a Header.
//
// Deps/DepsTail track outgoing dependency links in declaration order.
// DepsTail doubles as the re-tracking cursor during evaluation (see
// track/truncateDeps in link.go): it is reset to nil at the start of an
// evaluation and advances as reads reuse or extend the chain.
type Header struct {
	Kind    Kind
	Flags   NodeFlags
	Version uint64

	Deps     *Link
	DepsTail *Link
	Subs     *Link
	SubsTail *Link

	// self lets generic graph-walking code (validate, propagate) recover
	// the concrete node behind a Header without a parallel map.
	self any
}

func (h *Header) HasFlag(f NodeFlags) bool { return h.Flags.Has(f) }
func (h *Header) AddFlag(f NodeFlags)      { h.Flags.Set(f) }
func (h *Header) RemoveFlag(f NodeFlags)   { h.Flags.Clear(f) }
