package engine

// NodeFlags is the bit-set describing a node's propagation state. A single
// word keeps the mark/drain/validate paths branchless, per the product-state
// nature of Dirty/PendingComputed/Queued/Stopped (they combine, they don't
// replace each other).
type NodeFlags uint16

const (
	FlagNone NodeFlags = 0

	// Mutable marks a Signal node (it has a committable pending value).
	Mutable NodeFlags = 1 << iota

	// Dirty means the cached value is known-invalid; recomputation is
	// mandatory on the next pull.
	Dirty

	// PendingComputed means an upstream signal might have changed this
	// node's value; recomputation is required only if a dependency
	// actually changed.
	PendingComputed

	// Queued means the effect is present in the flush queue.
	Queued

	// Watching marks a node (an Effect) that participates in eager
	// flushing.
	Watching

	// RecursedCheck marks a node as currently being evaluated; observing
	// it set on the node you are about to evaluate means a cycle.
	RecursedCheck

	// Stopped marks a disposed Effect or Scope; no further work is done
	// for it.
	Stopped
)

func (f NodeFlags) Has(flag NodeFlags) bool { return f&flag != 0 }

func (f *NodeFlags) Set(flag NodeFlags) { *f |= flag }

func (f *NodeFlags) Clear(flag NodeFlags) { *f &^= flag }

// HasAny reports whether any of the given flags are set.
func (f NodeFlags) HasAny(flags NodeFlags) bool { return f&flags != 0 }
