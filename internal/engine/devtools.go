package engine

import (
	"fmt"
	"sort"

	"github.com/m1gwings/treedrawer/tree"
)

// Hooks are the optional, advisory observability callbacks described in
// spec.md §6. Every field is nil by default; each fire* helper checks its
// field before doing anything, so a disabled hook costs one nil check and
// nothing else.
type Hooks struct {
	OnNodeCreate  func(h *Header, kind Kind, label string)
	OnNodeDispose func(h *Header)
	OnLinkCreate  func(dep, sub *Header)
	OnLinkRemove  func(dep, sub *Header)
	OnCommit      func(h *Header, old, new any)
	OnError       func(err error)
}

func (h *Hooks) fireCreate(n *Header, kind Kind, label string) {
	if h.OnNodeCreate != nil {
		h.OnNodeCreate(n, kind, label)
	}
}

func (h *Hooks) fireDispose(n *Header) {
	if h.OnNodeDispose != nil {
		h.OnNodeDispose(n)
	}
}

func (h *Hooks) fireLinkCreate(dep, sub *Header) {
	if h.OnLinkCreate != nil {
		h.OnLinkCreate(dep, sub)
	}
}

func (h *Hooks) fireLinkRemove(dep, sub *Header) {
	if h.OnLinkRemove != nil {
		h.OnLinkRemove(dep, sub)
	}
}

func (h *Hooks) fireCommit(n *Header, old, new any) {
	if h.OnCommit != nil {
		h.OnCommit(n, old, new)
	}
}

func (h *Hooks) fireError(err error) {
	if h.OnError != nil {
		h.OnError(err)
	}
}

// SetHooks installs the observability callbacks for this runtime. Passing
// the zero Hooks{} disables all of them again.
func (rt *Runtime) SetHooks(hooks Hooks) {
	rt.hooks = hooks
}

// DumpGraph renders the dependency graph reachable downward from root (its
// subscribers, and their subscribers) as an ASCII tree, root at top. It is a
// debugging aid only: with a nil label func, each node is shown as its kind
// and address.
func DumpGraph(root *Header, label func(*Header) string) string {
	if label == nil {
		label = func(h *Header) string { return fmt.Sprintf("%s_%p", h.Kind.String(), h) }
	}
	t := tree.NewTree(tree.NodeString(label(root)))
	buildSubtree(t, root, label, make(map[*Header]bool))
	return t.String()
}

func buildSubtree(t *tree.Tree, h *Header, label func(*Header) string, visited map[*Header]bool) {
	if visited[h] {
		return
	}
	visited[h] = true

	subs := make([]*Header, 0)
	for l := h.Subs; l != nil; l = l.nextSub {
		subs = append(subs, l.Sub)
	}
	sort.Slice(subs, func(i, j int) bool { return label(subs[i]) < label(subs[j]) })

	for _, s := range subs {
		child := t.AddChild(tree.NodeString(label(s)))
		buildSubtree(child, s, label, visited)
	}
}

func (k Kind) String() string {
	switch k {
	case KindSignal:
		return "Signal"
	case KindComputed:
		return "Computed"
	case KindEffect:
		return "Effect"
	case KindScope:
		return "Scope"
	default:
		return "Node"
	}
}
