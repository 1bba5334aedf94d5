package petit

import "fmt"

// SetableNode is a mutable single-slot delegator: its sole child is
// the current delegate. It exists to give a stable node identity for
// forward references and cyclic grammars — tying a recursive knot
// means building a SetableNode first and calling Set once the real
// definition is ready.
type SetableNode struct {
	delegate Node
}

func (n *SetableNode) parseOn(ctx *Context) Result {
	return n.delegate.parseOn(ctx)
}

func (n *SetableNode) Children() []Node { return []Node{n.delegate} }

func (n *SetableNode) Replace(source, target Node) {
	if n.delegate == source {
		n.delegate = target
	}
}

func (n *SetableNode) Copy() Node { c := *n; return &c }

// Match for a Setable follows its delegate, but still registers
// itself in seen first so a self-referential cycle of Setables
// terminates rather than recursing forever.
func (n *SetableNode) Match(other Node, seen map[Node]bool) bool {
	if markSeen(n, seen) {
		return true
	}
	o, ok := other.(*SetableNode)
	return ok && n.delegate.Match(o.delegate, seen)
}

func (n *SetableNode) String() string { return fmt.Sprintf("Setable(%s)", n.delegate) }

// Set replaces the Setable's delegate with p.
func (n *SetableNode) Set(p Parser) { n.delegate = p.Node }

// Setable wraps self in a Setable indirection.
func (p Parser) Setable() Parser {
	return wrap(&SetableNode{delegate: p.Node})
}

// setableOf returns n's underlying *SetableNode, or nil if n is not a
// Setable. It is used by RemoveSetables.
func setableOf(n Node) *SetableNode {
	s, _ := n.(*SetableNode)
	return s
}
