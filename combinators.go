package petit

import (
	"fmt"
	"strings"
)

// --- Sequence ---

// SequenceNode runs its children left to right, succeeding with the
// ordered list of their values.
type SequenceNode struct {
	children []Node
}

func (n *SequenceNode) parseOn(ctx *Context) Result {
	values := make([]any, 0, len(n.children))
	cur := ctx
	for _, child := range n.children {
		res := child.parseOn(cur)
		if !res.IsSuccess() {
			return res
		}
		values = append(values, res.Value())
		cur = res.ctx()
	}
	return cur.Success(values, cur.position)
}

func (n *SequenceNode) Children() []Node { return n.children }

func (n *SequenceNode) Replace(source, target Node) {
	for i, c := range n.children {
		if c == source {
			n.children[i] = target
		}
	}
}

func (n *SequenceNode) Copy() Node {
	return &SequenceNode{children: append([]Node(nil), n.children...)}
}

func (n *SequenceNode) Match(other Node, seen map[Node]bool) bool {
	if markSeen(n, seen) {
		return true
	}
	o, ok := other.(*SequenceNode)
	if !ok || len(o.children) != len(n.children) {
		return false
	}
	for i := range n.children {
		if !n.children[i].Match(o.children[i], seen) {
			return false
		}
	}
	return true
}

func (n *SequenceNode) String() string {
	parts := make([]string, len(n.children))
	for i, c := range n.children {
		parts[i] = c.String()
	}
	return fmt.Sprintf("Sequence(%s)", strings.Join(parts, ", "))
}

// Seq sequences self then q. If self is already a Sequence, the new
// child is appended to the flattened list rather than nested.
func (p Parser) Seq(q Parser) Parser {
	if s, ok := p.Node.(*SequenceNode); ok {
		return wrap(&SequenceNode{children: append(append([]Node(nil), s.children...), q.Node)})
	}
	return wrap(&SequenceNode{children: []Node{p.Node, q.Node}})
}

// --- Choice ---

// ChoiceNode tries its children in declared order, returning the
// first success, or the last attempted failure if all fail.
type ChoiceNode struct {
	children []Node
}

func (n *ChoiceNode) parseOn(ctx *Context) Result {
	var last Result
	for _, child := range n.children {
		res := child.parseOn(ctx)
		if res.IsSuccess() {
			return res
		}
		last = res
	}
	if last == nil {
		return ctx.Failure("Choice: no alternatives")
	}
	return last
}

func (n *ChoiceNode) Children() []Node { return n.children }

func (n *ChoiceNode) Replace(source, target Node) {
	for i, c := range n.children {
		if c == source {
			n.children[i] = target
		}
	}
}

func (n *ChoiceNode) Copy() Node {
	return &ChoiceNode{children: append([]Node(nil), n.children...)}
}

func (n *ChoiceNode) Match(other Node, seen map[Node]bool) bool {
	if markSeen(n, seen) {
		return true
	}
	o, ok := other.(*ChoiceNode)
	if !ok || len(o.children) != len(n.children) {
		return false
	}
	for i := range n.children {
		if !n.children[i].Match(o.children[i], seen) {
			return false
		}
	}
	return true
}

func (n *ChoiceNode) String() string {
	parts := make([]string, len(n.children))
	for i, c := range n.children {
		parts[i] = c.String()
	}
	return fmt.Sprintf("Choice(%s)", strings.Join(parts, ", "))
}

// Or tries self, then q at the original position on failure. If self
// is already a Choice, q is appended to the flattened list.
func (p Parser) Or(q Parser) Parser {
	if c, ok := p.Node.(*ChoiceNode); ok {
		return wrap(&ChoiceNode{children: append(append([]Node(nil), c.children...), q.Node)})
	}
	return wrap(&ChoiceNode{children: []Node{p.Node, q.Node}})
}

// --- Optional ---

// OptionalNode succeeds with self's value, or with otherwise
// consuming nothing.
type OptionalNode struct {
	delegate  Node
	otherwise any
}

func (n *OptionalNode) parseOn(ctx *Context) Result {
	res := n.delegate.parseOn(ctx)
	if res.IsSuccess() {
		return res
	}
	return ctx.Success(n.otherwise, ctx.position)
}

func (n *OptionalNode) Children() []Node { return []Node{n.delegate} }

func (n *OptionalNode) Replace(source, target Node) {
	if n.delegate == source {
		n.delegate = target
	}
}

func (n *OptionalNode) Copy() Node { c := *n; return &c }

func (n *OptionalNode) Match(other Node, seen map[Node]bool) bool {
	if markSeen(n, seen) {
		return true
	}
	o, ok := other.(*OptionalNode)
	return ok && o.otherwise == n.otherwise && n.delegate.Match(o.delegate, seen)
}

func (n *OptionalNode) String() string {
	return fmt.Sprintf("Optional(%s, %v)", n.delegate, n.otherwise)
}

// Optional succeeds with self's value, or with otherwise (default
// nil) consuming nothing.
func (p Parser) Optional(otherwise ...any) Parser {
	var o any
	if len(otherwise) > 0 {
		o = otherwise[0]
	}
	return wrap(&OptionalNode{delegate: p.Node, otherwise: o})
}

// --- And (positive lookahead) ---

// AndNode runs its delegate for acceptance only: on success it
// returns the delegate's value but does not advance the position.
type AndNode struct {
	delegate Node
}

func (n *AndNode) parseOn(ctx *Context) Result {
	res := n.delegate.parseOn(ctx)
	if !res.IsSuccess() {
		return res
	}
	return ctx.Success(res.Value(), ctx.position)
}

func (n *AndNode) Children() []Node { return []Node{n.delegate} }

func (n *AndNode) Replace(source, target Node) {
	if n.delegate == source {
		n.delegate = target
	}
}

func (n *AndNode) Copy() Node { c := *n; return &c }

func (n *AndNode) Match(other Node, seen map[Node]bool) bool {
	if markSeen(n, seen) {
		return true
	}
	o, ok := other.(*AndNode)
	return ok && n.delegate.Match(o.delegate, seen)
}

func (n *AndNode) String() string { return fmt.Sprintf("And(%s)", n.delegate) }

// And is positive lookahead: succeeds iff self succeeds, without
// consuming input.
func (p Parser) And() Parser {
	return wrap(&AndNode{delegate: p.Node})
}

// --- Not (negative lookahead) ---

// NotNode succeeds, consuming nothing, iff its delegate fails.
type NotNode struct {
	delegate Node
	msg      string
}

func (n *NotNode) parseOn(ctx *Context) Result {
	res := n.delegate.parseOn(ctx)
	if res.IsSuccess() {
		return ctx.Failure(n.msg)
	}
	return ctx.Success(nil, ctx.position)
}

func (n *NotNode) Children() []Node { return []Node{n.delegate} }

func (n *NotNode) Replace(source, target Node) {
	if n.delegate == source {
		n.delegate = target
	}
}

func (n *NotNode) Copy() Node { c := *n; return &c }

func (n *NotNode) Match(other Node, seen map[Node]bool) bool {
	if markSeen(n, seen) {
		return true
	}
	o, ok := other.(*NotNode)
	return ok && o.msg == n.msg && n.delegate.Match(o.delegate, seen)
}

func (n *NotNode) String() string { return fmt.Sprintf("Not(%s)", n.delegate) }

// Not is negative lookahead: succeeds with a nil value iff self
// fails, consuming nothing; the failure message is msg.
func (p Parser) Not(msg string) Parser {
	return wrap(&NotNode{delegate: p.Node, msg: msg})
}

// Neg is equivalent to Not(msg).Seq(Any()) projecting the consumed
// element.
func (p Parser) Neg(msg string) Parser {
	return p.Not(msg).Seq(Any()).Pick(-1)
}

// --- End of input ---

// EndNode succeeds iff its delegate succeeds and the new position
// equals the buffer length.
type EndNode struct {
	delegate Node
	msg      string
}

func (n *EndNode) parseOn(ctx *Context) Result {
	res := n.delegate.parseOn(ctx)
	if !res.IsSuccess() {
		return res
	}
	if res.Position() != len(res.Buffer()) {
		return res.ctx().Failure(n.msg)
	}
	return res
}

func (n *EndNode) Children() []Node { return []Node{n.delegate} }

func (n *EndNode) Replace(source, target Node) {
	if n.delegate == source {
		n.delegate = target
	}
}

func (n *EndNode) Copy() Node { c := *n; return &c }

func (n *EndNode) Match(other Node, seen map[Node]bool) bool {
	if markSeen(n, seen) {
		return true
	}
	o, ok := other.(*EndNode)
	return ok && o.msg == n.msg && n.delegate.Match(o.delegate, seen)
}

func (n *EndNode) String() string { return fmt.Sprintf("End(%s)", n.delegate) }

// End succeeds iff self succeeds and consumes the rest of the input.
func (p Parser) End(msg ...string) Parser {
	m := "end of input expected"
	if len(msg) > 0 {
		m = msg[0]
	}
	return wrap(&EndNode{delegate: p.Node, msg: m})
}

// --- Flatten ---

// FlattenNode replaces a successful value with the substring spanned
// by the match.
type FlattenNode struct {
	delegate Node
}

func (n *FlattenNode) parseOn(ctx *Context) Result {
	res := n.delegate.parseOn(ctx)
	if !res.IsSuccess() {
		return res
	}
	return res.ctx().Success(string(ctx.buffer[ctx.position:res.Position()]), res.Position())
}

func (n *FlattenNode) Children() []Node { return []Node{n.delegate} }

func (n *FlattenNode) Replace(source, target Node) {
	if n.delegate == source {
		n.delegate = target
	}
}

func (n *FlattenNode) Copy() Node { c := *n; return &c }

func (n *FlattenNode) Match(other Node, seen map[Node]bool) bool {
	if markSeen(n, seen) {
		return true
	}
	o, ok := other.(*FlattenNode)
	return ok && n.delegate.Match(o.delegate, seen)
}

func (n *FlattenNode) String() string { return fmt.Sprintf("Flatten(%s)", n.delegate) }

// Flatten replaces self's value with the substring of the match on
// success.
func (p Parser) Flatten() Parser {
	return wrap(&FlattenNode{delegate: p.Node})
}

// --- Tokenize ---

// TokenizeNode wraps a successful value in a Token capturing its
// span.
type TokenizeNode struct {
	delegate Node
}

func (n *TokenizeNode) parseOn(ctx *Context) Result {
	res := n.delegate.parseOn(ctx)
	if !res.IsSuccess() {
		return res
	}
	return res.ctx().Success(NewToken(res.Value(), ctx.buffer, ctx.position, res.Position()), res.Position())
}

func (n *TokenizeNode) Children() []Node { return []Node{n.delegate} }

func (n *TokenizeNode) Replace(source, target Node) {
	if n.delegate == source {
		n.delegate = target
	}
}

func (n *TokenizeNode) Copy() Node { c := *n; return &c }

func (n *TokenizeNode) Match(other Node, seen map[Node]bool) bool {
	if markSeen(n, seen) {
		return true
	}
	o, ok := other.(*TokenizeNode)
	return ok && n.delegate.Match(o.delegate, seen)
}

func (n *TokenizeNode) String() string { return fmt.Sprintf("Tokenize(%s)", n.delegate) }

// Token wraps self's value into a Token on success.
func (p Parser) Token() Parser {
	return wrap(&TokenizeNode{delegate: p.Node})
}

// --- Trim ---

// TrimNode consumes zero-or-more of a trimmer before and after its
// delegate, returning the delegate's value.
type TrimNode struct {
	delegate Node
	trimmer  Node
}

func (n *TrimNode) consumeTrimmer(ctx *Context) *Context {
	cur := ctx
	for {
		res := n.trimmer.parseOn(cur)
		if !res.IsSuccess() {
			return cur
		}
		if res.Position() == cur.position {
			return cur
		}
		cur = res.ctx()
	}
}

func (n *TrimNode) parseOn(ctx *Context) Result {
	cur := n.consumeTrimmer(ctx)
	res := n.delegate.parseOn(cur)
	if !res.IsSuccess() {
		return res
	}
	after := n.consumeTrimmer(res.ctx())
	return after.Success(res.Value(), after.position)
}

func (n *TrimNode) Children() []Node { return []Node{n.delegate, n.trimmer} }

func (n *TrimNode) Replace(source, target Node) {
	if n.delegate == source {
		n.delegate = target
	}
	if n.trimmer == source {
		n.trimmer = target
	}
}

func (n *TrimNode) Copy() Node { c := *n; return &c }

func (n *TrimNode) Match(other Node, seen map[Node]bool) bool {
	if markSeen(n, seen) {
		return true
	}
	o, ok := other.(*TrimNode)
	return ok && n.delegate.Match(o.delegate, seen) && n.trimmer.Match(o.trimmer, seen)
}

func (n *TrimNode) String() string {
	return fmt.Sprintf("Trim(%s, %s)", n.delegate, n.trimmer)
}

// Trim consumes zero-or-more trimmer (default Whitespace()) before
// and after self, returning self's value.
func (p Parser) Trim(trimmer ...Parser) Parser {
	t := Whitespace()
	if len(trimmer) > 0 {
		t = trimmer[0]
	}
	return wrap(&TrimNode{delegate: p.Node, trimmer: t.Node})
}

// --- Action (map) ---

// ActionNode replaces a successful value with fn(value).
type ActionNode struct {
	delegate Node
	fn       func(any) any
}

func (n *ActionNode) parseOn(ctx *Context) Result {
	res := n.delegate.parseOn(ctx)
	if !res.IsSuccess() {
		return res
	}
	return res.ctx().Success(n.fn(res.Value()), res.Position())
}

func (n *ActionNode) Children() []Node { return []Node{n.delegate} }

func (n *ActionNode) Replace(source, target Node) {
	if n.delegate == source {
		n.delegate = target
	}
}

func (n *ActionNode) Copy() Node { c := *n; return &c }

// Match for ActionNode requires identity equality of the action
// function.
func (n *ActionNode) Match(other Node, seen map[Node]bool) bool {
	if markSeen(n, seen) {
		return true
	}
	o, ok := other.(*ActionNode)
	return ok && sameAction(n.fn, o.fn) && n.delegate.Match(o.delegate, seen)
}

func (n *ActionNode) String() string { return fmt.Sprintf("Action(%s)", n.delegate) }

// Map replaces self's value with f(value) on success.
func (p Parser) Map(f func(any) any) Parser {
	return wrap(&ActionNode{delegate: p.Node, fn: f})
}

// Pick is Map specialized to select index i (negative counts from the
// end) of a list value.
func (p Parser) Pick(i int) Parser {
	return p.Map(func(v any) any {
		list, ok := v.([]any)
		if !ok {
			return v
		}
		idx := i
		if idx < 0 {
			idx += len(list)
		}
		return list[idx]
	})
}

// Permute is Map specialized to project the list [ixs[0], ixs[1], ...]
// out of a list value, negative indices allowed.
func (p Parser) Permute(ixs ...int) Parser {
	return p.Map(func(v any) any {
		list, ok := v.([]any)
		if !ok {
			return v
		}
		out := make([]any, len(ixs))
		for i, idx := range ixs {
			if idx < 0 {
				idx += len(list)
			}
			out[i] = list[idx]
		}
		return out
	})
}
