package petit

import "fmt"

// Unbounded stands in for "no practical upper bound" on a repetition:
// a value large enough that no real grammar would ever reach it while
// staying a plain int so repeat bookkeeping needs no special-casing
// for infinity.
const Unbounded = 1<<31 - 1

// --- Possessive repetition ---

// RepeatNode consumes its delegate greedily with no backtracking:
// min mandatory successes, then as many more as possible up to max.
type RepeatNode struct {
	delegate Node
	min, max int
}

func (n *RepeatNode) parseOn(ctx *Context) Result {
	values := make([]any, 0, n.min)
	cur := ctx
	for len(values) < n.min {
		res := n.delegate.parseOn(cur)
		if !res.IsSuccess() {
			return res
		}
		values = append(values, res.Value())
		cur = res.ctx()
	}
	for len(values) < n.max {
		res := n.delegate.parseOn(cur)
		if !res.IsSuccess() {
			break
		}
		values = append(values, res.Value())
		cur = res.ctx()
	}
	return cur.Success(values, cur.position)
}

func (n *RepeatNode) Children() []Node { return []Node{n.delegate} }

func (n *RepeatNode) Replace(source, target Node) {
	if n.delegate == source {
		n.delegate = target
	}
}

func (n *RepeatNode) Copy() Node { c := *n; return &c }

func (n *RepeatNode) Match(other Node, seen map[Node]bool) bool {
	if markSeen(n, seen) {
		return true
	}
	o, ok := other.(*RepeatNode)
	return ok && o.min == n.min && o.max == n.max && n.delegate.Match(o.delegate, seen)
}

func (n *RepeatNode) String() string {
	return fmt.Sprintf("Repeat(%s, %d, %d)", n.delegate, n.min, n.max)
}

// Repeat is possessive repetition: min..max successes of self, no
// backtracking once min is reached.
func (p Parser) Repeat(min, max int) Parser {
	return wrap(&RepeatNode{delegate: p.Node, min: min, max: max})
}

// Star is sugar for Repeat(0, Unbounded).
func (p Parser) Star() Parser { return p.Repeat(0, Unbounded) }

// Plus is sugar for Repeat(1, Unbounded).
func (p Parser) Plus() Parser { return p.Repeat(1, Unbounded) }

// Times is sugar for Repeat(n, n).
func (p Parser) Times(n int) Parser { return p.Repeat(n, n) }

// --- Greedy-with-limit repetition ---

// RepeatGreedyNode maximises consumption of its delegate, then
// backtracks one step at a time until limit accepts without being
// consumed.
type RepeatGreedyNode struct {
	delegate Node
	limit    Node
	min, max int
}

func (n *RepeatGreedyNode) parseOn(ctx *Context) Result {
	values := make([]any, 0, n.min)
	cur := ctx
	for len(values) < n.min {
		res := n.delegate.parseOn(cur)
		if !res.IsSuccess() {
			return res
		}
		values = append(values, res.Value())
		cur = res.ctx()
	}

	contexts := []*Context{cur}
	for len(values) < n.max {
		res := n.delegate.parseOn(cur)
		if !res.IsSuccess() {
			break
		}
		values = append(values, res.Value())
		cur = res.ctx()
		contexts = append(contexts, cur)
	}

	for {
		limitRes := n.limit.parseOn(cur)
		if limitRes.IsSuccess() {
			return cur.Success(values, cur.position)
		}
		if len(contexts) == 1 {
			return limitRes
		}
		contexts = contexts[:len(contexts)-1]
		values = values[:len(values)-1]
		cur = contexts[len(contexts)-1]
	}
}

func (n *RepeatGreedyNode) Children() []Node { return []Node{n.delegate, n.limit} }

func (n *RepeatGreedyNode) Replace(source, target Node) {
	if n.delegate == source {
		n.delegate = target
	}
	if n.limit == source {
		n.limit = target
	}
}

func (n *RepeatGreedyNode) Copy() Node { c := *n; return &c }

func (n *RepeatGreedyNode) Match(other Node, seen map[Node]bool) bool {
	if markSeen(n, seen) {
		return true
	}
	o, ok := other.(*RepeatGreedyNode)
	return ok && o.min == n.min && o.max == n.max &&
		n.delegate.Match(o.delegate, seen) && n.limit.Match(o.limit, seen)
}

func (n *RepeatGreedyNode) String() string {
	return fmt.Sprintf("RepeatGreedy(%s, %s, %d, %d)", n.delegate, n.limit, n.min, n.max)
}

// RepeatGreedy is greedy-with-limit repetition: min..max successes of
// self, backtracking against limit (which is never itself consumed)
// to find the longest match compatible with limit succeeding next.
func (p Parser) RepeatGreedy(limit Parser, min, max int) Parser {
	return wrap(&RepeatGreedyNode{delegate: p.Node, limit: limit.Node, min: min, max: max})
}

// StarGreedy is sugar for RepeatGreedy(limit, 0, Unbounded).
func (p Parser) StarGreedy(limit Parser) Parser { return p.RepeatGreedy(limit, 0, Unbounded) }

// PlusGreedy is sugar for RepeatGreedy(limit, 1, Unbounded).
func (p Parser) PlusGreedy(limit Parser) Parser { return p.RepeatGreedy(limit, 1, Unbounded) }

// --- Lazy-with-limit repetition ---

// RepeatLazyNode consumes the minimum it can get away with: after the
// mandatory min, it tries limit before every further step.
type RepeatLazyNode struct {
	delegate Node
	limit    Node
	min, max int
}

func (n *RepeatLazyNode) parseOn(ctx *Context) Result {
	values := make([]any, 0, n.min)
	cur := ctx
	for len(values) < n.min {
		res := n.delegate.parseOn(cur)
		if !res.IsSuccess() {
			return res
		}
		values = append(values, res.Value())
		cur = res.ctx()
	}

	for {
		limitRes := n.limit.parseOn(cur)
		if limitRes.IsSuccess() {
			return cur.Success(values, cur.position)
		}
		if len(values) >= n.max {
			return limitRes
		}
		res := n.delegate.parseOn(cur)
		if !res.IsSuccess() {
			return limitRes
		}
		values = append(values, res.Value())
		cur = res.ctx()
	}
}

func (n *RepeatLazyNode) Children() []Node { return []Node{n.delegate, n.limit} }

func (n *RepeatLazyNode) Replace(source, target Node) {
	if n.delegate == source {
		n.delegate = target
	}
	if n.limit == source {
		n.limit = target
	}
}

func (n *RepeatLazyNode) Copy() Node { c := *n; return &c }

func (n *RepeatLazyNode) Match(other Node, seen map[Node]bool) bool {
	if markSeen(n, seen) {
		return true
	}
	o, ok := other.(*RepeatLazyNode)
	return ok && o.min == n.min && o.max == n.max &&
		n.delegate.Match(o.delegate, seen) && n.limit.Match(o.limit, seen)
}

func (n *RepeatLazyNode) String() string {
	return fmt.Sprintf("RepeatLazy(%s, %s, %d, %d)", n.delegate, n.limit, n.min, n.max)
}

// RepeatLazy is lazy-with-limit repetition: min..max successes of
// self, stopping as soon as limit accepts (without being consumed).
func (p Parser) RepeatLazy(limit Parser, min, max int) Parser {
	return wrap(&RepeatLazyNode{delegate: p.Node, limit: limit.Node, min: min, max: max})
}

// StarLazy is sugar for RepeatLazy(limit, 0, Unbounded).
func (p Parser) StarLazy(limit Parser) Parser { return p.RepeatLazy(limit, 0, Unbounded) }

// PlusLazy is sugar for RepeatLazy(limit, 1, Unbounded).
func (p Parser) PlusLazy(limit Parser) Parser { return p.RepeatLazy(limit, 1, Unbounded) }

// --- separatedBy ---

// SeparatedBy parses self (sep self)* optionally followed by sep,
// returning a flat list. The trailing separator is included in the
// result only when it is present and includeSeparators is true.
// opts, if given, are (includeSeparators, optionalSepAtEnd), defaulting
// to (true, false).
func (p Parser) SeparatedBy(sep Parser, opts ...bool) Parser {
	includeSeparators := true
	optionalSepAtEnd := false
	if len(opts) > 0 {
		includeSeparators = opts[0]
	}
	if len(opts) > 1 {
		optionalSepAtEnd = opts[1]
	}
	return wrap(&separatedByNode{
		delegate:          p.Node,
		sep:               sep.Node,
		includeSeparators: includeSeparators,
		optionalSepAtEnd:  optionalSepAtEnd,
	})
}

type separatedByNode struct {
	delegate          Node
	sep               Node
	includeSeparators bool
	optionalSepAtEnd  bool
}

func (n *separatedByNode) parseOn(ctx *Context) Result {
	first := n.delegate.parseOn(ctx)
	if !first.IsSuccess() {
		return first
	}
	values := []any{first.Value()}
	cur := first.ctx()

	for {
		sepRes := n.sep.parseOn(cur)
		if !sepRes.IsSuccess() {
			break
		}
		itemRes := n.delegate.parseOn(sepRes.ctx())
		if !itemRes.IsSuccess() {
			if n.optionalSepAtEnd {
				if n.includeSeparators {
					values = append(values, sepRes.Value())
				}
				cur = sepRes.ctx()
			}
			break
		}
		if n.includeSeparators {
			values = append(values, sepRes.Value())
		}
		values = append(values, itemRes.Value())
		cur = itemRes.ctx()
	}
	return cur.Success(values, cur.position)
}

func (n *separatedByNode) Children() []Node { return []Node{n.delegate, n.sep} }

func (n *separatedByNode) Replace(source, target Node) {
	if n.delegate == source {
		n.delegate = target
	}
	if n.sep == source {
		n.sep = target
	}
}

func (n *separatedByNode) Copy() Node { c := *n; return &c }

func (n *separatedByNode) Match(other Node, seen map[Node]bool) bool {
	if markSeen(n, seen) {
		return true
	}
	o, ok := other.(*separatedByNode)
	return ok && o.includeSeparators == n.includeSeparators && o.optionalSepAtEnd == n.optionalSepAtEnd &&
		n.delegate.Match(o.delegate, seen) && n.sep.Match(o.sep, seen)
}

func (n *separatedByNode) String() string {
	return fmt.Sprintf("SeparatedBy(%s, %s)", n.delegate, n.sep)
}
