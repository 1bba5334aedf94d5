package petit

// Node is the graph-node protocol every concrete parser type
// implements: the semantic action (parseOn), and the four operations
// the reflection/transform subsystem needs to treat the parser graph
// as data — Children, Replace, Copy, Match.
type Node interface {
	parseOn(ctx *Context) Result

	// Children returns the direct sub-parsers, in declared order,
	// possibly with duplicates. Leaves return nil.
	Children() []Node

	// Replace substitutes target for every child identity-equal to
	// source. A no-op for leaves.
	Replace(source, target Node)

	// Copy returns a shallow clone: same configuration, same child
	// references.
	Copy() Node

	// Match is structural equality: same concrete kind, same scalar
	// configuration, and pairwise structurally-equal children. seen
	// guards against infinite recursion on cyclic graphs: a node
	// already in seen is treated as equal to whatever it is being
	// compared against.
	Match(other Node, seen map[Node]bool) bool

	String() string
}

// Parser wraps a Node and exposes the combinator algebra as fluent
// builder methods. Every method returns a fresh Parser wrapping a
// fresh Node, so p.Plus().Flatten() produces distinct graph shapes
// with no aliasing between the two wrappers.
type Parser struct {
	Node
}

func wrap(n Node) Parser { return Parser{n} }

// markSeen reports whether n was already in seen (cycle termination
// for Match) and adds it otherwise.
func markSeen(n Node, seen map[Node]bool) bool {
	if seen[n] {
		return true
	}
	seen[n] = true
	return false
}

// Parse runs the parser against input from position 0 and returns the
// resulting Result (Success or Failure). On failure, the returned
// Failure reports the farthest position reached by any alternative
// tried during the parse, not merely the last one.
func (p Parser) Parse(input string) Result {
	ctx := NewContext(input)
	res := p.parseOn(ctx)
	if res.IsSuccess() {
		return res
	}
	fail := res.(*FailureResult)
	if ctx.ffp != nil && ctx.ffp.position > fail.position {
		return &FailureResult{Context{buffer: ctx.buffer, position: ctx.ffp.position, ffp: ctx.ffp}, ctx.ffp.message}
	}
	return res
}

// Accept reports whether p parses input successfully from position 0.
// It does not require the whole input to be consumed.
func (p Parser) Accept(input string) bool {
	return p.Parse(input).IsSuccess()
}

// Matches returns every overlapping match of p anywhere in input: at
// each position it looks ahead with p without consuming, records a
// hit, then advances by exactly one element regardless of how long
// the match was — so two matches that share input both appear.
// Internally it is and().map(push).seq(any()).or(any()).star(), a
// scanner built entirely out of the ordinary combinator algebra.
func (p Parser) Matches(input string) []any {
	var hits []any
	push := func(v any) any { hits = append(hits, v); return v }
	scanner := p.And().Map(push).Seq(Any()).Or(Any()).Star()
	scanner.Parse(input)
	return hits
}

// MatchesSkipping returns every non-overlapping match of p in input:
// at each position it tries p, consuming and recording on success, or
// else skips a single element. Internally it is
// map(push).or(any()).star().
func (p Parser) MatchesSkipping(input string) []any {
	var hits []any
	push := func(v any) any { hits = append(hits, v); return v }
	scanner := p.Map(push).Or(Any()).Star()
	scanner.Parse(input)
	return hits
}
