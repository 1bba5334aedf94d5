package petit

import (
	"fmt"
	"reflect"
)

// leaf is embedded by node kinds with no children, giving them the
// no-op ends of the graph-node protocol for free.
type leaf struct{}

func (leaf) Children() []Node            { return nil }
func (leaf) Replace(source, target Node) {}

// AnyParser consumes one element if available, else fails.
type AnyParser struct {
	leaf
	msg string
}

// Any builds a parser that consumes a single element, failing with
// msg (default "input expected") at end of input.
func Any(msg ...string) Parser {
	m := "input expected"
	if len(msg) > 0 {
		m = msg[0]
	}
	return wrap(&AnyParser{msg: m})
}

func (n *AnyParser) parseOn(ctx *Context) Result {
	if ctx.position >= len(ctx.buffer) {
		return ctx.Failure(n.msg)
	}
	return ctx.Success(ctx.buffer[ctx.position], ctx.position+1)
}

func (n *AnyParser) Copy() Node { c := *n; return &c }

func (n *AnyParser) Match(other Node, seen map[Node]bool) bool {
	if markSeen(n, seen) {
		return true
	}
	o, ok := other.(*AnyParser)
	return ok && o.msg == n.msg
}

func (n *AnyParser) String() string { return "Any" }

// EpsilonParser consumes nothing and always succeeds with a fixed
// result value.
type EpsilonParser struct {
	leaf
	result any
}

// Epsilon builds a parser that consumes nothing and succeeds with
// result (default nil).
func Epsilon(result ...any) Parser {
	var r any
	if len(result) > 0 {
		r = result[0]
	}
	return wrap(&EpsilonParser{result: r})
}

func (n *EpsilonParser) parseOn(ctx *Context) Result {
	return ctx.Success(n.result)
}

func (n *EpsilonParser) Copy() Node { c := *n; return &c }

func (n *EpsilonParser) Match(other Node, seen map[Node]bool) bool {
	if markSeen(n, seen) {
		return true
	}
	o, ok := other.(*EpsilonParser)
	return ok && o.result == n.result
}

func (n *EpsilonParser) String() string { return fmt.Sprintf("Epsilon(%v)", n.result) }

// FailureParser always fails with a fixed message. Used as a
// placeholder for uninitialized productions (see Grammar.ref).
type FailureParser struct {
	leaf
	msg string
}

// Failure builds a parser that always fails with msg.
func Failure(msg string) Parser {
	return wrap(&FailureParser{msg: msg})
}

// Undefined_ builds a Setable placeholder wrapping a Failure parser
// carrying the conventional "Uninitialized production" message. It is
// the entry point for tying a recursive knot by hand: p := Undefined_(name);
// p.Node.(*SetableNode).Set(actualDefinition). Grammar uses the same
// placeholder shape to seed forward references before their
// definition exists.
func Undefined_(name string) Parser {
	return Failure(fmt.Sprintf("Uninitialized production: %s", name)).Setable()
}

func (n *FailureParser) parseOn(ctx *Context) Result {
	return ctx.Failure(n.msg)
}

func (n *FailureParser) Copy() Node { c := *n; return &c }

func (n *FailureParser) Match(other Node, seen map[Node]bool) bool {
	if markSeen(n, seen) {
		return true
	}
	o, ok := other.(*FailureParser)
	return ok && o.msg == n.msg
}

func (n *FailureParser) String() string { return fmt.Sprintf("Failure(%q)", n.msg) }

// PredicateParser reads a fixed number of elements and succeeds with
// that slice iff pred accepts it.
type PredicateParser struct {
	leaf
	length int
	pred   func(string) bool
	msg    string
}

// Predicate builds a parser that reads length runes starting at the
// current position and succeeds with that substring iff pred(slice)
// holds.
func Predicate(length int, pred func(string) bool, msg string) Parser {
	return wrap(&PredicateParser{length: length, pred: pred, msg: msg})
}

func (n *PredicateParser) parseOn(ctx *Context) Result {
	end := ctx.position + n.length
	if end > len(ctx.buffer) {
		return ctx.Failure(n.msg)
	}
	slice := string(ctx.buffer[ctx.position:end])
	if !n.pred(slice) {
		return ctx.Failure(n.msg)
	}
	return ctx.Success(slice, end)
}

func (n *PredicateParser) Copy() Node { c := *n; return &c }

// Match for PredicateParser requires identity equality of the
// underlying predicate function (compared by code pointer): two
// Predicate() calls Match-equal only when they share length, message
// and function value, so separately written func literals never do.
func (n *PredicateParser) Match(other Node, seen map[Node]bool) bool {
	if markSeen(n, seen) {
		return true
	}
	o, ok := other.(*PredicateParser)
	return ok && o.length == n.length && o.msg == n.msg && samePredicate(n.pred, o.pred)
}

func (n *PredicateParser) String() string {
	return fmt.Sprintf("Predicate(%d, %q)", n.length, n.msg)
}

func samePredicate(a, b func(string) bool) bool {
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}

// String builds a parser matching the literal s exactly.
func String(s string) Parser {
	runes := []rune(s)
	return Predicate(len(runes), func(slice string) bool {
		return slice == s
	}, fmt.Sprintf("%q expected", s))
}

// StringIgnoreCase builds a parser matching s case-insensitively.
func StringIgnoreCase(s string) Parser {
	runes := []rune(s)
	lower := toLowerRunes(runes)
	return Predicate(len(runes), func(slice string) bool {
		return toLowerRunes([]rune(slice)) == lower
	}, fmt.Sprintf("%q expected", s))
}

func toLowerRunes(rs []rune) string {
	out := make([]rune, len(rs))
	for i, r := range rs {
		if r >= 'A' && r <= 'Z' {
			r = r - 'A' + 'a'
		}
		out[i] = r
	}
	return string(out)
}
