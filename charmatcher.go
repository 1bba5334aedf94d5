package petit

import (
	"fmt"
	"sort"
	"unicode/utf8"
)

// CharMatcher is the sum type behind every CharacterParser: a single
// code point, an inclusive range, an alternation, a negation, or a
// sorted set with binary-search membership.
type CharMatcher interface {
	Matches(r rune) bool
	String() string
	Equal(other CharMatcher) bool
}

type singleCharMatcher struct{ c rune }

func (m singleCharMatcher) Matches(r rune) bool { return r == m.c }
func (m singleCharMatcher) String() string      { return fmt.Sprintf("%q", m.c) }
func (m singleCharMatcher) Equal(other CharMatcher) bool {
	o, ok := other.(singleCharMatcher)
	return ok && o.c == m.c
}

type rangeCharMatcher struct{ lo, hi rune }

func (m rangeCharMatcher) Matches(r rune) bool { return r >= m.lo && r <= m.hi }
func (m rangeCharMatcher) String() string      { return fmt.Sprintf("%q-%q", m.lo, m.hi) }
func (m rangeCharMatcher) Equal(other CharMatcher) bool {
	o, ok := other.(rangeCharMatcher)
	return ok && o.lo == m.lo && o.hi == m.hi
}

type altCharMatcher struct{ matchers []CharMatcher }

func (m altCharMatcher) Matches(r rune) bool {
	for _, sub := range m.matchers {
		if sub.Matches(r) {
			return true
		}
	}
	return false
}

func (m altCharMatcher) String() string {
	s := "["
	for i, sub := range m.matchers {
		if i > 0 {
			s += ", "
		}
		s += sub.String()
	}
	return s + "]"
}

func (m altCharMatcher) Equal(other CharMatcher) bool {
	o, ok := other.(altCharMatcher)
	if !ok || len(o.matchers) != len(m.matchers) {
		return false
	}
	for i := range m.matchers {
		if !m.matchers[i].Equal(o.matchers[i]) {
			return false
		}
	}
	return true
}

type negCharMatcher struct{ inner CharMatcher }

func (m negCharMatcher) Matches(r rune) bool { return !m.inner.Matches(r) }
func (m negCharMatcher) String() string      { return "^" + m.inner.String() }
func (m negCharMatcher) Equal(other CharMatcher) bool {
	o, ok := other.(negCharMatcher)
	return ok && o.inner.Equal(m.inner)
}

// setCharMatcher is a sorted-code-point set with binary-search
// membership.
type setCharMatcher struct{ sorted []rune }

func newSetCharMatcher(points []rune) setCharMatcher {
	sorted := append([]rune(nil), points...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return setCharMatcher{sorted: sorted}
}

func (m setCharMatcher) Matches(r rune) bool {
	i := sort.Search(len(m.sorted), func(i int) bool { return m.sorted[i] >= r })
	return i < len(m.sorted) && m.sorted[i] == r
}

func (m setCharMatcher) String() string { return fmt.Sprintf("Set(%d code points)", len(m.sorted)) }

func (m setCharMatcher) Equal(other CharMatcher) bool {
	o, ok := other.(setCharMatcher)
	if !ok || len(o.sorted) != len(m.sorted) {
		return false
	}
	for i := range m.sorted {
		if m.sorted[i] != o.sorted[i] {
			return false
		}
	}
	return true
}

// CharacterParser is a leaf parser over a CharMatcher.
type CharacterParser struct {
	leaf
	matcher CharMatcher
	msg     string
}

func newCharacterParser(m CharMatcher, msg string) Parser {
	return wrap(&CharacterParser{matcher: m, msg: msg})
}

func (n *CharacterParser) parseOn(ctx *Context) Result {
	if ctx.position >= len(ctx.buffer) {
		return ctx.Failure(n.msg)
	}
	r := ctx.buffer[ctx.position]
	if !n.matcher.Matches(r) {
		return ctx.Failure(n.msg)
	}
	return ctx.Success(r, ctx.position+1)
}

func (n *CharacterParser) Copy() Node { c := *n; return &c }

func (n *CharacterParser) Match(other Node, seen map[Node]bool) bool {
	if markSeen(n, seen) {
		return true
	}
	o, ok := other.(*CharacterParser)
	return ok && o.msg == n.msg && o.matcher.Equal(n.matcher)
}

func (n *CharacterParser) String() string {
	return fmt.Sprintf("CharacterParser(%s)", n.matcher)
}

// Char builds a parser matching exactly the single rune in c.
// ArgumentError is raised immediately if c is empty or holds more
// than one code point.
func Char(c string, msg ...string) Parser {
	r, size := utf8.DecodeRuneInString(c)
	if c == "" || size != len(c) {
		panic(&ArgumentError{Message: fmt.Sprintf("char() expects a single character, got %q", c)})
	}
	m := fmt.Sprintf("%q expected", r)
	if len(msg) > 0 {
		m = msg[0]
	}
	return newCharacterParser(singleCharMatcher{c: r}, m)
}

// Range builds a parser matching any rune in [lo, hi]. ArgumentError
// is raised immediately if the range is inverted.
func Range(lo, hi rune, msg ...string) Parser {
	if lo > hi {
		panic(&ArgumentError{Message: fmt.Sprintf("range() is inverted: %q > %q", lo, hi)})
	}
	m := fmt.Sprintf("%q-%q expected", lo, hi)
	if len(msg) > 0 {
		m = msg[0]
	}
	return newCharacterParser(rangeCharMatcher{lo: lo, hi: hi}, m)
}

// AnyIn builds a parser matching any rune that appears in elements.
func AnyIn(elements string, msg ...string) Parser {
	m := fmt.Sprintf("any of %q expected", elements)
	if len(msg) > 0 {
		m = msg[0]
	}
	return newCharacterParser(newSetCharMatcher([]rune(elements)), m)
}

// Digit matches a single ASCII digit.
func Digit(msg ...string) Parser {
	m := "digit expected"
	if len(msg) > 0 {
		m = msg[0]
	}
	return newCharacterParser(rangeCharMatcher{'0', '9'}, m)
}

// Letter matches a single ASCII letter.
func Letter(msg ...string) Parser {
	m := "letter expected"
	if len(msg) > 0 {
		m = msg[0]
	}
	return newCharacterParser(altCharMatcher{matchers: []CharMatcher{
		rangeCharMatcher{'a', 'z'},
		rangeCharMatcher{'A', 'Z'},
	}}, m)
}

// Lowercase matches a single ASCII lowercase letter.
func Lowercase(msg ...string) Parser {
	m := "lowercase letter expected"
	if len(msg) > 0 {
		m = msg[0]
	}
	return newCharacterParser(rangeCharMatcher{'a', 'z'}, m)
}

// Uppercase matches a single ASCII uppercase letter.
func Uppercase(msg ...string) Parser {
	m := "uppercase letter expected"
	if len(msg) > 0 {
		m = msg[0]
	}
	return newCharacterParser(rangeCharMatcher{'A', 'Z'}, m)
}

// whitespaceCodePoints enumerates the Unicode whitespace code points.
var whitespaceCodePoints = []rune{
	'\t', '\n', '\v', '\f', '\r', ' ',
	0x0085, 0x00A0, 0x1680,
	0x180E,
	0x2000, 0x2001, 0x2002, 0x2003, 0x2004, 0x2005, 0x2006, 0x2007, 0x2008, 0x2009, 0x200A,
	0x2028, 0x2029, 0x202F, 0x205F, 0x3000, 0xFEFF,
}

var whitespaceMatcher = newSetCharMatcher(whitespaceCodePoints)

// Whitespace matches a single Unicode whitespace code point.
func Whitespace(msg ...string) Parser {
	m := "whitespace expected"
	if len(msg) > 0 {
		m = msg[0]
	}
	return newCharacterParser(whitespaceMatcher, m)
}

// Word matches a single ASCII letter, digit, or underscore.
func Word(msg ...string) Parser {
	m := "letter, digit or underscore expected"
	if len(msg) > 0 {
		m = msg[0]
	}
	return newCharacterParser(altCharMatcher{matchers: []CharMatcher{
		rangeCharMatcher{'a', 'z'},
		rangeCharMatcher{'A', 'Z'},
		rangeCharMatcher{'0', '9'},
		singleCharMatcher{'_'},
	}}, m)
}
