package petit

import "fmt"

// Context is the immutable (buffer, position) pair threaded through a
// parse, a value type so it can be freely copied and compared without
// aliasing the caller's cursor.
type Context struct {
	buffer   []rune
	position int
	ffp      *farthestFailure
}

// farthestFailure is the shared, mutable tracker a Context's copies
// all point at: every Failure built anywhere during a parse reports
// itself here, so the outermost Parse can surface the deepest point
// reached across all backtracked alternatives, not just the last one
// tried.
type farthestFailure struct {
	position int
	message  string
}

func (f *farthestFailure) record(pos int, message string) {
	if pos > f.position {
		f.position = pos
		f.message = message
	}
}

// NewContext creates the initial context for an input string at
// position 0.
func NewContext(input string) *Context {
	return &Context{buffer: []rune(input), position: 0, ffp: &farthestFailure{position: -1}}
}

func (c *Context) Buffer() []rune { return c.buffer }
func (c *Context) Position() int  { return c.position }

func (c *Context) String() string {
	return fmt.Sprintf("Context[%d/%d]", c.position, len(c.buffer))
}

// Success builds a success Result at newPos if given, otherwise at
// the context's own position: the caller-supplied position wins when
// provided.
func (c *Context) Success(value any, newPos ...int) *Success {
	pos := c.position
	if len(newPos) > 0 {
		pos = newPos[0]
	}
	return &Success{Context{buffer: c.buffer, position: pos, ffp: c.ffp}, value}
}

// Failure builds a failure Result at pos if given, otherwise at the
// context's own position. It also records itself in the context's
// shared farthest-failure tracker.
func (c *Context) Failure(message string, pos ...int) *FailureResult {
	p := c.position
	if len(pos) > 0 {
		p = pos[0]
	}
	if c.ffp != nil {
		c.ffp.record(p, message)
	}
	return &FailureResult{Context{buffer: c.buffer, position: p, ffp: c.ffp}, message}
}

// Result is either a Success or a Failure.  It embeds the Context
// contract so any combinator can feed a Result back in as the input
// to the next parser — this is what lets Sequence/Choice/repeaters
// thread state without a separate "context" type.
type Result interface {
	Buffer() []rune
	Position() int
	IsSuccess() bool

	// Value returns the success value.  Calling it on a Failure
	// panics with a *ParserError — the one parse-path-to-exception
	// promotion this package makes.
	Value() any

	// Get is the non-panicking counterpart of Value, returning the
	// ParserError instead of panicking.  Most Go callers should use
	// this; Value exists to match the library's originating
	// semantics and is what combinators call once IsSuccess has
	// reported true.
	Get() (any, error)

	Message() string
	ctx() *Context
}

// Success is a Result carrying a value at a given position.
type Success struct {
	Context
	value any
}

func (s *Success) IsSuccess() bool  { return true }
func (s *Success) Value() any       { return s.value }
func (s *Success) Get() (any, error) { return s.value, nil }
func (s *Success) Message() string  { return "" }
func (s *Success) ctx() *Context    { return &s.Context }

func (s *Success) String() string {
	return fmt.Sprintf("Success[%d]: %v", s.position, s.value)
}

// FailureResult is a Result carrying a failure message at a given position.
type FailureResult struct {
	Context
	message string
}

func (f *FailureResult) IsSuccess() bool { return false }

func (f *FailureResult) Value() any {
	panic(&ParserError{Failure: f})
}

func (f *FailureResult) Get() (any, error) { return nil, &ParserError{Failure: f} }
func (f *FailureResult) Message() string   { return f.message }
func (f *FailureResult) ctx() *Context     { return &f.Context }

func (f *FailureResult) String() string {
	return fmt.Sprintf("Failure[%d]: %s", f.position, f.message)
}
