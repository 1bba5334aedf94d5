package petit

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// ContinuationNode delegates parseOn to a user-supplied handler that
// receives this node's label, the context, and a continuation closing
// over the real delegate. Debug, Progress, and Profile are thin
// Transforms that wrap every reachable parser in one of these,
// instrumenting a grammar for tracing without touching its own
// parseOn logic.
type ContinuationNode struct {
	delegate Node
	handler  func(label string, ctx *Context, next func(*Context) Result) Result
	label    string
}

func (n *ContinuationNode) parseOn(ctx *Context) Result {
	return n.handler(n.label, ctx, n.delegate.parseOn)
}

func (n *ContinuationNode) Children() []Node { return []Node{n.delegate} }

func (n *ContinuationNode) Replace(source, target Node) {
	if n.delegate == source {
		n.delegate = target
	}
}

func (n *ContinuationNode) Copy() Node { c := *n; return &c }

func (n *ContinuationNode) Match(other Node, seen map[Node]bool) bool {
	if markSeen(n, seen) {
		return true
	}
	o, ok := other.(*ContinuationNode)
	return ok && n.delegate.Match(o.delegate, seen)
}

func (n *ContinuationNode) String() string {
	return fmt.Sprintf("Continuation(%s)", n.delegate)
}

// withContinuation wraps every reachable parser of root in a
// ContinuationNode running handler, via Transform. Each wrapper's
// label is the wrapped node's own String(), captured before wrapping
// so handler can identify which parser it is being invoked for.
func withContinuation(root Parser, handler func(label string, ctx *Context, next func(*Context) Result) Result) Parser {
	return Transform(root, func(p Parser) Parser {
		return wrap(&ContinuationNode{delegate: p.Node, handler: handler, label: p.String()})
	})
}

// Debug wraps every reachable parser of root with an indented trace
// of enter/exit events, written to w (default os.Stderr).
func Debug(root Parser, w ...io.Writer) Parser {
	out := defaultWriter(w)
	depth := 0
	return withContinuation(root, func(label string, ctx *Context, next func(*Context) Result) Result {
		indent := strings.Repeat("  ", depth)
		fmt.Fprintf(out, "%s%s @ %d\n", indent, label, ctx.position)
		depth++
		res := next(ctx)
		depth--
		fmt.Fprintf(out, "%s-> %s\n", indent, res)
		return res
	})
}

// Progress wraps every reachable parser of root with a position
// marker written to w (default os.Stderr) each time it is invoked.
func Progress(root Parser, w ...io.Writer) Parser {
	out := defaultWriter(w)
	return withContinuation(root, func(label string, ctx *Context, next func(*Context) Result) Result {
		fmt.Fprintf(out, "@%d %s\n", ctx.position, label)
		return next(ctx)
	})
}

// ProfileEntry accumulates invocation count and cumulative time for
// one parser label.
type ProfileEntry struct {
	Count int
	Total time.Duration
}

// Profile wraps every reachable parser of root to record, in stats,
// per-parser invocation counts and cumulative wall time.
func Profile(root Parser, stats map[string]*ProfileEntry) Parser {
	return withContinuation(root, func(label string, ctx *Context, next func(*Context) Result) Result {
		start := time.Now()
		res := next(ctx)
		entry := stats[label]
		if entry == nil {
			entry = &ProfileEntry{}
			stats[label] = entry
		}
		entry.Count++
		entry.Total += time.Since(start)
		return res
	})
}

func defaultWriter(w []io.Writer) io.Writer {
	if len(w) > 0 {
		return w[0]
	}
	return os.Stderr
}
