package petit

import "fmt"

// Grammar is a named-production builder whose own parse is that of
// its "start" production. Go has no open classes to hook a subclass's
// override onto, so construction takes an initialize callback instead
// — the same composition-over-inheritance shape used throughout this
// package (e.g. Parser embeds Node rather than every combinator
// reimplementing the builder methods).
type Grammar struct {
	defs      map[string]Node
	refs      map[string]*SetableNode
	completed bool
	root      *SetableNode
}

// NewGrammar runs initialize against a fresh Grammar, then runs the
// completion pass, and returns the result. initialize is expected to
// call Def for every production the grammar needs, including one
// named "start".
func NewGrammar(initialize func(g *Grammar)) *Grammar {
	g := &Grammar{
		defs: map[string]Node{},
		refs: map[string]*SetableNode{},
		root: Undefined_("start").Node.(*SetableNode),
	}
	initialize(g)
	g.completeGrammar()
	return g
}

// Def registers a production. Calling Def twice with the same name,
// or calling it after completion, panics.
func (g *Grammar) Def(name string, p Parser) {
	if g.completed {
		panic(&CompletedParserError{})
	}
	if _, exists := g.defs[name]; exists {
		panic(&RedefinedProductionError{Name: name})
	}
	g.defs[name] = p.Node
}

// Ref returns a parser referring to name. Before completion this may
// be a forward reference — a Setable placeholder created on demand
// and reused across repeated Ref calls for the same name, wrapping a
// Failure("Uninitialized production: <name>") until it is resolved.
// After completion, Ref returns the final definition directly, and
// panics UndefinedProductionError if name was never defined.
func (g *Grammar) Ref(name string) Parser {
	if g.completed {
		def, ok := g.defs[name]
		if !ok {
			panic(&UndefinedProductionError{Name: name})
		}
		return wrap(def)
	}
	if s, ok := g.refs[name]; ok {
		return wrap(s)
	}
	s := Undefined_(name).Node.(*SetableNode)
	g.refs[name] = s
	return wrap(s)
}

// Redef replaces an existing production. v is either a Parser (the
// new definition outright) or a func(Parser) Parser applied to the
// current definition. Panics UndefinedProductionError if name was
// never defined, or CompletedParserError after completion.
func (g *Grammar) Redef(name string, v any) {
	if g.completed {
		panic(&CompletedParserError{})
	}
	old, ok := g.defs[name]
	if !ok {
		panic(&UndefinedProductionError{Name: name})
	}
	switch val := v.(type) {
	case Parser:
		g.defs[name] = val.Node
	case func(Parser) Parser:
		g.defs[name] = val(wrap(old)).Node
	default:
		panic(&ArgumentError{Message: fmt.Sprintf("redef(%q, ...) expects a Parser or func(Parser) Parser", name)})
	}
}

// Action is Redef(name, func(p Parser) Parser { return p.Map(fn) }).
func (g *Grammar) Action(name string, fn func(any) any) {
	g.Redef(name, func(p Parser) Parser { return p.Map(fn) })
}

// completeGrammar resolves every outstanding forward reference to its
// definition and locks the grammar against further changes.
func (g *Grammar) completeGrammar() {
	startPlaceholder := g.Ref("start")

	for name, s := range g.refs {
		def, ok := g.defs[name]
		if !ok {
			panic(&UndefinedProductionError{Name: name})
		}
		s.delegate = def
	}

	g.completed = true
	g.root.delegate = startPlaceholder.Node
}

// --- Grammar as a Node, so the composite itself is a parser ---

func (g *Grammar) parseOn(ctx *Context) Result { return g.root.parseOn(ctx) }
func (g *Grammar) Children() []Node            { return g.root.Children() }
func (g *Grammar) Replace(source, target Node) { g.root.Replace(source, target) }
func (g *Grammar) Copy() Node                  { return g.root.Copy() }

func (g *Grammar) Match(other Node, seen map[Node]bool) bool {
	o, ok := other.(*Grammar)
	return ok && g.root.Match(o.root, seen)
}

func (g *Grammar) String() string { return fmt.Sprintf("Grammar(%s)", g.root) }

// Parser returns g wrapped as a Parser, composable with any other
// combinator in this package.
func (g *Grammar) Parser() Parser { return wrap(g) }
