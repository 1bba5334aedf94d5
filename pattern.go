package petit

import "fmt"

// patternCache memoizes compiled bracket-expression matchers, since
// Pattern is typically called with the same literal expression from
// many call sites in a grammar.
var patternCache = map[string]CharMatcher{}

// patternGrammar is built lazily, once, the first time Pattern is
// called — it is itself a small grammar expressed with this library's
// own combinators: the bracket-expression compiler is not special Go
// code walking runes by hand, it is Seq/Or/Map/Plus wired exactly like
// any other grammar a caller of this library would write.
var patternGrammar Parser
var patternGrammarBuilt bool

func buildPatternGrammar() Parser {
	if patternGrammarBuilt {
		return patternGrammar
	}

	rangeItem := Any().Seq(Char("-")).Seq(Any()).Map(func(v any) any {
		list := v.([]any)
		return rangeCharMatcher{lo: list[0].(rune), hi: list[2].(rune)}
	})
	singleItem := Any().Map(func(v any) any {
		return singleCharMatcher{c: v.(rune)}
	})
	item := rangeItem.Or(singleItem)
	items := item.Plus()

	negFlag := Char("^").Map(func(any) any { return true }).Optional(false)

	patternGrammar = negFlag.Seq(items).End()
	patternGrammarBuilt = true
	return patternGrammar
}

func compilePatternMatcher(expr string) (CharMatcher, error) {
	if m, ok := patternCache[expr]; ok {
		return m, nil
	}

	res := buildPatternGrammar().Parse(expr)
	if !res.IsSuccess() {
		return nil, &ArgumentError{Message: fmt.Sprintf("invalid pattern %q: %s", expr, res.Message())}
	}

	parts := res.Value().([]any)
	negated := parts[0].(bool)
	rawItems := parts[1].([]any)

	matchers := make([]CharMatcher, len(rawItems))
	for i, it := range rawItems {
		matchers[i] = it.(CharMatcher)
	}

	var m CharMatcher
	if len(matchers) == 1 {
		m = matchers[0]
	} else {
		m = altCharMatcher{matchers: matchers}
	}
	if negated {
		m = negCharMatcher{inner: m}
	}

	patternCache[expr] = m
	return m, nil
}

// Pattern compiles a bracket-expression (an optional leading "^" for
// negation followed by one or more single characters or "a-b" ranges)
// into a CharacterParser. ArgumentError is raised immediately if expr
// does not parse.
func Pattern(expr string, msg ...string) Parser {
	m, err := compilePatternMatcher(expr)
	if err != nil {
		panic(err)
	}
	message := fmt.Sprintf("pattern %q expected", expr)
	if len(msg) > 0 {
		message = msg[0]
	}
	return newCharacterParser(m, message)
}
