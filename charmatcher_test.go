package petit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChar(t *testing.T) {
	res := Char("a").Parse("a")
	require.True(t, res.IsSuccess())
	assert.Equal(t, 'a', res.Value())

	assert.False(t, Char("a").Parse("b").IsSuccess())
}

func TestChar_ArgumentError(t *testing.T) {
	assert.Panics(t, func() { Char("") })
	assert.Panics(t, func() { Char("ab") })
}

func TestRange(t *testing.T) {
	p := Range('a', 'z')
	assert.True(t, p.Parse("m").IsSuccess())
	assert.False(t, p.Parse("M").IsSuccess())

	assert.Panics(t, func() { Range('z', 'a') })
}

func TestAnyIn(t *testing.T) {
	p := AnyIn("xyz")
	assert.True(t, p.Parse("y").IsSuccess())
	assert.False(t, p.Parse("a").IsSuccess())
}

func TestDigitLetterWord(t *testing.T) {
	assert.True(t, Digit().Parse("5").IsSuccess())
	assert.False(t, Digit().Parse("a").IsSuccess())

	assert.True(t, Letter().Parse("Q").IsSuccess())
	assert.False(t, Letter().Parse("5").IsSuccess())

	assert.True(t, Word().Parse("_").IsSuccess())
	assert.True(t, Word().Parse("9").IsSuccess())
	assert.False(t, Word().Parse("-").IsSuccess())
}

func TestWhitespace(t *testing.T) {
	assert.True(t, Whitespace().Parse(" ").IsSuccess())
	assert.True(t, Whitespace().Parse("\t").IsSuccess())
	assert.False(t, Whitespace().Parse("x").IsSuccess())
}

func TestCharMatcher_Equal(t *testing.T) {
	tests := []struct {
		name     string
		a, b     CharMatcher
		expected bool
	}{
		{"single equal", singleCharMatcher{'a'}, singleCharMatcher{'a'}, true},
		{"single unequal", singleCharMatcher{'a'}, singleCharMatcher{'b'}, false},
		{"range equal", rangeCharMatcher{'a', 'z'}, rangeCharMatcher{'a', 'z'}, true},
		{"range unequal bound", rangeCharMatcher{'a', 'z'}, rangeCharMatcher{'a', 'y'}, false},
		{"neg wraps inner", negCharMatcher{rangeCharMatcher{'a', 'z'}}, negCharMatcher{rangeCharMatcher{'a', 'z'}}, true},
		{"different kinds", singleCharMatcher{'a'}, rangeCharMatcher{'a', 'a'}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Equal(tt.b))
		})
	}
}

func TestAnyInTree(t *testing.T) {
	p := AnyInTree("xyz")
	assert.True(t, p.Parse("y").IsSuccess())
	assert.False(t, p.Parse("a").IsSuccess())
}

func TestTreeCharMatcher_Equal(t *testing.T) {
	a := newTreeCharMatcher([]rune("abc"))
	b := newTreeCharMatcher([]rune("cba"))
	c := newTreeCharMatcher([]rune("abcd"))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
