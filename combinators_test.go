package petit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeq_Flattens(t *testing.T) {
	p := Char("a").Seq(Char("b")).Seq(Char("c"))
	seq, ok := p.Node.(*SequenceNode)
	require.True(t, ok)
	assert.Len(t, seq.children, 3)

	res := p.Parse("abc")
	require.True(t, res.IsSuccess())
	assert.Equal(t, []any{'a', 'b', 'c'}, res.Value())
}

func TestMatches_Overlapping(t *testing.T) {
	hits := String("aa").Matches("aaa")
	assert.Equal(t, []any{"aa", "aa"}, hits)
}

func TestMatchesSkipping_NonOverlapping(t *testing.T) {
	hits := String("aa").MatchesSkipping("aaa")
	assert.Equal(t, []any{"aa"}, hits)
}

func TestMatches_NoOccurrences(t *testing.T) {
	assert.Empty(t, String("z").Matches("aaa"))
	assert.Empty(t, String("z").MatchesSkipping("aaa"))
}

func TestOr_Flattens(t *testing.T) {
	p := Char("a").Or(Char("b")).Or(Char("c"))
	choice, ok := p.Node.(*ChoiceNode)
	require.True(t, ok)
	assert.Len(t, choice.children, 3)

	assert.True(t, p.Parse("c").IsSuccess())
	assert.False(t, p.Parse("d").IsSuccess())
}

func TestChoice_BacktracksOnFailure(t *testing.T) {
	p := String("cat").Or(String("car"))
	res := p.Parse("car")
	require.True(t, res.IsSuccess())
	assert.Equal(t, "car", res.Value())
}

func TestOptional(t *testing.T) {
	p := Char("a").Optional("missing")

	res := p.Parse("a")
	require.True(t, res.IsSuccess())
	assert.Equal(t, 'a', res.Value())

	res = p.Parse("b")
	require.True(t, res.IsSuccess())
	assert.Equal(t, "missing", res.Value())
	assert.Equal(t, 0, res.Position())
}

func TestAnd_DoesNotConsume(t *testing.T) {
	p := Char("a").And().Seq(Char("a"))
	res := p.Parse("a")
	require.True(t, res.IsSuccess())
	assert.Equal(t, 1, res.Position())
}

func TestNot(t *testing.T) {
	p := Char("a").Not("unexpected a")
	assert.False(t, p.Parse("a").IsSuccess())

	res := p.Parse("b")
	require.True(t, res.IsSuccess())
	assert.Equal(t, 0, res.Position())
}

func TestNeg(t *testing.T) {
	p := Char("a").Neg("unexpected a")
	res := p.Parse("b")
	require.True(t, res.IsSuccess())
	assert.Equal(t, 'b', res.Value())
	assert.Equal(t, 1, res.Position())

	assert.False(t, p.Parse("a").IsSuccess())
}

func TestEnd(t *testing.T) {
	p := String("ab").End()
	assert.True(t, p.Parse("ab").IsSuccess())
	assert.False(t, p.Parse("abc").IsSuccess())
}

func TestFlatten(t *testing.T) {
	p := Letter().Plus().Flatten()
	res := p.Parse("abc123")
	require.True(t, res.IsSuccess())
	assert.Equal(t, "abc", res.Value())
}

func TestTokenize(t *testing.T) {
	p := Letter().Plus().Flatten().Token()
	res := p.Parse("abc")
	require.True(t, res.IsSuccess())
	tok, ok := res.Value().(*Token)
	require.True(t, ok)
	assert.Equal(t, "abc", tok.Input())
}

func TestTrim(t *testing.T) {
	p := Char("a").Trim()
	res := p.Parse("  a  ")
	require.True(t, res.IsSuccess())
	assert.Equal(t, 'a', res.Value())
	assert.Equal(t, 5, res.Position())
}

func TestMapPickPermute(t *testing.T) {
	upper := Char("a").Map(func(v any) any {
		return string(v.(rune)) + "!"
	})
	res := upper.Parse("a")
	require.True(t, res.IsSuccess())
	assert.Equal(t, "a!", res.Value())

	triple := Char("a").Seq(Char("b")).Seq(Char("c"))
	res = triple.Pick(1).Parse("abc")
	require.True(t, res.IsSuccess())
	assert.Equal(t, 'b', res.Value())

	res = triple.Permute(2, 0).Parse("abc")
	require.True(t, res.IsSuccess())
	assert.Equal(t, []any{'c', 'a'}, res.Value())
}
