package petit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepeat_Possessive(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
		input    string
		success  bool
		stop     int
	}{
		{"star matches zero", 0, Unbounded, "", true, 0},
		{"star matches all", 0, Unbounded, "aaa", true, 3},
		{"plus requires one", 1, Unbounded, "", false, 0},
		{"plus matches all", 1, Unbounded, "aaab", true, 3},
		{"times exact", 2, 2, "aaa", true, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Char("a").Repeat(tt.min, tt.max).Parse(tt.input)
			assert.Equal(t, tt.success, res.IsSuccess())
			if tt.success {
				assert.Equal(t, tt.stop, res.Position())
			}
		})
	}
}

func TestRepeatGreedy_BacktracksAgainstLimit(t *testing.T) {
	// greedy: consume as many "a"s as possible, then back off one at a
	// time until "ab" (limit) can be matched right after.
	p := Char("a").StarGreedy(String("ab"))
	res := p.Parse("aaab")
	require.True(t, res.IsSuccess())
	assert.Equal(t, []any{'a', 'a'}, res.Value())
	assert.Equal(t, 2, res.Position())
}

func TestRepeatGreedy_FailsWhenLimitNeverAccepts(t *testing.T) {
	p := Char("a").StarGreedy(Char("z"))
	res := p.Parse("aaab")
	assert.False(t, res.IsSuccess())
}

func TestRepeatLazy_StopsAsSoonAsLimitAccepts(t *testing.T) {
	// lazy: take the fewest "a"s needed before "ab" can match.
	p := Char("a").StarLazy(String("ab"))
	res := p.Parse("aaab")
	require.True(t, res.IsSuccess())
	assert.Equal(t, []any{'a', 'a'}, res.Value())
	assert.Equal(t, 2, res.Position())
}

func TestSeparatedBy(t *testing.T) {
	tests := []struct {
		name              string
		input             string
		includeSeparators bool
		optionalSepAtEnd  bool
		expected          []any
		stop              int
	}{
		{"no separators included", "1,2,3", false, false, []any{"1", "2", "3"}, 5},
		{"separators included", "1,2,3", true, false, []any{"1", ',', "2", ',', "3"}, 5},
		{"trailing separator rejected by default", "1,2,3,", false, false, []any{"1", "2", "3"}, 5},
		{"trailing separator optionally consumed", "1,2,3,", false, true, []any{"1", "2", "3"}, 6},
	}

	digit := Digit().Flatten()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := digit.SeparatedBy(Char(","), tt.includeSeparators, tt.optionalSepAtEnd)
			res := p.Parse(tt.input)
			require.True(t, res.IsSuccess())
			assert.Equal(t, tt.expected, res.Value())
			assert.Equal(t, tt.stop, res.Position())
		})
	}
}

func TestSeparatedBy_Defaults(t *testing.T) {
	digit := Digit().Flatten()

	// no opts: includeSeparators defaults true, optionalSepAtEnd defaults false.
	res := digit.SeparatedBy(Char(",")).Parse("1,2,3")
	require.True(t, res.IsSuccess())
	assert.Equal(t, []any{"1", ',', "2", ',', "3"}, res.Value())
	assert.Equal(t, 5, res.Position())

	// one opt: includeSeparators=false, optionalSepAtEnd still defaults false.
	res = digit.SeparatedBy(Char(","), false).Parse("1,2,3")
	require.True(t, res.IsSuccess())
	assert.Equal(t, []any{"1", "2", "3"}, res.Value())
	assert.Equal(t, 5, res.Position())
}
