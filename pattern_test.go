package petit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPattern(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		input   string
		success bool
	}{
		{"range match", "a-z", "m", true},
		{"range miss", "a-z", "M", false},
		{"literal and range mixed", "a-z^0-9", "^", true},
		{"literal and range mixed range", "a-z^0-9", "5", true},
		{"literal and range mixed miss", "a-z^0-9", "!", false},
		{"leading caret negates", "^0-9", "a", true},
		{"leading caret negates digit", "^0-9", "5", false},
		{"single literal", "xyz", "y", true},
		{"single literal miss", "xyz", "a", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Pattern(tt.expr).Parse(tt.input)
			assert.Equal(t, tt.success, res.IsSuccess())
		})
	}
}

func TestPattern_Memoized(t *testing.T) {
	delete(patternCache, "a-f")
	p1, err1 := compilePatternMatcher("a-f")
	p2, err2 := compilePatternMatcher("a-f")

	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.True(t, p1 == patternCache["a-f"])
	assert.True(t, p2 == patternCache["a-f"])
}

func TestPattern_InvalidPanics(t *testing.T) {
	assert.Panics(t, func() { Pattern("") })
}
