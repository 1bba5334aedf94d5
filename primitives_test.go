package petit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAny(t *testing.T) {
	res := Any().Parse("x")
	require.True(t, res.IsSuccess())
	assert.Equal(t, 'x', res.Value())

	res = Any().Parse("")
	assert.False(t, res.IsSuccess())
}

func TestEpsilon(t *testing.T) {
	res := Epsilon("seed").Parse("anything")
	require.True(t, res.IsSuccess())
	assert.Equal(t, "seed", res.Value())
	assert.Equal(t, 0, res.Position())
}

func TestFailureAndUndefined(t *testing.T) {
	res := Failure("boom").Parse("x")
	require.False(t, res.IsSuccess())
	assert.Equal(t, "boom", res.Message())

	res = Undefined_("expr").Parse("x")
	assert.Equal(t, "Uninitialized production: expr", res.Message())
}

func TestPredicate_IdentityMatch(t *testing.T) {
	pred := func(s string) bool { return s == "ab" }
	p1 := Predicate(2, pred, "ab expected")
	p2 := Predicate(2, pred, "ab expected")
	p3 := Predicate(2, func(s string) bool { return s == "ab" }, "ab expected")

	assert.True(t, p1.Match(p2.Node, map[Node]bool{}))
	assert.False(t, p1.Match(p3.Node, map[Node]bool{}), "distinct closures never Match-equal")
}

func TestString(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		input   string
		success bool
	}{
		{"exact match", "foo", "foo", true},
		{"prefix only is still success", "foo", "foobar", true},
		{"mismatch", "foo", "bar", false},
		{"too short", "foo", "fo", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := String(tt.target).Parse(tt.input)
			assert.Equal(t, tt.success, res.IsSuccess())
		})
	}
}

func TestStringIgnoreCase(t *testing.T) {
	res := StringIgnoreCase("FOO").Parse("foo")
	assert.True(t, res.IsSuccess())

	res = StringIgnoreCase("foo").Parse("FOO")
	assert.True(t, res.IsSuccess())

	res = StringIgnoreCase("foo").Parse("bar")
	assert.False(t, res.IsSuccess())
}
