package petit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContext_SuccessFailurePosition(t *testing.T) {
	ctx := NewContext("abc")
	ctx.position = 1

	t.Run("success defaults to context position", func(t *testing.T) {
		res := ctx.Success("x")
		assert.Equal(t, 1, res.Position())
	})

	t.Run("success honors caller-supplied position", func(t *testing.T) {
		res := ctx.Success("x", 3)
		assert.Equal(t, 3, res.Position())
	})

	t.Run("failure defaults to context position", func(t *testing.T) {
		res := ctx.Failure("nope")
		assert.Equal(t, 1, res.Position())
	})

	t.Run("failure honors caller-supplied position", func(t *testing.T) {
		res := ctx.Failure("nope", 2)
		assert.Equal(t, 2, res.Position())
	})
}

func TestFailure_ValuePanics(t *testing.T) {
	ctx := NewContext("abc")
	res := ctx.Failure("nope")

	assert.Panics(t, func() { res.Value() })

	_, err := res.Get()
	require.Error(t, err)
	var perr *ParserError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "nope @ 0", perr.Error())
}

func TestParse_FarthestFailure(t *testing.T) {
	// "cat" gets two characters in before failing at position 2;
	// "x" fails immediately at position 0 and is the alternative
	// Choice actually returns. Parse must still report the deeper
	// failure reached by the first alternative.
	grammar := Char("c").Seq(Char("a")).Seq(Char("t")).Or(Char("x"))

	res := grammar.Parse("cab")
	require.False(t, res.IsSuccess())
	assert.Equal(t, 2, res.Position())
}
