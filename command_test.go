package pathopt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLetterArity(t *testing.T) {
	cases := []struct {
		letter Letter
		arity  int
	}{
		{MoveTo, 2},
		{LineTo, 2},
		{HLineTo, 1},
		{VLineTo, 1},
		{CubicTo, 6},
		{SmoothCubic, 4},
		{QuadTo, 4},
		{SmoothQuad, 2},
		{ArcTo, 7},
		{ClosePath, 0},
		{Letter('X'), -1},
	}
	for _, c := range cases {
		assert.Equal(t, c.arity, c.letter.Arity(), "letter %q", rune(c.letter))
		assert.Equal(t, c.arity >= 0, c.letter.Valid())
	}
}

func TestCommandCheckArity(t *testing.T) {
	require.NoError(t, Command{Letter: LineTo, Args: []float64{1, 2}}.checkArity())
	require.Error(t, Command{Letter: LineTo, Args: []float64{1}}.checkArity())
	require.Error(t, Command{Letter: Letter('Q' + 1), Args: nil}.checkArity())
}

func TestPointArithmetic(t *testing.T) {
	a := Point{1, 2}
	b := Point{3, -1}
	assert.Equal(t, Point{4, 1}, a.Add(b))
	assert.Equal(t, Point{-2, 3}, a.Sub(b))
}
