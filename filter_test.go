package pathopt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filterCtx(precision int) *Context {
	cfg := DefaultConfig()
	cfg.FloatPrecision = &precision
	return NewContext(cfg)
}

func TestRoundItemErrorCompensation(t *testing.T) {
	// The §4.4b worked example: repeated l .25 3 deltas should round to
	// .3/.2 alternating, not .3/.3, because each delta's rounding is
	// biased by the drift between the true and already-rounded cursor.
	cmds := []Command{
		{Letter: MoveTo, Abs: true, Args: []float64{0, 0}},
		{Letter: LineTo, Abs: false, Args: []float64{.25, 3}},
		{Letter: LineTo, Abs: false, Args: []float64{.25, 2}},
		{Letter: LineTo, Abs: false, Args: []float64{.25, 3}},
		{Letter: LineTo, Abs: false, Args: []float64{.25, 2}},
	}
	items, _, err := Relativize(cmds)
	require.NoError(t, err)

	ctx := filterCtx(1)
	out := Filter(items, ctx)
	require.Len(t, out, 5)
	assert.Equal(t, []float64{.3, 3}, out[1].Args)
	assert.Equal(t, []float64{.2, 2}, out[2].Args)
	assert.Equal(t, []float64{.3, 3}, out[3].Args)
	assert.Equal(t, []float64{.2, 2}, out[4].Args)
}

func TestCurveToLineOnStraightCubic(t *testing.T) {
	cmds := []Command{
		{Letter: MoveTo, Abs: true, Args: []float64{0, 0}},
		{Letter: CubicTo, Abs: false, Args: []float64{2, 0, 4, 0, 6, 0}},
	}
	items, _, err := Relativize(cmds)
	require.NoError(t, err)
	out := Filter(items, filterCtx(3))
	require.Len(t, out, 2)
	// The cubic becomes l6 0, which the line-shorthand rule then turns
	// into h6.
	assert.Equal(t, HLineTo, out[1].Letter)
	assert.Equal(t, []float64{6}, out[1].Args)
}

func TestLineShorthand(t *testing.T) {
	cmds := []Command{
		{Letter: MoveTo, Abs: true, Args: []float64{0, 0}},
		{Letter: LineTo, Abs: false, Args: []float64{5, 0}},
		{Letter: LineTo, Abs: false, Args: []float64{0, -5}},
	}
	items, _, err := Relativize(cmds)
	require.NoError(t, err)
	out := Filter(items, filterCtx(3))
	require.Len(t, out, 3)
	assert.Equal(t, HLineTo, out[1].Letter)
	assert.Equal(t, []float64{5}, out[1].Args)
	assert.Equal(t, VLineTo, out[2].Letter)
	assert.Equal(t, []float64{-5}, out[2].Args)
}

func TestCollapseRepeatedHLineTo(t *testing.T) {
	cmds := []Command{
		{Letter: MoveTo, Abs: true, Args: []float64{0, 0}},
		{Letter: HLineTo, Abs: false, Args: []float64{5}},
		{Letter: HLineTo, Abs: false, Args: []float64{3}},
	}
	items, _, err := Relativize(cmds)
	require.NoError(t, err)
	out := Filter(items, filterCtx(3))
	require.Len(t, out, 2)
	assert.Equal(t, []float64{8}, out[1].Args)
}

func TestSmoothCubicShorthandDetection(t *testing.T) {
	cmds := []Command{
		{Letter: MoveTo, Abs: true, Args: []float64{0, 0}},
		{Letter: CubicTo, Abs: false, Args: []float64{1, 1, 2, 3, 4, 0}},
		// Reflection of (2,3) through (4,0) is (6,-3); this cubic's
		// first control point matches that reflection exactly.
		{Letter: CubicTo, Abs: false, Args: []float64{2, -3, 1, -1, 3, -2}},
	}
	items, _, err := Relativize(cmds)
	require.NoError(t, err)
	ctx := filterCtx(0) // disable rounding/other rewrites from masking the shorthand check
	ctx.RoundingEnabled = false
	ctx.StraightCurves = false
	ctx.ConvertToQ = false
	out := Filter(items, ctx)
	require.Len(t, out, 3)
	assert.Equal(t, SmoothCubic, out[2].Letter)
	assert.Equal(t, []float64{1, -1, 3, -2}, out[2].Args)
}

func TestZeroLengthLineDropped(t *testing.T) {
	cmds := []Command{
		{Letter: MoveTo, Abs: true, Args: []float64{0, 0}},
		{Letter: LineTo, Abs: false, Args: []float64{5, 0}},
		{Letter: LineTo, Abs: false, Args: []float64{0, 0}},
	}
	items, _, err := Relativize(cmds)
	require.NoError(t, err)
	out := Filter(items, filterCtx(3))
	require.Len(t, out, 2)
}

func TestCloseConversionWhenReturningToSubpathStart(t *testing.T) {
	cmds := []Command{
		{Letter: MoveTo, Abs: true, Args: []float64{0, 0}},
		{Letter: LineTo, Abs: false, Args: []float64{5, 0}},
		{Letter: LineTo, Abs: false, Args: []float64{0, 5}},
		{Letter: LineTo, Abs: false, Args: []float64{-5, -5}},
		{Letter: ClosePath},
	}
	items, _, err := Relativize(cmds)
	require.NoError(t, err)
	out := Filter(items, filterCtx(3))
	// The third line returns exactly to the subpath start and is
	// immediately followed by z in the source, so it converts to z; the
	// original z is then redundant and gets dropped.
	require.Len(t, out, 4)
	assert.Equal(t, ClosePath, out[3].Letter)
}
