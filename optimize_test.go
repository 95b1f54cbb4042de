package pathopt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimizeStringCollapsesAndShortens(t *testing.T) {
	cmds := []Command{
		{Letter: MoveTo, Abs: true, Args: []float64{0, 0}},
		{Letter: LineTo, Abs: true, Args: []float64{10, 0}},
		{Letter: LineTo, Abs: true, Args: []float64{10, 10}},
		{Letter: LineTo, Abs: true, Args: []float64{0, 10}},
		{Letter: ClosePath},
	}
	s, err := OptimizeString(cmds, DefaultConfig())
	require.NoError(t, err)
	assert.NotEmpty(t, s)
	assert.Equal(t, byte('M'), s[0])
}

func TestOptimizeRejectsBadArity(t *testing.T) {
	cmds := []Command{
		{Letter: MoveTo, Abs: true, Args: []float64{0, 0, 0}},
	}
	_, err := Optimize(cmds, DefaultConfig())
	require.Error(t, err)
}

func TestOptimizeAppliesFlattener(t *testing.T) {
	cmds := []Command{
		{Letter: MoveTo, Abs: true, Args: []float64{0, 0}},
		{Letter: LineTo, Abs: true, Args: []float64{1, 0}},
	}
	cfg := DefaultConfig()
	cfg.ApplyTransforms = true
	cfg.Flattener = translateFlattener{dx: 5, dy: 5}
	out, err := Optimize(cmds, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, MoveTo, out[0].Letter)
}

type translateFlattener struct{ dx, dy float64 }

func (f translateFlattener) Flatten(cmds []Command, stroked bool) ([]Command, error) {
	out := make([]Command, len(cmds))
	for i, c := range cmds {
		out[i] = c
		if c.Letter == ClosePath {
			continue
		}
		out[i].Abs = true
		args := append([]float64(nil), c.Args...)
		for _, pr := range coordinatePairs(c.Letter) {
			args[pr[0]] += f.dx
			args[pr[1]] += f.dy
		}
		out[i].Args = args
	}
	return out, nil
}
