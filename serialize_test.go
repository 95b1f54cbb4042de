package pathopt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type staticStyle map[string]string

func (s staticStyle) Lookup(property string) (string, bool, bool) {
	v, ok := s[property]
	return v, false, ok
}

func TestSerializeBasic(t *testing.T) {
	cmds := []Command{
		{Letter: MoveTo, Abs: true, Args: []float64{0, 0}},
		{Letter: LineTo, Abs: false, Args: []float64{10, -5}},
		{Letter: ClosePath},
	}
	s := Serialize(cmds, DefaultConfig(), true, nil)
	assert.Equal(t, "M0 0l10-5z", s)
}

func TestSerializeAppendsCloseForMarkersOnlyPath(t *testing.T) {
	cmds := []Command{
		{Letter: MoveTo, Abs: true, Args: []float64{0, 0}},
	}
	style := staticStyle{"marker-end": "url(#arrow)"}
	s := Serialize(cmds, DefaultConfig(), true, style)
	assert.Equal(t, "M0 0z", s)
}

func TestSerializeSkipsCloseWithoutPriorDrawingCommand(t *testing.T) {
	cmds := []Command{
		{Letter: MoveTo, Abs: true, Args: []float64{0, 0}},
	}
	style := staticStyle{"marker-end": "url(#arrow)"}
	s := Serialize(cmds, DefaultConfig(), false, style)
	assert.Equal(t, "M0 0", s)
}
