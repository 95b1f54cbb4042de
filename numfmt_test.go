package pathopt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumberLeadingZero(t *testing.T) {
	assert.Equal(t, "0", formatNumber(0, true))
	assert.Equal(t, ".5", formatNumber(0.5, true))
	assert.Equal(t, "-.5", formatNumber(-0.5, true))
	assert.Equal(t, "0.5", formatNumber(0.5, false))
	assert.Equal(t, "3", formatNumber(3, true))
	assert.Equal(t, "0", formatNumber(-0, true))
}

func TestSmartRoundPrefersShorterForm(t *testing.T) {
	// 3.0001 at p=3 rounds to 3, which already equals the p=2 form, so
	// smartRound should settle on the same value either way.
	got := smartRound(3.0001, 3, 0.001)
	assert.InDelta(t, 3, got, 1e-9)
}

func TestFormatArgsSeparatorFusesMinusSign(t *testing.T) {
	s := formatArgs([]float64{1, -2, 3}, Config{LeadingZero: true, NegativeExtraSpace: true}, nil)
	assert.Equal(t, "1-2 3", s)
}

func TestFormatArgsNegativeExtraSpaceDisabledAlwaysSeparates(t *testing.T) {
	s := formatArgs([]float64{1, -2, 3}, Config{LeadingZero: true, NegativeExtraSpace: false}, nil)
	assert.Equal(t, "1 -2 3", s)
}

func TestFormatArgsArcFlagsNoSpace(t *testing.T) {
	cfg := Config{LeadingZero: true, NoSpaceAfterFlags: true}
	s := formatArgs([]float64{5, 5, 0, 1, 0, 10, 10}, cfg, arcFlagPredicate)
	assert.Equal(t, "5 5 0 10 10 10", s)
}
