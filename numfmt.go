package pathopt

import (
	"strconv"
	"strings"
)

// smartRound rounds v to p decimal places, preferring the one-digit
// shorter form r_{p-1} when it falls within ctx.Epsilon of v at precision
// p+1 (§4.1 "Smart round"). p<=0 or p>=20 substitutes plain integer
// rounding.
func smartRound(v float64, p int, eps float64) float64 {
	if p <= 0 || p >= 20 {
		return roundHalfAwayFromZero(v, 0)
	}
	rp := roundHalfAwayFromZero(v, p)
	rp1 := roundHalfAwayFromZero(v, p-1)
	if roundHalfAwayFromZero(rp1-v, p+1) == 0 || absf(roundHalfAwayFromZero(rp1-v, p+1)) < eps {
		return rp1
	}
	return rp
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// formatNumber renders v as its minimal decimal string under cfg's
// leading-zero policy (§4.1 "Leading-zero policy"). Rounding, if any,
// must already have been applied by the caller (smartRound / ctx-aware
// rounding happens earlier in the pipeline so that the same rounded value
// can be reused for cursor bookkeeping).
func formatNumber(v float64, leadingZero bool) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	// Collapse "-0" (and "-0.0" etc, though FormatFloat with prec=-1
	// never emits trailing zeros) to "0".
	if s == "-0" {
		s = "0"
	}
	if !leadingZero {
		return s
	}
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if strings.HasPrefix(s, "0.") {
		s = s[1:]
	}
	if neg {
		s = "-" + s
	}
	return s
}

// formatArgs serializes a list of already-rounded coordinates with
// minimized delimiters (§4.1 "Serialization of an argument list").
// isArcFlag, if non-nil, is called with the index of the argument before
// the current one and reports whether the separator after it may be
// elided under noSpaceAfterFlags (for ArcTo, arcFlagPredicate: only
// between the large-arc flag at index 3 and the sweep flag at index 4).
//
// cfg.NegativeExtraSpace gates the minus-as-separator trick: when true
// (the default), a leading minus sign doubles as the separator; when
// false, a space is always inserted even before a negative number,
// trading one byte for compatibility with consumers that don't
// re-tokenize a glued "1-2" correctly.
func formatArgs(args []float64, cfg Config, isArcFlag func(i int) bool) string {
	var b strings.Builder
	for i, v := range args {
		s := formatNumber(v, cfg.LeadingZero)
		if i > 0 {
			needSep := true
			if cfg.NegativeExtraSpace && s != "" && s[0] == '-' {
				// A leading minus sign doubles as the separator
				// (§4.1 "Separator policy").
				needSep = false
			} else if isArcFlag != nil && isArcFlag(i-1) && cfg.NoSpaceAfterFlags {
				needSep = false
			}
			if needSep {
				b.WriteByte(' ')
			}
		}
		b.WriteString(s)
	}
	return b.String()
}

// arcFlagPredicate returns the isArcFlag predicate for an ArcTo
// command's argument layout (rx, ry, xRot, largeArc, sweep, x, y): it
// reports whether argument i is immediately followed by the sweep flag,
// the only separator-elision that's always safe to take, since both
// flags are guaranteed single digits. Eliding the separator between the
// sweep flag and x (index 4 -> 5) is unsafe: a "0" sweep flag glued to a
// multi-digit x would parse back as one ambiguous number.
func arcFlagPredicate(i int) bool {
	return i == 3
}
