package pathopt

import (
	"log"
	"math"
)

// Context is the explicit, immutable per-element state threaded through
// every geometry and formatting call (§5, §9 "Design Notes: global
// rounding state... should be replaced with an explicit immutable
// context"). A fresh Context is built once per element by NewContext;
// nothing in this package keeps rounding state in a package-level
// variable.
type Context struct {
	Config

	// Precision is the resolved decimal-place count. It mirrors
	// Config.FloatPrecision when rounding is enabled and is left at its
	// zero value (never consulted) otherwise.
	Precision int
	// RoundingEnabled is false when Config.FloatPrecision is nil.
	RoundingEnabled bool
	// Epsilon is the tolerance under which two coordinates are
	// considered equal (§4.1 "Error constant").
	Epsilon float64

	// Logger, if non-nil, receives one line per declined rewrite (arc
	// fit failure, length regression, tolerance miss) at trace
	// granularity. Nil by default; the pipeline never requires it.
	Logger *log.Logger

	// safeLineCapsAndJoins mirrors the resolved stroke-linecap/
	// stroke-linejoin safety check from ResolveCloseSafety (§4.4j,
	// Open Question ii): true when a trailing l/h/v may be collapsed to
	// z even without a following closepath, because round caps and
	// joins make the visual difference between an explicit segment and
	// an implicit close invisible.
	safeLineCapsAndJoins bool

	// hasMidMarker is true when a marker-mid is resolved (or unresolvable
	// because it's dynamic) on this element, per §4.4g: merging two
	// commands into one argument list removes a vertex a mid-marker would
	// otherwise render at, so collapse must be skipped.
	hasMidMarker bool
}

// ResolveCloseSafety implements the stroke-linecap/stroke-linejoin half
// of §4.4j's close-path safety check (Open Question ii): it is safe to
// collapse a trailing segment into z, independent of what the next
// command is, only when the path is stroked with both round linecap and
// round linejoin — and only when neither value is reported dynamic. Any
// dynamic stroke property forces the pessimistic (unsafe) answer.
func ResolveCloseSafety(style StyleLookup) bool {
	if style == nil {
		return false
	}
	stroke, strokeDynamic, strokeOK := style.Lookup("stroke")
	if strokeDynamic {
		return false
	}
	if !strokeOK || stroke == "" || stroke == "none" {
		return false
	}
	cap, capDynamic, _ := style.Lookup("stroke-linecap")
	join, joinDynamic, _ := style.Lookup("stroke-linejoin")
	if capDynamic || joinDynamic {
		return false
	}
	return cap == "round" && join == "round"
}

// hasRenderedMidMarker reports whether a marker-mid could render on this
// element, treating a dynamic (animated/CSS-dependent) value as "might
// render" per the same pessimistic-default pattern ResolveCloseSafety
// uses for stroke caps and joins.
func hasRenderedMidMarker(style StyleLookup) bool {
	if style == nil {
		return false
	}
	v, dynamic, ok := style.Lookup("marker-mid")
	if dynamic {
		return true
	}
	return ok && v != "" && v != "none"
}

// WithStyle resolves the close-path safety check and marker-mid presence
// against style and returns ctx for chaining (e.g.
// pathopt.NewContext(cfg).WithStyle(s)).
func (ctx *Context) WithStyle(style StyleLookup) *Context {
	ctx.safeLineCapsAndJoins = ResolveCloseSafety(style)
	ctx.hasMidMarker = hasRenderedMidMarker(style)
	return ctx
}

// NewContext derives a Context from cfg, computing Precision/Epsilon per
// §4.1.
func NewContext(cfg Config) *Context {
	ctx := &Context{Config: cfg}
	if cfg.FloatPrecision == nil {
		ctx.RoundingEnabled = false
		ctx.Epsilon = 0.01
		return ctx
	}
	p := *cfg.FloatPrecision
	ctx.RoundingEnabled = true
	ctx.Precision = p
	if p <= 0 || p >= 20 {
		ctx.Epsilon = 1
		return ctx
	}
	ctx.Epsilon = math.Pow(10, -float64(p))
	return ctx
}

// trace logs a declined-rewrite message if a Logger is configured.
// Failure in this package is always non-fatal (§7); trace is the only
// observable trail of a decline.
func (ctx *Context) trace(format string, args ...any) {
	if ctx.Logger != nil {
		ctx.Logger.Printf(format, args...)
	}
}

// roundHalfAwayFromZero rounds v to p decimal places, rounding halfway
// cases away from zero (matching the teacher's arithmetic: stdlib
// math.Round already rounds half away from zero for the magnitude, we
// just scale around it).
func roundHalfAwayFromZero(v float64, p int) float64 {
	scale := math.Pow(10, float64(p))
	return math.Round(v*scale) / scale
}
