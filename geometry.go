package pathopt

import (
	"math"

	curvelib "honnef.co/go/curve"
)

// toCurvePoint/fromCurvePoint bridge our value-type Point to
// honnef.co/go/curve's Point, so the geometry primitives in this file can
// lean on a real, pack-grounded vector-math dependency instead of
// reimplementing (x, y) arithmetic (see DESIGN.md, DOMAIN-1).
func toCurvePoint(p Point) curvelib.Point   { return curvelib.Pt(p.X, p.Y) }
func fromCurvePoint(p curvelib.Point) Point { return Point{p.X, p.Y} }

// distance is the Euclidean distance between two points (§4.2).
func distance(a, b Point) float64 {
	return toCurvePoint(a).Distance(toCurvePoint(b))
}

// reflect reflects p across center: the point c such that center is the
// midpoint of p and c (§4.4h "reflection of prev's ... control point
// through prev's endpoint").
func reflect(p, center Point) Point {
	cp := toCurvePoint(center)
	delta := cp.Sub(toCurvePoint(p))
	return fromCurvePoint(cp.Translate(delta))
}

// cubicEval evaluates the cubic Bézier with control points p0..p3 at
// parameter t, using the standard Bernstein form (§4.2). p0 is always
// (0,0) for the relative-coordinate cubics this pipeline works with, but
// the function accepts an explicit p0 so it composes with already
// absolute-positioned control points too.
func cubicEval(p0, p1, p2, p3 Point, t float64) Point {
	cb := curvelib.CubicBez{
		P0: toCurvePoint(p0),
		P1: toCurvePoint(p1),
		P2: toCurvePoint(p2),
		P3: toCurvePoint(p3),
	}
	return fromCurvePoint(cb.Eval(t))
}

// lineIntersection solves the 2x2 system for the intersection of segment
// p0-p1 with segment p2-p3 (§4.2). ok is false if the lines are parallel
// (zero determinant) or either resulting coordinate is non-finite.
func lineIntersection(p0, p1, p2, p3 Point) (Point, bool) {
	l1 := curvelib.Line{P0: toCurvePoint(p0), P1: toCurvePoint(p1)}
	l2 := curvelib.Line{P0: toCurvePoint(p2), P1: toCurvePoint(p3)}
	pt, ok := l1.CrossingPoint(l2)
	if !ok {
		return Point{}, false
	}
	out := fromCurvePoint(pt)
	if !finitePoint(out) {
		return Point{}, false
	}
	return out, true
}

func finitePoint(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// sagitta computes the sagitta (§GLOSSARY) of a circular arc with radius
// r spanning endpoint delta (dx, dy), per §4.2. It is defined only for a
// chord no longer than the diameter; ok is false otherwise.
func sagitta(r, dx, dy float64) (float64, bool) {
	chord := math.Hypot(dx, dy)
	if chord > 2*r {
		return 0, false
	}
	return r - math.Sqrt(r*r-chord*chord/4), true
}

// isConvexQuad reports whether the four points (in order) form a convex
// quadrilateral whose diagonals intersect strictly inside it — the
// necessary condition for arc approximation (§GLOSSARY "Convex cubic").
func isConvexQuad(p0, p1, p2, p3 Point) bool {
	_, ok := lineIntersection(p0, p2, p1, p3)
	return ok && segmentsProperlyCross(p0, p2, p1, p3)
}

// segmentsProperlyCross reports whether segment ab crosses segment cd at
// a point strictly between both pairs of endpoints.
func segmentsProperlyCross(a, b, c, d Point) bool {
	d1 := cross(sub(d, c), sub(a, c))
	d2 := cross(sub(d, c), sub(b, c))
	d3 := cross(sub(b, a), sub(c, a))
	d4 := cross(sub(b, a), sub(d, a))
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

func sub(a, b Point) Point     { return Point{a.X - b.X, a.Y - b.Y} }
func cross(a, b Point) float64 { return a.X*b.Y - a.Y*b.X }

// straightnessDistance returns the largest perpendicular distance from
// either control point (c1, c2) to the line through the origin and the
// cubic's endpoint end (§4.2 "Straightness test"). The cubic is assumed
// to start at the origin (relative coordinates), as every cubic this
// pipeline tests has already been re-based that way.
func straightnessDistance(c1, c2, end Point) (float64, bool) {
	if end.X == 0 && end.Y == 0 {
		return 0, false
	}
	return math.Max(pointLineDistance(c1, end), pointLineDistance(c2, end)), true
}

// pointLineDistance returns the perpendicular distance from p to the
// line through the origin and end.
func pointLineDistance(p, end Point) float64 {
	denom := math.Hypot(end.X, end.Y)
	if denom == 0 {
		return math.Hypot(p.X, p.Y)
	}
	return math.Abs(p.X*end.Y-p.Y*end.X) / denom
}

// fitCircle attempts to fit a circle through a cubic's implied arc: it
// samples the cubic (relative to the origin) at t=1/2, builds the
// perpendicular bisectors of the chord from the origin to the midpoint
// and from the midpoint to the endpoint, and intersects them for a
// candidate center (§4.2 "Circle fit"). It rejects the fit if the
// verification samples at t=1/4 and t=3/4 don't lie within tolerance of
// the fitted radius, or if the radius is unreasonably large.
func fitCircle(c1, c2, end Point, ctx *Context, arcCfg ArcConfig) (center Point, radius float64, ok bool) {
	mid := cubicEval(Point{}, c1, c2, end, 0.5)

	// Perpendicular bisector of origin->mid and mid->end, expressed as
	// two points each so we can reuse lineIntersection.
	b1a, b1b := perpendicularBisector(Point{}, mid)
	b2a, b2b := perpendicularBisector(mid, end)

	center, ok = lineIntersection(b1a, b1b, b2a, b2b)
	if !ok {
		return Point{}, 0, false
	}
	radius = distance(Point{}, center)
	if radius >= 1e15 || math.IsNaN(radius) {
		return Point{}, 0, false
	}

	tolFloor := math.Min(arcCfg.Threshold*ctx.Epsilon, arcCfg.Tolerance*radius/100)
	for _, t := range []float64{0.25, 0.75} {
		sample := cubicEval(Point{}, c1, c2, end, t)
		if math.Abs(distance(sample, center)-radius) > tolFloor {
			return Point{}, 0, false
		}
	}
	return center, radius, true
}

// perpendicularBisector returns two points that lie on the perpendicular
// bisector of segment a-b, suitable as input to lineIntersection.
func perpendicularBisector(a, b Point) (Point, Point) {
	mid := Point{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
	dir := Point{b.Y - a.Y, -(b.X - a.X)} // rotate (b-a) by 90 degrees
	return mid, Point{mid.X + dir.X, mid.Y + dir.Y}
}

// fitsArc checks a cubic's five canonical samples (t = 0, 1/4, 1/2, 3/4,
// 1) against a circle of the given center/radius, per §4.2 "Arc fit".
func fitsArc(c1, c2, end, center Point, radius float64, tolFloor float64) bool {
	for _, t := range []float64{0, 0.25, 0.5, 0.75, 1} {
		sample := cubicEval(Point{}, c1, c2, end, t)
		if math.Abs(distance(sample, center)-radius) > tolFloor {
			return false
		}
	}
	return true
}

// subtendedAngle returns the signed angle at center swept from start to
// end, normalized to (-pi, pi]. A single cubic's own endpoints are never
// more than a half turn apart around its fitted circle, so this range
// always holds the true (shortest) sweep rather than the reflex
// complement; callers chaining several segments around the same circle
// (§4.4a) sum the absolute value of each segment's own call, since the
// sign only tells the two endpoints' rotational order, not how far a
// multi-segment chain has traveled in total.
func subtendedAngle(center, start, end Point) float64 {
	a1 := math.Atan2(start.Y-center.Y, start.X-center.X)
	a2 := math.Atan2(end.Y-center.Y, end.X-center.X)
	delta := a2 - a1
	for delta <= -math.Pi {
		delta += 2 * math.Pi
	}
	for delta > math.Pi {
		delta -= 2 * math.Pi
	}
	return delta
}

// sweepSign returns the sign of the cross-product of the endpoint with
// the first control vector, used to pick the arc sweep flag (§4.4a): a
// positive sign means the control point sits on the side of the chord
// that corresponds to sweep-flag 1 in the endpoint-to-center arc
// parameterization.
func sweepSign(c1, end Point) float64 {
	return cross(end, c1)
}
