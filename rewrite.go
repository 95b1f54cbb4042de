package pathopt

// tryCurveToLine implements §4.4d: rewrites a cubic/quadratic/arc whose
// control data is geometrically straight into a plain lineto. When the
// current item's follower is a smooth-shorthand that depended on the
// control data we're about to discard, that follower is expanded to its
// longhand form first so its geometry survives the rewrite.
func (st *filterState) tryCurveToLine(item *Item) {
	switch item.Letter {
	case CubicTo:
		c1 := Point{item.Args[0], item.Args[1]}
		c2 := Point{item.Args[2], item.Args[3]}
		end := Point{item.Args[4], item.Args[5]}
		d, ok := straightnessDistance(c1, c2, end)
		if !ok || d >= st.ctx.Epsilon {
			return
		}
		st.expandFollowerSmoothCubic(c2, end)
		item.Letter = LineTo
		item.Args = []float64{end.X, end.Y}
	case QuadTo:
		c1 := Point{item.Args[0], item.Args[1]}
		end := Point{item.Args[2], item.Args[3]}
		if pointLineDistance(c1, end) >= st.ctx.Epsilon {
			return
		}
		st.expandFollowerSmoothQuad(c1, end)
		item.Letter = LineTo
		item.Args = []float64{end.X, end.Y}
	case SmoothQuad:
		if st.prevQControlSet {
			return
		}
		item.Letter = LineTo
		// Args already hold just (x, y).
	case ArcTo:
		rx, ry := item.Args[0], item.Args[1]
		end := Point{item.Args[5], item.Args[6]}
		straight := rx == 0 || ry == 0
		if !straight {
			if sag, ok := sagitta(rx, end.X, end.Y); ok && sag < st.ctx.Epsilon {
				straight = true
			}
		}
		if !straight {
			return
		}
		item.Letter = LineTo
		item.Args = []float64{end.X, end.Y}
	}
}

// expandFollowerSmoothCubic expands the next source item, if it's an
// `s`, into longhand `c` using this item's (pre-rewrite) second control
// point and endpoint, per §4.4d/e.
func (st *filterState) expandFollowerSmoothCubic(prevC2, prevEnd Point) {
	if st.i+1 >= len(st.cmds) {
		return
	}
	next := &st.cmds[st.i+1]
	if next.Letter != SmoothCubic {
		return
	}
	c1 := reflect(prevC2, prevEnd)
	next.Letter = CubicTo
	next.Args = []float64{c1.X, c1.Y, next.Args[0], next.Args[1], next.Args[2], next.Args[3]}
}

// expandFollowerSmoothQuad expands the next source item, if it's a `t`,
// into longhand `q` using this item's (pre-rewrite) control point and
// endpoint.
func (st *filterState) expandFollowerSmoothQuad(prevControl, prevEnd Point) {
	if st.i+1 >= len(st.cmds) {
		return
	}
	next := &st.cmds[st.i+1]
	if next.Letter != SmoothQuad {
		return
	}
	c1 := reflect(prevControl, prevEnd)
	next.Letter = QuadTo
	next.Args = []float64{c1.X, c1.Y, next.Args[0], next.Args[1]}
}

// tryCubicToQuad implements §4.4e: a cubic degenerates to a quadratic
// when both control-point inferences for the implied quadratic control
// point (Q = (3*C1-P0)/2 = (3*C2-P1)/2) agree within 2*epsilon, and the
// resulting q serializes strictly shorter than the c it would replace.
func (st *filterState) tryCubicToQuad(item *Item) {
	if item.Letter != CubicTo {
		return
	}
	c1 := Point{item.Args[0], item.Args[1]}
	c2 := Point{item.Args[2], item.Args[3]}
	end := Point{item.Args[4], item.Args[5]}

	qFromC1 := Point{1.5 * c1.X, 1.5 * c1.Y}
	qFromC2 := Point{1.5*c2.X - 0.5*end.X, 1.5*c2.Y - 0.5*end.Y}
	if distance(qFromC1, qFromC2) >= 2*st.ctx.Epsilon {
		return
	}
	q := Point{(qFromC1.X + qFromC2.X) / 2, (qFromC1.Y + qFromC2.Y) / 2}

	cLen := itemArgLen(item.Args, st.ctx.Config, nil)
	qArgs := []float64{q.X, q.Y, end.X, end.Y}
	qLen := itemArgLen(qArgs, st.ctx.Config, nil)
	if qLen >= cLen {
		st.trace("declining cubic-to-quad: no length save")
		return
	}

	st.expandFollowerSmoothCubic(c2, end)
	item.Letter = QuadTo
	item.Args = qArgs
}

// itemArgLen is the serialized length of an argument list, used by the
// length-gated rewrites (§4.4e, arc detection).
func itemArgLen(args []float64, cfg Config, isArcFlag func(int) bool) int {
	return len(formatArgs(args, cfg, isArcFlag))
}

// tryLineShorthand implements §4.4f: l dx 0 -> h dx; l 0 dy -> v dy.
func tryLineShorthand(item *Item) {
	if item.Letter != LineTo {
		return
	}
	dx, dy := item.Args[0], item.Args[1]
	switch {
	case dy == 0:
		item.Letter = HLineTo
		item.Args = []float64{dx}
	case dx == 0:
		item.Letter = VLineTo
		item.Args = []float64{dy}
	}
}

// tryCollapse implements §4.4g: consecutive m/h/v of the same case and
// (for h/v) the same delta sign merge into the predecessor. Reports
// whether item was merged (and should therefore be dropped by the
// caller). Declines entirely when a marker-mid could render on this
// element, since collapsing removes a vertex the marker would sit on.
func (st *filterState) tryCollapse(item *Item) bool {
	if st.ctx.hasMidMarker {
		return false
	}
	prev := st.last()
	if prev == nil || prev.Letter != item.Letter || prev.Abs != item.Abs {
		return false
	}
	switch item.Letter {
	case MoveTo:
		prev.Args = append(prev.Args, item.Args...)
	case HLineTo, VLineTo:
		if sign(prev.Args[len(prev.Args)-1]) != sign(item.Args[0]) {
			return false
		}
		prev.Args[len(prev.Args)-1] += item.Args[0]
	default:
		return false
	}
	prev.Coords = item.Coords
	return true
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// tryCloseConversion implements the non-closepath half of §4.4j: if the
// cursor has returned within epsilon of the current subpath start and
// it's safe to do so, a trailing l/h/v is replaced with z.
func (st *filterState) tryCloseConversion(item *Item) {
	switch item.Letter {
	case LineTo, HLineTo, VLineTo:
	default:
		return
	}
	if distance(item.Coords, st.pathBase) >= st.ctx.Epsilon {
		return
	}
	if !st.safeToClose() {
		return
	}
	item.Letter = ClosePath
	item.Args = nil
	item.Coords = st.pathBase
}
