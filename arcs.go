package pathopt

import "math"

// tryArc implements §4.4a: when a cubic's control quadrilateral is convex
// and a circle can be fit through sampled points on the curve within
// tolerance, the cubic (or run of cubics sharing that circle) is replaced
// by an elliptical-arc command with equal radii.
//
// The seed cubic at st.cmds[st.i] anchors the fit; from there the chain
// extends backward by absorbing the single preceding emitted item if it
// fits the same circle (shifted into its own frame), and forward by
// walking subsequent c/s items for as long as each keeps fitting,
// accumulating the subtended angle to decide the large-arc flag and to
// detect a closed full circle, which is emitted as two half-arcs. On
// success it reports true and has already advanced st.i past every
// source item the chain consumed (the caller must not advance further).
func (st *filterState) tryArc(item Item) bool {
	arcCfg := *st.ctx.MakeArcs

	c1, c2, end, ok := st.expandSeedLocal(item, st.last())
	if !ok {
		return false
	}
	if !isConvexQuad(Point{}, c1, c2, end) {
		st.ctx.trace("declining arc: control quad not convex")
		return false
	}
	center, radius, ok := fitCircle(c1, c2, end, st.ctx, arcCfg)
	if !ok {
		st.ctx.trace("declining arc: circle fit failed")
		return false
	}
	tolFloor := math.Min(arcCfg.Threshold*st.ctx.Epsilon, arcCfg.Tolerance*radius/100)
	if !fitsArc(c1, c2, end, center, radius, tolFloor) {
		st.ctx.trace("declining arc: sagitta exceeds tolerance")
		return false
	}

	// Length comparisons measure arguments as they serialize after
	// rounding, the form both the cubics and the arc end up in.
	argLen := func(args []float64, isArcFlag func(int) bool) int {
		if st.ctx.RoundingEnabled {
			rounded := make([]float64, len(args))
			for k, v := range args {
				rounded[k] = smartRound(v, st.ctx.Precision, st.ctx.Epsilon)
			}
			args = rounded
		}
		return itemArgLen(args, st.ctx.Config, isArcFlag)
	}

	centerAbs := item.Base.Add(center)
	chainBase := item.Base
	chainEnd := item.Coords
	firstC1, firstEnd := c1, end
	totalAngle := math.Abs(subtendedAngle(center, Point{}, end))
	consumedArgLen := argLen(item.Args, isArcFlagFor(item.Letter))
	var chainSData []float64 = append([]float64(nil), c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)

	// Backward extension (§4.4a "try to extend the arc backward"): a
	// single absorption of the immediately preceding emitted item, which
	// may itself be a raw cubic/smooth-cubic or a previously-detected arc
	// that retained its seed cubic's sdata. The pop from st.out is
	// deferred until the length-gate below actually commits the arc, so
	// a decline further down doesn't strand the absorbed item.
	backwardAbsorbed := false
	if prev := st.last(); prev != nil {
		if c1p, c2p, endp, basep, ok := st.expandPrevLocal(prev); ok {
			centerLocalPrev := centerAbs.Sub(basep)
			if isConvexQuad(Point{}, c1p, c2p, endp) && fitsArc(c1p, c2p, endp, centerLocalPrev, radius, tolFloor) {
				totalAngle += math.Abs(subtendedAngle(centerLocalPrev, Point{}, endp))
				chainBase = basep
				firstC1, firstEnd = c1p, endp
				consumedArgLen += argLen(prev.Args, isArcFlagFor(prev.Letter))
				chainSData = nil // the merged arc no longer has a single seed cubic to retain
				backwardAbsorbed = true
			}
		}
	}

	// Forward extension (§4.4a "try to extend forward"): walk subsequent
	// c/s source items while each keeps fitting the same circle.
	prevC2Abs, prevEndAbs := item.Base.Add(c2), item.Coords
	consumedForward := 0
	j := st.i + 1
	fullCircle := false
	for j < len(st.cmds) {
		next := st.cmds[j]
		if next.Letter != CubicTo && next.Letter != SmoothCubic {
			break
		}
		var nc1, nc2, nend Point
		if next.Letter == CubicTo {
			nc1 = Point{next.Args[0], next.Args[1]}
			nc2 = Point{next.Args[2], next.Args[3]}
			nend = Point{next.Args[4], next.Args[5]}
		} else {
			nc2 = Point{next.Args[0], next.Args[1]}
			nend = Point{next.Args[2], next.Args[3]}
			nc1 = reflect(prevC2Abs, next.Base).Sub(next.Base)
		}
		centerLocalNext := centerAbs.Sub(next.Base)
		if !isConvexQuad(Point{}, nc1, nc2, nend) || !fitsArc(nc1, nc2, nend, centerLocalNext, radius, tolFloor) {
			break
		}
		angleN := math.Abs(subtendedAngle(centerLocalNext, Point{}, nend))
		if totalAngle+angleN > 2*math.Pi+1e-3 {
			st.ctx.trace("declining forward absorption: total angle would overshoot 2pi")
			break
		}
		totalAngle += angleN
		consumedArgLen += argLen(next.Args, nil)
		consumedForward++
		chainSData = nil // a multi-segment chain's sdata can't be expressed relative to one base
		prevC2Abs, prevEndAbs = next.Base.Add(nc2), next.Coords
		j++
		if totalAngle >= 2*math.Pi-1e-3 {
			fullCircle = true
			break
		}
	}
	chainEnd = prevEndAbs

	sweep := sweepSign(firstC1, firstEnd) > 0
	large := totalAngle > math.Pi+1e-3

	var replacement []Item
	if fullCircle {
		mid := reflect(chainBase, centerAbs)
		arcArgs1 := []float64{radius, radius, 0, 0, boolFlag(sweep), mid.X - chainBase.X, mid.Y - chainBase.Y}
		arcArgs2 := []float64{radius, radius, 0, 0, boolFlag(sweep), chainEnd.X - mid.X, chainEnd.Y - mid.Y}
		arcLen := argLen(arcArgs1, arcFlagPredicate) + argLen(arcArgs2, arcFlagPredicate)
		if arcLen >= consumedArgLen {
			st.ctx.trace("declining arc: full-circle split has no length save")
			return false
		}
		if backwardAbsorbed {
			st.out = st.out[:len(st.out)-1]
		}
		replacement = []Item{
			{Command: Command{Letter: ArcTo, Abs: false, Args: arcArgs1}, Base: chainBase, Coords: mid},
			{Command: Command{Letter: ArcTo, Abs: false, Args: arcArgs2}, Base: mid, Coords: chainEnd},
		}
	} else {
		rel := chainEnd.Sub(chainBase)
		arcArgs := []float64{radius, radius, 0, boolFlag(large), boolFlag(sweep), rel.X, rel.Y}
		arcLen := argLen(arcArgs, arcFlagPredicate)
		if arcLen >= consumedArgLen {
			st.ctx.trace("declining arc: no length save")
			return false
		}
		if backwardAbsorbed {
			st.out = st.out[:len(st.out)-1]
		}
		replacement = []Item{
			{Command: Command{Letter: ArcTo, Abs: false, Args: arcArgs}, Base: chainBase, Coords: chainEnd, SData: chainSData},
		}
	}

	st.i += 1 + consumedForward
	for _, r := range replacement {
		st.processPlainItem(r)
	}
	return true
}

// expandSeedLocal expands item (the seed cubic or smooth-cubic at
// st.cmds[st.i]) into its local control points relative to item.Base,
// reflecting the previously emitted item's last control point through
// item.Base when item is an `s`.
func (st *filterState) expandSeedLocal(item Item, prevOut *Item) (c1, c2, end Point, ok bool) {
	switch item.Letter {
	case CubicTo:
		return Point{item.Args[0], item.Args[1]}, Point{item.Args[2], item.Args[3]}, Point{item.Args[4], item.Args[5]}, true
	case SmoothCubic:
		c2 = Point{item.Args[0], item.Args[1]}
		end = Point{item.Args[2], item.Args[3]}
		if prevOut != nil && (prevOut.Letter == CubicTo || prevOut.Letter == SmoothCubic) {
			var prevC2Abs Point
			if prevOut.Letter == CubicTo {
				prevC2Abs = prevOut.Base.Add(Point{prevOut.Args[2], prevOut.Args[3]})
			} else {
				prevC2Abs = prevOut.Base.Add(Point{prevOut.Args[0], prevOut.Args[1]})
			}
			c1 = reflect(prevC2Abs, item.Base).Sub(item.Base)
		}
		return c1, c2, end, true
	default:
		return Point{}, Point{}, Point{}, false
	}
}

// expandPrevLocal recovers prev's local control points relative to
// prev.Base, for use as the backward-extension candidate in tryArc.
// It handles a raw CubicTo, a SmoothCubic (reflecting through the item
// before it in st.out), and a previously-detected ArcTo that retained
// its seed cubic's sdata (§4.4a "a previously-detected arc with
// preserved sdata fitting the circle").
func (st *filterState) expandPrevLocal(prev *Item) (c1, c2, end, base Point, ok bool) {
	switch prev.Letter {
	case CubicTo:
		return Point{prev.Args[0], prev.Args[1]}, Point{prev.Args[2], prev.Args[3]}, Point{prev.Args[4], prev.Args[5]}, prev.Base, true
	case SmoothCubic:
		c2 = Point{prev.Args[0], prev.Args[1]}
		end = Point{prev.Args[2], prev.Args[3]}
		if len(st.out) >= 2 {
			beforePrev := &st.out[len(st.out)-2]
			if beforePrev.Letter == CubicTo || beforePrev.Letter == SmoothCubic {
				var beforeC2Abs Point
				if beforePrev.Letter == CubicTo {
					beforeC2Abs = beforePrev.Base.Add(Point{beforePrev.Args[2], beforePrev.Args[3]})
				} else {
					beforeC2Abs = beforePrev.Base.Add(Point{beforePrev.Args[0], beforePrev.Args[1]})
				}
				c1 = reflect(beforeC2Abs, prev.Base).Sub(prev.Base)
			}
		}
		return c1, c2, end, prev.Base, true
	case ArcTo:
		if len(prev.SData) != 6 {
			return Point{}, Point{}, Point{}, Point{}, false
		}
		return Point{prev.SData[0], prev.SData[1]}, Point{prev.SData[2], prev.SData[3]}, Point{prev.SData[4], prev.SData[5]}, prev.Base, true
	default:
		return Point{}, Point{}, Point{}, Point{}, false
	}
}

func boolFlag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// smartArcRadiusRound implements §4.4c: it tries successively coarser
// precisions for a circular arc's radius, keeping the coarsest one whose
// sagitta still lands within epsilon of the unrounded radius's sagitta.
func (st *filterState) smartArcRadiusRound(item *Item) {
	rx, ry := item.Args[0], item.Args[1]
	if rx != ry || rx == 0 {
		return
	}
	end := Point{item.Args[5], item.Args[6]}
	origSag, ok := sagitta(rx, end.X, end.Y)
	if !ok {
		return
	}
	for p := 0; p < st.ctx.Precision; p++ {
		candidate := roundHalfAwayFromZero(rx, p)
		if candidate == 0 {
			continue
		}
		sag, ok := sagitta(candidate, end.X, end.Y)
		if !ok || absf(sag-origSag) >= st.ctx.Epsilon {
			continue
		}
		item.Args[0], item.Args[1] = candidate, candidate
		return
	}
}
