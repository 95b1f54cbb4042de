package pathopt

// filterState is the shared mutable state the filter pipeline carries
// across items, per §4.4: prev (the last kept item, here simply
// out[len(out)-1]), prevQControlPoint, relSubpoint, pathBase.
type filterState struct {
	ctx  *Context
	cmds []Item
	out  []Item
	i    int

	prevQControl    *Point
	prevQControlSet bool

	relSubpoint Point
	pathBase    Point
}

// Filter runs the single forward pass of §4.4 over the relativized items
// produced by Relativize, applying arc detection, rounding with error
// compensation, curve degree reduction, shorthand extraction, repeated-
// command collapse, zero-length elimination and closepath recognition.
func Filter(items []Item, ctx *Context) []Item {
	st := &filterState{ctx: ctx, cmds: items, out: make([]Item, 0, len(items))}
	for st.i < len(st.cmds) {
		item := st.cmds[st.i]

		if item.Letter == ClosePath {
			st.handleClose(item)
			st.i++
			continue
		}

		if ctx.MakeArcs != nil && (item.Letter == CubicTo || item.Letter == SmoothCubic) {
			if st.tryArc(item) {
				continue
			}
		}

		st.processPlainItem(item)
		st.i++
	}
	return st.out
}

// trace forwards a declined-rewrite message to the Context's Logger.
func (st *filterState) trace(format string, args ...any) {
	st.ctx.trace(format, args...)
}

func (st *filterState) last() *Item {
	if len(st.out) == 0 {
		return nil
	}
	return &st.out[len(st.out)-1]
}

// processPlainItem runs steps (b) through (k) of §4.4 for a single item
// that arc detection declined to consume.
func (st *filterState) processPlainItem(item Item) {
	st.roundItem(&item)

	if item.Letter == ArcTo && st.ctx.SmartArcRounding {
		st.smartArcRadiusRound(&item)
	}

	if st.ctx.StraightCurves {
		st.tryCurveToLine(&item)
	}
	if st.ctx.ConvertToQ {
		st.tryCubicToQuad(&item)
	}
	if st.ctx.LineShorthands {
		tryLineShorthand(&item)
	}

	if st.ctx.CollapseRepeated && st.tryCollapse(&item) {
		st.updateQControl(item)
		return
	}

	if st.ctx.CurveSmoothShorthands {
		st.trySmoothShorthand(&item)
	}

	if st.ctx.RemoveUseless && len(st.out) > 0 && isZeroItem(item) {
		st.trace("declining: dropping zero-length %q", rune(item.Letter))
		st.updateQControl(item)
		return
	}

	if st.ctx.ConvertToZ {
		st.tryCloseConversion(&item)
	}

	st.out = append(st.out, item)
	st.updateQControl(item)
}

// updateQControl implements §4.4k: after each item, set prevQControlPoint
// to the explicit (absolute) control point for q, the reflected prior
// control for t, or clear it for anything else.
func (st *filterState) updateQControl(item Item) {
	switch item.Letter {
	case QuadTo:
		c := item.Base.Add(Point{item.Args[0], item.Args[1]})
		st.prevQControl, st.prevQControlSet = &c, true
	case SmoothQuad:
		if st.prevQControlSet {
			c := reflect(*st.prevQControl, item.Base)
			st.prevQControl, st.prevQControlSet = &c, true
		} else {
			c := item.Base
			st.prevQControl, st.prevQControlSet = &c, true
		}
	default:
		st.prevQControl, st.prevQControlSet = nil, false
	}
}

func isZeroItem(item Item) bool {
	switch item.Letter {
	case ArcTo:
		return item.Coords == item.Base
	case MoveTo, ClosePath:
		return false
	default:
		for _, a := range item.Args {
			if a != 0 {
				return false
			}
		}
		return true
	}
}
