package pathopt

// roundItem implements §4.4b: it biases each coordinate-bearing argument
// by base[axis]-relSubpoint[axis] before rounding, so the running sum of
// rounded relative deltas matches the rounded absolute position (the
// `l .25 3 .25 2 ...` -> `l .3 3 .2 2 ...` example in §4.4b). It updates
// relSubpoint (and, for a MoveTo, pathBase) and rewrites item.Base/Coords
// to the now-rounded cursor positions so invariant "base[i]=coords[i-1]"
// keeps holding downstream.
func (st *filterState) roundItem(item *Item) {
	baseRounded := st.relSubpoint
	bias := item.Base.Sub(st.relSubpoint)
	item.Base = baseRounded

	p, eps, enabled := st.ctx.Precision, st.ctx.Epsilon, st.ctx.RoundingEnabled
	round := func(v float64) float64 {
		if !enabled {
			return v
		}
		return smartRound(v, p, eps)
	}

	switch item.Letter {
	case MoveTo:
		x, y := round(item.Args[0]+bias.X), round(item.Args[1]+bias.Y)
		item.Args[0], item.Args[1] = x, y
		if item.Abs {
			st.relSubpoint = Point{x, y}
		} else {
			st.relSubpoint = Point{round(st.relSubpoint.X + x), round(st.relSubpoint.Y + y)}
		}
		st.pathBase = st.relSubpoint
	case LineTo, SmoothQuad:
		x, y := round(item.Args[0]+bias.X), round(item.Args[1]+bias.Y)
		item.Args[0], item.Args[1] = x, y
		st.relSubpoint = Point{round(st.relSubpoint.X + x), round(st.relSubpoint.Y + y)}
	case HLineTo:
		x := round(item.Args[0] + bias.X)
		item.Args[0] = x
		st.relSubpoint.X = round(st.relSubpoint.X + x)
	case VLineTo:
		y := round(item.Args[0] + bias.Y)
		item.Args[0] = y
		st.relSubpoint.Y = round(st.relSubpoint.Y + y)
	case QuadTo, SmoothCubic:
		item.Args[0] = round(item.Args[0] + bias.X)
		item.Args[1] = round(item.Args[1] + bias.Y)
		item.Args[2] = round(item.Args[2] + bias.X)
		item.Args[3] = round(item.Args[3] + bias.Y)
		st.relSubpoint = Point{round(st.relSubpoint.X + item.Args[2]), round(st.relSubpoint.Y + item.Args[3])}
	case CubicTo:
		for k := 0; k < 3; k++ {
			item.Args[k*2] = round(item.Args[k*2] + bias.X)
			item.Args[k*2+1] = round(item.Args[k*2+1] + bias.Y)
		}
		st.relSubpoint = Point{round(st.relSubpoint.X + item.Args[4]), round(st.relSubpoint.Y + item.Args[5])}
	case ArcTo:
		item.Args[0] = round(item.Args[0])
		item.Args[1] = round(item.Args[1])
		item.Args[2] = round(item.Args[2])
		item.Args[5] = round(item.Args[5] + bias.X)
		item.Args[6] = round(item.Args[6] + bias.Y)
		st.relSubpoint = Point{round(st.relSubpoint.X + item.Args[5]), round(st.relSubpoint.Y + item.Args[6])}
	}
	item.Coords = st.relSubpoint
}

// handleClose implements the closepath half of §4.4j: reset relSubpoint
// to pathBase, decline the item entirely if it is redundant (the
// preceding item is already a closepath, or the cursor already sits
// within epsilon/10 of the subpath start and it is safe to close).
func (st *filterState) handleClose(item Item) {
	prev := st.last()
	if prev != nil && prev.Letter == ClosePath {
		st.trace("declining: redundant z after z")
		st.relSubpoint = st.pathBase
		return
	}
	if prev != nil && distance(st.relSubpoint, st.pathBase) < st.ctx.Epsilon/10 && st.safeToClose() {
		st.trace("declining: redundant z on zero-length subpath")
		st.relSubpoint = st.pathBase
		return
	}
	item.Base = st.relSubpoint
	item.Coords = st.pathBase
	st.relSubpoint = st.pathBase
	st.out = append(st.out, item)
	st.updateQControl(item)
}

// safeToClose reports whether it's safe to replace a trailing segment
// with z (§4.4j): either the shape uses round caps/joins, or the next
// source command is already a closepath. The cap/join half comes from
// ctx.safeLineCapsAndJoins, which Context.WithStyle resolves from the
// element's style; without a style it is false, and only the
// next-command-is-closepath branch applies.
func (st *filterState) safeToClose() bool {
	if st.i+1 < len(st.cmds) && st.cmds[st.i+1].Letter == ClosePath {
		return true
	}
	return st.ctx.safeLineCapsAndJoins
}
