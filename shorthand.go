package pathopt

// trySmoothShorthand implements §4.4h: detects when a cubic or
// quadratic's first control point is implied by reflecting the previous
// curve's last control point through its endpoint, and rewrites the
// current item to the shorthand (s/t) form.
func (st *filterState) trySmoothShorthand(item *Item) {
	prev := st.last()
	switch item.Letter {
	case CubicTo:
		curC1Abs := item.Base.Add(Point{item.Args[0], item.Args[1]})
		switch {
		case prev != nil && prev.Letter == CubicTo:
			prevC2Abs := prev.Base.Add(Point{prev.Args[2], prev.Args[3]})
			if distance(curC1Abs, reflect(prevC2Abs, prev.Coords)) >= st.ctx.Epsilon {
				return
			}
		case prev != nil && prev.Letter == SmoothCubic:
			prevC2Abs := prev.Base.Add(Point{prev.Args[0], prev.Args[1]})
			if distance(curC1Abs, reflect(prevC2Abs, prev.Coords)) >= st.ctx.Epsilon {
				return
			}
		default:
			if distance(Point{item.Args[0], item.Args[1]}, Point{}) >= st.ctx.Epsilon {
				return
			}
		}
		item.Letter = SmoothCubic
		item.Args = []float64{item.Args[2], item.Args[3], item.Args[4], item.Args[5]}
	case QuadTo:
		curControlAbs := item.Base.Add(Point{item.Args[0], item.Args[1]})
		switch {
		case prev != nil && prev.Letter == QuadTo:
			prevControlAbs := prev.Base.Add(Point{prev.Args[0], prev.Args[1]})
			if distance(curControlAbs, reflect(prevControlAbs, prev.Coords)) >= st.ctx.Epsilon {
				return
			}
		case prev != nil && prev.Letter == SmoothQuad && st.prevQControlSet:
			if distance(curControlAbs, *st.prevQControl) >= st.ctx.Epsilon {
				return
			}
		default:
			// No preceding q/t: the implied control point is
			// coincident with the current point, so the shorthand
			// only applies when this quad's own control is zero.
			if distance(Point{item.Args[0], item.Args[1]}, Point{}) >= st.ctx.Epsilon {
				return
			}
		}
		item.Letter = SmoothQuad
		item.Args = []float64{item.Args[2], item.Args[3]}
	}
}
