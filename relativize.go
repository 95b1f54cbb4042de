package pathopt

import "fmt"

// Relativize runs the pass described in §4.3: it walks cmds once,
// maintaining a cursor and the current subpath's start point, converts
// every absolute command to its relative form (except the path's very
// first M, which stays absolute), and annotates each resulting Item with
// its absolute Base and Coords.
//
// hadDrawingCommand reports whether cmds contained at least one
// non-MoveTo, non-ClosePath command — the bookkeeping
// SPEC_FULL.md/SUPPLEMENT-1 needs for the serializer's markers-only
// special case (§4.6), which the serializer itself can't recover once the
// filter pipeline has dropped everything but moves.
func Relativize(cmds []Command) (items []Item, hadDrawingCommand bool, err error) {
	items = make([]Item, 0, len(cmds))
	cursor := Point{}
	start := Point{}

	for idx, cmd := range cmds {
		if err := cmd.checkArity(); err != nil {
			return nil, false, fmt.Errorf("pathopt: command %d: %w", idx, err)
		}
		if cmd.Letter != MoveTo && cmd.Letter != ClosePath {
			hadDrawingCommand = true
		}

		base := cursor
		rel, endAbs, startsNewSubpath := relativeDelta(cmd, cursor)

		out := Command{Letter: cmd.Letter, Abs: false, Args: rel}
		if idx == 0 {
			if cmd.Letter != MoveTo {
				return nil, false, fmt.Errorf("pathopt: first command must be M, got %q", rune(cmd.Letter))
			}
			out.Abs = true
			out.Args = cmd.Args
		}

		cursor = endAbs
		if startsNewSubpath {
			start = cursor
		}
		if cmd.Letter == ClosePath {
			cursor = start
		}

		items = append(items, Item{
			Command: out,
			Base:    base,
			Coords:  cursor,
		})
	}
	return items, hadDrawingCommand, nil
}

// relativeDelta computes the relative argument tuple for cmd given the
// cursor position before it executes, the resulting absolute end
// position, and whether this command opens a new subpath (M/m).
//
// Per §4.3: for H/V subtract only the corresponding axis; for A subtract
// only from the final (x,y) pair; for M/L/T subtract from both
// coordinates; for C subtract from all three control-point pairs; for
// S/Q subtract from both control pairs.
func relativeDelta(cmd Command, cursor Point) (rel []float64, end Point, newSubpath bool) {
	args := cmd.Args
	switch cmd.Letter {
	case MoveTo:
		end = Point{args[0], args[1]}
		if !cmd.Abs {
			end = cursor.Add(end)
		}
		return []float64{end.X - cursor.X, end.Y - cursor.Y}, end, true
	case LineTo, SmoothQuad:
		end = Point{args[0], args[1]}
		if !cmd.Abs {
			end = cursor.Add(end)
		}
		return []float64{end.X - cursor.X, end.Y - cursor.Y}, end, false
	case HLineTo:
		x := args[0]
		if !cmd.Abs {
			x += cursor.X
		}
		end = Point{x, cursor.Y}
		return []float64{x - cursor.X}, end, false
	case VLineTo:
		y := args[0]
		if !cmd.Abs {
			y += cursor.Y
		}
		end = Point{cursor.X, y}
		return []float64{y - cursor.Y}, end, false
	case QuadTo, SmoothCubic:
		c1 := Point{args[0], args[1]}
		e := Point{args[2], args[3]}
		if !cmd.Abs {
			c1 = cursor.Add(c1)
			e = cursor.Add(e)
		}
		return []float64{c1.X - cursor.X, c1.Y - cursor.Y, e.X - cursor.X, e.Y - cursor.Y}, e, false
	case CubicTo:
		c1 := Point{args[0], args[1]}
		c2 := Point{args[2], args[3]}
		e := Point{args[4], args[5]}
		if !cmd.Abs {
			c1 = cursor.Add(c1)
			c2 = cursor.Add(c2)
			e = cursor.Add(e)
		}
		return []float64{
			c1.X - cursor.X, c1.Y - cursor.Y,
			c2.X - cursor.X, c2.Y - cursor.Y,
			e.X - cursor.X, e.Y - cursor.Y,
		}, e, false
	case ArcTo:
		e := Point{args[5], args[6]}
		if !cmd.Abs {
			e = cursor.Add(e)
		}
		return []float64{
			args[0], args[1], args[2], args[3], args[4],
			e.X - cursor.X, e.Y - cursor.Y,
		}, e, false
	case ClosePath:
		return nil, cursor, false
	}
	return nil, cursor, false
}
