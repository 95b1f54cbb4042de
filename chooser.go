package pathopt

// Choose implements §4.5: the second pass picks, independently for each
// item after the first, whichever of its absolute or relative argument
// encoding serializes shorter, subject to Config.UtilizeAbsolute and
// Config.ForceAbsolutePath. The first item (the path's opening M) is
// passed through unchanged.
func Choose(items []Item, ctx *Context) []Command {
	cmds := make([]Command, 0, len(items))
	for idx, item := range items {
		if idx == 0 {
			cmds = append(cmds, item.Command)
			continue
		}
		if item.Letter == ClosePath {
			cmds = append(cmds, Command{Letter: ClosePath, Abs: false})
			continue
		}

		flagPred := isArcFlagFor(item.Letter)
		relStr := formatArgs(item.Args, ctx.Config, flagPred)

		useAbs := ctx.ForceAbsolutePath
		args := item.Args
		if !useAbs && ctx.UtilizeAbsolute {
			absArgs := absoluteArgs(item)
			absStr := formatArgs(absArgs, ctx.Config, flagPred)
			// Tie-break (Open Question i): prefer the relative form on
			// equal length, since a relative delta is more likely to be
			// negative and fuse its leading minus sign with the
			// preceding command's separator.
			if len(absStr) < len(relStr) {
				useAbs, args = true, absArgs
			}
		} else if useAbs {
			args = absoluteArgs(item)
		}

		cmds = append(cmds, Command{Letter: item.Letter, Abs: useAbs, Args: args})
	}
	return cmds
}

// absoluteArgs recovers the absolute-coordinate argument tuple for item,
// adding item.Base back onto each coordinate pair its relative Args hold
// (§4.5). Non-coordinate arguments (arc radii, rotation, flags) pass
// through unchanged.
func absoluteArgs(item Item) []float64 {
	b := item.Base
	switch item.Letter {
	case MoveTo, LineTo, SmoothQuad:
		return []float64{b.X + item.Args[0], b.Y + item.Args[1]}
	case HLineTo:
		return []float64{b.X + item.Args[0]}
	case VLineTo:
		return []float64{b.Y + item.Args[0]}
	case QuadTo, SmoothCubic:
		return []float64{
			b.X + item.Args[0], b.Y + item.Args[1],
			b.X + item.Args[2], b.Y + item.Args[3],
		}
	case CubicTo:
		return []float64{
			b.X + item.Args[0], b.Y + item.Args[1],
			b.X + item.Args[2], b.Y + item.Args[3],
			b.X + item.Args[4], b.Y + item.Args[5],
		}
	case ArcTo:
		return []float64{
			item.Args[0], item.Args[1], item.Args[2], item.Args[3], item.Args[4],
			b.X + item.Args[5], b.Y + item.Args[6],
		}
	default:
		return append([]float64(nil), item.Args...)
	}
}

// isArcFlagFor returns the formatArgs flag predicate for letter, or nil
// for every letter but ArcTo.
func isArcFlagFor(letter Letter) func(int) bool {
	if letter == ArcTo {
		return arcFlagPredicate
	}
	return nil
}
