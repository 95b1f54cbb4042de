package pathopt

import "strings"

// Serialize implements §4.6: it renders the chosen command sequence back
// into a `d` attribute string, then applies the markers-only special
// case: if every remaining command is a moveto, the original path had at
// least one drawing command (hadDrawingCommand), and style reports a
// marker-start or marker-end, a trailing z is appended so the markers
// that depend on a closed subpath still render.
func Serialize(cmds []Command, cfg Config, hadDrawingCommand bool, style StyleLookup) string {
	if onlyMoves(cmds) && hadDrawingCommand && hasEndpointMarkers(style) {
		cmds = append(append([]Command(nil), cmds...), Command{Letter: ClosePath})
	}

	var b strings.Builder
	for _, c := range cmds {
		letter := byte(c.Letter)
		if !c.Abs {
			letter = letter - 'A' + 'a'
		}
		b.WriteByte(letter)
		if c.Letter != ClosePath {
			b.WriteString(formatArgs(c.Args, cfg, isArcFlagFor(c.Letter)))
		}
	}
	return b.String()
}

func onlyMoves(cmds []Command) bool {
	for _, c := range cmds {
		if c.Letter != MoveTo {
			return false
		}
	}
	return true
}

func hasEndpointMarkers(style StyleLookup) bool {
	if style == nil {
		return false
	}
	for _, prop := range [...]string{"marker-start", "marker-end"} {
		if v, _, ok := style.Lookup(prop); ok && v != "" && v != "none" {
			return true
		}
	}
	return false
}
