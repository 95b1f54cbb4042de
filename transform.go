package pathopt

import (
	"math"

	mt "github.com/rustyoz/Mtransform"
)

// DefaultTransformFlattener implements TransformFlattener by applying a
// single affine transform to every coordinate in cmds, grounded on
// vasalvit-svg's use of github.com/rustyoz/Mtransform to carry a path's
// accumulated group/element transform (Path.Parse, Group.Transform)
// before applying it to each point. H/V segments are expanded to L,
// since a sheared or rotated transform no longer leaves them axis
// aligned; Filter's line-shorthand rule (§4.4f) recovers H/V afterward
// for whichever ones still are.
type DefaultTransformFlattener struct {
	Transform mt.Transform
}

// NewDefaultTransformFlattener wraps t for use as a TransformFlattener.
func NewDefaultTransformFlattener(t mt.Transform) *DefaultTransformFlattener {
	return &DefaultTransformFlattener{Transform: t}
}

// Flatten implements TransformFlattener.
func (f *DefaultTransformFlattener) Flatten(cmds []Command, stroked bool) ([]Command, error) {
	out := make([]Command, 0, len(cmds))
	cursor := Point{}
	start := Point{}

	for _, c := range cmds {
		if err := c.checkArity(); err != nil {
			return nil, err
		}

		switch c.Letter {
		case ClosePath:
			out = append(out, c)
			cursor = start
			continue
		case HLineTo:
			x := c.Args[0]
			if !c.Abs {
				x += cursor.X
			}
			end := Point{x, cursor.Y}
			tx, ty := f.Transform.Apply(end.X, end.Y)
			out = append(out, Command{Letter: LineTo, Abs: true, Args: []float64{tx, ty}})
			cursor = end
			continue
		case VLineTo:
			y := c.Args[0]
			if !c.Abs {
				y += cursor.Y
			}
			end := Point{cursor.X, y}
			tx, ty := f.Transform.Apply(end.X, end.Y)
			out = append(out, Command{Letter: LineTo, Abs: true, Args: []float64{tx, ty}})
			cursor = end
			continue
		}

		pairs := coordinatePairs(c.Letter)
		absArgs := append([]float64(nil), c.Args...)
		for _, pr := range pairs {
			if !c.Abs {
				absArgs[pr[0]] += cursor.X
				absArgs[pr[1]] += cursor.Y
			}
		}

		outArgs := append([]float64(nil), absArgs...)
		for _, pr := range pairs {
			tx, ty := f.Transform.Apply(absArgs[pr[0]], absArgs[pr[1]])
			outArgs[pr[0]], outArgs[pr[1]] = tx, ty
		}
		if c.Letter == ArcTo {
			scale := f.radiusScale()
			outArgs[0] *= scale
			outArgs[1] *= scale
		}
		out = append(out, Command{Letter: c.Letter, Abs: true, Args: outArgs})

		last := pairs[len(pairs)-1]
		cursor = Point{absArgs[last[0]], absArgs[last[1]]}
		if c.Letter == MoveTo {
			start = cursor
		}
	}
	return out, nil
}

// radiusScale approximates the transform's uniform scale factor from its
// action on a unit vector. Exact for translation+uniform-scale+rotation,
// which covers every transform vasalvit-svg's group/path/circle elements
// actually produced; a sheared or non-uniformly scaled transform makes
// an ellipse's arc representation only approximate.
func (f *DefaultTransformFlattener) radiusScale() float64 {
	ox, oy := f.Transform.Apply(0, 0)
	ux, uy := f.Transform.Apply(1, 0)
	return math.Hypot(ux-ox, uy-oy)
}

// coordinatePairs lists the (x, y) argument-index pairs letter carries,
// in order, for every letter except H/V (handled separately by Flatten
// since they carry a single axis each).
func coordinatePairs(l Letter) [][2]int {
	switch l {
	case MoveTo, LineTo, SmoothQuad:
		return [][2]int{{0, 1}}
	case QuadTo, SmoothCubic:
		return [][2]int{{0, 1}, {2, 3}}
	case CubicTo:
		return [][2]int{{0, 1}, {2, 3}, {4, 5}}
	case ArcTo:
		return [][2]int{{5, 6}}
	default:
		return nil
	}
}
