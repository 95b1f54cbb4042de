package pathopt

// ArcConfig tunes arc detection (§4.4a, §6 makeArcs).
type ArcConfig struct {
	// Threshold scales epsilon for the tolerance floor used by the
	// circle fitter and its verification samples.
	Threshold float64
	// Tolerance is a percentage of the fitted radius, the other half of
	// the fit-test tolerance floor (min(Threshold*eps, Tolerance*r/100)).
	Tolerance float64
}

// DefaultArcConfig is the makeArcs default from §6: {threshold: 2.5,
// tolerance: 0.5}.
func DefaultArcConfig() ArcConfig {
	return ArcConfig{Threshold: 2.5, Tolerance: 0.5}
}

// Config holds every optional knob from §6, with the bracketed defaults
// applied by DefaultConfig. It follows the teacher's struct-of-fields
// style (Path, Group, Svg in vasalvit-svg) rather than a functional-options
// builder — every field is exported and directly settable.
type Config struct {
	ApplyTransforms        bool
	ApplyTransformsStroked bool

	// MakeArcs enables arc detection. A nil pointer disables it
	// (equivalent to the spec's `makeArcs: false`); a non-nil pointer
	// supplies the threshold/tolerance pair.
	MakeArcs *ArcConfig

	StraightCurves        bool
	ConvertToQ            bool
	LineShorthands        bool
	ConvertToZ            bool
	CurveSmoothShorthands bool
	SmartArcRounding      bool
	RemoveUseless         bool
	CollapseRepeated      bool
	UtilizeAbsolute       bool

	// FloatPrecision is the number of decimal places kept by the number
	// formatter. A nil pointer disables rounding (`floatPrecision:
	// false`), in which case Context.Epsilon is still 0.01 per §4.1.
	FloatPrecision *int

	TransformPrecision int

	LeadingZero        bool
	NegativeExtraSpace bool
	NoSpaceAfterFlags  bool
	ForceAbsolutePath  bool

	// Flattener, if non-nil and ApplyTransforms is true, is run over cmds
	// before relative-ization (§6 applyTransforms/applyTransformsStroked).
	Flattener TransformFlattener
	// Style, if non-nil, resolves the computed-style queries the filter
	// pipeline and serializer need (§4.4j close safety, §4.6 markers-only
	// case).
	Style StyleLookup
	// Stroked reports whether the element this path belongs to is
	// stroked, gating ApplyTransformsStroked.
	Stroked bool
}

// DefaultConfig returns the bracketed defaults from §6.
func DefaultConfig() Config {
	precision := 3
	arcs := DefaultArcConfig()
	return Config{
		ApplyTransforms:        true,
		ApplyTransformsStroked: true,
		MakeArcs:               &arcs,
		StraightCurves:         true,
		ConvertToQ:             true,
		LineShorthands:         true,
		ConvertToZ:             true,
		CurveSmoothShorthands:  true,
		SmartArcRounding:       true,
		RemoveUseless:          true,
		CollapseRepeated:       true,
		UtilizeAbsolute:        true,
		FloatPrecision:         &precision,
		TransformPrecision:     5,
		LeadingZero:            true,
		NegativeExtraSpace:     true,
		NoSpaceAfterFlags:      false,
		ForceAbsolutePath:      false,
	}
}
