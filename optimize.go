package pathopt

// Optimize runs the full pipeline — optional transform flattening,
// relative-ization, filtering, and absolute/relative choice — and
// returns the optimized command sequence without serializing it.
func Optimize(cmds []Command, cfg Config) ([]Command, error) {
	chosen, _, err := optimize(cmds, cfg)
	return chosen, err
}

// OptimizeString runs the same pipeline as Optimize and serializes the
// result to a `d` attribute string.
func OptimizeString(cmds []Command, cfg Config) (string, error) {
	chosen, hadDrawingCommand, err := optimize(cmds, cfg)
	if err != nil {
		return "", err
	}
	return Serialize(chosen, cfg, hadDrawingCommand, cfg.Style), nil
}

func optimize(cmds []Command, cfg Config) ([]Command, bool, error) {
	if cfg.ApplyTransforms && cfg.Flattener != nil {
		stroked := cfg.Stroked && cfg.ApplyTransformsStroked
		flattened, err := cfg.Flattener.Flatten(cmds, stroked)
		if err != nil {
			return nil, false, err
		}
		cmds = flattened
	}

	for _, c := range cmds {
		if err := c.checkArity(); err != nil {
			return nil, false, err
		}
	}

	items, hadDrawingCommand, err := Relativize(cmds)
	if err != nil {
		return nil, false, err
	}

	ctx := NewContext(cfg).WithStyle(cfg.Style)
	filtered := Filter(items, ctx)
	chosen := Choose(filtered, ctx)
	return chosen, hadDrawingCommand, nil
}
