// Package pathopt rewrites the command sequence behind an SVG path's `d`
// attribute into an equivalent, shorter form.
//
// The pipeline runs in four stages: Relativize converts every absolute
// command to relative and annotates each item with its absolute start and
// end coordinates; Filter walks the result applying the geometric and
// lexical rewrites (arc detection, curve-to-line, smooth shorthands,
// error-compensated rounding, redundant-command collapse); Choose picks,
// per item, whichever of the absolute or relative serialization is
// shorter; Serialize renders the final string.
//
// OptimizeString runs all four stages; Optimize runs the first three and
// returns the chosen commands unserialized. Callers that already
// have a parsed []Command (this package does not parse `d` strings itself
// — see the fixtures subpackage for a minimal test-only decoder) can call
// them directly.
package pathopt
