// Package fixtures decodes a `d` attribute string into the Command
// sequence pathopt.Optimize expects. It exists for this module's own
// tests: pathopt itself never parses a `d` string, since that's a host
// concern (SPEC_FULL.md AMBIENT-3) left to whatever SVG library owns the
// document.
package fixtures

import (
	"fmt"
	"strconv"

	gl "github.com/rustyoz/genericlexer"

	"github.com/lanestack/pathopt"
)

// Decode tokenizes d with the same lexer vasalvit-svg's path parser
// used (github.com/rustyoz/genericlexer) and groups the resulting
// letter/number stream into pathopt.Command values, expanding the
// "repeated implicit command" shorthand (consecutive coordinate tuples
// after a single letter) into one Command per tuple.
func Decode(d string) ([]pathopt.Command, error) {
	lex, err := gl.Lex("fixture", d)
	if err != nil {
		return nil, fmt.Errorf("fixtures: lex: %w", err)
	}

	var cmds []pathopt.Command
	for {
		item := lex.NextItem()
		switch item.Type {
		case gl.ItemEOS:
			return cmds, nil
		case gl.ItemError:
			return nil, fmt.Errorf("fixtures: %s", item.Value)
		case gl.ItemLetter:
			if len(item.Value) == 0 {
				return nil, fmt.Errorf("fixtures: empty command letter")
			}
			ch := item.Value[0]
			abs := ch >= 'A' && ch <= 'Z'
			letter := pathopt.Letter(ch)
			if !abs {
				letter = pathopt.Letter(ch - 'a' + 'A')
			}
			arity := letter.Arity()
			if arity < 0 {
				return nil, fmt.Errorf("fixtures: unknown command %q", item.Value)
			}
			if arity == 0 {
				cmds = append(cmds, pathopt.Command{Letter: letter, Abs: abs})
				continue
			}
			for {
				args, err := readArgs(lex, arity)
				if err != nil {
					return nil, err
				}
				cmds = append(cmds, pathopt.Command{Letter: letter, Abs: abs, Args: args})
				lex.ConsumeWhiteSpace()
				if lex.PeekItem().Type != gl.ItemNumber {
					break
				}
			}
		default:
		}
	}
}

func readArgs(lex *gl.Lexer, n int) ([]float64, error) {
	args := make([]float64, n)
	for i := 0; i < n; i++ {
		lex.ConsumeWhiteSpace()
		lex.ConsumeComma()
		lex.ConsumeWhiteSpace()
		item := lex.NextItem()
		if item.Type != gl.ItemNumber {
			return nil, fmt.Errorf("fixtures: expected number, got %q", item.Value)
		}
		v, err := strconv.ParseFloat(item.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("fixtures: %w", err)
		}
		args[i] = v
	}
	return args, nil
}
