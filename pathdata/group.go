package pathdata

import (
	"fmt"
	"iter"
	"math"
	"strconv"

	"github.com/arloliu/pathpack/errs"
	"github.com/arloliu/pathpack/format"
)

// Group collects the numbers following each command letter into one command.
//
// It yields one Command per command letter occurrence, with all values up to the
// next letter. Values are not checked against the command's arity; see Ungroup.
//
// Errors:
//   - ErrMissingCommand: a number appears before the first command letter
//   - ErrNumberSyntax: a number literal does not parse to a finite value
func Group(tokens iter.Seq[Token]) iter.Seq2[Command, error] {
	return func(yield func(Command, error) bool) {
		var cur Command
		started := false

		for tok := range tokens {
			if tok.Kind == TokenCommand {
				if started && !yield(cur, nil) {
					return
				}
				cur = Command{Type: tok.Text[0]}
				started = true

				continue
			}

			if !started {
				yield(Command{}, fmt.Errorf("%w: number %q at offset %d", errs.ErrMissingCommand, tok.Text, tok.Offset))
				return
			}

			v, err := ParseNumber(tok.Text)
			if err != nil {
				yield(Command{}, fmt.Errorf("%w at offset %d", err, tok.Offset))
				return
			}
			cur.Values = append(cur.Values, v)
		}

		if started {
			yield(cur, nil)
		}
	}
}

// ParseNumber parses a number literal into a finite float64.
func ParseNumber(text string) (float64, error) {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("%w: couldn't parse number %q", errs.ErrNumberSyntax, text)
	}

	return v, nil
}

// Ungroup splits every grouped command into one command per argument group.
//
// A command letter followed by several argument groups is shorthand for the
// same command repeated, so "L10 10 20 20" becomes two L commands of two values
// each. Close path commands must not carry any value.
//
// Errors:
//   - ErrArityMismatch: a command has no values, a value count that is not a
//     multiple of its arity, or a close path command has values
//   - ErrUnknownCommand: the command letter is not part of the path grammar
func Ungroup(cmds iter.Seq2[Command, error]) iter.Seq2[Command, error] {
	return func(yield func(Command, error) bool) {
		for cmd, err := range cmds {
			if err != nil {
				yield(Command{}, err)
				return
			}

			arity, ok := format.RawArity(cmd.Type)
			if !ok {
				yield(Command{}, fmt.Errorf("%w: %q", errs.ErrUnknownCommand, cmd.Type))
				return
			}

			if arity == 0 {
				if len(cmd.Values) > 0 {
					yield(Command{}, fmt.Errorf("%w: command %q must not have arguments, got %d",
						errs.ErrArityMismatch, cmd.Type, len(cmd.Values)))

					return
				}
				if !yield(Command{Type: cmd.Type}, nil) {
					return
				}

				continue
			}

			if len(cmd.Values) == 0 {
				yield(Command{}, fmt.Errorf("%w: command %q requires a minimum of %d arguments",
					errs.ErrArityMismatch, cmd.Type, arity))

				return
			}
			if len(cmd.Values)%arity != 0 {
				yield(Command{}, fmt.Errorf("%w: command %q requires a multiple of %d arguments, got %d",
					errs.ErrArityMismatch, cmd.Type, arity, len(cmd.Values)))

				return
			}

			for i := 0; i < len(cmd.Values); i += arity {
				if !yield(Command{Type: cmd.Type, Values: cmd.Values[i : i+arity : i+arity]}, nil) {
					return
				}
			}
		}
	}
}
