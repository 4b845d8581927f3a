package pathdata

import (
	"fmt"
	"iter"

	"github.com/arloliu/pathpack/errs"
)

const (
	arcArgCount       = 7 // rx ry rotation large-arc-flag sweep-flag x y
	packedArcArgCount = 5 // rx ry rotation x y
	arcFlagIndex      = 3 // position of the large-arc-flag
)

// PackArcFlags moves the flags of every arc command into Command.Flags.
//
// Non-arc commands pass through unchanged.
//
// Errors:
//   - ErrInvalidFlag: a large-arc or sweep flag is neither 0 nor 1
//   - ErrArityMismatch: an arc command does not carry exactly seven values
func PackArcFlags(cmds iter.Seq2[Command, error]) iter.Seq2[Command, error] {
	return func(yield func(Command, error) bool) {
		for cmd, err := range cmds {
			if err != nil {
				yield(Command{}, err)
				return
			}

			if cmd.IsArc() {
				if cmd, err = PackArc(cmd); err != nil {
					yield(Command{}, err)
					return
				}
			}

			if !yield(cmd, nil) {
				return
			}
		}
	}
}

// PackArc removes the large-arc and sweep flags from an arc command's values
// and stores them in Flags. Packing an already packed arc is a no-op.
func PackArc(cmd Command) (Command, error) {
	if cmd.Packed {
		return cmd, nil
	}
	if len(cmd.Values) != arcArgCount {
		return Command{}, fmt.Errorf("%w: arc command %q requires %d arguments, got %d",
			errs.ErrArityMismatch, cmd.Type, arcArgCount, len(cmd.Values))
	}

	large, ok := flagValue(cmd.Values[arcFlagIndex])
	if !ok {
		return Command{}, fmt.Errorf("%w: large-arc-flag %v", errs.ErrInvalidFlag, cmd.Values[arcFlagIndex])
	}
	sweep, ok := flagValue(cmd.Values[arcFlagIndex+1])
	if !ok {
		return Command{}, fmt.Errorf("%w: sweep-flag %v", errs.ErrInvalidFlag, cmd.Values[arcFlagIndex+1])
	}

	values := make([]float64, 0, packedArcArgCount)
	values = append(values, cmd.Values[:arcFlagIndex]...)
	values = append(values, cmd.Values[arcFlagIndex+2:]...)

	return Command{
		Type:   cmd.Type,
		Values: values,
		Flags:  ArcFlags{Large: large, Sweep: sweep},
		Packed: true,
	}, nil
}

// UnpackArc reinserts the flags of a packed arc at their path data position.
// Commands that are not packed arcs are returned unchanged.
func UnpackArc(cmd Command) Command {
	if !cmd.Packed {
		return cmd
	}

	values := make([]float64, 0, len(cmd.Values)+2)
	if len(cmd.Values) >= arcFlagIndex {
		values = append(values, cmd.Values[:arcFlagIndex]...)
		values = append(values, flagFloat(cmd.Flags.Large), flagFloat(cmd.Flags.Sweep))
		values = append(values, cmd.Values[arcFlagIndex:]...)
	}

	return Command{Type: cmd.Type, Values: values}
}

// Parse parses a path data string into normalized commands with packed arcs.
//
// It chains Tokenize, Group, Ungroup and PackArcFlags.
func Parse(s string) iter.Seq2[Command, error] {
	return PackArcFlags(Ungroup(Group(Tokenize(s))))
}

func flagValue(v float64) (bool, bool) {
	switch v {
	case 0:
		return false, true
	case 1:
		return true, true
	default:
		return false, false
	}
}

func flagFloat(b bool) float64 {
	if b {
		return 1
	}

	return 0
}
