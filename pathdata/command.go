package pathdata

import (
	"iter"
	"strconv"
	"strings"

	"github.com/arloliu/pathpack/format"
)

// ArcFlags holds the two boolean arguments of an arc command.
type ArcFlags struct {
	Large bool // Large is the large-arc-flag.
	Sweep bool // Sweep is the sweep-flag.
}

// Command is a single path command.
//
// Type is the command letter; lower-case letters use coordinates relative to
// the current point. For a packed arc (Packed is true) Values holds rx, ry,
// x-axis-rotation, x and y, and the two flags live in Flags. An unpacked arc
// carries all seven arguments in Values, in path data order.
type Command struct {
	Type   byte
	Values []float64
	Flags  ArcFlags
	Packed bool
}

// IsArc reports whether the command is an elliptical arc.
func (c Command) IsArc() bool {
	return format.ToUpper(c.Type) == 'A'
}

// IsRelative reports whether the command uses relative coordinates.
func (c Command) IsRelative() bool {
	return format.IsRelative(c.Type)
}

// AppendText appends the path data form of the command: the letter followed by
// its values separated by single spaces. Packed arcs are written unpacked.
func (c Command) AppendText(dst []byte) []byte {
	if c.Packed {
		c = UnpackArc(c)
	}

	dst = append(dst, c.Type)
	for i, v := range c.Values {
		if i > 0 {
			dst = append(dst, ' ')
		}
		if v == 0 {
			v = 0 // no "-0"
		}
		dst = strconv.AppendFloat(dst, v, 'f', -1, 64)
	}

	return dst
}

func (c Command) String() string {
	return string(c.AppendText(nil))
}

// Format renders commands back to path data, without separators between commands.
func Format(cmds []Command) string {
	var sb strings.Builder
	buf := make([]byte, 0, 64)
	for _, cmd := range cmds {
		buf = cmd.AppendText(buf[:0])
		sb.Write(buf)
	}

	return sb.String()
}

// Collect drains a command iterator into a slice, stopping at the first error.
func Collect(seq iter.Seq2[Command, error]) ([]Command, error) {
	var cmds []Command
	for cmd, err := range seq {
		if err != nil {
			return cmds, err
		}
		cmds = append(cmds, cmd)
	}

	return cmds, nil
}
