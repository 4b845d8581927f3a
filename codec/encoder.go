package codec

import (
	"fmt"
	"iter"

	"github.com/arloliu/pathpack/errs"
	"github.com/arloliu/pathpack/format"
	"github.com/arloliu/pathpack/internal/options"
	"github.com/arloliu/pathpack/internal/pool"
	"github.com/arloliu/pathpack/pathdata"
	"github.com/arloliu/pathpack/record"
)

// Encoder encodes path commands into pathpack records.
//
// Each command is encoded independently: one header byte followed by the
// command's values at the narrowest width that satisfies the permissible error.
//
// Note: The Encoder is NOT thread-safe. Each encoder instance should be used by a single goroutine at a time.
type Encoder struct {
	cfg     *EncoderConfig
	stats   Stats
	scratch []float64
}

// NewEncoder creates a new Encoder.
//
// Parameters:
//   - opts: Optional configuration functions (WithFactor, WithPermissibleError)
//
// Returns:
//   - *Encoder: The created encoder
//   - error: ErrInvalidFactor or ErrInvalidPermissibleError if an option is out of range
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	cfg := NewEncoderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &Encoder{
		cfg:     cfg,
		scratch: make([]float64, 0, format.CodeC.Arity()),
	}, nil
}

// Config returns the encoder configuration.
func (e *Encoder) Config() *EncoderConfig {
	return e.cfg
}

// Stats returns the statistics of the records written since creation or the last Reset.
func (e *Encoder) Stats() Stats {
	return e.stats
}

// Reset clears the encoder statistics.
func (e *Encoder) Reset() {
	e.stats = Stats{}
}

// AppendCommand appends the record of a single command to dst.
//
// Arc commands may be passed packed or unpacked; unpacked arcs are packed first.
//
// Returns:
//   - []byte: dst extended with the record
//   - error: ErrUnknownCommand for a letter outside the path grammar,
//     ErrArityMismatch if the value count does not match the command,
//     ErrInvalidFlag for an unpacked arc with invalid flags
func (e *Encoder) AppendCommand(dst []byte, cmd pathdata.Command) ([]byte, error) {
	if cmd.IsArc() {
		var err error
		if cmd, err = pathdata.PackArc(cmd); err != nil {
			return dst, err
		}
	}

	code, err := commandCode(cmd)
	if err != nil {
		return dst, err
	}

	arity := code.Arity()
	if len(cmd.Values) != arity {
		return dst, fmt.Errorf("%w: command %q stores %d values, got %d",
			errs.ErrArityMismatch, cmd.Type, arity, len(cmd.Values))
	}

	relative := cmd.IsRelative()
	if arity == 0 {
		e.stats.add(format.WidthInt8, false, record.HeaderSize)
		return append(dst, byte(record.NewHeader(code, relative, format.WidthInt8))), nil
	}

	values := e.scale(cmd.Values)
	width := SelectWidth(values, e.cfg.Tolerance())

	start := len(dst)
	dst = append(dst, byte(record.NewHeader(code, relative, width)))
	for _, v := range values {
		if width.IsInteger() {
			v = roundHalfUp(v)
		}
		dst = record.AppendValue(e.cfg.engine, dst, width, v)
	}
	e.stats.add(width, true, len(dst)-start)

	return dst, nil
}

// EncodeCommand returns the record of a single command.
func (e *Encoder) EncodeCommand(cmd pathdata.Command) ([]byte, error) {
	return e.AppendCommand(nil, cmd)
}

// Encode returns an iterator over the records of a path data string, one chunk
// per command. The concatenation of all chunks is the encoded stream.
//
// Parse errors and encoding errors are yielded once and end the iteration.
func (e *Encoder) Encode(pathData string) iter.Seq2[[]byte, error] {
	return e.EncodeCommands(pathdata.Parse(pathData))
}

// EncodeCommands returns an iterator over the records of a command sequence.
func (e *Encoder) EncodeCommands(cmds iter.Seq2[pathdata.Command, error]) iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		for cmd, err := range cmds {
			if err != nil {
				yield(nil, err)
				return
			}

			chunk, err := e.EncodeCommand(cmd)
			if err != nil {
				yield(nil, err)
				return
			}

			if !yield(chunk, nil) {
				return
			}
		}
	}
}

// EncodeAll encodes a path data string into a single stream.
func (e *Encoder) EncodeAll(pathData string) ([]byte, error) {
	bb := pool.GetStreamBuffer()
	defer pool.PutStreamBuffer(bb)

	for cmd, err := range pathdata.Parse(pathData) {
		if err != nil {
			return nil, err
		}

		if bb.B, err = e.AppendCommand(bb.B, cmd); err != nil {
			return nil, err
		}
	}

	return bb.Clone(), nil
}

// scale multiplies the values by the factor into the scratch slice.
func (e *Encoder) scale(values []float64) []float64 {
	if e.cfg.factor == 1 {
		return values
	}

	e.scratch = e.scratch[:0]
	for _, v := range values {
		e.scratch = append(e.scratch, v*e.cfg.factor)
	}

	return e.scratch
}

// commandCode maps a command, with packed arc flags, to its wire command code.
func commandCode(cmd pathdata.Command) (format.CommandCode, error) {
	if cmd.IsArc() {
		return format.ArcCode(cmd.Flags.Large, cmd.Flags.Sweep), nil
	}

	code, ok := format.CodeForLetter(cmd.Type)
	if !ok {
		return 0, fmt.Errorf("%w: %q", errs.ErrUnknownCommand, cmd.Type)
	}

	return code, nil
}
