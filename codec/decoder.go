package codec

import (
	"fmt"
	"iter"

	"github.com/arloliu/pathpack/endian"
	"github.com/arloliu/pathpack/errs"
	"github.com/arloliu/pathpack/internal/options"
	"github.com/arloliu/pathpack/pathdata"
	"github.com/arloliu/pathpack/record"
)

// RecordInfo describes one record of an encoded stream.
type RecordInfo struct {
	// Offset is the byte offset of the header in the original buffer.
	Offset int
	// Header is the record header.
	Header record.Header
	// Payload holds the raw payload bytes. It aliases the decoder's buffer.
	Payload []byte
}

// Size returns the record size in bytes, header included.
func (r RecordInfo) Size() int {
	return record.HeaderSize + len(r.Payload)
}

// Decoder decodes a pathpack stream back into path commands.
//
// The byte range is validated when the decoder is created; record contents are
// validated while iterating.
//
// Note: The Decoder does not copy its input. The buffer must not be modified
// while the decoder is in use.
type Decoder struct {
	data   []byte
	base   int
	factor float64
	engine endian.EndianEngine
}

// NewDecoder creates a new Decoder for the given encoded data.
//
// Parameters:
//   - data: Buffer holding the encoded stream
//   - opts: Optional configuration functions (WithDecodeFactor, WithOffset, WithLength)
//
// Returns:
//   - *Decoder: New decoder instance
//   - error: ErrInvalidRange if offset and length do not lie within data,
//     ErrInvalidFactor for an invalid factor
func NewDecoder(data []byte, opts ...DecoderOption) (*Decoder, error) {
	cfg := NewDecoderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if cfg.offset < 0 || cfg.offset > len(data) {
		return nil, fmt.Errorf("%w: offset %d, buffer length %d", errs.ErrInvalidRange, cfg.offset, len(data))
	}

	end := len(data)
	if cfg.length >= 0 {
		end = cfg.offset + cfg.length
	}
	if end < cfg.offset || end > len(data) {
		return nil, fmt.Errorf("%w: offset %d, length %d, buffer length %d",
			errs.ErrInvalidRange, cfg.offset, cfg.length, len(data))
	}

	return &Decoder{
		data:   data[cfg.offset:end],
		base:   cfg.offset,
		factor: cfg.factor,
		engine: cfg.engine,
	}, nil
}

// Len returns the number of bytes the decoder reads.
func (d *Decoder) Len() int {
	return len(d.data)
}

// Records returns an iterator over the raw records of the stream.
//
// Errors:
//   - ErrUnknownCommand: a header uses a reserved command code
//   - ErrTruncated: the stream ends inside a record payload
func (d *Decoder) Records() iter.Seq2[RecordInfo, error] {
	return func(yield func(RecordInfo, error) bool) {
		for pos := 0; pos < len(d.data); {
			h, err := record.ParseHeader(d.data[pos])
			if err != nil {
				yield(RecordInfo{}, fmt.Errorf("record at offset %d: %w", d.base+pos, err))
				return
			}

			start := pos + record.HeaderSize
			end := start + h.PayloadSize()
			if end > len(d.data) {
				yield(RecordInfo{}, fmt.Errorf("%w: record %s at offset %d needs %d payload bytes, %d remain",
					errs.ErrTruncated, h.Command(), d.base+pos, h.PayloadSize(), len(d.data)-start))

				return
			}

			if !yield(RecordInfo{Offset: d.base + pos, Header: h, Payload: d.data[start:end]}, nil) {
				return
			}
			pos = end
		}
	}
}

// All returns an iterator over the decoded commands.
//
// Values are divided by the decode factor. Arc commands are reported with the
// base letter and all seven arguments, flags included, in path data order.
func (d *Decoder) All() iter.Seq2[pathdata.Command, error] {
	return func(yield func(pathdata.Command, error) bool) {
		for info, err := range d.Records() {
			if err != nil {
				yield(pathdata.Command{}, err)
				return
			}

			if !yield(d.command(info), nil) {
				return
			}
		}
	}
}

// DecodeAll decodes the whole stream.
func (d *Decoder) DecodeAll() ([]pathdata.Command, error) {
	return pathdata.Collect(d.All())
}

func (d *Decoder) command(info RecordInfo) pathdata.Command {
	h := info.Header
	code := h.Command()
	width := h.Width()
	size := width.Size()

	if code.Arity() == 0 {
		return pathdata.Command{Type: h.Letter()}
	}

	values := make([]float64, code.Arity(), code.Arity()+2)
	for i := range values {
		values[i] = record.ReadValue(d.engine, info.Payload[i*size:], width) / d.factor
	}

	cmd := pathdata.Command{Type: h.Letter(), Values: values}
	if code.IsArc() {
		large, sweep := code.ArcFlags()
		cmd.Flags = pathdata.ArcFlags{Large: large, Sweep: sweep}
		cmd.Packed = true
		cmd = pathdata.UnpackArc(cmd)
	}

	return cmd
}
