package record

import (
	"math"

	"github.com/arloliu/pathpack/endian"
	"github.com/arloliu/pathpack/format"
)

// AppendValue appends v in the representation of the given width.
//
// Integer widths expect v to be an integer inside the width's range; the caller
// is responsible for selecting a width that fits.
func AppendValue(engine endian.EndianEngine, dst []byte, width format.WidthType, v float64) []byte {
	switch width {
	case format.WidthInt8:
		return append(dst, byte(int8(v)))
	case format.WidthUint8:
		return append(dst, uint8(v))
	case format.WidthInt16:
		return engine.AppendUint16(dst, uint16(int16(v)))
	case format.WidthUint16:
		return engine.AppendUint16(dst, uint16(v))
	case format.WidthInt32:
		return engine.AppendUint32(dst, uint32(int32(v)))
	case format.WidthUint32:
		return engine.AppendUint32(dst, uint32(v))
	case format.WidthFloat32:
		return engine.AppendUint32(dst, math.Float32bits(float32(v)))
	default:
		return engine.AppendUint64(dst, math.Float64bits(v))
	}
}

// ReadValue decodes one value of the given width from the start of src.
// src must hold at least width.Size() bytes.
func ReadValue(engine endian.EndianEngine, src []byte, width format.WidthType) float64 {
	switch width {
	case format.WidthInt8:
		return float64(int8(src[0]))
	case format.WidthUint8:
		return float64(src[0])
	case format.WidthInt16:
		return float64(int16(engine.Uint16(src)))
	case format.WidthUint16:
		return float64(engine.Uint16(src))
	case format.WidthInt32:
		return float64(int32(engine.Uint32(src)))
	case format.WidthUint32:
		return float64(engine.Uint32(src))
	case format.WidthFloat32:
		return float64(math.Float32frombits(engine.Uint32(src)))
	default:
		return math.Float64frombits(engine.Uint64(src))
	}
}
