package codec

import (
	"math"

	"github.com/arloliu/pathpack/format"
)

// SelectWidth returns the storage width for a command's scaled values.
//
// The integer widths are tried in format.IntegerProbeOrder, then float32, then
// float64. A value is stored as an integer only if it is within tolerance of
// its rounded value; with tolerance 0 it must be an exact integer.
func SelectWidth(values []float64, tolerance float64) format.WidthType {
	if allWithin(values, tolerance, roundHalfUp) {
		for _, width := range format.IntegerProbeOrder() {
			if fitsRounded(values, width) {
				return width
			}
		}
	}

	if allWithin(values, tolerance, toFloat32) {
		return format.WidthFloat32
	}

	return format.WidthFloat64
}

// roundHalfUp rounds to the nearest integer, ties toward positive infinity.
func roundHalfUp(v float64) float64 {
	f := math.Floor(v)
	if v-f >= 0.5 {
		return f + 1
	}

	return f
}

func toFloat32(v float64) float64 {
	return float64(float32(v))
}

func allWithin(values []float64, tolerance float64, convert func(float64) float64) bool {
	for _, v := range values {
		if !within(v, convert(v), tolerance) {
			return false
		}
	}

	return true
}

func within(a, b, tolerance float64) bool {
	if tolerance == 0 {
		return a == b
	}

	return math.Abs(a-b) < tolerance
}

func fitsRounded(values []float64, width format.WidthType) bool {
	for _, v := range values {
		if !width.Fits(roundHalfUp(v)) {
			return false
		}
	}

	return true
}
