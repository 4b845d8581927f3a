// Package format defines the lookup tables of the pathpack wire format.
//
// A record header packs a 4-bit CommandCode, a relative-command bit and a 3-bit
// WidthType into one byte. The tables in this package map command letters to
// codes and arities, and width types to their storage size and value range.
// All tables are read-only package data.
package format

import (
	"fmt"
	"math"
)

type (
	CommandCode uint8
	WidthType   uint8
)

const (
	CodeReserved0 CommandCode = 0x0 // CodeReserved0 is unused and invalid on the wire.
	CodeH         CommandCode = 0x1 // CodeH represents the horizontal line command.
	CodeV         CommandCode = 0x2 // CodeV represents the vertical line command.
	CodeT         CommandCode = 0x3 // CodeT represents the smooth quadratic curve command.
	CodeM         CommandCode = 0x4 // CodeM represents the move command.
	CodeL         CommandCode = 0x5 // CodeL represents the line command.
	CodeQ         CommandCode = 0x6 // CodeQ represents the quadratic curve command.
	CodeS         CommandCode = 0x7 // CodeS represents the smooth cubic curve command.
	CodeArc00     CommandCode = 0x8 // CodeArc00 represents an arc with large-arc=0, sweep=0.
	CodeArc01     CommandCode = 0x9 // CodeArc01 represents an arc with large-arc=0, sweep=1.
	CodeArc10     CommandCode = 0xA // CodeArc10 represents an arc with large-arc=1, sweep=0.
	CodeArc11     CommandCode = 0xB // CodeArc11 represents an arc with large-arc=1, sweep=1.
	CodeReservedC CommandCode = 0xC // CodeReservedC is unused and invalid on the wire.
	CodeReservedD CommandCode = 0xD // CodeReservedD is unused and invalid on the wire.
	CodeC         CommandCode = 0xE // CodeC represents the cubic curve command.
	CodeZ         CommandCode = 0xF // CodeZ represents the close path command.

	WidthInt8    WidthType = 0x0 // WidthInt8 stores values as signed 8-bit integers.
	WidthUint8   WidthType = 0x1 // WidthUint8 stores values as unsigned 8-bit integers.
	WidthInt16   WidthType = 0x2 // WidthInt16 stores values as signed 16-bit integers.
	WidthUint16  WidthType = 0x3 // WidthUint16 stores values as unsigned 16-bit integers.
	WidthInt32   WidthType = 0x4 // WidthInt32 stores values as signed 32-bit integers.
	WidthUint32  WidthType = 0x5 // WidthUint32 stores values as unsigned 32-bit integers.
	WidthFloat32 WidthType = 0x6 // WidthFloat32 stores values as IEEE 754 single precision.
	WidthFloat64 WidthType = 0x7 // WidthFloat64 stores values as IEEE 754 double precision.
)

// commandLetters maps a command code to its upper-case letter, 0 for reserved codes.
var commandLetters = [16]byte{0, 'H', 'V', 'T', 'M', 'L', 'Q', 'S', 'A', 'A', 'A', 'A', 0, 0, 'C', 'Z'}

// commandArity maps a command code to the number of values stored in its payload.
// Arc codes store 5 values because both flags live in the code itself.
var commandArity = [16]int{-1, 1, 1, 2, 2, 2, 4, 4, 5, 5, 5, 5, -1, -1, 6, 0}

// widthSizes maps a width type to its size in bytes.
var widthSizes = [8]int{1, 1, 2, 2, 4, 4, 4, 8}

// widthRanges holds the inclusive value range of each integer width type.
var widthRanges = [6][2]float64{
	{math.MinInt8, math.MaxInt8},
	{0, math.MaxUint8},
	{math.MinInt16, math.MaxInt16},
	{0, math.MaxUint16},
	{math.MinInt32, math.MaxInt32},
	{0, math.MaxUint32},
}

// integerProbeOrder is the order in which the encoder tries integer widths.
// Signed widths come first, so 200 is stored as int16 rather than uint8.
var integerProbeOrder = [6]WidthType{WidthInt8, WidthInt16, WidthInt32, WidthUint8, WidthUint16, WidthUint32}

// CodeForLetter returns the command code for a path command letter of either case.
//
// Arc letters return CodeArc00; use ArcCode to select the code carrying the arc flags.
//
// Returns:
//   - CommandCode: The command code
//   - bool: false if the letter is not a path command
func CodeForLetter(letter byte) (CommandCode, bool) {
	switch ToUpper(letter) {
	case 'H':
		return CodeH, true
	case 'V':
		return CodeV, true
	case 'T':
		return CodeT, true
	case 'M':
		return CodeM, true
	case 'L':
		return CodeL, true
	case 'Q':
		return CodeQ, true
	case 'S':
		return CodeS, true
	case 'A':
		return CodeArc00, true
	case 'C':
		return CodeC, true
	case 'Z':
		return CodeZ, true
	default:
		return CodeReserved0, false
	}
}

// ArcCode returns the arc command code carrying the given large-arc and sweep flags.
func ArcCode(large, sweep bool) CommandCode {
	code := CodeArc00
	if large {
		code |= 0b10
	}
	if sweep {
		code |= 0b01
	}

	return code
}

// RawArity returns the number of arguments a command letter takes in path data text.
//
// Unlike CommandCode.Arity, the arc command counts its two flags here (7 arguments).
func RawArity(letter byte) (int, bool) {
	switch ToUpper(letter) {
	case 'Z':
		return 0, true
	case 'H', 'V':
		return 1, true
	case 'T', 'M', 'L':
		return 2, true
	case 'Q', 'S':
		return 4, true
	case 'C':
		return 6, true
	case 'A':
		return 7, true
	default:
		return 0, false
	}
}

// IsCommandLetter reports whether b is one of the path command letters.
func IsCommandLetter(b byte) bool {
	_, ok := RawArity(b)
	return ok
}

// IsRelative reports whether a command letter denotes relative coordinates.
func IsRelative(letter byte) bool {
	return letter >= 'a' && letter <= 'z'
}

// ToUpper returns the upper-case form of an ASCII letter.
func ToUpper(letter byte) byte {
	if IsRelative(letter) {
		return letter - ('a' - 'A')
	}

	return letter
}

// ToLower returns the lower-case form of an ASCII letter.
func ToLower(letter byte) byte {
	if letter >= 'A' && letter <= 'Z' {
		return letter + ('a' - 'A')
	}

	return letter
}

// Valid reports whether the code is assigned to a command.
func (c CommandCode) Valid() bool {
	return c < 16 && commandLetters[c] != 0
}

// Letter returns the upper-case command letter, or 0 for reserved codes.
func (c CommandCode) Letter() byte {
	if c >= 16 {
		return 0
	}

	return commandLetters[c]
}

// Arity returns the number of payload values of the command, or -1 for reserved codes.
func (c CommandCode) Arity() int {
	if c >= 16 {
		return -1
	}

	return commandArity[c]
}

// IsArc reports whether the code is one of the four arc codes.
func (c CommandCode) IsArc() bool {
	return c >= CodeArc00 && c <= CodeArc11
}

// ArcFlags returns the large-arc and sweep flags carried by an arc code.
// The result is meaningless for non-arc codes.
func (c CommandCode) ArcFlags() (large, sweep bool) {
	return c&0b10 != 0, c&0b01 != 0
}

func (c CommandCode) String() string {
	if c.IsArc() {
		large, sweep := c.ArcFlags()
		return fmt.Sprintf("A%d%d", boolBit(large), boolBit(sweep))
	}
	if !c.Valid() {
		return fmt.Sprintf("Reserved(0x%X)", uint8(c))
	}

	return string(commandLetters[c])
}

// Valid reports whether the width type is one of the eight defined widths.
func (w WidthType) Valid() bool {
	return w <= WidthFloat64
}

// Size returns the storage size of one value in bytes.
func (w WidthType) Size() int {
	if !w.Valid() {
		return 0
	}

	return widthSizes[w]
}

// IsInteger reports whether the width stores integers.
func (w WidthType) IsInteger() bool {
	return w <= WidthUint32
}

// Fits reports whether v lies inside the range of the width type.
// Floating point widths accept any value.
func (w WidthType) Fits(v float64) bool {
	if !w.IsInteger() {
		return true
	}
	r := widthRanges[w]

	return v >= r[0] && v <= r[1]
}

func (w WidthType) String() string {
	switch w {
	case WidthInt8:
		return "int8"
	case WidthUint8:
		return "uint8"
	case WidthInt16:
		return "int16"
	case WidthUint16:
		return "uint16"
	case WidthInt32:
		return "int32"
	case WidthUint32:
		return "uint32"
	case WidthFloat32:
		return "float32"
	case WidthFloat64:
		return "float64"
	default:
		return "Unknown"
	}
}

// IntegerProbeOrder returns the integer widths in the order the encoder tries them.
func IntegerProbeOrder() [6]WidthType {
	return integerProbeOrder
}

func boolBit(b bool) int {
	if b {
		return 1
	}

	return 0
}
