package record

import (
	"fmt"

	"github.com/arloliu/pathpack/errs"
	"github.com/arloliu/pathpack/format"
)

// Header is the one-byte record header.
type Header uint8

// NewHeader packs a command code, the relative bit and a width type into a header.
func NewHeader(code format.CommandCode, relative bool, width format.WidthType) Header {
	h := Header(code<<CommandShift) | Header(width&WidthMask)
	if relative {
		h |= RelativeMask
	}

	return h
}

// ParseHeader reads a header byte and validates its command field.
//
// Returns:
//   - Header: The parsed header
//   - error: ErrUnknownCommand if the command field maps to a reserved code
func ParseHeader(b byte) (Header, error) {
	h := Header(b)
	if err := h.Validate(); err != nil {
		return 0, err
	}

	return h, nil
}

// Command returns the 4-bit command code.
func (h Header) Command() format.CommandCode {
	return format.CommandCode(h >> CommandShift)
}

// IsRelative reports whether the relative bit is set.
func (h Header) IsRelative() bool {
	return h&RelativeMask != 0
}

// Width returns the 3-bit width type.
func (h Header) Width() format.WidthType {
	return format.WidthType(h & WidthMask)
}

// Letter returns the command letter, lower-case for relative commands.
// Arc headers report the base letter A or a.
func (h Header) Letter() byte {
	letter := h.Command().Letter()
	if h.IsRelative() {
		return format.ToLower(letter)
	}

	return letter
}

// PayloadSize returns the number of payload bytes following the header.
func (h Header) PayloadSize() int {
	arity := h.Command().Arity()
	if arity <= 0 {
		return 0
	}

	return arity * h.Width().Size()
}

// Validate checks that the command field is not a reserved code.
func (h Header) Validate() error {
	if !h.Command().Valid() {
		return fmt.Errorf("%w: header 0x%02X uses reserved code %s", errs.ErrUnknownCommand, uint8(h), h.Command())
	}

	return nil
}

func (h Header) String() string {
	return fmt.Sprintf("%c(%s, %s)", h.Letter(), h.Command(), h.Width())
}
