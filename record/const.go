package record

const (
	// Bit masks of the header byte
	WidthMask    = 0x07 // Mask for width type (bits 0-2)
	RelativeMask = 0x08 // Mask for relative command bit (bit 3)
	CommandMask  = 0xF0 // Mask for command code (bits 4-7)

	CommandShift = 4 // Shift of the command code inside the header byte

	HeaderSize = 1 // fixed header size in bytes
)
