package codec

import (
	"github.com/arloliu/pathpack/endian"
	"github.com/arloliu/pathpack/internal/options"
)

// DecoderConfig holds the decoder settings.
type DecoderConfig struct {
	factor float64
	offset int
	length int // -1 means up to the end of the buffer
	engine endian.EndianEngine
}

// NewDecoderConfig creates a DecoderConfig with the default settings.
func NewDecoderConfig() *DecoderConfig {
	return &DecoderConfig{
		factor: DefaultFactor,
		length: -1,
		engine: endian.GetWireEngine(),
	}
}

// Validate checks the configuration once all options are applied.
func (c *DecoderConfig) Validate() error {
	return validateFactor(c.factor)
}

// DecoderOption represents a functional option for configuring the DecoderConfig.
type DecoderOption = options.Option[*DecoderConfig]

// WithDecodeFactor sets the factor every decoded value is divided by.
// It must match the factor used for encoding; the default is 1.
func WithDecodeFactor(factor float64) DecoderOption {
	return options.New(func(c *DecoderConfig) error {
		if err := validateFactor(factor); err != nil {
			return err
		}
		c.factor = factor

		return nil
	})
}

// WithOffset sets the byte offset of the first record in the buffer.
func WithOffset(offset int) DecoderOption {
	return options.NoError(func(c *DecoderConfig) {
		c.offset = offset
	})
}

// WithLength limits decoding to length bytes starting at the offset.
func WithLength(length int) DecoderOption {
	return options.NoError(func(c *DecoderConfig) {
		c.length = length
	})
}
