package codec

import (
	"fmt"
	"math"

	"github.com/arloliu/pathpack/endian"
	"github.com/arloliu/pathpack/errs"
	"github.com/arloliu/pathpack/internal/options"
)

const (
	DefaultFactor           = 1.0 // DefaultFactor leaves values unscaled.
	DefaultPermissibleError = 0.0 // DefaultPermissibleError requires an exact round trip.
)

// EncoderConfig holds the encoder settings.
type EncoderConfig struct {
	factor           float64
	permissibleError float64
	engine           endian.EndianEngine
}

// NewEncoderConfig creates an EncoderConfig with the default settings.
func NewEncoderConfig() *EncoderConfig {
	return &EncoderConfig{
		factor:           DefaultFactor,
		permissibleError: DefaultPermissibleError,
		engine:           endian.GetWireEngine(),
	}
}

// Factor returns the scale factor applied to every value before encoding.
func (c *EncoderConfig) Factor() float64 {
	return c.factor
}

// PermissibleError returns the maximum allowed difference between a source
// value and its decoded value, in unscaled units.
func (c *EncoderConfig) PermissibleError() float64 {
	return c.permissibleError
}

// Tolerance returns the permissible error in scaled units.
func (c *EncoderConfig) Tolerance() float64 {
	return c.permissibleError * c.factor
}

// Validate checks the configuration once all options are applied.
func (c *EncoderConfig) Validate() error {
	if err := validateFactor(c.factor); err != nil {
		return err
	}

	return validatePermissibleError(c.permissibleError)
}

func (c *EncoderConfig) setFactor(factor float64) error {
	if err := validateFactor(factor); err != nil {
		return err
	}
	c.factor = factor

	return nil
}

func (c *EncoderConfig) setPermissibleError(e float64) error {
	if err := validatePermissibleError(e); err != nil {
		return err
	}
	c.permissibleError = e

	return nil
}

func validateFactor(factor float64) error {
	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor <= 0 {
		return fmt.Errorf("%w: %v", errs.ErrInvalidFactor, factor)
	}

	return nil
}

func validatePermissibleError(e float64) error {
	if math.IsNaN(e) || math.IsInf(e, 0) || e < 0 {
		return fmt.Errorf("%w: %v", errs.ErrInvalidPermissibleError, e)
	}

	return nil
}

// EncoderOption represents a functional option for configuring the EncoderConfig.
type EncoderOption = options.Option[*EncoderConfig]

// WithFactor sets the scale factor multiplied into every value before width
// selection. Larger factors keep more fractional precision in integer widths.
// The factor must be finite and positive; the default is 1.
func WithFactor(factor float64) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		return c.setFactor(factor)
	})
}

// WithPermissibleError sets the largest difference allowed between a value and
// its decoded value. It must be finite and non-negative; the default 0 requires
// an exact round trip.
func WithPermissibleError(e float64) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		return c.setPermissibleError(e)
	})
}
