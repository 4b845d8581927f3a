// Package codec implements the pathpack binary encoder and decoder.
//
// The Encoder turns normalized path commands into wire records. For every
// command it picks the narrowest storage width whose round trip stays within
// the configured permissible error:
//
//  1. If every value, scaled by the factor, is within tolerance of its nearest
//     integer, the integer widths are tried in the order int8, int16, int32,
//     uint8, uint16, uint32 and the first one that holds every value wins.
//  2. Otherwise float32 is used if every value survives the conversion within
//     tolerance.
//  3. Otherwise float64 is used, which is always exact.
//
// The tolerance is the permissible error multiplied by the factor. With a
// permissible error of 0 every value must round trip exactly.
//
// The Decoder is the inverse: it walks the records of a buffer, reads each
// command's values at the width named by its header, divides them by the
// factor and reinserts the arc flags.
//
// # Basic Usage
//
//	enc, err := codec.NewEncoder(codec.WithFactor(100), codec.WithPermissibleError(0.005))
//	if err != nil {
//	    return err
//	}
//	data, err := enc.EncodeAll("M1.25 2.5 L3 4")
//
//	dec, err := codec.NewDecoder(data, codec.WithDecodeFactor(100))
//	if err != nil {
//	    return err
//	}
//	for cmd, err := range dec.All() {
//	    ...
//	}
//
// Encoder and Decoder are NOT safe for concurrent use.
package codec
