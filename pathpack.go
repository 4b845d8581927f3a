// Package pathpack converts SVG path data to and from a compact binary format.
//
// Every path command becomes one record: a header byte followed by the
// command's values, all stored with the narrowest numeric width that
// reproduces them within the configured tolerance. Arc flags are folded into
// the command code, so arcs carry five values instead of seven.
//
// # Header Layout
//
//	bit 7..4  command code (H V T M L Q S A00 A01 A10 A11 C Z)
//	bit 3     relative command flag
//	bit 2..0  value width (int8 uint8 int16 uint16 int32 uint32 float32 float64)
//
// Multi-byte values are little-endian.
//
// # Basic Usage
//
// Encoding path data:
//
//	data, err := pathpack.Encode("M10 10 h 20 v 20 Z")
//
// Trading precision for size with a scale factor and a permissible error:
//
//	data, err := pathpack.Encode(pathData,
//	    codec.WithFactor(100),
//	    codec.WithPermissibleError(0.005),
//	)
//
// Decoding, with the same factor:
//
//	cmds, err := pathpack.DecodeAll(data, codec.WithDecodeFactor(100))
//	fmt.Println(pathdata.Format(cmds))
//
// # Package Structure
//
// This package wraps the codec and pathdata packages for the common cases.
// Use codec.Encoder and codec.Decoder directly to reuse an encoder, read
// encoding statistics or walk raw records.
package pathpack

import (
	"iter"

	"github.com/arloliu/pathpack/codec"
	"github.com/arloliu/pathpack/internal/hash"
	"github.com/arloliu/pathpack/pathdata"
)

// Encode encodes a path data string into a binary stream.
//
// Parameters:
//   - pathData: SVG path data, e.g. "M0 0 L10 10 Z"
//   - opts: Optional configuration functions (codec.WithFactor, codec.WithPermissibleError)
//
// Returns:
//   - []byte: The encoded stream
//   - error: A configuration error, or the first parse or encoding error
func Encode(pathData string, opts ...codec.EncoderOption) ([]byte, error) {
	enc, err := codec.NewEncoder(opts...)
	if err != nil {
		return nil, err
	}

	return enc.EncodeAll(pathData)
}

// EncodeChunks returns an iterator yielding one encoded record per path command.
//
// A configuration error is yielded once before any record.
func EncodeChunks(pathData string, opts ...codec.EncoderOption) iter.Seq2[[]byte, error] {
	enc, err := codec.NewEncoder(opts...)
	if err != nil {
		return func(yield func([]byte, error) bool) {
			yield(nil, err)
		}
	}

	return enc.Encode(pathData)
}

// Decode returns an iterator over the commands of an encoded stream.
//
// A configuration error is yielded once before any command.
func Decode(data []byte, opts ...codec.DecoderOption) iter.Seq2[pathdata.Command, error] {
	dec, err := codec.NewDecoder(data, opts...)
	if err != nil {
		return func(yield func(pathdata.Command, error) bool) {
			yield(pathdata.Command{}, err)
		}
	}

	return dec.All()
}

// DecodeAll decodes every command of an encoded stream.
//
// Example:
//
//	cmds, err := pathpack.DecodeAll(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(pathdata.Format(cmds))
func DecodeAll(data []byte, opts ...codec.DecoderOption) ([]pathdata.Command, error) {
	dec, err := codec.NewDecoder(data, opts...)
	if err != nil {
		return nil, err
	}

	return dec.DecodeAll()
}

// Digest returns the xxHash64 digest of an encoded stream.
//
// Equal path data encoded with equal options always produces the same digest,
// which makes it usable as a cache or deduplication key.
func Digest(data []byte) uint64 {
	return hash.Digest(data)
}
