package codec

import (
	"bytes"
	"math"
	"testing"

	"github.com/arloliu/pathpack/errs"
	"github.com/arloliu/pathpack/format"
	"github.com/arloliu/pathpack/pathdata"
	"github.com/stretchr/testify/require"
)

func TestNewEncoder(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		enc, err := NewEncoder()
		require.NoError(t, err)
		require.Equal(t, DefaultFactor, enc.Config().Factor())
		require.Equal(t, DefaultPermissibleError, enc.Config().PermissibleError())
		require.Equal(t, 0.0, enc.Config().Tolerance())
	})

	t.Run("Tolerance is scaled", func(t *testing.T) {
		enc, err := NewEncoder(WithFactor(100), WithPermissibleError(0.01))
		require.NoError(t, err)
		require.InDelta(t, 1.0, enc.Config().Tolerance(), 1e-12)
	})

	t.Run("Invalid factor", func(t *testing.T) {
		for _, f := range []float64{0, -1, math.NaN(), math.Inf(1)} {
			_, err := NewEncoder(WithFactor(f))
			require.ErrorIs(t, err, errs.ErrInvalidFactor)
		}
	})

	t.Run("Invalid permissible error", func(t *testing.T) {
		for _, e := range []float64{-0.1, math.NaN(), math.Inf(1)} {
			_, err := NewEncoder(WithPermissibleError(e))
			require.ErrorIs(t, err, errs.ErrInvalidPermissibleError)
		}
	})
}

func TestEncoder_EncodeAll(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []byte
	}{
		{"Move int8", "M10 20", []byte{0x40, 0x0A, 0x14}},
		{"Relative move", "m-1 -2", []byte{0x48, 0xFF, 0xFE}},
		{"Line int16", "L200 0", []byte{0x52, 0xC8, 0x00, 0x00, 0x00}},
		{"Close", "M0 0Z", []byte{0x40, 0x00, 0x00, 0xF0}},
		{"Relative close", "M0 0z", []byte{0x40, 0x00, 0x00, 0xF8}},
		{"Horizontal float32", "h0.5", []byte{0x1E, 0x00, 0x00, 0x00, 0x3F}},
		{"Vertical uint32", "V3000000000", []byte{0x25, 0x00, 0x5E, 0xD0, 0xB2}},
		{"Arc flags in code", "A1 1 0 1 1 5 5", []byte{0xB0, 0x01, 0x01, 0x00, 0x05, 0x05}},
		{"Arc flags 0 1", "a1 2 3 0 1 4 5", []byte{0x98, 0x01, 0x02, 0x03, 0x04, 0x05}},
		{"Shorthand", "L1 2 3 4", []byte{0x50, 0x01, 0x02, 0x50, 0x03, 0x04}},
		{"Empty", "", []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := NewEncoder()
			require.NoError(t, err)

			data, err := enc.EncodeAll(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, data)
		})
	}
}

func TestEncoder_Factor(t *testing.T) {
	t.Run("Exact mode falls back to float64", func(t *testing.T) {
		enc, err := NewEncoder(WithFactor(100))
		require.NoError(t, err)

		data, err := enc.EncodeAll("M1.005 2.005")
		require.NoError(t, err)
		require.Len(t, data, 1+2*8)
		require.Equal(t, byte(0x40)|byte(format.WidthFloat64), data[0])
	})

	t.Run("Lossy mode stores scaled integers", func(t *testing.T) {
		enc, err := NewEncoder(WithFactor(100), WithPermissibleError(0.01))
		require.NoError(t, err)

		data, err := enc.EncodeAll("M1.005 2.005")
		require.NoError(t, err)
		// 100 and 201 as int16, 201 does not fit int8
		require.Equal(t, []byte{0x42, 0x64, 0x00, 0xC9, 0x00}, data)
	})

	t.Run("Scaled grid fits a narrow width", func(t *testing.T) {
		enc, err := NewEncoder(WithFactor(10))
		require.NoError(t, err)

		data, err := enc.EncodeAll("l1.5 -2.5")
		require.NoError(t, err)
		require.Equal(t, []byte{0x58, 0x0F, 0xE7}, data)
	})
}

func TestEncoder_EncodeCommand(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)

	t.Run("Unpacked arc is packed", func(t *testing.T) {
		chunk, err := enc.EncodeCommand(pathdata.Command{Type: 'A', Values: []float64{1, 1, 0, 1, 0, 2, 2}})
		require.NoError(t, err)
		require.Equal(t, []byte{0xA0, 0x01, 0x01, 0x00, 0x02, 0x02}, chunk)
	})

	t.Run("Unknown command", func(t *testing.T) {
		_, err := enc.EncodeCommand(pathdata.Command{Type: 'X', Values: []float64{1}})
		require.ErrorIs(t, err, errs.ErrUnknownCommand)
	})

	t.Run("Arity mismatch", func(t *testing.T) {
		_, err := enc.EncodeCommand(pathdata.Command{Type: 'L', Values: []float64{1, 2, 3, 4}})
		require.ErrorIs(t, err, errs.ErrArityMismatch)

		_, err = enc.EncodeCommand(pathdata.Command{Type: 'Z', Values: []float64{1}})
		require.ErrorIs(t, err, errs.ErrArityMismatch)
	})

	t.Run("Invalid flag", func(t *testing.T) {
		_, err := enc.EncodeCommand(pathdata.Command{Type: 'a', Values: []float64{1, 1, 0, 2, 0, 2, 2}})
		require.ErrorIs(t, err, errs.ErrInvalidFlag)
	})

	t.Run("Append keeps prefix", func(t *testing.T) {
		dst := []byte{0xAA}
		dst, err := enc.AppendCommand(dst, pathdata.Command{Type: 'v', Values: []float64{-3}})
		require.NoError(t, err)
		require.Equal(t, []byte{0xAA, 0x28, 0xFD}, dst)
	})
}

func TestEncoder_Encode(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)

	var chunks [][]byte
	for chunk, err := range enc.Encode("M0 0 L10 10 20 20 Z") {
		require.NoError(t, err)
		chunks = append(chunks, chunk)
	}
	require.Len(t, chunks, 4)

	all, err := enc.EncodeAll("M0 0 L10 10 20 20 Z")
	require.NoError(t, err)
	require.Equal(t, all, bytes.Join(chunks, nil))
}

func TestEncoder_EncodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		err   error
	}{
		{"Missing command", "10 10", errs.ErrMissingCommand},
		{"Odd value", "L10", errs.ErrArityMismatch},
		{"Invalid flag", "A1 1 0 2 0 5 5", errs.ErrInvalidFlag},
		{"Overflowing number", "M1e400 0", errs.ErrNumberSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := NewEncoder()
			require.NoError(t, err)

			_, err = enc.EncodeAll(tt.input)
			require.ErrorIs(t, err, tt.err)

			var yielded int
			var lastErr error
			for chunk, err := range enc.Encode("M1 1" + tt.input) {
				if err != nil {
					lastErr = err
					require.Nil(t, chunk)
					continue
				}
				yielded++
			}
			require.Error(t, lastErr)
			require.LessOrEqual(t, yielded, 1)
		})
	}
}

func TestEncoder_Stats(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)

	_, err = enc.EncodeAll("M0 0 L200 0 h0.5 Z")
	require.NoError(t, err)

	stats := enc.Stats()
	require.Equal(t, 4, stats.Records)
	require.Equal(t, 3+5+5+1, stats.Bytes)
	require.Equal(t, 1, stats.WidthCount(format.WidthInt8))
	require.Equal(t, 1, stats.WidthCount(format.WidthInt16))
	require.Equal(t, 1, stats.WidthCount(format.WidthFloat32))
	require.Equal(t, 0, stats.WidthCount(format.WidthType(9)))
	require.Equal(t, 2, stats.IntegerRecords())

	enc.Reset()
	require.Equal(t, Stats{}, enc.Stats())
}
