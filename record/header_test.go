package record

import (
	"testing"

	"github.com/arloliu/pathpack/errs"
	"github.com/arloliu/pathpack/format"
	"github.com/stretchr/testify/require"
)

func TestNewHeader(t *testing.T) {
	t.Run("Absolute line int8", func(t *testing.T) {
		h := NewHeader(format.CodeL, false, format.WidthInt8)
		require.Equal(t, Header(0x50), h)
		require.Equal(t, format.CodeL, h.Command())
		require.False(t, h.IsRelative())
		require.Equal(t, format.WidthInt8, h.Width())
		require.Equal(t, byte('L'), h.Letter())
		require.Equal(t, 2, h.PayloadSize())
	})

	t.Run("Relative cubic float64", func(t *testing.T) {
		h := NewHeader(format.CodeC, true, format.WidthFloat64)
		require.Equal(t, Header(0xEF), h)
		require.True(t, h.IsRelative())
		require.Equal(t, byte('c'), h.Letter())
		require.Equal(t, 48, h.PayloadSize())
	})

	t.Run("Close path", func(t *testing.T) {
		h := NewHeader(format.CodeZ, true, format.WidthInt8)
		require.Equal(t, Header(0xF8), h)
		require.Equal(t, byte('z'), h.Letter())
		require.Equal(t, 0, h.PayloadSize())
	})

	t.Run("Arc codes report base letter", func(t *testing.T) {
		h := NewHeader(format.ArcCode(true, false), false, format.WidthInt16)
		require.Equal(t, Header(0xA2), h)
		require.Equal(t, byte('A'), h.Letter())
		require.Equal(t, 10, h.PayloadSize())
	})
}

func TestParseHeader(t *testing.T) {
	t.Run("Valid header", func(t *testing.T) {
		h, err := ParseHeader(0x4A)
		require.NoError(t, err)
		require.Equal(t, format.CodeM, h.Command())
		require.True(t, h.IsRelative())
		require.Equal(t, format.WidthInt16, h.Width())
	})

	t.Run("Reserved codes", func(t *testing.T) {
		for _, b := range []byte{0x00, 0x0F, 0xC0, 0xC8, 0xD7} {
			_, err := ParseHeader(b)
			require.ErrorIs(t, err, errs.ErrUnknownCommand, "header 0x%02X", b)
		}
	})

	t.Run("Every assigned code parses", func(t *testing.T) {
		for b := 0; b < 256; b++ {
			h, err := ParseHeader(byte(b))
			if !format.CommandCode(b >> 4).Valid() {
				require.Error(t, err)
				continue
			}
			require.NoError(t, err)
			require.Equal(t, byte(b), byte(h))
		}
	})
}

func TestHeader_String(t *testing.T) {
	h := NewHeader(format.CodeArc01, true, format.WidthUint8)
	require.Equal(t, "a(A01, uint8)", h.String())
}
