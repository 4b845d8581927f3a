package pathpack

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/pathpack/codec"
	"github.com/arloliu/pathpack/errs"
	"github.com/arloliu/pathpack/pathdata"
)

func TestEncode(t *testing.T) {
	data, err := Encode("M10 20 L30 40 Z")
	require.NoError(t, err)
	require.Equal(t, []byte{0x40, 0x0A, 0x14, 0x50, 0x1E, 0x28, 0xF0}, data)
}

func TestEncode_Errors(t *testing.T) {
	_, err := Encode("M0 0", codec.WithFactor(0))
	require.ErrorIs(t, err, errs.ErrInvalidFactor)

	_, err = Encode("10 10")
	require.ErrorIs(t, err, errs.ErrMissingCommand)

	_, err = Encode("L10")
	require.ErrorIs(t, err, errs.ErrArityMismatch)

	_, err = Encode("A1 1 0 2 0 5 5")
	require.ErrorIs(t, err, errs.ErrInvalidFlag)
}

func TestEncodeChunks(t *testing.T) {
	var chunks [][]byte
	for chunk, err := range EncodeChunks("M10 20 L30 40 Z") {
		require.NoError(t, err)
		chunks = append(chunks, chunk)
	}
	require.Equal(t, [][]byte{{0x40, 0x0A, 0x14}, {0x50, 0x1E, 0x28}, {0xF0}}, chunks)

	full, err := Encode("M10 20 L30 40 Z")
	require.NoError(t, err)
	require.Equal(t, full, bytes.Join(chunks, nil))

	for _, err := range EncodeChunks("M0 0", codec.WithPermissibleError(-1)) {
		require.ErrorIs(t, err, errs.ErrInvalidPermissibleError)
	}
}

func TestDecode(t *testing.T) {
	data, err := Encode("M1.25 2.5 a5 5 0 1 1 10 10", codec.WithFactor(4))
	require.NoError(t, err)

	var cmds []pathdata.Command
	for cmd, err := range Decode(data, codec.WithDecodeFactor(4)) {
		require.NoError(t, err)
		cmds = append(cmds, cmd)
	}
	require.Equal(t, "M1.25 2.5a5 5 0 1 1 10 10", pathdata.Format(cmds))

	for _, err := range Decode(data, codec.WithOffset(100)) {
		require.ErrorIs(t, err, errs.ErrInvalidRange)
	}
}

func TestDecodeAll(t *testing.T) {
	data, err := Encode("m0.5 -0.5 q1 2 3 4 t5 6 z")
	require.NoError(t, err)

	cmds, err := DecodeAll(data)
	require.NoError(t, err)
	require.Equal(t, "m0.5 -0.5q1 2 3 4t5 6z", pathdata.Format(cmds))

	_, err = DecodeAll(data[:len(data)-2])
	require.ErrorIs(t, err, errs.ErrTruncated)

	_, err = DecodeAll(data, codec.WithDecodeFactor(-1))
	require.ErrorIs(t, err, errs.ErrInvalidFactor)
}

func TestDigest(t *testing.T) {
	a, err := Encode("M0 0 L10 10")
	require.NoError(t, err)
	b, err := Encode("M 0,0 L 10 , 10")
	require.NoError(t, err)
	c, err := Encode("M0 0 L10 11")
	require.NoError(t, err)

	require.Equal(t, Digest(a), Digest(b))
	require.NotEqual(t, Digest(a), Digest(c))
	require.Equal(t, uint64(0xef46db3751d8e999), Digest(nil))
}
