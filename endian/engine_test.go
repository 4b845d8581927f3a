package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetLittleEndianEngine(t *testing.T) {
	engine := GetLittleEndianEngine()
	require.Equal(t, binary.LittleEndian, engine)

	buf := engine.AppendUint16(nil, 0x0102)
	require.Equal(t, []byte{0x02, 0x01}, buf)
	require.Equal(t, uint16(0x0102), engine.Uint16(buf))
}

func TestGetWireEngine(t *testing.T) {
	engine := GetWireEngine()
	require.Equal(t, GetLittleEndianEngine(), engine)

	buf := engine.AppendUint32(nil, 0xDEADBEEF)
	require.Equal(t, []byte{0xEF, 0xBE, 0xAD, 0xDE}, buf)

	buf = engine.AppendUint64(buf[:0], 1)
	require.Equal(t, []byte{1, 0, 0, 0, 0, 0, 0, 0}, buf)
}
