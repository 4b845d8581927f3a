// Package endian provides the byte order used for record payloads.
//
// EndianEngine combines binary.ByteOrder and binary.AppendByteOrder so the
// encoder can append fixed-width values straight into its output buffer and
// the decoder can read them back in place.
//
// The pathpack wire format stores every multi-byte payload value in
// little-endian order, independent of the host.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetWireEngine returns the engine for record payloads.
func GetWireEngine() EndianEngine {
	return GetLittleEndianEngine()
}
