// Package endian selects the byte order used for the fixed-width integers of a
// huffpack container header.
//
// The container does not record its own byte order, so the writer and the reader
// must agree on it. Little-endian is the default everywhere:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint32(buf, totalSymbols)
//
// GetNativeEngine reproduces the host order, which is what a plain memory dump of
// the header would produce on that machine.
//
// All functions in this package are safe for concurrent use.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines binary.ByteOrder and binary.AppendByteOrder so header code can
// both patch fixed offsets and append fields with a single value.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness reports the host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100: the first byte in memory is 0x01 only on a big-endian host.
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))

	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetNativeEngine returns the engine matching the host byte order.
func GetNativeEngine() EndianEngine {
	if IsNativeLittleEndian() {
		return GetLittleEndianEngine()
	}

	return GetBigEndianEngine()
}
