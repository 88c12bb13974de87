package pixfmt

import "encoding/binary"

// Endianness is the byte order used when a pixel's packed bits are wider
// than one byte.
type Endianness uint8

const (
	// LittleEndian stores the least significant byte first.
	LittleEndian Endianness = iota
	// BigEndian stores the most significant byte first.
	BigEndian
)

// NativeEndianness is the byte order of the machine this process runs on.
var NativeEndianness = func() Endianness {
	if binary.NativeEndian.Uint16([]byte{0x01, 0x00}) == 0x0001 {
		return LittleEndian
	}
	return BigEndian
}()

// IsNative reports whether e matches the machine's byte order.
func (e Endianness) IsNative() bool {
	return e == NativeEndianness
}

// ByteOrder returns the encoding/binary byte order for e.
func (e Endianness) ByteOrder() binary.ByteOrder {
	if e == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Uint16 assembles two bytes into a 16-bit value using this byte order.
func (e Endianness) Uint16(b []byte) uint16 {
	return e.ByteOrder().Uint16(b)
}

// Uint32 assembles four bytes into a 32-bit value using this byte order.
func (e Endianness) Uint32(b []byte) uint32 {
	return e.ByteOrder().Uint32(b)
}

// String returns a string representation of the endianness.
func (e Endianness) String() string {
	switch e {
	case LittleEndian:
		return "LittleEndian"
	case BigEndian:
		return "BigEndian"
	default:
		return "Unknown"
	}
}
