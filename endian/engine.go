// Package endian provides byte order utilities for the geometry wire formats.
//
// Both PostGIS EWKB and SpatiaLite BLOBs carry a one-byte byte order marker
// (0 = big-endian, 1 = little-endian) that governs every multi-byte field that
// follows. This package maps those markers to an EndianEngine, which combines
// the ByteOrder and AppendByteOrder interfaces from encoding/binary so codecs
// can both read fixed fields and append to growing buffers.
//
// # Basic Usage
//
//	engine, err := endian.FromMarker(data[0])
//	if err != nil {
//	    return err // errs.ErrInvalidByteOrder
//	}
//	typeCode := engine.Uint32(data[1:5])
//
// Encoding with the host byte order:
//
//	engine := endian.GetNativeEngine()
//	buf = append(buf, endian.Marker(engine))
//	buf = engine.AppendUint32(buf, typeCode)
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
	"fmt"
	"unsafe"

	"github.com/arloliu/geowire/errs"
)

// Byte order markers used by EWKB and SpatiaLite headers.
const (
	BigEndianMarker    byte = 0x00 // XDR
	LittleEndianMarker byte = 0x01 // NDR
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() EndianEngine {
	// 0x0100 is 256. For a little-endian system, the LSB (0x00) is first.
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

func IsNativeBigEndian() bool {
	return CheckEndianness() == binary.BigEndian
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
	return CheckEndianness()
}

// IsBigEndian reports whether engine writes the most significant byte first.
func IsBigEndian(engine EndianEngine) bool {
	return engine == binary.BigEndian
}

// Marker returns the wire marker byte for engine.
func Marker(engine EndianEngine) byte {
	if IsBigEndian(engine) {
		return BigEndianMarker
	}

	return LittleEndianMarker
}

// FromMarker resolves a wire marker byte to its engine.
//
// Returns errs.ErrInvalidByteOrder for any marker other than 0 or 1.
func FromMarker(marker byte) (EndianEngine, error) {
	switch marker {
	case BigEndianMarker:
		return binary.BigEndian, nil
	case LittleEndianMarker:
		return binary.LittleEndian, nil
	default:
		return nil, fmt.Errorf("%w: 0x%02x", errs.ErrInvalidByteOrder, marker)
	}
}
