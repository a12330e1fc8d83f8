// Package endian provides byte order utilities for the rowpack wire format.
//
// Multi-byte elements (4-byte integers, 8-byte doubles, delta-encoded indices)
// are written in a single byte order per dump. By default that is the native
// order of the writing host, which the caller records in its schema using
// NativeByteOrder so readers on other hosts can convert.
//
// # Basic Usage
//
//	order := endian.NativeByteOrder() // endian.LittleEndian on x86/ARM
//	fmt.Println(order)                // "little_endian"
//
//	engine := endian.EngineFor(order)
//	buf = engine.AppendUint32(buf, uint32(v))
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

	"golang.org/x/sys/cpu"
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

// ByteOrder names the layout of multi-byte integers on disk.
type ByteOrder uint8

const (
	// NativeOrder selects the byte order of the running host.
	NativeOrder ByteOrder = iota
	// LittleEndian stores the least significant byte first.
	LittleEndian
	// BigEndian stores the most significant byte first.
	BigEndian
)

// String returns "little_endian" or "big_endian", the names recorded in dataset schemas.
// NativeOrder is resolved before naming.
func (o ByteOrder) String() string {
	switch o.Resolve() {
	case LittleEndian:
		return "little_endian"
	case BigEndian:
		return "big_endian"
	default:
		return fmt.Sprintf("ByteOrder(%d)", uint8(o))
	}
}

// Resolve maps NativeOrder to the concrete order of the host and returns other values unchanged.
func (o ByteOrder) Resolve() ByteOrder {
	if o == NativeOrder {
		return NativeByteOrder()
	}

	return o
}

// ParseByteOrder parses "little_endian", "big_endian" or "native".
func ParseByteOrder(s string) (ByteOrder, error) {
	switch s {
	case "little_endian", "little":
		return LittleEndian, nil
	case "big_endian", "big":
		return BigEndian, nil
	case "native", "":
		return NativeOrder, nil
	default:
		return 0, fmt.Errorf("invalid byte order: %q", s)
	}
}

// NativeByteOrder reports the layout of multi-byte integers on the running host.
func NativeByteOrder() ByteOrder {
	if cpu.IsBigEndian {
		return BigEndian
	}

	return LittleEndian
}

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 is 256. For a little-endian system, the LSB (0x00) is first.
	// For a big-endian system, the MSB (0x01) is first.
	var i uint16 = 0x0100

	b := (*[2]byte)(unsafe.Pointer(&i))

	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNative reports whether engine lays out integers the same way the host does,
// in which case slices can be reinterpreted without per-element conversion.
func IsNative(engine EndianEngine) bool {
	return engine == CheckEndianness()
}

// EngineFor returns the engine for the given order, resolving NativeOrder first.
func EngineFor(order ByteOrder) EndianEngine {
	if order.Resolve() == BigEndian {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// GetNativeEngine returns the engine matching the host byte order.
func GetNativeEngine() EndianEngine {
	return EngineFor(NativeOrder)
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
