package encoding

import (
	"math"

	"github.com/arloliu/rowpack/format"
)

// Bool is a tri-state boolean: false, true or missing.
type Bool int8

const (
	BoolFalse Bool = 0
	BoolTrue  Bool = 1
	BoolNA    Bool = math.MinInt8
)

// Wire bytes of the boolean element.
const (
	WireFalse byte = 0
	WireTrue  byte = 1
	WireNA    byte = 2
)

const (
	// NAInteger is the missing-value sentinel of integer and boolean cells.
	NAInteger int32 = math.MinInt32
	// NAValue is NAInteger as carried in float64 matrix cells.
	NAValue float64 = math.MinInt32
)

// Number is the set of native numeric types that can be narrowed to an integer element.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// BoolOf converts a Go bool.
func BoolOf(v bool) Bool {
	if v {
		return BoolTrue
	}

	return BoolFalse
}

// IsNA reports whether b is missing.
func (b Bool) IsNA() bool {
	return b == BoolNA
}

func (b Bool) String() string {
	switch {
	case b == BoolNA:
		return "NA"
	case b > 0:
		return "true"
	default:
		return "false"
	}
}

// EncodeBoolean maps a tri-state boolean to its wire byte.
//
// Any positive value counts as true, so the result is always one of
// WireFalse, WireTrue or WireNA.
func EncodeBoolean(b Bool) byte {
	switch {
	case b == BoolNA:
		return WireNA
	case b > 0:
		return WireTrue
	default:
		return WireFalse
	}
}

// EncodeBooleanValue maps a boolean cell of a float64 matrix to its wire byte.
// NAValue becomes WireNA, v > 0 becomes WireTrue, anything else (NaN included) WireFalse.
func EncodeBooleanValue(v float64) byte {
	switch {
	case v == NAValue:
		return WireNA
	case v > 0:
		return WireTrue
	default:
		return WireFalse
	}
}

// EncodeInteger narrows v to the 32-bit integer element.
//
// Values outside the int32 range are truncated the way a Go conversion
// truncates them; checking the range is up to the caller.
func EncodeInteger[T Number](v T) int32 {
	return int32(v)
}

// EncodeDouble returns v unchanged: the double element is native float64.
func EncodeDouble(v float64) float64 {
	return v
}

// IsMissing reports whether v is the missing-value sentinel for kind.
func IsMissing(kind format.ElementKind, v float64) bool {
	switch kind {
	case format.KindInteger, format.KindBoolean:
		return v == NAValue
	case format.KindDouble:
		return math.IsNaN(v)
	default:
		return false
	}
}
