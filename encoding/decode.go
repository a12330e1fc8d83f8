package encoding

import (
	"errors"
	"fmt"
	"math"

	"github.com/arloliu/rowpack/endian"
	"github.com/arloliu/rowpack/format"
	"github.com/arloliu/rowpack/internal/pool"
)

var (
	// ErrInvalidLength is returned when raw data is not a whole number of elements.
	ErrInvalidLength = errors.New("data length is not a multiple of the element width")
	// ErrInvalidBoolean is returned for a boolean wire byte outside {0, 1, 2}.
	ErrInvalidBoolean = errors.New("invalid boolean wire byte")
)

// DecodeInt32s decodes integer elements from raw into dst.
func DecodeInt32s(dst []int32, raw []byte, engine endian.EndianEngine) ([]int32, error) {
	if len(raw)%format.IntegerWidth != 0 {
		return nil, fmt.Errorf("%w: %d bytes of integer", ErrInvalidLength, len(raw))
	}

	n := len(raw) / format.IntegerWidth
	dst = pool.Resize(dst, n)
	for i := range n {
		dst[i] = int32(engine.Uint32(raw[i*format.IntegerWidth:]))
	}

	return dst, nil
}

// DecodeFloat64s decodes double elements from raw into dst.
func DecodeFloat64s(dst []float64, raw []byte, engine endian.EndianEngine) ([]float64, error) {
	if len(raw)%format.DoubleWidth != 0 {
		return nil, fmt.Errorf("%w: %d bytes of double", ErrInvalidLength, len(raw))
	}

	n := len(raw) / format.DoubleWidth
	dst = pool.Resize(dst, n)
	for i := range n {
		dst[i] = math.Float64frombits(engine.Uint64(raw[i*format.DoubleWidth:]))
	}

	return dst, nil
}

// DecodeBooleans decodes boolean wire bytes into dst.
func DecodeBooleans(dst []Bool, raw []byte) ([]Bool, error) {
	dst = pool.Resize(dst, len(raw))
	for i, b := range raw {
		switch b {
		case WireFalse:
			dst[i] = BoolFalse
		case WireTrue:
			dst[i] = BoolTrue
		case WireNA:
			dst[i] = BoolNA
		default:
			return nil, fmt.Errorf("%w: 0x%02x at %d", ErrInvalidBoolean, b, i)
		}
	}

	return dst, nil
}

// DecodeValues decodes one row of kind back into matrix cells.
//
// Missing integers and booleans come back as NAValue, so for every row r
// written by a Transfer, DecodeValues(kind, Values(kind, r)) reproduces the
// encoded cells: booleans as 0, 1 or NAValue; integers truncated to int32.
func DecodeValues(kind format.ElementKind, raw []byte, engine endian.EndianEngine) ([]float64, error) {
	switch kind {
	case format.KindBoolean:
		vals := make([]float64, len(raw))
		for i, b := range raw {
			switch b {
			case WireFalse:
				vals[i] = 0
			case WireTrue:
				vals[i] = 1
			case WireNA:
				vals[i] = NAValue
			default:
				return nil, fmt.Errorf("%w: 0x%02x at %d", ErrInvalidBoolean, b, i)
			}
		}

		return vals, nil
	case format.KindInteger:
		ints, err := DecodeInt32s(nil, raw, engine)
		if err != nil {
			return nil, err
		}

		vals := make([]float64, len(ints))
		for i, v := range ints {
			vals[i] = float64(v)
		}

		return vals, nil
	case format.KindDouble:
		return DecodeFloat64s(nil, raw, engine)
	default:
		return nil, fmt.Errorf("%w: %s is not a row kind", format.ErrUnsupportedKind, kind)
	}
}
