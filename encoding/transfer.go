package encoding

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/arloliu/rowpack/endian"
	"github.com/arloliu/rowpack/format"
	"github.com/arloliu/rowpack/internal/pool"
)

// Transfer converts batches of native values to wire bytes.
//
// It owns the scratch buffers used for narrowing and byte-order conversion and
// resizes them before every use, so a single Transfer serves an entire dump
// without per-row allocation once the widest row has been seen.
type Transfer struct {
	engine endian.EndianEngine
	native bool

	ints   []int32
	deltas []int32
	bools  []byte
	wire   []byte
	iwire  []byte
}

// NewTransfer creates a Transfer writing multi-byte elements with engine.
func NewTransfer(engine endian.EndianEngine) *Transfer {
	return &Transfer{
		engine: engine,
		native: endian.IsNative(engine),
	}
}

// Values converts one row of matrix cells to the wire elements of kind.
//
// Returns format.ErrUnsupportedKind for anything but the three row kinds.
func (t *Transfer) Values(kind format.ElementKind, vals []float64) ([]byte, error) {
	switch kind {
	case format.KindBoolean:
		t.bools = pool.Resize(t.bools, len(vals))
		for i, v := range vals {
			t.bools[i] = EncodeBooleanValue(v)
		}

		return t.bools, nil
	case format.KindInteger:
		t.ints = pool.Resize(t.ints, len(vals))
		for i, v := range vals {
			t.ints[i] = EncodeInteger(v)
		}

		return t.Int32s(t.ints), nil
	case format.KindDouble:
		return t.Float64s(vals), nil
	default:
		return nil, fmt.Errorf("%w: %s is not a row kind", format.ErrUnsupportedKind, kind)
	}
}

// Booleans converts tri-state booleans to wire bytes.
func (t *Transfer) Booleans(vals []Bool) []byte {
	t.bools = pool.Resize(t.bools, len(vals))
	for i, b := range vals {
		t.bools[i] = EncodeBoolean(b)
	}

	return t.bools
}

// Integers narrows native ints to integer elements.
func (t *Transfer) Integers(vals []int) []byte {
	t.ints = pool.Resize(t.ints, len(vals))
	for i, v := range vals {
		t.ints[i] = EncodeInteger(v)
	}

	return t.Int32s(t.ints)
}

// Indices delta-encodes ascending column indices into int32 elements.
//
// It uses its own scratch buffers, so the result of an earlier Values call
// stays intact.
func (t *Transfer) Indices(idx []int) []byte {
	t.deltas = DeltaEncode(t.deltas, idx)

	if t.native {
		return int32Bytes(t.deltas)
	}

	t.iwire = appendInt32s(t.iwire[:0], t.deltas, t.engine)

	return t.iwire
}

// Int32s returns the wire bytes of vals.
//
// With a native engine the result reinterprets the memory of vals without copying.
func (t *Transfer) Int32s(vals []int32) []byte {
	if t.native {
		return int32Bytes(vals)
	}

	t.wire = appendInt32s(t.wire[:0], vals, t.engine)

	return t.wire
}

// Float64s returns the wire bytes of vals.
//
// With a native engine the result reinterprets the memory of vals without copying.
func (t *Transfer) Float64s(vals []float64) []byte {
	if t.native {
		return float64Bytes(vals)
	}

	t.wire = t.wire[:0]
	for _, v := range vals {
		t.wire = t.engine.AppendUint64(t.wire, math.Float64bits(EncodeDouble(v)))
	}

	return t.wire
}

func appendInt32s(dst []byte, vals []int32, engine endian.EndianEngine) []byte {
	for _, v := range vals {
		dst = engine.AppendUint32(dst, uint32(v))
	}

	return dst
}

func int32Bytes(vals []int32) []byte {
	if len(vals) == 0 {
		return nil
	}

	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(vals))), len(vals)*format.IntegerWidth)
}

func float64Bytes(vals []float64) []byte {
	if len(vals) == 0 {
		return nil
	}

	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(vals))), len(vals)*format.DoubleWidth)
}
