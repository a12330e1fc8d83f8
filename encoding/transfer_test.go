package encoding

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/rowpack/endian"
	"github.com/arloliu/rowpack/format"
)

func engines() map[string]endian.EndianEngine {
	return map[string]endian.EndianEngine{
		"little": endian.GetLittleEndianEngine(),
		"big":    endian.GetBigEndianEngine(),
	}
}

func TestTransfer_Integer(t *testing.T) {
	row := []float64{1, 0, NAValue, -5}

	for name, engine := range engines() {
		t.Run(name, func(t *testing.T) {
			tr := NewTransfer(engine)
			raw, err := tr.Values(format.KindInteger, row)
			require.NoError(t, err)
			require.Len(t, raw, len(row)*format.IntegerWidth)

			require.Equal(t, uint32(1), engine.Uint32(raw[0:]))
			require.Equal(t, uint32(0), engine.Uint32(raw[4:]))
			require.Equal(t, uint32(0x80000000), engine.Uint32(raw[8:]))
			require.Equal(t, uint32(0xFFFFFFFB), engine.Uint32(raw[12:]))

			decoded, err := DecodeValues(format.KindInteger, raw, engine)
			require.NoError(t, err)
			require.Equal(t, row, decoded)
		})
	}
}

func TestTransfer_Double(t *testing.T) {
	row := []float64{-2.5, 0, math.Inf(1), 1e-300}

	for name, engine := range engines() {
		t.Run(name, func(t *testing.T) {
			tr := NewTransfer(engine)
			raw, err := tr.Values(format.KindDouble, row)
			require.NoError(t, err)
			require.Len(t, raw, len(row)*format.DoubleWidth)
			require.Equal(t, uint64(0xC004000000000000), engine.Uint64(raw[0:]))

			decoded, err := DecodeValues(format.KindDouble, raw, engine)
			require.NoError(t, err)
			require.Equal(t, row, decoded)
		})
	}
}

func TestTransfer_DoubleNaNPreserved(t *testing.T) {
	tr := NewTransfer(endian.GetBigEndianEngine())
	raw, err := tr.Values(format.KindDouble, []float64{math.NaN()})
	require.NoError(t, err)

	decoded, err := DecodeFloat64s(nil, raw, endian.GetBigEndianEngine())
	require.NoError(t, err)
	require.True(t, math.IsNaN(decoded[0]))
}

func TestTransfer_Boolean(t *testing.T) {
	tr := NewTransfer(endian.GetNativeEngine())
	raw, err := tr.Values(format.KindBoolean, []float64{1, 0, NAValue, 3, -1})
	require.NoError(t, err)
	require.Equal(t, []byte{1, 0, 2, 1, 0}, raw)

	decoded, err := DecodeValues(format.KindBoolean, raw, endian.GetNativeEngine())
	require.NoError(t, err)
	require.Equal(t, []float64{1, 0, NAValue, 1, 0}, decoded)
}

func TestTransfer_UnsupportedKind(t *testing.T) {
	tr := NewTransfer(endian.GetNativeEngine())
	_, err := tr.Values(format.KindString, []float64{1})
	require.ErrorIs(t, err, format.ErrUnsupportedKind)

	_, err = DecodeValues(format.KindString, nil, endian.GetNativeEngine())
	require.ErrorIs(t, err, format.ErrUnsupportedKind)
}

func TestTransfer_NativeIsZeroCopy(t *testing.T) {
	tr := NewTransfer(endian.GetNativeEngine())
	row := []float64{1, 2, 3}

	raw, err := tr.Values(format.KindDouble, row)
	require.NoError(t, err)

	row[0] = 42
	require.Equal(t, math.Float64bits(42), endian.GetNativeEngine().Uint64(raw))
}

func TestTransfer_IndicesKeepValues(t *testing.T) {
	for name, engine := range engines() {
		t.Run(name, func(t *testing.T) {
			tr := NewTransfer(engine)

			vals, err := tr.Values(format.KindInteger, []float64{5, 7})
			require.NoError(t, err)
			valsCopy := append([]byte(nil), vals...)

			idx := tr.Indices([]int{3, 10})

			ints, err := DecodeInt32s(nil, idx, engine)
			require.NoError(t, err)
			require.Equal(t, []int32{3, 7}, ints)
			require.Equal(t, []int{3, 10}, DeltaDecode(nil, ints))

			require.Equal(t, valsCopy, vals)
		})
	}
}

func TestTransfer_EmptyRow(t *testing.T) {
	tr := NewTransfer(endian.GetNativeEngine())
	for _, kind := range []format.ElementKind{format.KindBoolean, format.KindInteger, format.KindDouble} {
		raw, err := tr.Values(kind, nil)
		require.NoError(t, err)
		require.Empty(t, raw)
	}
	require.Empty(t, tr.Indices(nil))
}

func TestTransfer_VectorHelpers(t *testing.T) {
	tr := NewTransfer(endian.GetLittleEndianEngine())

	require.Equal(t, []byte{1, 0, 2}, tr.Booleans([]Bool{BoolTrue, BoolFalse, BoolNA}))

	raw := tr.Integers([]int{1, int(NAInteger)})
	require.Equal(t, []byte{1, 0, 0, 0, 0, 0, 0, 0x80}, raw)
	require.Equal(t, binary.LittleEndian.Uint32(raw[4:]), uint32(0x80000000))
}

func TestDecode_InvalidInput(t *testing.T) {
	engine := endian.GetNativeEngine()

	_, err := DecodeInt32s(nil, []byte{1, 2, 3}, engine)
	require.ErrorIs(t, err, ErrInvalidLength)

	_, err = DecodeFloat64s(nil, []byte{1, 2, 3, 4}, engine)
	require.ErrorIs(t, err, ErrInvalidLength)

	_, err = DecodeBooleans(nil, []byte{0, 1, 7})
	require.ErrorIs(t, err, ErrInvalidBoolean)

	_, err = DecodeValues(format.KindBoolean, []byte{3}, engine)
	require.ErrorIs(t, err, ErrInvalidBoolean)
}

func TestDecodeBooleans(t *testing.T) {
	got, err := DecodeBooleans(nil, []byte{0, 1, 2})
	require.NoError(t, err)
	require.Equal(t, []Bool{BoolFalse, BoolTrue, BoolNA}, got)
}

func BenchmarkTransfer_Integer(b *testing.B) {
	row := make([]float64, 4096)
	for i := range row {
		row[i] = float64(i % 17)
	}
	tr := NewTransfer(endian.GetNativeEngine())

	b.ReportAllocs()
	for b.Loop() {
		_, _ = tr.Values(format.KindInteger, row)
	}
}
