package compress

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/rowpack/format"
)

func getAllCodecs() map[string]Codec {
	return map[string]Codec{
		"NoOp":    NewNoOpCompressor(),
		"Deflate": mustCodec(NewDeflateCompressor(DefaultLevel)),
		"LZ4":     mustCodec(NewLZ4Compressor(DefaultLevel)),
		"S2":      NewS2Compressor(DefaultLevel),
		"Zstd":    NewZstdCompressor(DefaultLevel),
	}
}

func generateTestData(size int) []byte {
	data := make([]byte, size)
	for i := range data {
		data[i] = byte(i % 256)
	}

	return data
}

func TestCreateCodec(t *testing.T) {
	tests := []struct {
		cType format.CompressionType
		level int
	}{
		{format.CompressionNone, DefaultLevel},
		{format.CompressionDeflate, DefaultLevel},
		{format.CompressionDeflate, 9},
		{format.CompressionZstd, DefaultLevel},
		{format.CompressionZstd, 19},
		{format.CompressionS2, DefaultLevel},
		{format.CompressionS2, 3},
		{format.CompressionLZ4, DefaultLevel},
		{format.CompressionLZ4, 9},
	}

	for _, tt := range tests {
		t.Run(tt.cType.String(), func(t *testing.T) {
			codec, err := CreateCodec(tt.cType, tt.level)
			require.NoError(t, err)
			require.Equal(t, tt.cType, codec.Type())

			data := generateTestData(4096)
			compressed, err := codec.Compress(data)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, data, decompressed)
		})
	}
}

func TestCreateCodec_Invalid(t *testing.T) {
	_, err := CreateCodec(format.CompressionType(0xFF), DefaultLevel)
	require.ErrorIs(t, err, format.ErrUnsupportedCompression)

	_, err = CreateCodec(format.CompressionDeflate, 42)
	require.Error(t, err)

	_, err = CreateCodec(format.CompressionLZ4, 10)
	require.Error(t, err)
}

func TestGetCodec(t *testing.T) {
	for _, cType := range []format.CompressionType{
		format.CompressionNone, format.CompressionDeflate, format.CompressionZstd,
		format.CompressionS2, format.CompressionLZ4,
	} {
		codec, err := GetCodec(cType)
		require.NoError(t, err)
		require.Equal(t, cType, codec.Type())
	}

	_, err := GetCodec(format.CompressionType(0))
	require.ErrorIs(t, err, format.ErrUnsupportedCompression)
}

func TestAllCodecs_StreamMatchesOneShot(t *testing.T) {
	data := generateTestData(100_000)

	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			stream, err := codec.NewStream()
			require.NoError(t, err)

			// Feed in uneven pieces.
			for off := 0; off < len(data); {
				end := min(off+7919, len(data))
				n, err := stream.Write(data[off:end])
				require.NoError(t, err)
				require.Equal(t, end-off, n)
				off = end
			}

			block, err := stream.Finish()
			require.NoError(t, err)
			require.Equal(t, len(block.Data), block.Len())

			decompressed, err := codec.Decompress(block.Data)
			require.NoError(t, err)
			require.Equal(t, data, decompressed)
		})
	}
}

func TestAllCodecs_StreamsAreIndependent(t *testing.T) {
	first := bytes.Repeat([]byte("row-one "), 512)
	second := bytes.Repeat([]byte("row-two "), 512)

	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			s1, err := codec.NewStream()
			require.NoError(t, err)
			_, err = s1.Write(first)
			require.NoError(t, err)
			b1, err := s1.Finish()
			require.NoError(t, err)

			s2, err := codec.NewStream()
			require.NoError(t, err)
			_, err = s2.Write(second)
			require.NoError(t, err)
			b2, err := s2.Finish()
			require.NoError(t, err)

			// The second block must not depend on the first.
			out2, err := codec.Decompress(b2.Data)
			require.NoError(t, err)
			require.Equal(t, second, out2)

			out1, err := codec.Decompress(b1.Data)
			require.NoError(t, err)
			require.Equal(t, first, out1)

			// Pooled encoders must not leak the first unit into a fresh stream of the same content.
			s3, err := codec.NewStream()
			require.NoError(t, err)
			_, err = s3.Write(first)
			require.NoError(t, err)
			b3, err := s3.Finish()
			require.NoError(t, err)
			require.Equal(t, b1.Data, b3.Data)
		})
	}
}

func TestAllCodecs_EmptyStream(t *testing.T) {
	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			stream, err := codec.NewStream()
			require.NoError(t, err)

			block, err := stream.Finish()
			require.NoError(t, err)

			decompressed, err := codec.Decompress(block.Data)
			require.NoError(t, err)
			require.Empty(t, decompressed)

			if codec.Type() == format.CompressionNone {
				require.Zero(t, block.Len())
				return
			}

			// Every framed codec still emits a complete, empty stream.
			require.Positive(t, block.Len())
			require.Empty(t, decodeWithLibrary(t, codec.Type(), block.Data))
		})
	}
}

func TestEmptyStream_ZstdAndS2Headers(t *testing.T) {
	zs, err := NewZstdCompressor(DefaultLevel).NewStream()
	require.NoError(t, err)
	zb, err := zs.Finish()
	require.NoError(t, err)
	cType, ok := DetectFramed(zb.Data)
	require.True(t, ok)
	require.Equal(t, format.CompressionZstd, cType)

	ss, err := NewS2Compressor(DefaultLevel).NewStream()
	require.NoError(t, err)
	sb, err := ss.Finish()
	require.NoError(t, err)
	require.Equal(t, s2StreamMagic, sb.Data)
}

func TestAllCodecs_LibraryReaders(t *testing.T) {
	data := generateTestData(10_000)

	for name, codec := range getAllCodecs() {
		if name == "NoOp" {
			continue
		}
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(data)
			require.NoError(t, err)
			require.Equal(t, data, decodeWithLibrary(t, codec.Type(), compressed))
		})
	}
}

// decodeWithLibrary inflates data with the compression library's own reader,
// bypassing the codec's handling of empty input.
func decodeWithLibrary(t *testing.T, cType format.CompressionType, data []byte) []byte {
	t.Helper()

	var r io.Reader
	src := bytes.NewReader(data)
	switch cType {
	case format.CompressionDeflate:
		fr := flate.NewReader(src)
		defer fr.Close()
		r = fr
	case format.CompressionZstd:
		zr, err := zstd.NewReader(src)
		require.NoError(t, err)
		defer zr.Close()
		r = zr
	case format.CompressionS2:
		r = s2.NewReader(src)
	case format.CompressionLZ4:
		r = lz4.NewReader(src)
	default:
		t.Fatalf("no library reader for %s", cType)
	}

	out, err := io.ReadAll(r)
	require.NoError(t, err)

	return out
}

func TestDeflate_EmptyStreamIsWellFormed(t *testing.T) {
	codec := mustCodec(NewDeflateCompressor(DefaultLevel))

	stream, err := codec.NewStream()
	require.NoError(t, err)
	block, err := stream.Finish()
	require.NoError(t, err)

	// An empty raw DEFLATE stream still carries a final block marker.
	require.Positive(t, block.Len())
}

func TestStream_FinishTwice(t *testing.T) {
	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			stream, err := codec.NewStream()
			require.NoError(t, err)
			_, err = stream.Write([]byte("abc"))
			require.NoError(t, err)

			_, err = stream.Finish()
			require.NoError(t, err)

			_, err = stream.Finish()
			require.ErrorIs(t, err, ErrStreamFinished)

			_, err = stream.Write([]byte("more"))
			require.ErrorIs(t, err, ErrStreamFinished)
		})
	}
}

type failingWriter struct {
	err error
}

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }
func (w failingWriter) Close() error              { return nil }

func TestStream_StickyError(t *testing.T) {
	boom := errors.New("boom")
	stream := newEncoderStream("test", failingWriter{err: boom}, newBlockBuffer(), nil)

	_, err := stream.Write([]byte("x"))
	require.ErrorIs(t, err, boom)

	_, err = stream.Write([]byte("y"))
	require.ErrorIs(t, err, boom)

	_, err = stream.Finish()
	require.ErrorIs(t, err, boom)

	_, err = stream.Finish()
	require.ErrorIs(t, err, ErrStreamFinished)
}

func TestBlock_Checksum(t *testing.T) {
	a := Block{Data: []byte("abc")}
	b := Block{Data: []byte("abd")}

	require.Equal(t, a.Checksum(), Block{Data: []byte("abc")}.Checksum())
	require.NotEqual(t, a.Checksum(), b.Checksum())
	require.Equal(t, 3, a.Len())
}

func TestAllCodecs_CorruptedData(t *testing.T) {
	corrupted := []byte{0xFF, 0xFE, 0xFD, 0xFC, 0xFB, 0xFA, 0xF9, 0xF8}

	for name, codec := range getAllCodecs() {
		if name == "NoOp" {
			continue
		}
		t.Run(name, func(t *testing.T) {
			_, err := codec.Decompress(corrupted)
			require.Error(t, err)
		})
	}
}

func TestNoOpCompressor_RoundTrip(t *testing.T) {
	codec := NewNoOpCompressor()
	data := []byte("plain bytes")

	compressed, err := codec.Compress(data)
	require.NoError(t, err)
	require.Equal(t, data, compressed)

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, decompressed)

	decompressed, err = codec.Decompress(nil)
	require.NoError(t, err)
	require.Nil(t, decompressed)
}

func TestAllCodecs_Compressible(t *testing.T) {
	data := bytes.Repeat([]byte{0, 0, 0, 0, 1, 0, 0, 0}, 4096)

	for name, codec := range getAllCodecs() {
		if name == "NoOp" {
			continue
		}
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(data)
			require.NoError(t, err)
			require.Less(t, len(compressed), len(data)/4)
		})
	}
}

func TestDetectFramed(t *testing.T) {
	tests := []struct {
		name     string
		codec    Codec
		expected format.CompressionType
	}{
		{"zstd", NewZstdCompressor(DefaultLevel), format.CompressionZstd},
		{"lz4", mustCodec(NewLZ4Compressor(DefaultLevel)), format.CompressionLZ4},
		{"s2", NewS2Compressor(DefaultLevel), format.CompressionS2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compressed, err := tt.codec.Compress(generateTestData(1024))
			require.NoError(t, err)

			cType, ok := DetectFramed(compressed)
			require.True(t, ok)
			require.Equal(t, tt.expected, cType)
		})
	}

	_, ok := DetectFramed([]byte("plain,csv,data\n1,2,3\n"))
	require.False(t, ok)

	_, ok = DetectFramed(nil)
	require.False(t, ok)
}
