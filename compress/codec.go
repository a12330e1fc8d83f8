package compress

import (
	"fmt"

	"github.com/arloliu/rowpack/format"
)

// DefaultLevel selects each codec's default compression level.
const DefaultLevel = 0

// Compressor compresses one complete unit in a single call.
type Compressor interface {
	// Compress compresses data as one self-contained block.
	//
	// It is equivalent to opening a stream, writing data once and finishing it.
	// The returned slice is newly allocated and owned by the caller.
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor.
type Decompressor interface {
	// Decompress inflates one complete block produced by the matching codec.
	//
	// Returns nil for empty input. Returns an error if the block is corrupted
	// or was produced by a different algorithm.
	Decompress(data []byte) ([]byte, error)
}

// Codec is a compression algorithm able to open independent unit streams.
//
// Every stream returned by NewStream starts from a fresh compression context:
// no dictionary or history is shared between blocks, so any block can be
// decompressed in isolation.
//
// Codec values are safe for concurrent use; the streams they open are not.
type Codec interface {
	Compressor
	Decompressor

	// Type returns the algorithm identifier.
	Type() format.CompressionType

	// NewStream opens a new unit stream.
	NewStream() (Stream, error)
}

// CreateCodec creates a codec for the given algorithm and level.
//
// The level is interpreted per algorithm; DefaultLevel picks the codec's
// default. An unknown algorithm returns an error wrapping
// format.ErrUnsupportedCompression.
func CreateCodec(compressionType format.CompressionType, level int) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionDeflate:
		return NewDeflateCompressor(level)
	case format.CompressionZstd:
		return NewZstdCompressor(level), nil
	case format.CompressionS2:
		return NewS2Compressor(level), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(level)
	default:
		return nil, fmt.Errorf("%w: %s", format.ErrUnsupportedCompression, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone:    NewNoOpCompressor(),
	format.CompressionDeflate: mustCodec(NewDeflateCompressor(DefaultLevel)),
	format.CompressionZstd:    NewZstdCompressor(DefaultLevel),
	format.CompressionS2:      NewS2Compressor(DefaultLevel),
	format.CompressionLZ4:     mustCodec(NewLZ4Compressor(DefaultLevel)),
}

// GetCodec returns the shared default-level codec for the given algorithm.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", format.ErrUnsupportedCompression, compressionType)
}

func mustCodec(codec Codec, err error) Codec {
	if err != nil {
		panic(fmt.Sprintf("failed to create default codec: %v", err))
	}

	return codec
}

// compressOneShot runs data through a single stream of codec.
func compressOneShot(codec Codec, data []byte) ([]byte, error) {
	stream, err := codec.NewStream()
	if err != nil {
		return nil, err
	}

	if _, err := stream.Write(data); err != nil {
		_, _ = stream.Finish()
		return nil, err
	}

	block, err := stream.Finish()
	if err != nil {
		return nil, err
	}

	return block.Data, nil
}
