package compress

import (
	"github.com/arloliu/rowpack/format"
	"github.com/arloliu/rowpack/internal/pool"
)

// NoOpCompressor stores units uncompressed.
//
// This codec is useful for:
//   - Testing and debugging the wire layout byte-for-byte
//   - Data that is already compressed or not suitable for compression
//   - Baseline performance measurements
type NoOpCompressor struct{}

var _ Codec = NoOpCompressor{}

// NewNoOpCompressor creates a new no-operation compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Type returns format.CompressionNone.
func (c NoOpCompressor) Type() format.CompressionType {
	return format.CompressionNone
}

// NewStream opens a stream whose block is the concatenation of everything written.
func (c NoOpCompressor) NewStream() (Stream, error) {
	out := newBlockBuffer()
	return newEncoderStream("none", nopCloser{out}, out, nil), nil
}

// Compress returns a copy of data.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return compressOneShot(c, data)
}

// Decompress returns the input data as-is, without copying.
//
// Note: The returned slice shares the same underlying memory as the input.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return data, nil
}

type nopCloser struct {
	*pool.ByteBuffer
}

func (nopCloser) Close() error { return nil }
