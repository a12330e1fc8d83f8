package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"

	"github.com/arloliu/rowpack/format"
)

// LZ4Compressor produces LZ4 frame-format blocks.
//
// The frame format (rather than raw LZ4 blocks) is used because it carries
// its own end marker and content is streamed in without knowing its size.
type LZ4Compressor struct {
	level lz4.CompressionLevel
}

var _ Codec = LZ4Compressor{}

// NewLZ4Compressor creates a new LZ4 compressor.
//
// Parameters:
//   - level: DefaultLevel for lz4.Fast, or 1-9 for the high-compression levels
//
// Returns an error if the level is out of range.
func NewLZ4Compressor(level int) (LZ4Compressor, error) {
	levels := []lz4.CompressionLevel{
		lz4.Fast, lz4.Level1, lz4.Level2, lz4.Level3, lz4.Level4,
		lz4.Level5, lz4.Level6, lz4.Level7, lz4.Level8, lz4.Level9,
	}

	if level < 0 || level >= len(levels) {
		return LZ4Compressor{}, fmt.Errorf("invalid lz4 level: %d", level)
	}

	return LZ4Compressor{level: levels[level]}, nil
}

// Type returns format.CompressionLZ4.
func (c LZ4Compressor) Type() format.CompressionType {
	return format.CompressionLZ4
}

// NewStream opens a unit stream producing one LZ4 frame.
func (c LZ4Compressor) NewStream() (Stream, error) {
	out := newBlockBuffer()
	w := lz4.NewWriter(out)

	err := w.Apply(
		lz4.ConcurrencyOption(1),
		lz4.CompressionLevelOption(c.level),
	)
	if err != nil {
		return nil, fmt.Errorf("lz4 stream options: %w", err)
	}

	return newEncoderStream("lz4", w, out, nil), nil
}

// Compress compresses data as one LZ4 frame.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	return compressOneShot(c, data)
}

// Decompress decompresses one LZ4 frame.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out, err := io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
	if err != nil {
		return nil, fmt.Errorf("lz4 decompression failed: %w", err)
	}

	return out, nil
}
