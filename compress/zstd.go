package compress

import (
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/arloliu/rowpack/format"
)

// ZstdCompressor provides Zstandard compression of rowpack units.
//
// Each block is one complete zstd frame. Compared with the default DEFLATE
// codec it trades a larger per-block header for better ratios on wide rows.
//
// Performance characteristics:
//   - Compression: ~5-20 ns/byte (depending on compression level)
//   - Decompression: ~2-5 ns/byte
//   - Memory usage: Moderate (encoders and decoders are pooled)
type ZstdCompressor struct {
	level    zstd.EncoderLevel
	encoders *sync.Pool
}

var _ Codec = ZstdCompressor{}

// zstdDecoderPool pools zstd decoders for reuse to eliminate allocation overhead.
// The klauspost/compress/zstd decoder is designed to run without allocations
// after a warmup, so keeping decoders around pays off across many small blocks.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create zstd decoder for pool: %v", err))
		}
		return decoder
	},
}

// NewZstdCompressor creates a Zstd compressor.
//
// Parameters:
//   - level: zstd level (1-22, mapped to the nearest encoder speed);
//     DefaultLevel maps to zstd.SpeedDefault
//
// Example:
//
//	compressor := NewZstdCompressor(DefaultLevel)
//	compressed, err := compressor.Compress(data)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor(level int) ZstdCompressor {
	encLevel := zstd.SpeedDefault
	if level != DefaultLevel {
		encLevel = zstd.EncoderLevelFromZstd(level)
	}

	c := ZstdCompressor{level: encLevel}
	c.encoders = &sync.Pool{
		New: func() any {
			encoder, err := zstd.NewWriter(nil,
				zstd.WithEncoderLevel(c.level),
				zstd.WithEncoderConcurrency(1),
				zstd.WithEncoderCRC(false),
				zstd.WithZeroFrames(true),
			)
			if err != nil {
				panic(fmt.Sprintf("failed to create zstd encoder for pool: %v", err))
			}
			return encoder
		},
	}

	return c
}

// Type returns format.CompressionZstd.
func (c ZstdCompressor) Type() format.CompressionType {
	return format.CompressionZstd
}

// NewStream opens a unit stream that produces one zstd frame.
func (c ZstdCompressor) NewStream() (Stream, error) {
	out := newBlockBuffer()
	encoder, _ := c.encoders.Get().(*zstd.Encoder)
	encoder.Reset(out)

	return newEncoderStream("zstd", encoder, out, func(enc io.WriteCloser) {
		ze, _ := enc.(*zstd.Encoder)
		ze.Reset(io.Discard)
		c.encoders.Put(ze)
	}), nil
}

// Compress compresses data as a single zstd frame.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return compressOneShot(c, data)
}

// Decompress decompresses one zstd block using a pooled decoder.
//
// This method validates the input data format and returns an error if the
// data is corrupted or was not compressed with Zstd.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decoder, _ := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	// DecodeAll is stateless; the decoder stays reusable even if this call fails.
	decompressed, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return decompressed, nil
}
