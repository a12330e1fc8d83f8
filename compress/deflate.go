package compress

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/flate"

	"github.com/arloliu/rowpack/format"
)

// DeflateCompressor produces raw DEFLATE blocks (RFC 1951, no zlib or gzip
// wrapper). It is the default codec of the rowpack format.
//
// Flate writers are large, so they are pooled per compressor and Reset before
// each stream, which discards all history from the previous unit.
type DeflateCompressor struct {
	level   int
	writers *sync.Pool
}

var _ Codec = DeflateCompressor{}

// NewDeflateCompressor creates a raw DEFLATE codec.
//
// Parameters:
//   - level: flate level from flate.HuffmanOnly (-2) to flate.BestCompression (9);
//     DefaultLevel maps to flate.DefaultCompression
//
// Returns an error if the level is out of range.
func NewDeflateCompressor(level int) (DeflateCompressor, error) {
	if level == DefaultLevel {
		level = flate.DefaultCompression
	}

	if level < flate.HuffmanOnly || level > flate.BestCompression {
		return DeflateCompressor{}, fmt.Errorf("invalid deflate level: %d", level)
	}

	c := DeflateCompressor{level: level}
	c.writers = &sync.Pool{
		New: func() any {
			w, err := flate.NewWriter(io.Discard, c.level)
			if err != nil {
				// Level is validated above.
				panic(fmt.Sprintf("failed to create flate writer for pool: %v", err))
			}
			return w
		},
	}

	return c, nil
}

// Type returns format.CompressionDeflate.
func (c DeflateCompressor) Type() format.CompressionType {
	return format.CompressionDeflate
}

// NewStream opens a raw DEFLATE unit stream.
func (c DeflateCompressor) NewStream() (Stream, error) {
	out := newBlockBuffer()
	w, _ := c.writers.Get().(*flate.Writer)
	w.Reset(out)

	return newEncoderStream("deflate", w, out, func(enc io.WriteCloser) {
		fw, _ := enc.(*flate.Writer)
		fw.Reset(io.Discard)
		c.writers.Put(fw)
	}), nil
}

// Compress compresses data as one raw DEFLATE block.
func (c DeflateCompressor) Compress(data []byte) ([]byte, error) {
	return compressOneShot(c, data)
}

// Decompress inflates one raw DEFLATE block.
func (c DeflateCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	r := flate.NewReader(bytes.NewReader(data))
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("deflate decompression failed: %w", err)
	}

	return out, nil
}
