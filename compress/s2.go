package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/s2"

	"github.com/arloliu/rowpack/format"
	"github.com/arloliu/rowpack/internal/pool"
)

// S2Compressor produces S2 stream-format blocks.
//
// Levels: DefaultLevel or 1 for the default speed, 2 for better compression,
// 3 and above for best compression.
type S2Compressor struct {
	level int
}

var _ Codec = S2Compressor{}

// NewS2Compressor creates a new S2 compressor with the specified level.
func NewS2Compressor(level int) S2Compressor {
	return S2Compressor{level: level}
}

// Type returns format.CompressionS2.
func (c S2Compressor) Type() format.CompressionType {
	return format.CompressionS2
}

func (c S2Compressor) writerOptions() []s2.WriterOption {
	opts := []s2.WriterOption{s2.WriterConcurrency(1)}

	switch {
	case c.level >= 3:
		opts = append(opts, s2.WriterBestCompression())
	case c.level == 2:
		opts = append(opts, s2.WriterBetterCompression())
	}

	return opts
}

// NewStream opens a unit stream producing one S2 stream.
func (c S2Compressor) NewStream() (Stream, error) {
	out := newBlockBuffer()
	w := s2.NewWriter(out, c.writerOptions()...)

	return newEncoderStream("s2", s2StreamWriter{Writer: w, out: out}, out, nil), nil
}

// Compress compresses data as one S2 stream.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	return compressOneShot(c, data)
}

// Decompress decompresses one S2 (or Snappy framed) stream.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out, err := io.ReadAll(s2.NewReader(bytes.NewReader(data)))
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}

	return out, nil
}

// s2StreamWriter makes an empty unit a valid stream. The s2 writer emits the
// stream identifier lazily, so nothing would be written for empty input.
type s2StreamWriter struct {
	*s2.Writer
	out *pool.ByteBuffer
}

func (w s2StreamWriter) Close() error {
	if err := w.Writer.Close(); err != nil {
		return err
	}
	if w.out.Len() == 0 {
		_, _ = w.out.Write(s2StreamMagic)
	}

	return nil
}
