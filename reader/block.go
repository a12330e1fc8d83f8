package reader

import (
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/rowpack/compress"
	"github.com/arloliu/rowpack/dump"
	"github.com/arloliu/rowpack/endian"
	"github.com/arloliu/rowpack/format"
	"github.com/arloliu/rowpack/internal/hash"
	"github.com/arloliu/rowpack/internal/options"
	"github.com/arloliu/rowpack/internal/pool"
)

// blockReader reads and decompresses single blocks from src.
type blockReader struct {
	src       io.ReaderAt
	index     *Index
	checksums [][]uint64
	codec     compress.Codec
	engine    endian.EndianEngine
	buf       []byte
}

func newBlockReader(src io.ReaderAt, opts []Option, manifests ...dump.Manifest) (*blockReader, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}

	sizes := make([][]int, len(manifests))
	for i, m := range manifests {
		sizes[i] = m.Sizes
	}

	index, err := NewIndex(sizes...)
	if err != nil {
		return nil, err
	}

	br := &blockReader{
		src:    src,
		index:  index,
		codec:  codec,
		engine: endian.EngineFor(cfg.order),
	}

	if cfg.checksums {
		br.checksums = make([][]uint64, len(manifests))
		for i, m := range manifests {
			if len(m.Checksums) != len(m.Sizes) {
				return nil, fmt.Errorf("%w: manifest %d has %d checksums for %d blocks",
					ErrChecksumMismatch, i, len(m.Checksums), len(m.Sizes))
			}
			br.checksums[i] = m.Checksums
		}
	}

	return br, nil
}

// read returns the decompressed content of the part-th block of unit u. The
// result may alias the internal buffer and is valid until the next read.
func (b *blockReader) read(u, part int) ([]byte, error) {
	off, size, err := b.index.Block(u, part)
	if err != nil {
		return nil, err
	}

	b.buf = pool.Resize(b.buf, size)
	n, err := b.src.ReadAt(b.buf, off)
	if n < size {
		if err == nil || errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: unit %d truncated at %d of %d bytes", ErrCorruptBlock, u, n, size)
		}

		return nil, fmt.Errorf("failed to read unit %d: %w", u, err)
	}

	if b.checksums != nil {
		if got, want := hash.Block(b.buf), b.checksums[part][u]; got != want {
			return nil, fmt.Errorf("%w: unit %d part %d: got %016x, want %016x", ErrChecksumMismatch, u, part, got, want)
		}
	}

	raw, err := b.codec.Decompress(b.buf)
	if err != nil {
		return nil, fmt.Errorf("%w: unit %d: %w", ErrCorruptBlock, u, err)
	}

	return raw, nil
}

// ownedRead is read with a result that does not alias the internal buffer.
func (b *blockReader) ownedRead(u, part int) ([]byte, error) {
	raw, err := b.read(u, part)
	if err != nil || b.codec.Type() != format.CompressionNone {
		return raw, err
	}

	return append([]byte(nil), raw...), nil
}
