package dump

import (
	"fmt"
	"io"

	"github.com/arloliu/rowpack/compress"
	"github.com/arloliu/rowpack/encoding"
	"github.com/arloliu/rowpack/endian"
	"github.com/arloliu/rowpack/format"
	"github.com/arloliu/rowpack/internal/options"
)

// Dumper runs the vector and row dump drivers with one codec and byte order.
//
// Note: A Dumper is NOT thread-safe. Its scratch buffers are reused across
// units and across dumps.
type Dumper struct {
	cfg      *Config
	codec    compress.Codec
	engine   endian.EndianEngine
	transfer *encoding.Transfer

	rowBuf []float64
	valBuf []float64
	idxBuf []int
	strBuf []byte
}

// New creates a Dumper. Without options it writes raw DEFLATE blocks in the
// native byte order.
func New(opts ...Option) (*Dumper, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.CreateCodec(cfg.compression, cfg.level)
	if err != nil {
		return nil, err
	}

	engine := endian.EngineFor(cfg.order)

	return &Dumper{
		cfg:      cfg,
		codec:    codec,
		engine:   engine,
		transfer: encoding.NewTransfer(engine),
	}, nil
}

// Compression returns the codec type of the blocks this Dumper writes.
func (d *Dumper) Compression() format.CompressionType {
	return d.codec.Type()
}

// ByteOrder returns the resolved byte order of multi-byte elements.
func (d *Dumper) ByteOrder() endian.ByteOrder {
	return d.cfg.order.Resolve()
}

// Codec returns the codec, which also decompresses the blocks this Dumper writes.
func (d *Dumper) Codec() compress.Codec {
	return d.codec
}

// writeUnit compresses payload as one block, appends it to w and records it in m.
func (d *Dumper) writeUnit(w io.Writer, m *Manifest, payload []byte) error {
	stream, err := d.codec.NewStream()
	if err != nil {
		return err
	}

	if len(payload) > 0 {
		if _, err := stream.Write(payload); err != nil {
			return err
		}
	}

	block, err := stream.Finish()
	if err != nil {
		return err
	}

	if _, err := w.Write(block.Data); err != nil {
		return fmt.Errorf("failed to write block: %w", err)
	}
	m.add(block, len(payload))

	return nil
}
