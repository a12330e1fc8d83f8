package dump

import (
	"fmt"
	"io"

	"github.com/arloliu/rowpack/encoding"
	"github.com/arloliu/rowpack/format"
	"github.com/arloliu/rowpack/vector"
)

// VectorResult is the outcome of DumpVectors.
type VectorResult struct {
	// Manifest has one entry per input vector, in input order.
	Manifest Manifest `json:"manifest"`
}

// DumpVectors writes each vector in vecs to w as one block.
//
// Booleans are written as wire bytes, integers narrowed to int32, doubles as
// float64 and strings as NUL-terminated records. A vector of any other type
// stops the dump with an error wrapping format.ErrUnsupportedKind; blocks of
// earlier vectors have already been written to w.
func (d *Dumper) DumpVectors(w io.Writer, vecs []vector.Vector) (*VectorResult, error) {
	log := d.cfg.log("vectors")
	log.Debug().
		Int("vectors", len(vecs)).
		Str("compression", d.codec.Type().String()).
		Msg("dump started")

	res := &VectorResult{Manifest: newManifest(len(vecs))}

	for i, vec := range vecs {
		payload, err := d.vectorPayload(vec)
		if err != nil {
			return nil, fmt.Errorf("vector %d: %w", i, err)
		}

		if err := d.writeUnit(w, &res.Manifest, payload); err != nil {
			return nil, fmt.Errorf("vector %d: %w", i, err)
		}
	}

	log.Debug().
		Int("vectors", len(vecs)).
		Int64("bytes", res.Manifest.CompressedBytes).
		Msg("dump finished")

	return res, nil
}

func (d *Dumper) vectorPayload(vec vector.Vector) ([]byte, error) {
	switch v := vec.(type) {
	case *vector.String:
		d.strBuf = d.strBuf[:0]
		for i, s := range v.Values {
			d.strBuf = encoding.AppendStringRecord(d.strBuf, s, v.IsMissing(i))
		}

		return d.strBuf, nil
	case *vector.Boolean:
		return d.transfer.Booleans(v.Values), nil
	case *vector.Integer:
		return d.transfer.Integers(v.Values), nil
	case *vector.Double:
		return d.transfer.Float64s(v.Values), nil
	default:
		return nil, fmt.Errorf("%w: %T", format.ErrUnsupportedKind, vec)
	}
}
