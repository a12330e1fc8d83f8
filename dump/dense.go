package dump

import (
	"fmt"
	"io"

	"github.com/arloliu/rowpack/format"
	"github.com/arloliu/rowpack/matrix"
)

// DenseResult is the outcome of DumpDenseRows.
type DenseResult struct {
	// Manifest has one entry per row.
	Manifest   Manifest   `json:"manifest"`
	Statistics Statistics `json:"statistics"`
}

// DumpDenseRows writes every row of m to w as one block of kind elements, in
// increasing row order, and collects row and column statistics on the way.
//
// kind must be a row kind (boolean, integer or double); anything else fails
// before a byte is written.
func (d *Dumper) DumpDenseRows(w io.Writer, m matrix.DenseMatrix, kind format.ElementKind) (*DenseResult, error) {
	if !kind.IsRowKind() {
		return nil, fmt.Errorf("%w: %s rows", format.ErrUnsupportedKind, kind)
	}

	rows, cols := m.Rows(), m.Cols()

	log := d.cfg.log("dense")
	log.Debug().
		Int("rows", rows).
		Int("cols", cols).
		Str("kind", kind.String()).
		Str("compression", d.codec.Type().String()).
		Msg("dump started")

	res := &DenseResult{
		Manifest:   newManifest(rows),
		Statistics: newStatistics(rows, cols),
	}

	for r := range rows {
		d.rowBuf = m.DenseRow(r, d.rowBuf)
		res.Statistics.observeDense(kind, r, d.rowBuf)

		payload, err := d.transfer.Values(kind, d.rowBuf)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", r, err)
		}

		if err := d.writeUnit(w, &res.Manifest, payload); err != nil {
			return nil, fmt.Errorf("row %d: %w", r, err)
		}
	}

	log.Debug().
		Int("rows", rows).
		Int64("bytes", res.Manifest.CompressedBytes).
		Float64("ratio", res.Manifest.Ratio()).
		Msg("dump finished")

	return res, nil
}
