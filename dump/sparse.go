package dump

import (
	"fmt"
	"io"

	"github.com/arloliu/rowpack/format"
	"github.com/arloliu/rowpack/internal/pool"
	"github.com/arloliu/rowpack/matrix"
)

// SparseResult is the outcome of DumpSparseRows.
type SparseResult struct {
	// Values and Indices have one entry per row. On disk the value block of
	// row r is immediately followed by its index block.
	Values     Manifest   `json:"values"`
	Indices    Manifest   `json:"indices"`
	Statistics Statistics `json:"statistics"`
}

// DumpSparseRows writes every row of m to w as two blocks: the row's values as
// kind elements, then its delta-encoded column indices as int32 elements.
//
// Statistics only observe the entries m reports; absent cells are structural
// zeros. A row without entries still yields two blocks that decompress to
// nothing.
func (d *Dumper) DumpSparseRows(w io.Writer, m matrix.SparseMatrix, kind format.ElementKind) (*SparseResult, error) {
	if !kind.IsRowKind() {
		return nil, fmt.Errorf("%w: %s rows", format.ErrUnsupportedKind, kind)
	}

	rows, cols := m.Rows(), m.Cols()

	log := d.cfg.log("sparse")
	log.Debug().
		Int("rows", rows).
		Int("cols", cols).
		Str("kind", kind.String()).
		Str("compression", d.codec.Type().String()).
		Msg("dump started")

	res := &SparseResult{
		Values:     newManifest(rows),
		Indices:    newManifest(rows),
		Statistics: newStatistics(rows, cols),
	}

	d.valBuf = pool.Resize(d.valBuf, cols)
	d.idxBuf = pool.Resize(d.idxBuf, cols)

	var nnz int
	for r := range rows {
		sr := m.SparseRow(r, d.valBuf[:0], d.idxBuf[:0])
		if sr.Number < 0 || len(sr.Value) < sr.Number || len(sr.Index) < sr.Number {
			return nil, fmt.Errorf("row %d: %w: %d entries, %d values, %d indices",
				r, ErrMalformedRow, sr.Number, len(sr.Value), len(sr.Index))
		}
		vals, idx := sr.Value[:sr.Number], sr.Index[:sr.Number]
		if err := checkIndices(idx, cols); err != nil {
			return nil, fmt.Errorf("row %d: %w", r, err)
		}
		nnz += sr.Number

		res.Statistics.observeSparse(kind, r, vals, idx)

		payload, err := d.transfer.Values(kind, vals)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", r, err)
		}
		if err := d.writeUnit(w, &res.Values, payload); err != nil {
			return nil, fmt.Errorf("row %d values: %w", r, err)
		}

		if err := d.writeUnit(w, &res.Indices, d.transfer.Indices(idx)); err != nil {
			return nil, fmt.Errorf("row %d indices: %w", r, err)
		}
	}

	log.Debug().
		Int("rows", rows).
		Int("nnz", nnz).
		Int64("bytes", res.Values.CompressedBytes+res.Indices.CompressedBytes).
		Msg("dump finished")

	return res, nil
}

// checkIndices requires strictly ascending column indices within [0, cols).
func checkIndices(idx []int, cols int) error {
	prev := -1
	for _, c := range idx {
		if c <= prev || c >= cols {
			return fmt.Errorf("%w: column %d after %d in %d columns", ErrMalformedRow, c, prev, cols)
		}
		prev = c
	}

	return nil
}
