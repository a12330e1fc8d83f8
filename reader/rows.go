package reader

import (
	"fmt"
	"io"

	"github.com/arloliu/rowpack/dump"
	"github.com/arloliu/rowpack/encoding"
	"github.com/arloliu/rowpack/format"
)

// DenseReader decodes rows written by dump.Dumper.DumpDenseRows.
type DenseReader struct {
	blocks *blockReader
	kind   format.ElementKind
}

// NewDenseReader creates a reader over src using the manifest of a dense dump.
func NewDenseReader(src io.ReaderAt, m dump.Manifest, kind format.ElementKind, opts ...Option) (*DenseReader, error) {
	if !kind.IsRowKind() {
		return nil, fmt.Errorf("%w: %s rows", format.ErrUnsupportedKind, kind)
	}

	blocks, err := newBlockReader(src, opts, m)
	if err != nil {
		return nil, err
	}

	return &DenseReader{blocks: blocks, kind: kind}, nil
}

// NumRows returns the number of rows.
func (r *DenseReader) NumRows() int {
	return r.blocks.index.Len()
}

// Row decodes row i. Missing integer and boolean cells are encoding.NAValue.
func (r *DenseReader) Row(i int) ([]float64, error) {
	raw, err := r.blocks.read(i, 0)
	if err != nil {
		return nil, err
	}

	vals, err := encoding.DecodeValues(r.kind, raw, r.blocks.engine)
	if err != nil {
		return nil, fmt.Errorf("%w: row %d: %w", ErrCorruptBlock, i, err)
	}

	return vals, nil
}

// SparseReader decodes rows written by dump.Dumper.DumpSparseRows.
type SparseReader struct {
	blocks *blockReader
	kind   format.ElementKind
	deltas []int32
}

// NewSparseReader creates a reader over src using the two manifests of a sparse dump.
func NewSparseReader(src io.ReaderAt, values, indices dump.Manifest, kind format.ElementKind, opts ...Option) (*SparseReader, error) {
	if !kind.IsRowKind() {
		return nil, fmt.Errorf("%w: %s rows", format.ErrUnsupportedKind, kind)
	}

	blocks, err := newBlockReader(src, opts, values, indices)
	if err != nil {
		return nil, err
	}

	return &SparseReader{blocks: blocks, kind: kind}, nil
}

// NumRows returns the number of rows.
func (r *SparseReader) NumRows() int {
	return r.blocks.index.Len()
}

// Row decodes the values and column indices of row i.
func (r *SparseReader) Row(i int) ([]float64, []int, error) {
	raw, err := r.blocks.read(i, 0)
	if err != nil {
		return nil, nil, err
	}

	vals, err := encoding.DecodeValues(r.kind, raw, r.blocks.engine)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: row %d values: %w", ErrCorruptBlock, i, err)
	}

	raw, err = r.blocks.read(i, 1)
	if err != nil {
		return nil, nil, err
	}

	r.deltas, err = encoding.DecodeInt32s(r.deltas, raw, r.blocks.engine)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: row %d indices: %w", ErrCorruptBlock, i, err)
	}

	if len(r.deltas) != len(vals) {
		return nil, nil, fmt.Errorf("%w: row %d has %d values and %d indices", ErrCorruptBlock, i, len(vals), len(r.deltas))
	}

	return vals, encoding.DeltaDecode(nil, r.deltas), nil
}
