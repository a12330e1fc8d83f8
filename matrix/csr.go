package matrix

import (
	"fmt"

	"github.com/arloliu/rowpack/internal/pool"
)

// CSR is a compressed sparse row matrix.
//
// Row r holds the entries Data[Indptr[r]:Indptr[r+1]] at columns
// Indices[Indptr[r]:Indptr[r+1]].
type CSR struct {
	rows, cols int
	indptr     []int
	indices    []int
	data       []float64
}

var (
	_ DenseMatrix  = (*CSR)(nil)
	_ SparseMatrix = (*CSR)(nil)
)

// NewCSR validates and wraps CSR storage. The slices are used directly, not copied.
func NewCSR(rows, cols int, indptr, indices []int, data []float64) (*CSR, error) {
	if rows < 0 || cols < 0 || len(indptr) != rows+1 || len(indices) != len(data) {
		return nil, fmt.Errorf("%w: indptr=%d indices=%d data=%d for %dx%d",
			ErrShape, len(indptr), len(indices), len(data), rows, cols)
	}
	if indptr[0] != 0 || indptr[rows] != len(data) {
		return nil, fmt.Errorf("%w: indptr must span [0, %d]", ErrShape, len(data))
	}

	for r := range rows {
		lo, hi := indptr[r], indptr[r+1]
		if lo > hi {
			return nil, fmt.Errorf("%w: indptr decreases at row %d", ErrShape, r)
		}
		prev := -1
		for _, c := range indices[lo:hi] {
			if c <= prev || c >= cols {
				return nil, fmt.Errorf("%w: row %d column %d", ErrIndexOrder, r, c)
			}
			prev = c
		}
	}

	return &CSR{rows: rows, cols: cols, indptr: indptr, indices: indices, data: data}, nil
}

// FromDense converts m, dropping cells that are exactly zero.
func FromDense(m DenseMatrix) *CSR {
	rows, cols := m.Rows(), m.Cols()
	out := &CSR{rows: rows, cols: cols, indptr: make([]int, 1, rows+1)}

	var buf []float64
	for r := range rows {
		buf = m.DenseRow(r, buf)
		for c, v := range buf {
			if v == 0 {
				continue
			}
			out.indices = append(out.indices, c)
			out.data = append(out.data, v)
		}
		out.indptr = append(out.indptr, len(out.data))
	}

	return out
}

func (m *CSR) Rows() int { return m.rows }
func (m *CSR) Cols() int { return m.cols }

// NNZ returns the number of structural entries.
func (m *CSR) NNZ() int { return len(m.data) }

// SparseRow returns views into the matrix storage; the buffers are unused.
func (m *CSR) SparseRow(r int, _ []float64, _ []int) SparseRange {
	lo, hi := m.indptr[r], m.indptr[r+1]

	return SparseRange{Number: hi - lo, Value: m.data[lo:hi], Index: m.indices[lo:hi]}
}

// DenseRow expands row r into buf, filling absent cells with zero.
func (m *CSR) DenseRow(r int, buf []float64) []float64 {
	buf = pool.Resize(buf, m.cols)
	clear(buf)

	lo, hi := m.indptr[r], m.indptr[r+1]
	for i := lo; i < hi; i++ {
		buf[m.indices[i]] = m.data[i]
	}

	return buf
}
