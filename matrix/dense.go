package matrix

import (
	"fmt"

	"github.com/arloliu/rowpack/internal/pool"
)

// Dense is a row-major in-memory matrix.
type Dense struct {
	rows, cols int
	data       []float64
}

var (
	_ DenseMatrix  = (*Dense)(nil)
	_ SparseMatrix = (*Dense)(nil)
)

// NewDense creates a rows x cols matrix over data, which is stored row after row.
// data is used directly, not copied.
func NewDense(rows, cols int, data []float64) (*Dense, error) {
	if rows < 0 || cols < 0 || len(data) != rows*cols {
		return nil, fmt.Errorf("%w: %d values for %dx%d", ErrShape, len(data), rows, cols)
	}

	return &Dense{rows: rows, cols: cols, data: data}, nil
}

// DenseFromRows copies a slice of equally long rows into a Dense matrix.
func DenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 {
		return &Dense{}, nil
	}

	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for r, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrShape, r, len(row), cols)
		}
		data = append(data, row...)
	}

	return &Dense{rows: len(rows), cols: cols, data: data}, nil
}

func (m *Dense) Rows() int { return m.rows }
func (m *Dense) Cols() int { return m.cols }

// At returns the value at (r, c).
func (m *Dense) At(r, c int) float64 {
	return m.data[r*m.cols+c]
}

// DenseRow copies row r into buf.
func (m *Dense) DenseRow(r int, buf []float64) []float64 {
	buf = pool.Resize(buf, m.cols)
	copy(buf, m.data[r*m.cols:(r+1)*m.cols])

	return buf
}

// SparseRow returns every cell of row r that is not exactly zero. Missing
// sentinels and NaN are kept as structural entries.
func (m *Dense) SparseRow(r int, vbuf []float64, ibuf []int) SparseRange {
	vbuf = vbuf[:0]
	ibuf = ibuf[:0]

	for c, v := range m.data[r*m.cols : (r+1)*m.cols] {
		if v == 0 {
			continue
		}
		vbuf = append(vbuf, v)
		ibuf = append(ibuf, c)
	}

	return SparseRange{Number: len(vbuf), Value: vbuf, Index: ibuf}
}
