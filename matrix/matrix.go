// Package matrix defines the row iterators consumed by the row dump drivers,
// together with two in-memory implementations: a row-major Dense matrix and a
// compressed sparse row (CSR) matrix.
//
// Cells are float64. Integer and boolean matrices mark missing cells with
// encoding.NAValue and double matrices with NaN; the matrices themselves do
// not interpret the sentinels.
package matrix

import (
	"errors"
)

var (
	// ErrShape is returned when the supplied storage does not match the declared shape.
	ErrShape = errors.New("matrix shape mismatch")
	// ErrIndexOrder is returned when sparse column indices are not strictly ascending or out of range.
	ErrIndexOrder = errors.New("sparse column indices must be strictly ascending and within range")
)

// Shape reports the dimensions of a matrix.
type Shape interface {
	Rows() int
	Cols() int
}

// DenseMatrix yields rows with one value per column.
type DenseMatrix interface {
	Shape
	// DenseRow returns row r with Cols() values. buf is scratch storage the
	// implementation may fill and return; the result is only valid until the
	// next call.
	DenseRow(r int, buf []float64) []float64
}

// SparseRange is one sparse row: Number entries with their values and strictly
// ascending column indices.
type SparseRange struct {
	Number int
	Value  []float64
	Index  []int
}

// SparseMatrix yields rows as (value, index) pairs of their structural entries.
type SparseMatrix interface {
	Shape
	// SparseRow returns the structural entries of row r. vbuf and ibuf are
	// scratch storage; the result may alias them or the matrix's own storage
	// and must not be modified.
	SparseRow(r int, vbuf []float64, ibuf []int) SparseRange
}
