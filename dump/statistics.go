package dump

import (
	"github.com/arloliu/rowpack/encoding"
	"github.com/arloliu/rowpack/format"
)

// Statistics are the row and column aggregates collected while dumping a matrix.
//
// Only non-missing cells are observed: each adds its value to the sums of its
// row and column and, when nonzero, increments their nonzero counts.
type Statistics struct {
	RowSum        []float64 `json:"row_sum"`
	RowNonzero    []int     `json:"row_nonzero"`
	ColumnSum     []float64 `json:"column_sum"`
	ColumnNonzero []int     `json:"column_nonzero"`
}

func newStatistics(rows, cols int) Statistics {
	return Statistics{
		RowSum:        make([]float64, rows),
		RowNonzero:    make([]int, rows),
		ColumnSum:     make([]float64, cols),
		ColumnNonzero: make([]int, cols),
	}
}

func (s *Statistics) observeDense(kind format.ElementKind, r int, vals []float64) {
	for c, v := range vals {
		s.observe(kind, r, c, v)
	}
}

func (s *Statistics) observeSparse(kind format.ElementKind, r int, vals []float64, idx []int) {
	for i, v := range vals {
		s.observe(kind, r, idx[i], v)
	}
}

func (s *Statistics) observe(kind format.ElementKind, r, c int, v float64) {
	if encoding.IsMissing(kind, v) {
		return
	}

	s.RowSum[r] += v
	s.ColumnSum[c] += v
	if v != 0 {
		s.RowNonzero[r]++
		s.ColumnNonzero[c]++
	}
}
