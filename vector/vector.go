// Package vector holds the heterogeneous vectors accepted by the vector dump
// driver. Each vector is one unit on disk.
package vector

import (
	"github.com/arloliu/rowpack/encoding"
	"github.com/arloliu/rowpack/format"
)

// Vector is one element of a vector collection.
type Vector interface {
	Kind() format.ElementKind
	Len() int
}

// String is a vector of UTF-8 strings. Missing, when non-nil, has one entry per
// value; a true entry marks the value as missing and its text is ignored.
type String struct {
	Values  []string
	Missing []bool
}

// Boolean is a vector of tri-state booleans.
type Boolean struct {
	Values []encoding.Bool
}

// Integer is a vector of native ints, narrowed to 32 bits on write.
// encoding.NAInteger marks a missing value.
type Integer struct {
	Values []int
}

// Double is a vector of float64; NaN marks a missing value.
type Double struct {
	Values []float64
}

var (
	_ Vector = (*String)(nil)
	_ Vector = (*Boolean)(nil)
	_ Vector = (*Integer)(nil)
	_ Vector = (*Double)(nil)
)

// NewString creates a string vector with no missing values.
func NewString(values ...string) *String {
	return &String{Values: values}
}

// NewBoolean creates a boolean vector from Go bools.
func NewBoolean(values ...bool) *Boolean {
	out := make([]encoding.Bool, len(values))
	for i, v := range values {
		out[i] = encoding.BoolOf(v)
	}

	return &Boolean{Values: out}
}

// NewInteger creates an integer vector.
func NewInteger(values ...int) *Integer {
	return &Integer{Values: values}
}

// NewDouble creates a double vector.
func NewDouble(values ...float64) *Double {
	return &Double{Values: values}
}

func (v *String) Kind() format.ElementKind  { return format.KindString }
func (v *Boolean) Kind() format.ElementKind { return format.KindBoolean }
func (v *Integer) Kind() format.ElementKind { return format.KindInteger }
func (v *Double) Kind() format.ElementKind  { return format.KindDouble }

func (v *String) Len() int  { return len(v.Values) }
func (v *Boolean) Len() int { return len(v.Values) }
func (v *Integer) Len() int { return len(v.Values) }
func (v *Double) Len() int  { return len(v.Values) }

// IsMissing reports whether the i-th string is missing.
func (v *String) IsMissing(i int) bool {
	return i < len(v.Missing) && v.Missing[i]
}

// AppendNA appends a missing string.
func (v *String) AppendNA() {
	if v.Missing == nil {
		v.Missing = make([]bool, len(v.Values), len(v.Values)+1)
	}
	v.Values = append(v.Values, "")
	v.Missing = append(v.Missing, true)
}

// Append appends a present string.
func (v *String) Append(s string) {
	v.Values = append(v.Values, s)
	if v.Missing != nil {
		v.Missing = append(v.Missing, false)
	}
}
