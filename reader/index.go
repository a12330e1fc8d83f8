package reader

import "fmt"

// Index locates the blocks of a dump.
//
// A dump with one block per unit has one size list. A sparse dump interleaves
// two: the value block of row r, then its index block. NewIndex takes the size
// lists in that on-disk order.
type Index struct {
	parts   int
	offsets []int64
	sizes   []int
}

// NewIndex builds an index from one or more size lists of equal length.
func NewIndex(sizes ...[]int) (*Index, error) {
	if len(sizes) == 0 {
		return nil, fmt.Errorf("%w: no size list", ErrCorruptBlock)
	}

	units := len(sizes[0])
	for p, s := range sizes {
		if len(s) != units {
			return nil, fmt.Errorf("%w: size list %d has %d entries, want %d", ErrCorruptBlock, p, len(s), units)
		}
	}

	idx := &Index{
		parts:   len(sizes),
		offsets: make([]int64, 0, units*len(sizes)),
		sizes:   make([]int, 0, units*len(sizes)),
	}

	var off int64
	for u := range units {
		for p, s := range sizes {
			if s[u] < 0 {
				return nil, fmt.Errorf("%w: negative size at unit %d part %d", ErrCorruptBlock, u, p)
			}
			idx.offsets = append(idx.offsets, off)
			idx.sizes = append(idx.sizes, s[u])
			off += int64(s[u])
		}
	}

	return idx, nil
}

// Len returns the number of units.
func (x *Index) Len() int {
	if x.parts == 0 {
		return 0
	}

	return len(x.sizes) / x.parts
}

// Block returns the offset and size of the part-th block of unit u.
func (x *Index) Block(u, part int) (int64, int, error) {
	if u < 0 || u >= x.Len() || part < 0 || part >= x.parts {
		return 0, 0, fmt.Errorf("%w: unit %d part %d of %d units", ErrOutOfRange, u, part, x.Len())
	}

	i := u*x.parts + part

	return x.offsets[i], x.sizes[i], nil
}

// TotalSize returns the byte length of the dump.
func (x *Index) TotalSize() int64 {
	if len(x.sizes) == 0 {
		return 0
	}

	last := len(x.sizes) - 1

	return x.offsets[last] + int64(x.sizes[last])
}
