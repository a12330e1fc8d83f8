package reader

import (
	"fmt"
	"io"

	"github.com/arloliu/rowpack/dump"
	"github.com/arloliu/rowpack/encoding"
)

// VectorReader decodes vectors written by dump.Dumper.DumpVectors.
//
// Vector kinds are not recorded in the dump; the caller picks the accessor
// matching the kind each vector was written with.
type VectorReader struct {
	blocks *blockReader
}

// NewVectorReader creates a reader over src using the manifest of a vector dump.
func NewVectorReader(src io.ReaderAt, m dump.Manifest, opts ...Option) (*VectorReader, error) {
	blocks, err := newBlockReader(src, opts, m)
	if err != nil {
		return nil, err
	}

	return &VectorReader{blocks: blocks}, nil
}

// Len returns the number of vectors.
func (r *VectorReader) Len() int {
	return r.blocks.index.Len()
}

// Raw returns the decompressed bytes of vector i.
func (r *VectorReader) Raw(i int) ([]byte, error) {
	return r.blocks.ownedRead(i, 0)
}

// Strings decodes string vector i. The second result marks missing entries.
func (r *VectorReader) Strings(i int) ([]string, []bool, error) {
	raw, err := r.blocks.read(i, 0)
	if err != nil {
		return nil, nil, err
	}

	values, missing, err := encoding.SplitStringRecords(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: vector %d: %w", ErrCorruptBlock, i, err)
	}

	return values, missing, nil
}

// Booleans decodes boolean vector i.
func (r *VectorReader) Booleans(i int) ([]encoding.Bool, error) {
	raw, err := r.blocks.read(i, 0)
	if err != nil {
		return nil, err
	}

	vals, err := encoding.DecodeBooleans(nil, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: vector %d: %w", ErrCorruptBlock, i, err)
	}

	return vals, nil
}

// Integers decodes integer vector i. Missing values are encoding.NAInteger.
func (r *VectorReader) Integers(i int) ([]int32, error) {
	raw, err := r.blocks.read(i, 0)
	if err != nil {
		return nil, err
	}

	vals, err := encoding.DecodeInt32s(nil, raw, r.blocks.engine)
	if err != nil {
		return nil, fmt.Errorf("%w: vector %d: %w", ErrCorruptBlock, i, err)
	}

	return vals, nil
}

// Doubles decodes double vector i.
func (r *VectorReader) Doubles(i int) ([]float64, error) {
	raw, err := r.blocks.read(i, 0)
	if err != nil {
		return nil, err
	}

	vals, err := encoding.DecodeFloat64s(nil, raw, r.blocks.engine)
	if err != nil {
		return nil, fmt.Errorf("%w: vector %d: %w", ErrCorruptBlock, i, err)
	}

	return vals, nil
}
