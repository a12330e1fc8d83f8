// Package rowpack writes tabular data as a row-oriented, compressed binary
// format in which every row (or every vector) is an independently compressed
// block.
//
// Because each block stands alone and its size is returned in a manifest, any
// row can be read back by seeking to its offset and decompressing that block
// only. The format carries no header: the caller stores the manifest, the
// element kind, the shape, and the byte order next to the data.
//
// # Core Features
//
//   - Dense rows: one block per row in the declared element kind
//   - Sparse rows: a value block plus a delta-encoded int32 index block per row
//   - Heterogeneous vectors: string, boolean, integer and double, one block each
//   - Row and column sums and nonzero counts collected in the same pass
//   - Raw DEFLATE by default; Zstd, S2, LZ4 or no compression on request
//   - Recompression of partial output merged with in-memory leftovers
//
// # Basic Usage
//
//	m, _ := matrix.DenseFromRows([][]float64{{1, 0, encoding.NAValue}, {2, 2, 2}})
//
//	res, err := rowpack.DumpDenseRowsToFile("rows.bin", m, "integer")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Manifest.Sizes)        // compressed size of each row
//	fmt.Println(res.Statistics.ColumnSum)  // [3 2 2]
//	fmt.Println(rowpack.ByteOrder())       // "little_endian" on x86/ARM
//
// Reading row 1 back:
//
//	f, _ := os.Open("rows.bin")
//	r, _ := reader.NewDenseReader(f, res.Manifest, format.KindInteger)
//	row, _ := r.Row(1) // [2 2 2]
//
// # Package Structure
//
// This package wraps the dump package for the common cases. Use dump.New
// directly to reuse one Dumper across many dumps or to write to an arbitrary
// io.Writer, and the reader package for random access.
package rowpack

import (
	"github.com/arloliu/rowpack/dump"
	"github.com/arloliu/rowpack/endian"
	"github.com/arloliu/rowpack/matrix"
	"github.com/arloliu/rowpack/vector"
)

// ByteOrder returns the native byte order name, "little_endian" or
// "big_endian". Dumps written with default options use this order.
func ByteOrder() string {
	return endian.NativeByteOrder().String()
}

// DumpVectorsToFile writes each vector as one block to a new file at path.
//
// Example:
//
//	res, err := rowpack.DumpVectorsToFile("vectors.bin", []vector.Vector{
//	    vector.NewString("a", "b"),
//	    vector.NewDouble(1.5, math.NaN()),
//	})
func DumpVectorsToFile(path string, vecs []vector.Vector, opts ...dump.Option) (*dump.VectorResult, error) {
	d, err := dump.New(opts...)
	if err != nil {
		return nil, err
	}

	return d.DumpVectorsToFile(path, vecs)
}

// DumpDenseRowsToFile writes every row of m as one block to a new file at path.
// kind is "boolean", "integer" or "double".
func DumpDenseRowsToFile(path string, m matrix.DenseMatrix, kind string, opts ...dump.Option) (*dump.DenseResult, error) {
	d, err := dump.New(opts...)
	if err != nil {
		return nil, err
	}

	return d.DumpDenseRowsToFile(path, m, kind)
}

// DumpSparseRowsToFile writes every row of m as a value block and an index
// block to a new file at path. kind is "boolean", "integer" or "double".
func DumpSparseRowsToFile(path string, m matrix.SparseMatrix, kind string, opts ...dump.Option) (*dump.SparseResult, error) {
	d, err := dump.New(opts...)
	if err != nil {
		return nil, err
	}

	return d.DumpSparseRowsToFile(path, m, kind)
}

// Recompress compresses the raw content of the file at path, if it exists,
// followed by leftovers[start:end], into a single block.
func Recompress(path string, leftovers []byte, start, end int, opts ...dump.Option) ([]byte, error) {
	d, err := dump.New(opts...)
	if err != nil {
		return nil, err
	}

	block, err := d.Recompress(path, leftovers, start, end)
	if err != nil {
		return nil, err
	}

	return block.Data, nil
}

// Decompress inflates one complete block. The codec is chosen with
// dump.WithCompression and defaults to raw DEFLATE.
func Decompress(data []byte, opts ...dump.Option) ([]byte, error) {
	d, err := dump.New(opts...)
	if err != nil {
		return nil, err
	}

	return d.Codec().Decompress(data)
}
