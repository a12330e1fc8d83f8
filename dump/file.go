package dump

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/arloliu/rowpack/format"
	"github.com/arloliu/rowpack/internal/pool"
	"github.com/arloliu/rowpack/matrix"
	"github.com/arloliu/rowpack/vector"
)

// DumpVectorsToFile creates the file at path and dumps vecs into it.
func (d *Dumper) DumpVectorsToFile(path string, vecs []vector.Vector) (*VectorResult, error) {
	var res *VectorResult
	err := writeFile(path, func(w io.Writer) error {
		var err error
		res, err = d.DumpVectors(w, vecs)

		return err
	})

	return res, err
}

// DumpDenseRowsToFile creates the file at path and dumps the rows of m into it.
// kind is the declared element kind name: "boolean", "integer" or "double".
// An unknown kind fails before the file is created.
func (d *Dumper) DumpDenseRowsToFile(path string, m matrix.DenseMatrix, kind string) (*DenseResult, error) {
	k, err := format.ParseElementKind(kind)
	if err != nil {
		return nil, err
	}

	var res *DenseResult
	err = writeFile(path, func(w io.Writer) error {
		var err error
		res, err = d.DumpDenseRows(w, m, k)

		return err
	})

	return res, err
}

// DumpSparseRowsToFile creates the file at path and dumps the sparse rows of m into it.
// kind is handled as in DumpDenseRowsToFile.
func (d *Dumper) DumpSparseRowsToFile(path string, m matrix.SparseMatrix, kind string) (*SparseResult, error) {
	k, err := format.ParseElementKind(kind)
	if err != nil {
		return nil, err
	}

	var res *SparseResult
	err = writeFile(path, func(w io.Writer) error {
		var err error
		res, err = d.DumpSparseRows(w, m, k)

		return err
	})

	return res, err
}

// writeFile runs fn against a buffered writer on a new file at path. On
// failure whatever fn already produced is flushed and left on disk.
func writeFile(path string, fn func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	bw := bufio.NewWriterSize(f, pool.ChunkDefaultSize)
	if err := fn(bw); err != nil {
		_ = bw.Flush()
		_ = f.Close()

		return fmt.Errorf("%s: %w", path, err)
	}

	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	return nil
}
