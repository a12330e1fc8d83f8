// Package dump writes vectors and matrix rows as independently compressed
// blocks.
//
// Every unit (one vector, the values of one row, or the indices of one sparse
// row) is fed through its own compression stream and appended to the sink as
// one block. Nothing else is written: no header, no trailer, no separators.
// The returned Manifest records each block's size, which together with the
// element kind and the matrix shape is all a reader needs to locate and decode
// any unit.
//
// # Usage
//
//	d, err := dump.New(dump.WithCompression(format.CompressionDeflate))
//	if err != nil {
//		return err
//	}
//
//	res, err := d.DumpDenseRows(w, m, format.KindInteger)
//	if err != nil {
//		return err // blocks written before the failure stay in w
//	}
//	fmt.Println(res.Manifest.Sizes, res.Statistics.ColumnSum)
//
// # Statistics
//
// The row drivers accumulate per-row and per-column sums and nonzero counts
// from the same buffer they encode, in the same pass. Missing cells
// (encoding.IsMissing) contribute nothing. The sparse driver only observes the
// entries its matrix reports, so for any matrix the dense and sparse drivers
// return identical statistics.
//
// # Thread Safety
//
// A Dumper owns its scratch buffers and is not safe for concurrent use. Create
// one Dumper per goroutine.
package dump
