// Package reader gives random access to the units of a rowpack dump.
//
// A dump carries no framing of its own. Readers rebuild block offsets from the
// manifests returned by the dump drivers and decode a single row or vector by
// reading and decompressing only its block(s):
//
//	r, err := reader.NewDenseReader(f, res.Manifest, format.KindInteger,
//		reader.WithByteOrder(order))
//	row, err := r.Row(42)
//
// The reader must be configured with the compression and byte order the dump
// was written with; neither is recorded in the data. With WithChecksums(true)
// every block is verified against the manifest's xxHash64 digests before it is
// decompressed.
//
// Readers reuse an internal read buffer and are not safe for concurrent use.
package reader
