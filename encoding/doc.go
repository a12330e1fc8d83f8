// Package encoding converts native values into the fixed-width elements of the
// rowpack wire format, and back.
//
// # Element Widths
//
//   - boolean: 1 byte, 0 = false, 1 = true, 2 = missing
//   - integer: 4 bytes, two's-complement int32
//   - double:  8 bytes, IEEE-754 binary64
//   - string:  UTF-8 bytes terminated by NUL; missing = EF BF BD 00
//
// Multi-byte elements use the byte order of the EndianEngine handed to a
// Transfer. Sparse row indices are delta-encoded before they are written as
// int32 elements (see DeltaEncode).
//
// # Missing Values
//
// Matrices carry every cell as float64. Integer and boolean cells mark missing
// values with NAValue (math.MinInt32), double cells with NaN. IsMissing is the
// single place those sentinels are interpreted.
//
// # Buffer Ownership
//
// A Transfer owns its scratch buffers and the byte slices it returns alias
// them. Each returned slice is valid until the next call on the same Transfer.
// A Transfer is not safe for concurrent use.
package encoding
