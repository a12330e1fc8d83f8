package encoding

import "github.com/arloliu/rowpack/internal/pool"

// DeltaEncode writes the delta encoding of the ascending indices idx into dst
// and returns it: the first index verbatim, then successive differences.
//
// dst is resized to len(idx); its previous contents are overwritten. An empty
// idx yields an empty sequence.
//
// Example:
//
//	DeltaEncode(nil, []int{3, 10, 11}) // [3 7 1]
func DeltaEncode(dst []int32, idx []int) []int32 {
	dst = pool.Resize(dst, len(idx))

	prev := 0
	for i, v := range idx {
		dst[i] = int32(v - prev)
		prev = v
	}

	return dst
}

// DeltaDecode reverses DeltaEncode by prefix summation into dst.
func DeltaDecode(dst []int, deltas []int32) []int {
	dst = pool.Resize(dst, len(deltas))

	sum := 0
	for i, d := range deltas {
		sum += int(d)
		dst[i] = sum
	}

	return dst
}
