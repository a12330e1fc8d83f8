package hash

import "github.com/cespare/xxhash/v2"

// Block computes the xxHash64 digest of a compressed block.
func Block(data []byte) uint64 {
	return xxhash.Sum64(data)
}
