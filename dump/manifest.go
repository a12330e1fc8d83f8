package dump

import "github.com/arloliu/rowpack/compress"

// Manifest lists the blocks of one dump in write order.
type Manifest struct {
	// Sizes holds the compressed length of each block.
	Sizes []int `json:"sizes"`
	// Checksums holds the xxHash64 digest of each block, in lockstep with Sizes.
	Checksums []uint64 `json:"checksums"`
	// RawBytes is the total uncompressed payload fed to the codec.
	RawBytes int64 `json:"raw_bytes"`
	// CompressedBytes is the total length of all blocks.
	CompressedBytes int64 `json:"compressed_bytes"`
}

func newManifest(n int) Manifest {
	return Manifest{
		Sizes:     make([]int, 0, n),
		Checksums: make([]uint64, 0, n),
	}
}

func (m *Manifest) add(block compress.Block, raw int) {
	m.Sizes = append(m.Sizes, block.Len())
	m.Checksums = append(m.Checksums, block.Checksum())
	m.RawBytes += int64(raw)
	m.CompressedBytes += int64(block.Len())
}

// Len returns the number of blocks.
func (m Manifest) Len() int {
	return len(m.Sizes)
}

// Ratio returns CompressedBytes / RawBytes, or 0 when nothing was written.
// Values below 1 mean the codec saved space.
func (m Manifest) Ratio() float64 {
	if m.RawBytes == 0 {
		return 0
	}

	return float64(m.CompressedBytes) / float64(m.RawBytes)
}
