package compress

import (
	"bytes"

	"github.com/arloliu/rowpack/format"
)

// Stream identifiers of the self-describing formats.
var (
	zstdMagic       = []byte{0x28, 0xB5, 0x2F, 0xFD}
	lz4FrameMagic   = []byte{0x04, 0x22, 0x4D, 0x18}
	s2StreamMagic   = []byte("\xff\x06\x00\x00S2sTwO")
	snappyFramMagic = []byte("\xff\x06\x00\x00sNaPpY")
)

// MagicPrefixLen is the number of leading bytes DetectFramed needs to recognise every format.
const MagicPrefixLen = 10

// DetectFramed reports whether prefix starts with the magic number of a framed
// compression format (zstd, LZ4 frame, S2 or Snappy stream).
//
// Raw DEFLATE and uncompressed blocks carry no magic number and are never detected.
func DetectFramed(prefix []byte) (format.CompressionType, bool) {
	switch {
	case bytes.HasPrefix(prefix, zstdMagic):
		return format.CompressionZstd, true
	case bytes.HasPrefix(prefix, lz4FrameMagic):
		return format.CompressionLZ4, true
	case bytes.HasPrefix(prefix, s2StreamMagic), bytes.HasPrefix(prefix, snappyFramMagic):
		return format.CompressionS2, true
	default:
		return 0, false
	}
}
