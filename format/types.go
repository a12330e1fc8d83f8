package format

import (
	"fmt"
	"strings"
)

type (
	ElementKind     uint8
	CompressionType uint8
)

const (
	KindBoolean ElementKind = 0x1 // KindBoolean is stored as one tri-state byte per element.
	KindInteger ElementKind = 0x2 // KindInteger is stored as a 4-byte signed integer.
	KindDouble  ElementKind = 0x3 // KindDouble is stored as an 8-byte IEEE-754 double.
	KindString  ElementKind = 0x4 // KindString is stored as NUL-terminated UTF-8 records (vectors only).

	CompressionNone    CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionDeflate CompressionType = 0x2 // CompressionDeflate represents raw DEFLATE (no zlib/gzip wrapper).
	CompressionZstd    CompressionType = 0x3 // CompressionZstd represents Zstandard compression.
	CompressionS2      CompressionType = 0x4 // CompressionS2 represents S2 stream compression.
	CompressionLZ4     CompressionType = 0x5 // CompressionLZ4 represents LZ4 frame compression.
)

// Wire widths in bytes of the fixed-width element kinds.
const (
	BooleanWidth = 1
	IntegerWidth = 4
	DoubleWidth  = 8
)

func (k ElementKind) String() string {
	switch k {
	case KindBoolean:
		return "boolean"
	case KindInteger:
		return "integer"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// Width returns the fixed on-disk width of one element, or 0 for variable
// width and unknown kinds.
func (k ElementKind) Width() int {
	switch k {
	case KindBoolean:
		return BooleanWidth
	case KindInteger:
		return IntegerWidth
	case KindDouble:
		return DoubleWidth
	default:
		return 0
	}
}

// IsRowKind reports whether k may be declared as the element kind of matrix rows.
func (k ElementKind) IsRowKind() bool {
	return k == KindBoolean || k == KindInteger || k == KindDouble
}

// ParseElementKind parses a declared row kind: "boolean", "integer" or "double".
func ParseElementKind(s string) (ElementKind, error) {
	switch s {
	case "boolean":
		return KindBoolean, nil
	case "integer":
		return KindInteger, nil
	case "double":
		return KindDouble, nil
	default:
		return 0, fmt.Errorf("%w: matrix type '%s'", ErrUnsupportedKind, s)
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionDeflate:
		return "Deflate"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompressionType parses a compression name case-insensitively.
func ParseCompressionType(s string) (CompressionType, error) {
	switch strings.ToLower(s) {
	case "none":
		return CompressionNone, nil
	case "deflate":
		return CompressionDeflate, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedCompression, s)
	}
}
