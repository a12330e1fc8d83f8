package endian

import (
	"errors"
	"math"
	"unsafe"
)

// Width preconditions of the wire format. A platform where any of these sizes
// differ fails to compile: the array lengths below overflow uintptr.
var (
	_ [unsafe.Sizeof(float64(0)) - 8]struct{}
	_ [8 - unsafe.Sizeof(float64(0))]struct{}
	_ [unsafe.Sizeof(int32(0)) - 4]struct{}
	_ [4 - unsafe.Sizeof(int32(0))]struct{}
)

// ErrRepresentation indicates the host does not use IEEE-754 binary64 doubles
// or two's-complement integers.
var ErrRepresentation = errors.New("unsupported numeric representation")

// probes are variables so the checks run on real machine values rather than
// being folded away as constants.
var (
	probeDouble = -2.5
	probeInt    = int32(-1)
	probeMin    = int32(math.MinInt32)
)

// CheckRepresentation verifies the bit patterns the wire format assumes:
// IEEE-754 binary64 for doubles and two's complement for signed integers.
func CheckRepresentation() error {
	if math.Float64bits(probeDouble) != 0xC004000000000000 {
		return errors.Join(ErrRepresentation, errors.New("float64 is not IEEE-754 binary64"))
	}

	if uint32(probeInt) != 0xFFFFFFFF || uint32(probeMin) != 0x80000000 {
		return errors.Join(ErrRepresentation, errors.New("int32 is not two's complement"))
	}

	return nil
}

func init() {
	if err := CheckRepresentation(); err != nil {
		panic(err)
	}
}
