package dump

import "errors"

var (
	// ErrInvalidRange is returned when a leftover range does not fit its buffer.
	ErrInvalidRange = errors.New("invalid leftover range")
	// ErrAlreadyCompressed is returned by Recompress when the input file starts
	// with the magic number of a compressed stream.
	ErrAlreadyCompressed = errors.New("input file is already compressed")
	// ErrMalformedRow is returned when a sparse row reports fewer values or
	// indices than its entry count.
	ErrMalformedRow = errors.New("malformed sparse row")
)
