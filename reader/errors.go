package reader

import "errors"

var (
	// ErrChecksumMismatch is returned when a block does not match its manifest digest.
	ErrChecksumMismatch = errors.New("block checksum mismatch")
	// ErrOutOfRange is returned for a row or vector index outside the manifest.
	ErrOutOfRange = errors.New("index out of range")
	// ErrCorruptBlock is returned when a block is truncated, fails to
	// decompress, or decodes to an inconsistent payload.
	ErrCorruptBlock = errors.New("corrupt block")
)
