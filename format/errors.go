package format

import "errors"

var (
	// ErrUnsupportedKind indicates an element kind outside the set a component accepts.
	ErrUnsupportedKind = errors.New("unsupported element kind")
	// ErrUnsupportedCompression indicates an unknown compression type.
	ErrUnsupportedCompression = errors.New("unsupported compression type")
)
