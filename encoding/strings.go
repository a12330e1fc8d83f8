package encoding

import (
	"bytes"
	"errors"
	"fmt"
)

// NAString is the record body written for a missing string: U+FFFD in UTF-8.
const NAString = "\uFFFD"

// recordTerminator ends every string record.
const recordTerminator byte = 0

// ErrUnterminatedRecord is returned when string data does not end with a record terminator.
var ErrUnterminatedRecord = errors.New("unterminated string record")

// AppendStringRecord appends one NUL-terminated record for s to dst.
//
// A missing string is written as NAString. Strings containing NUL bytes
// cannot be represented and corrupt the record stream.
func AppendStringRecord(dst []byte, s string, missing bool) []byte {
	if missing {
		dst = append(dst, NAString...)
	} else {
		dst = append(dst, s...)
	}

	return append(dst, recordTerminator)
}

// SplitStringRecords splits a decompressed string vector into its records.
//
// A record equal to NAString is reported as missing; a non-missing string
// that is exactly U+FFFD is indistinguishable from it on the wire.
func SplitStringRecords(data []byte) ([]string, []bool, error) {
	if len(data) == 0 {
		return nil, nil, nil
	}
	if data[len(data)-1] != recordTerminator {
		return nil, nil, fmt.Errorf("%w: %d trailing bytes", ErrUnterminatedRecord,
			len(data)-1-bytes.LastIndexByte(data, recordTerminator))
	}

	n := bytes.Count(data, []byte{recordTerminator})
	values := make([]string, 0, n)
	missing := make([]bool, 0, n)

	for len(data) > 0 {
		end := bytes.IndexByte(data, recordTerminator)
		rec := data[:end]
		data = data[end+1:]

		if string(rec) == NAString {
			values = append(values, "")
			missing = append(missing, true)

			continue
		}

		values = append(values, string(rec))
		missing = append(missing, false)
	}

	return values, missing, nil
}
