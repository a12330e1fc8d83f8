package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/arloliu/rowpack/dump"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func readJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return nil
}

// summary formats a one-line report of a dump, e.g.
// "2 units, 1.2 kB raw -> 310 B compressed (ratio 0.25)".
func summary(units int, manifests ...dump.Manifest) string {
	var raw, compressed int64
	for _, m := range manifests {
		raw += m.RawBytes
		compressed += m.CompressedBytes
	}

	ratio := 0.0
	if raw > 0 {
		ratio = float64(compressed) / float64(raw)
	}

	return fmt.Sprintf("%s units, %s raw -> %s compressed (ratio %.2f)",
		humanize.Comma(int64(units)),
		humanize.Bytes(uint64(raw)),
		humanize.Bytes(uint64(compressed)),
		ratio)
}

// jsonValues converts decoded cells to JSON values, with null for missing cells.
func jsonValues(vals []float64, missing func(float64) bool) []any {
	out := make([]any, len(vals))
	for i, v := range vals {
		if missing(v) || math.IsNaN(v) || math.IsInf(v, 0) {
			out[i] = nil
			continue
		}
		out[i] = v
	}

	return out
}
