package main

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/arloliu/rowpack/encoding"
	"github.com/arloliu/rowpack/format"
	"github.com/arloliu/rowpack/matrix"
	"github.com/arloliu/rowpack/vector"
)

// readCSVMatrix loads a headerless CSV file of numbers. "NA" and empty cells
// are missing; "TRUE" and "FALSE" (any case) are accepted for boolean matrices.
func readCSVMatrix(path string, kind format.ElementKind) (*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return parseCSVMatrix(f, kind)
}

func parseCSVMatrix(r io.Reader, kind format.ElementKind) (*matrix.Dense, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var (
		rows int
		cols = -1
		data []float64
	)

	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		if cols < 0 {
			cols = len(record)
		}

		for c, cell := range record {
			v, err := parseCell(cell, kind)
			if err != nil {
				return nil, fmt.Errorf("row %d column %d: %w", rows, c, err)
			}
			data = append(data, v)
		}
		rows++
	}

	if cols < 0 {
		cols = 0
	}

	return matrix.NewDense(rows, cols, data)
}

func parseCell(cell string, kind format.ElementKind) (float64, error) {
	cell = strings.TrimSpace(cell)

	switch {
	case cell == "" || strings.EqualFold(cell, "NA"):
		if kind == format.KindDouble {
			return math.NaN(), nil
		}

		return encoding.NAValue, nil
	case kind == format.KindBoolean && strings.EqualFold(cell, "true"):
		return 1, nil
	case kind == format.KindBoolean && strings.EqualFold(cell, "false"):
		return 0, nil
	}

	return strconv.ParseFloat(cell, 64)
}

// jsonVector is one entry of a vector list file:
//
//	[{"kind": "string", "values": ["a", null]}, {"kind": "integer", "values": [1, 2]}]
//
// null marks a missing value.
type jsonVector struct {
	Kind   string            `json:"kind"`
	Values []json.RawMessage `json:"values"`
}

func readJSONVectors(path string) ([]vector.Vector, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return parseJSONVectors(f)
}

func parseJSONVectors(r io.Reader) ([]vector.Vector, error) {
	var entries []jsonVector
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to decode vector list: %w", err)
	}

	vecs := make([]vector.Vector, len(entries))
	for i, e := range entries {
		v, err := e.vector()
		if err != nil {
			return nil, fmt.Errorf("vector %d: %w", i, err)
		}
		vecs[i] = v
	}

	return vecs, nil
}

func isNull(raw json.RawMessage) bool {
	return string(raw) == "null"
}

func (e jsonVector) vector() (vector.Vector, error) {
	switch e.Kind {
	case "string":
		v := &vector.String{}
		for _, raw := range e.Values {
			if isNull(raw) {
				v.AppendNA()
				continue
			}
			var s string
			if err := json.Unmarshal(raw, &s); err != nil {
				return nil, err
			}
			v.Append(s)
		}

		return v, nil
	case "boolean":
		v := &vector.Boolean{Values: make([]encoding.Bool, len(e.Values))}
		for i, raw := range e.Values {
			if isNull(raw) {
				v.Values[i] = encoding.BoolNA
				continue
			}
			var b bool
			if err := json.Unmarshal(raw, &b); err != nil {
				return nil, err
			}
			v.Values[i] = encoding.BoolOf(b)
		}

		return v, nil
	case "integer":
		v := &vector.Integer{Values: make([]int, len(e.Values))}
		for i, raw := range e.Values {
			if isNull(raw) {
				v.Values[i] = int(encoding.NAInteger)
				continue
			}
			if err := json.Unmarshal(raw, &v.Values[i]); err != nil {
				return nil, err
			}
		}

		return v, nil
	case "double":
		v := &vector.Double{Values: make([]float64, len(e.Values))}
		for i, raw := range e.Values {
			if isNull(raw) {
				v.Values[i] = math.NaN()
				continue
			}
			if err := json.Unmarshal(raw, &v.Values[i]); err != nil {
				return nil, err
			}
		}

		return v, nil
	default:
		return nil, fmt.Errorf("%w: vector type '%s'", format.ErrUnsupportedKind, e.Kind)
	}
}
