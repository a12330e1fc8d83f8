package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arloliu/rowpack/dump"
	"github.com/arloliu/rowpack/encoding"
	"github.com/arloliu/rowpack/format"
	"github.com/arloliu/rowpack/reader"
)

// dumpOutput accepts the JSON printed by dump-dense and dump-sparse.
type dumpOutput struct {
	Manifest dump.Manifest `json:"manifest"`
	Values   dump.Manifest `json:"values"`
	Indices  dump.Manifest `json:"indices"`
}

type rowOutput struct {
	Row     int   `json:"row"`
	Values  []any `json:"values"`
	Indices []int `json:"indices,omitempty"`
}

func newReadRowCmd(g *globalFlags) *cobra.Command {
	var (
		kind   string
		sparse bool
		verify bool
	)

	cmd := &cobra.Command{
		Use:   "read-row <data-file> <dump-output.json> <row>",
		Short: "decode one row of a dense or sparse dump",
		Long: `Locates row <row> in <data-file> using the JSON printed by dump-dense or
dump-sparse, decompresses only that row's block(s) and prints the row as JSON
(null = missing).`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := format.ParseElementKind(kind)
			if err != nil {
				return err
			}

			row, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid row %q: %w", args[2], err)
			}

			var manifests dumpOutput
			if err := readJSONFile(args[1], &manifests); err != nil {
				return err
			}

			opts, err := g.readerOptions(verify)
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer f.Close()

			missing := func(v float64) bool { return encoding.IsMissing(k, v) }
			out := rowOutput{Row: row}

			if sparse {
				r, err := reader.NewSparseReader(f, manifests.Values, manifests.Indices, k, opts...)
				if err != nil {
					return err
				}

				vals, idx, err := r.Row(row)
				if err != nil {
					return err
				}
				out.Values = jsonValues(vals, missing)
				out.Indices = idx
			} else {
				r, err := reader.NewDenseReader(f, manifests.Manifest, k, opts...)
				if err != nil {
					return err
				}

				vals, err := r.Row(row)
				if err != nil {
					return err
				}
				out.Values = jsonValues(vals, missing)
			}

			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "double", "element kind the dump was written with")
	cmd.Flags().BoolVar(&sparse, "sparse", false, "read a dump-sparse output")
	cmd.Flags().BoolVar(&verify, "verify", true, "verify block checksums")

	return cmd
}
