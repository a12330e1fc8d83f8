package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/rowpack/dump"
	"github.com/arloliu/rowpack/format"
	"github.com/arloliu/rowpack/matrix"
)

func newDumpDenseCmd(g *globalFlags) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "dump-dense <matrix.csv> <output>",
		Short: "dump every CSV row as one compressed block",
		Long: `Reads a headerless CSV matrix ("NA" or empty = missing), writes one
compressed block per row to <output> and prints the size manifest and the
row/column statistics as JSON.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := format.ParseElementKind(kind)
			if err != nil {
				return err
			}

			m, err := readCSVMatrix(args[0], k)
			if err != nil {
				return err
			}

			d, err := newDumper(g)
			if err != nil {
				return err
			}

			res, err := d.DumpDenseRowsToFile(args[1], m, kind)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.ErrOrStderr(), summary(m.Rows(), res.Manifest))

			return writeJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "double", "element kind: boolean, integer or double")

	return cmd
}

func newDumpSparseCmd(g *globalFlags) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "dump-sparse <matrix.csv> <output>",
		Short: "dump every CSV row as a value block and a delta-encoded index block",
		Long: `Reads a headerless CSV matrix, drops zero cells, and writes each row as a
value block followed by an index block. Prints both size manifests and the
row/column statistics as JSON.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := format.ParseElementKind(kind)
			if err != nil {
				return err
			}

			dense, err := readCSVMatrix(args[0], k)
			if err != nil {
				return err
			}
			m := matrix.FromDense(dense)

			d, err := newDumper(g)
			if err != nil {
				return err
			}

			res, err := d.DumpSparseRowsToFile(args[1], m, kind)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.ErrOrStderr(), summary(2*m.Rows(), res.Values, res.Indices))

			return writeJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "double", "element kind: boolean, integer or double")

	return cmd
}

func newDumpVectorsCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "dump-vectors <vectors.json> <output>",
		Short: "dump each vector of a JSON vector list as one compressed block",
		Long: `Reads a JSON list such as
  [{"kind": "string", "values": ["a", null]}, {"kind": "double", "values": [1.5]}]
(kinds: string, boolean, integer, double; null = missing) and writes one
block per vector. Prints the size manifest as JSON.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			vecs, err := readJSONVectors(args[0])
			if err != nil {
				return err
			}

			d, err := newDumper(g)
			if err != nil {
				return err
			}

			res, err := d.DumpVectorsToFile(args[1], vecs)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.ErrOrStderr(), summary(len(vecs), res.Manifest))

			return writeJSON(cmd.OutOrStdout(), res)
		},
	}
}

func newDumper(g *globalFlags, extra ...dump.Option) (*dump.Dumper, error) {
	opts, err := g.dumpOptions()
	if err != nil {
		return nil, err
	}

	return dump.New(append(opts, extra...)...)
}
