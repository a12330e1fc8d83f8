package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/rowpack/compress"
	"github.com/arloliu/rowpack/dump"
	"github.com/arloliu/rowpack/endian"
	"github.com/arloliu/rowpack/format"
	"github.com/arloliu/rowpack/internal/logging"
	"github.com/arloliu/rowpack/reader"
)

// globalFlags are shared by every command.
type globalFlags struct {
	compression string
	level       int
	byteOrder   string
	verbose     bool
	humanLog    bool
}

func (g *globalFlags) parse() (format.CompressionType, endian.ByteOrder, error) {
	comp, err := format.ParseCompressionType(g.compression)
	if err != nil {
		return 0, 0, err
	}

	order, err := endian.ParseByteOrder(g.byteOrder)
	if err != nil {
		return 0, 0, err
	}

	return comp, order, nil
}

func (g *globalFlags) dumpOptions() ([]dump.Option, error) {
	comp, order, err := g.parse()
	if err != nil {
		return nil, err
	}

	return []dump.Option{
		dump.WithCompression(comp),
		dump.WithCompressionLevel(g.level),
		dump.WithByteOrder(order),
	}, nil
}

func (g *globalFlags) readerOptions(verify bool) ([]reader.Option, error) {
	comp, order, err := g.parse()
	if err != nil {
		return nil, err
	}

	return []reader.Option{
		reader.WithCompression(comp),
		reader.WithByteOrder(order),
		reader.WithChecksums(verify),
	}, nil
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:           "rowpack [command] (flags)",
		Short:         "row-oriented compressed matrix dump tool",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(*cobra.Command, []string) {
			logging.Init(g.verbose, g.humanLog)
		},
	}

	rootCmd.PersistentFlags().StringVar(
		&g.compression, "compression", "deflate", "block codec: deflate, zstd, s2, lz4 or none")
	rootCmd.PersistentFlags().IntVar(
		&g.level, "level", compress.DefaultLevel, "codec level (0 selects the codec default)")
	rootCmd.PersistentFlags().StringVar(
		&g.byteOrder, "byte-order", "native", "byte order of multi-byte elements: native, little_endian or big_endian")
	rootCmd.PersistentFlags().BoolVarP(
		&g.verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(
		&g.humanLog, "human-log", false, "log in a human-friendly console format instead of JSON")

	rootCmd.AddCommand(
		newByteOrderCmd(),
		newDumpDenseCmd(g),
		newDumpSparseCmd(g),
		newDumpVectorsCmd(g),
		newRecompressCmd(g),
		newDecompressCmd(g),
		newReadRowCmd(g),
	)

	return rootCmd
}

func newByteOrderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "byte-order",
		Short: "print the native byte order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), endian.NativeByteOrder())
			return err
		},
	}
}
