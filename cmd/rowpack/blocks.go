package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/arloliu/rowpack/dump"
)

func newRecompressCmd(g *globalFlags) *cobra.Command {
	var (
		start, end      int
		chunkSize       int
		compressedInput bool
	)

	cmd := &cobra.Command{
		Use:   "recompress <partial-file> <leftovers-file> <output>",
		Short: "compress a partial raw file plus leftover bytes into one block",
		Long: `Streams the raw bytes of <partial-file> (skipped when it does not exist)
followed by bytes [start, end) of <leftovers-file> through one compression
stream and writes the resulting block to <output>.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			leftovers, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[1], err)
			}
			if end < 0 {
				end = len(leftovers)
			}

			d, err := newDumper(g, dump.WithChunkSize(chunkSize), dump.WithCompressedInput(compressedInput))
			if err != nil {
				return err
			}

			block, err := d.Recompress(args[0], leftovers, start, end)
			if err != nil {
				return err
			}

			if err := os.WriteFile(args[2], block.Data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", args[2], err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s block, checksum %016x\n", humanize.Bytes(uint64(block.Len())), block.Checksum())

			return nil
		},
	}
	cmd.Flags().IntVar(&start, "start", 0, "first leftover byte")
	cmd.Flags().IntVar(&end, "end", -1, "end of the leftover range (-1 = end of file)")
	cmd.Flags().IntVar(&chunkSize, "chunk-size", 64*1024, "read size for the partial file")
	cmd.Flags().BoolVar(&compressedInput, "allow-compressed", false, "accept a partial file that is already a compressed stream")

	return cmd
}

func newDecompressCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "decompress <block-file> <output>",
		Short: "inflate one complete block",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			d, err := newDumper(g)
			if err != nil {
				return err
			}

			raw, err := d.Codec().Decompress(data)
			if err != nil {
				return err
			}

			if err := os.WriteFile(args[1], raw, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", args[1], err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", humanize.Bytes(uint64(len(data))), humanize.Bytes(uint64(len(raw))))

			return nil
		},
	}
}
