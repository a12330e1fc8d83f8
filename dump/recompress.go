package dump

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/arloliu/rowpack/compress"
	"github.com/arloliu/rowpack/internal/pool"
)

// Recompress merges the raw bytes of the file at path with leftovers[start:end]
// into one new block.
//
// The file, when it exists, is streamed through a fresh compression stream in
// chunks (see WithChunkSize), followed by the leftover range. A missing file is
// not an error: the block then holds only the leftovers. Any other failure to
// open or read the file is returned with the path.
//
// The file is expected to hold uncompressed bytes. Files starting with a zstd,
// LZ4 or S2 magic number are rejected with ErrAlreadyCompressed unless
// WithCompressedInput(true) is set. Raw DEFLATE carries no magic number, so
// blocks written with the default codec cannot be detected.
func (d *Dumper) Recompress(path string, leftovers []byte, start, end int) (compress.Block, error) {
	if start < 0 || end < start || end > len(leftovers) {
		return compress.Block{}, fmt.Errorf("%w: [%d, %d) of %d bytes", ErrInvalidRange, start, end, len(leftovers))
	}

	log := d.cfg.log("recompress")

	stream, err := d.codec.NewStream()
	if err != nil {
		return compress.Block{}, err
	}

	fileBytes, err := d.streamFile(stream, path)
	if err != nil {
		return compress.Block{}, err
	}

	if end > start {
		if _, err := stream.Write(leftovers[start:end]); err != nil {
			return compress.Block{}, err
		}
	}

	block, err := stream.Finish()
	if err != nil {
		return compress.Block{}, err
	}

	log.Debug().
		Str("path", path).
		Int64("file_bytes", fileBytes).
		Int("leftover_bytes", end-start).
		Int("block_bytes", block.Len()).
		Msg("recompressed")

	return block, nil
}

// streamFile feeds the content of path into stream and returns the number of bytes read.
func (d *Dumper) streamFile(stream compress.Stream, path string) (int64, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	chunk, release := pool.GetChunk(d.cfg.chunkSize)
	defer release()

	var total int64
	for {
		n, err := io.ReadFull(f, chunk)
		if n > 0 {
			if total == 0 && !d.cfg.compressedInput {
				if cType, ok := compress.DetectFramed(chunk[:n]); ok {
					return total, fmt.Errorf("%w: %s starts with a %s stream", ErrAlreadyCompressed, path, cType)
				}
			}

			if _, werr := stream.Write(chunk[:n]); werr != nil {
				return total, werr
			}
			total += int64(n)
		}

		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return total, nil
		}
		if err != nil {
			return total, fmt.Errorf("failed to read %s: %w", path, err)
		}
	}
}
