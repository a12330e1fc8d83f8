package dump

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/rowpack/compress"
	"github.com/arloliu/rowpack/format"
)

func TestRecompress_MissingFile(t *testing.T) {
	d := newDumper(t)
	path := filepath.Join(t.TempDir(), "absent.bin")

	block, err := d.Recompress(path, []byte("xyz"), 0, 3)
	require.NoError(t, err)

	raw, err := d.Codec().Decompress(block.Data)
	require.NoError(t, err)
	require.Equal(t, []byte("xyz"), raw)

	_, err = os.Stat(path)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRecompress_FileThenLeftovers(t *testing.T) {
	prior := bytes.Repeat([]byte("0123456789abcdef-partial-row-"), 500)
	path := filepath.Join(t.TempDir(), "partial.bin")
	require.NoError(t, os.WriteFile(path, prior, 0o600))

	leftovers := []byte("##tail##")
	want := append(append([]byte(nil), prior...), "tail"...)

	for _, comp := range allCompressions {
		t.Run(comp.String(), func(t *testing.T) {
			d := newDumper(t, WithCompression(comp), WithChunkSize(37))

			block, err := d.Recompress(path, leftovers, 2, 6)
			require.NoError(t, err)

			raw, err := d.Codec().Decompress(block.Data)
			require.NoError(t, err)
			require.Equal(t, want, raw)
		})
	}
}

func TestRecompress_EmptyInputs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.bin")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	d := newDumper(t)
	block, err := d.Recompress(path, nil, 0, 0)
	require.NoError(t, err)
	require.Positive(t, block.Len())

	raw, err := d.Codec().Decompress(block.Data)
	require.NoError(t, err)
	require.Empty(t, raw)
}

func TestRecompress_InvalidRange(t *testing.T) {
	d := newDumper(t)
	path := filepath.Join(t.TempDir(), "x")

	for _, r := range [][2]int{{-1, 2}, {2, 1}, {0, 4}} {
		_, err := d.Recompress(path, []byte("abc"), r[0], r[1])
		require.ErrorIs(t, err, ErrInvalidRange)
	}
}

func TestRecompress_AlreadyCompressed(t *testing.T) {
	zstd, err := compress.CreateCodec(format.CompressionZstd, compress.DefaultLevel)
	require.NoError(t, err)
	framed, err := zstd.Compress([]byte("a block written by a row dump"))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "rows.bin")
	require.NoError(t, os.WriteFile(path, framed, 0o600))

	_, err = newDumper(t).Recompress(path, nil, 0, 0)
	require.ErrorIs(t, err, ErrAlreadyCompressed)
	require.ErrorContains(t, err, path)

	d := newDumper(t, WithCompressedInput(true))
	block, err := d.Recompress(path, nil, 0, 0)
	require.NoError(t, err)

	raw, err := d.Codec().Decompress(block.Data)
	require.NoError(t, err)
	require.Equal(t, framed, raw)
}

func TestRecompress_UnreadableFile(t *testing.T) {
	dir := t.TempDir()

	_, err := newDumper(t).Recompress(dir, []byte("x"), 0, 1)
	require.Error(t, err)
	require.ErrorContains(t, err, dir)
}
