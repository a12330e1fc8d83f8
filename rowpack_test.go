package rowpack

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/rowpack/dump"
	"github.com/arloliu/rowpack/encoding"
	"github.com/arloliu/rowpack/format"
	"github.com/arloliu/rowpack/matrix"
	"github.com/arloliu/rowpack/reader"
	"github.com/arloliu/rowpack/vector"
)

func TestByteOrder(t *testing.T) {
	require.Contains(t, []string{"little_endian", "big_endian"}, ByteOrder())
}

func TestDumpDenseRowsToFile_ReadBack(t *testing.T) {
	m, err := matrix.DenseFromRows([][]float64{{1, 0, encoding.NAValue}, {2, 2, 2}})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "rows.bin")
	res, err := DumpDenseRowsToFile(path, m, "integer")
	require.NoError(t, err)
	require.Equal(t, []float64{3, 2, 2}, res.Statistics.ColumnSum)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	r, err := reader.NewDenseReader(f, res.Manifest, format.KindInteger)
	require.NoError(t, err)

	row, err := r.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 2, 2}, row)
}

func TestDumpSparseRowsToFile(t *testing.T) {
	m, err := matrix.NewCSR(1, 11, []int{0, 2}, []int{3, 10}, []float64{5, 7})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "sparse.bin")
	res, err := DumpSparseRowsToFile(path, m, "integer", dump.WithCompression(format.CompressionZstd))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	idxBlock := data[res.Values.Sizes[0]:]
	raw, err := Decompress(idxBlock, dump.WithCompression(format.CompressionZstd))
	require.NoError(t, err)
	require.Len(t, raw, 2*format.IntegerWidth)
}

func TestDumpVectorsToFile_StringScenario(t *testing.T) {
	s := vector.NewString("ab")
	s.AppendNA()

	path := filepath.Join(t.TempDir(), "vectors.bin")
	_, err := DumpVectorsToFile(path, []vector.Vector{s})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	raw, err := Decompress(data)
	require.NoError(t, err)
	require.Equal(t, []byte("ab\x00\xEF\xBF\xBD\x00"), raw)
}

func TestRecompress_MissingPath(t *testing.T) {
	block, err := Recompress(filepath.Join(t.TempDir(), "none"), []byte("xyz"), 0, 3)
	require.NoError(t, err)

	raw, err := Decompress(block)
	require.NoError(t, err)
	require.Equal(t, []byte("xyz"), raw)
}

func TestFacade_InvalidOptions(t *testing.T) {
	bad := dump.WithCompression(format.CompressionType(0xFF))

	_, err := DumpVectorsToFile(filepath.Join(t.TempDir(), "x"), nil, bad)
	require.ErrorIs(t, err, format.ErrUnsupportedCompression)

	_, err = Decompress([]byte{1}, bad)
	require.ErrorIs(t, err, format.ErrUnsupportedCompression)

	_, err = Recompress("x", nil, 0, 0, bad)
	require.ErrorIs(t, err, format.ErrUnsupportedCompression)
}
