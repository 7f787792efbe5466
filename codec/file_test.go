package codec

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/numser/errs"
	"github.com/arloliu/numser/section"
)

func TestSerializeFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.int32.vec")

	values := make([]int32, 100000)
	for i := range values {
		values[i] = int32(i - 50000)
	}

	require.NoError(t, SerializeFile(path, values))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, int64(section.HeaderSize+4*len(values)), info.Size())

	got, err := DeserializeFile[int32](path)
	require.NoError(t, err)
	require.Equal(t, values, got)
}

func TestSerializeFile_Truncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.uint8.vec")

	require.NoError(t, SerializeFile(path, make([]uint8, 1000)))
	require.NoError(t, SerializeFile(path, []uint8{1, 2}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, int64(section.HeaderSize+2), info.Size())

	got, err := DeserializeFile[uint8](path)
	require.NoError(t, err)
	require.Equal(t, []uint8{1, 2}, got)
}

func TestSerializeNestedFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.float64.vec.2d")

	values := [][]float64{{1.5, 2.5}, {}, {-10.02, 0, 10.02}}
	require.NoError(t, SerializeNestedFile(path, values, WithBufferSize(16)))

	got, err := DeserializeNestedFile[float64](path)
	require.NoError(t, err)
	require.Equal(t, values, got)
}

func TestDeserializeFile_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.vec")

	_, err := DeserializeFile[int8](path)
	require.ErrorIs(t, err, errs.ReadError)
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = DeserializeNestedFile[int8](path)
	require.ErrorIs(t, err, errs.ReadError)
}

func TestSerializeFile_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "out.vec")

	require.ErrorIs(t, SerializeFile(path, []int16{1}), errs.WriteError)
	require.ErrorIs(t, SerializeNestedFile(path, [][]int16{{1}}), errs.WriteError)
}

func TestDeserializeFile_WrongType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.int32.vec")
	require.NoError(t, SerializeFile(path, []int32{1, 2}))

	_, err := DeserializeFile[int64](path)
	require.ErrorIs(t, err, errs.SizeMismatchError)

	// A flat file read as nested: the outer count 2 asks for inner headers that are not there.
	_, err = DeserializeNestedFile[int32](path)
	require.ErrorIs(t, err, errs.ReadError)
}

func TestSerializeFile_InvalidOption(t *testing.T) {
	path := filepath.Join(t.TempDir(), "never.vec")

	require.ErrorIs(t, SerializeFile(path, []int8{1}, WithBufferSize(2)), errs.UnknownError)
	_, err := os.Stat(path)
	require.ErrorIs(t, err, os.ErrNotExist)
}
