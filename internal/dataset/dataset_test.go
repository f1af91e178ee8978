package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSample(t *testing.T) {
	ds, err := Load(filepath.Join("testdata", "rh_sample.csv"))
	require.NoError(t, err)
	assert.Equal(t, 31, ds.Len())
	assert.Contains(t, ds.Columns(), "Education")
	assert.Contains(t, ds.Columns(), "JobLevel")
}

func TestUniqueInts_FirstAppearanceOrder(t *testing.T) {
	ds, err := Load(filepath.Join("testdata", "rh_sample.csv"))
	require.NoError(t, err)

	edu, err := ds.UniqueInts("Education")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 4, 3, 5}, edu)

	lvl, err := ds.UniqueInts("JobLevel")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 3, 4, 5}, lvl)
}

func TestUnique_UnknownColumn(t *testing.T) {
	ds, err := Read(strings.NewReader("A,B\n1,2\n"))
	require.NoError(t, err)

	_, err = ds.Unique("C")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownColumn))
}

func TestUnique_SkipsBlanks(t *testing.T) {
	ds, err := Read(strings.NewReader("A\nx\n\ny\nx\n \n"))
	require.NoError(t, err)

	got, err := ds.Unique("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, got)
}

func TestUniqueInts_IntegralFloats(t *testing.T) {
	ds, err := Read(strings.NewReader("Education\n3.0\n1\n3\n"))
	require.NoError(t, err)

	got, err := ds.UniqueInts("Education")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1}, got)
}

func TestUniqueInts_RejectsNonInteger(t *testing.T) {
	ds, err := Read(strings.NewReader("Education\n2.5\n"))
	require.NoError(t, err)

	_, err = ds.UniqueInts("Education")
	require.Error(t, err)
}

func TestRead_Errors(t *testing.T) {
	_, err := Read(strings.NewReader(""))
	require.Error(t, err)

	_, err = Read(strings.NewReader("A,A\n1,2\n"))
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
