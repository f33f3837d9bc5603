// SPDX-License-Identifier: EPL-2.0

package container_test

import (
	"path/filepath"
	"testing"

	"github.com/robert-malhotra/go-hdf5/hdf5"
	"github.com/stretchr/testify/require"

	"github.com/ik5/acouh5/container"
	"github.com/ik5/acouh5/internal/mattest"
	"github.com/ik5/acouh5/matrix"
)

func TestWriteRead_RoundTrip(t *testing.T) {
	want := mattest.RampMatrix(300, 4)
	path := filepath.Join(t.TempDir(), "out.h5")

	require.NoError(t, container.Write(path, want, 51200))

	got, freq, err := container.Read(path)
	require.NoError(t, err)
	require.Equal(t, 51200.0, freq)
	require.Equal(t, want.Rows(), got.Rows())
	require.Equal(t, want.Cols(), got.Cols())
	require.True(t, got.ApproxEqual(want, 0), "values must survive bit-identically")
}

func TestWrite_CanonicalLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.h5")
	require.NoError(t, container.Write(path, mattest.RampMatrix(10, 2), 1000))

	f, err := hdf5.Open(path)
	require.NoError(t, err)
	defer f.Close()

	// Exactly one root object, exactly one attribute on it.
	members, err := f.Root().Members()
	require.NoError(t, err)
	require.Equal(t, []string{container.DatasetName}, members)

	ds, err := f.OpenDataset("/" + container.DatasetName)
	require.NoError(t, err)
	require.Equal(t, []uint64{10, 2}, ds.Shape())
	require.Equal(t, 4, ds.DtypeSize(), "dataset must be 32-bit float")

	attrs := ds.Attrs()
	require.Equal(t, []string{container.SampleFreqAttr}, attrs)

	freq, err := ds.Attr(container.SampleFreqAttr).ReadScalarFloat64()
	require.NoError(t, err)
	require.Equal(t, 1000.0, freq)
}

func TestWrite_TruncatesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.h5")

	require.NoError(t, container.Write(path, mattest.RampMatrix(50, 3), 8000))
	require.NoError(t, container.Write(path, mattest.RampMatrix(5, 1), 16000))

	got, freq, err := container.Read(path)
	require.NoError(t, err)
	require.Equal(t, 16000.0, freq)
	require.Equal(t, 5, got.Rows())
	require.Equal(t, 1, got.Cols())
}

func TestWriteChunked_MultipleChunks(t *testing.T) {
	// More rows than the chunk length, so the dataset spans chunks.
	want := mattest.RampMatrix(1000, 2)
	path := filepath.Join(t.TempDir(), "out.h5")

	require.NoError(t, container.WriteChunked(path, want, 51200, 256))

	got, _, err := container.Read(path)
	require.NoError(t, err)
	require.True(t, got.ApproxEqual(want, 0))
}

func TestWrite_RejectsEmptyMatrix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.h5")

	err := container.Write(path, nil, 1000)
	require.ErrorIs(t, err, container.ErrEmptyMatrix)

	err = container.Write(path, matrix.New(0, 0), 1000)
	require.ErrorIs(t, err, container.ErrEmptyMatrix)
}

func TestWrite_RejectsBadSampleFreq(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.h5")
	m := mattest.RampMatrix(2, 2)

	require.ErrorIs(t, container.Write(path, m, 0), container.ErrBadSampleFreq)
	require.ErrorIs(t, container.Write(path, m, -44100), container.ErrBadSampleFreq)
}

func TestRead_NotAContainer(t *testing.T) {
	// An HDF5 file without the canonical dataset is not a container.
	path := filepath.Join(t.TempDir(), "other.h5")
	f, err := hdf5.Create(path)
	require.NoError(t, err)
	_, err = f.Root().CreateDataset("something_else", []float32{1, 2, 3})
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, _, err = container.Read(path)
	require.ErrorIs(t, err, container.ErrNoDataset)
	require.ErrorIs(t, err, matrix.ErrFormat)
}
