// SPDX-License-Identifier: EPL-2.0

package container

import (
	"fmt"

	"github.com/robert-malhotra/go-hdf5/hdf5"

	"github.com/ik5/acouh5/matrix"
)

// Read opens a canonical container and returns its sample matrix and
// sampling frequency.
func Read(path string) (m *matrix.Matrix, sampleFreq float64, err error) {
	f, err := hdf5.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	ds, err := f.OpenDataset("/" + DatasetName)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %v: %w", path, err, ErrNoDataset)
	}

	shape := ds.Shape()
	if len(shape) != 2 {
		return nil, 0, fmt.Errorf("%s: %s has rank %d: %w",
			path, DatasetName, len(shape), matrix.ErrFormat)
	}

	vals, err := ds.ReadFloat32()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: reading %s: %w", path, DatasetName, err)
	}
	m, err = matrix.FromInterleaved(vals, int(shape[1]))
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", path, err)
	}

	attr := ds.Attr(SampleFreqAttr)
	if attr == nil {
		return nil, 0, fmt.Errorf("%s: %w", path, ErrNoSampleFreq)
	}
	sampleFreq, err = attr.ReadScalarFloat64()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: reading %s: %w", path, SampleFreqAttr, err)
	}

	return m, sampleFreq, nil
}
