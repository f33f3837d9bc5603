// SPDX-License-Identifier: EPL-2.0

package mat73

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/robert-malhotra/go-hdf5/hdf5"

	"github.com/ik5/acouh5/matrix"
)

// Decoder reads a numeric 2-D dataset from the HDF5-backed MAT
// generation (v7.3).
type Decoder struct {
	// Var is the dataset name at the file root. Empty means the
	// first 2-D numeric dataset found.
	Var string
}

// DecodeFile reads the file at path and returns the dataset as a
// samples x channels matrix. This generation stores the array
// transposed relative to the logical orientation, so the decoder
// always swaps the axes before returning: a dataset stored with
// shape (channels, samples) comes back as (samples, channels). The
// format carries no sampling rate, so the returned rate is always 0.
func (d Decoder) DecodeFile(path string) (m *matrix.Matrix, rate float64, err error) {
	f, err := hdf5.Open(path)
	if err != nil {
		// A filesystem failure is an I/O error, not a format error.
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return nil, 0, fmt.Errorf("opening source: %w", err)
		}
		return nil, 0, fmt.Errorf("%s: %v: %w", path, err, ErrNotMat73File)
	}
	defer f.Close()

	ds, err := d.findDataset(f)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", path, err)
	}

	shape := ds.Shape()
	if len(shape) != 2 {
		return nil, 0, fmt.Errorf("%s: dataset %q has rank %d: %w",
			path, ds.Name(), len(shape), ErrNotMatrix)
	}

	vals, err := ds.ReadFloat32()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: reading %q: %v: %w", path, ds.Name(), err, ErrNotMatrix)
	}

	stored, err := matrix.FromInterleaved(vals, int(shape[1]))
	if err != nil {
		return nil, 0, fmt.Errorf("%s: dataset %q: %w", path, ds.Name(), err)
	}
	return stored.Transpose(), 0, nil
}

// findDataset resolves the configured name, or scans the root group
// for the first 2-D dataset when no name was given.
func (d Decoder) findDataset(f *hdf5.File) (*hdf5.Dataset, error) {
	if d.Var != "" {
		ds, err := f.OpenDataset("/" + d.Var)
		if err != nil {
			return nil, fmt.Errorf("variable %q: %w", d.Var, ErrVariableNotFound)
		}
		return ds, nil
	}

	members, err := f.Root().Members()
	if err != nil {
		return nil, fmt.Errorf("listing root group: %v: %w", err, ErrNotMat73File)
	}
	for _, name := range members {
		ds, err := f.OpenDataset("/" + name)
		if err != nil {
			// Groups (such as the #refs# bookkeeping group MAT
			// writers emit) are not candidates.
			continue
		}
		if len(ds.Shape()) == 2 {
			return ds, nil
		}
	}
	return nil, ErrVariableNotFound
}
