// SPDX-License-Identifier: EPL-2.0

// Package mat73 decodes the HDF5-backed MAT-file generation (v7.3).
//
// These files are plain HDF5 containers, read here with the pure Go
// hdf5 library. The one trap of the format: the array is stored
// transposed, shape (channels, samples) on disk. The decoder swaps
// the axes before returning, so downstream code always sees
// samples x channels like every other adapter.
package mat73
