// SPDX-License-Identifier: EPL-2.0

// Package container reads and writes the canonical HDF5 layout that
// acoustic analysis tools consume.
//
// A container holds exactly one root-level dataset named "time_data"
// (float32, shape samples x channels, chunked and extensible along
// the sample axis) carrying exactly one attribute, "sample_freq"
// (float64 scalar, Hz). Nothing else.
//
//	err := container.Write("out.h5", m, 51200)
//	m2, freq, err := container.Read("out.h5")
//
// Write truncates an existing destination, matching the create/write
// semantics of os.Create. The file handle is closed on every path,
// success or failure. There is no partial-write recovery: a failed
// conversion leaves whatever bytes were flushed, and callers rerun
// the conversion.
//
// The HDF5 plumbing is github.com/robert-malhotra/go-hdf5, a pure Go
// implementation, so no C library is needed.
package container
