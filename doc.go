// SPDX-License-Identifier: EPL-2.0

// Package acouh5 converts acoustic measurement files into the
// canonical HDF5 container consumed by acoustic analysis tools.
//
// A conversion is one linear pass: pick the decoder for the declared
// source format, materialize the source as a samples x channels
// float32 matrix, write it as a single extensible "time_data"
// dataset with one "sample_freq" attribute. Nothing is streamed,
// cached, or retried.
//
// # Supported Source Formats
//
//   - Delimited text (CSV) via formats/csv
//   - Legacy MAT-files (pre-7.3) via formats/mat
//   - HDF5-backed MAT-files (v7.3) via formats/mat73
//   - WAV via formats/wav
//   - AIFF via formats/aiff
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//
// # Quick Start
//
// Converting a CSV of 64-channel array data sampled at 51.2 kHz:
//
//	err := acouh5.Convert("array.csv", acouh5.FormatCSV, "array.h5",
//	    acouh5.WithSampleFreq(51200))
//
// CSV and MAT sources carry no sampling rate, so WithSampleFreq is
// required there. Audio sources use their own rate unless
// overridden:
//
//	err := acouh5.Convert("field.wav", acouh5.FormatWAV, "field.h5")
//
// MAT sources take the variable name as configuration:
//
//	err := acouh5.Convert("run3.mat", acouh5.FormatMAT, "run3.h5",
//	    acouh5.WithSampleFreq(51200), acouh5.WithMatVar("pressure"))
//
// # Orientation
//
// Every decoder returns samples x channels, whatever the source's
// on-disk convention. In particular the HDF5-backed MAT generation
// stores the array transposed; formats/mat73 swaps the axes so
// callers never have to.
//
// # Errors
//
// Failures are typed: matrix.ErrParse for malformed text,
// matrix.ErrFormat for binary containers missing the expected array,
// ErrUnsupportedFormat for an unknown tag, and wrapped I/O errors
// from the filesystem. Each adapter also exposes narrower sentinels
// (csv.ErrRaggedRow and friends) that wrap those kinds.
//
// For lower-level control the subpackages are usable on their own:
// decoders return matrix.Matrix values and package container handles
// the canonical layout.
package acouh5
