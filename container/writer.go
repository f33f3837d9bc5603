// SPDX-License-Identifier: EPL-2.0

package container

import (
	"fmt"

	"github.com/robert-malhotra/go-hdf5/hdf5"

	"github.com/ik5/acouh5/matrix"
)

// The canonical layout is two names and nothing else. Downstream
// analysis tools look these up literally, so they are part of the
// contract rather than library defaults.
const (
	// DatasetName is the single root-level dataset holding the
	// samples x channels float32 array.
	DatasetName = "time_data"
	// SampleFreqAttr is the single attribute on that dataset: the
	// sampling frequency in Hz as a float64 scalar.
	SampleFreqAttr = "sample_freq"

	// DefaultChunkRows is the chunk length along the sample axis.
	// Purely a performance default; any chunking satisfies the
	// layout.
	DefaultChunkRows = 256
)

// Write creates the canonical container at path, truncating any
// existing file. The dataset is chunked and extensible along the
// sample axis so rows can be appended later without rewriting.
func Write(path string, m *matrix.Matrix, sampleFreq float64) error {
	return WriteChunked(path, m, sampleFreq, DefaultChunkRows)
}

// WriteChunked is Write with an explicit chunk length along axis 0.
func WriteChunked(path string, m *matrix.Matrix, sampleFreq float64, chunkRows int) (err error) {
	if m == nil || m.Rows() == 0 || m.Cols() == 0 {
		return ErrEmptyMatrix
	}
	if sampleFreq <= 0 {
		return fmt.Errorf("%w: %v Hz", ErrBadSampleFreq, sampleFreq)
	}
	if chunkRows <= 0 {
		chunkRows = DefaultChunkRows
	}
	chunkRows = min(chunkRows, m.Rows())

	f, err := hdf5.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	_, err = f.Root().CreateDataset(DatasetName, m.Rows2D(),
		hdf5.WithChunks(uint64(chunkRows), uint64(m.Cols())),
		hdf5.WithMaxDims(0, uint64(m.Cols())),
		hdf5.WithAttribute(SampleFreqAttr, sampleFreq),
	)
	if err != nil {
		return fmt.Errorf("writing %s: %w", DatasetName, err)
	}
	return nil
}
