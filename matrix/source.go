// SPDX-License-Identifier: EPL-2.0

package matrix

import (
	"fmt"
	"io"
)

// Source is a stream of interleaved float32 samples, the shape the
// audio decoders produce.
type Source interface {
	// SampleRate of the stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples.
	// Returns the number of float32 values written (not frames).
	// When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)
	// Close releases any resources.
	Close() error
}

// Collect drains src to EOF and deinterleaves the samples into a
// samples x channels matrix. bufSize is the read buffer size in
// float32 values; 4096 is a reasonable default.
func Collect(src Source, bufSize int) (*Matrix, error) {
	if bufSize <= 0 {
		bufSize = 4096
	}
	channels := src.Channels()
	// Keep reads frame-aligned so no partial frame is dropped.
	if rem := bufSize % channels; rem != 0 {
		bufSize += channels - rem
	}

	all := make([]float32, 0, bufSize*4)
	buf := make([]float32, bufSize)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			all = append(all, buf[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	if len(all) == 0 {
		return nil, ErrNoData
	}
	return FromInterleaved(all, channels)
}
