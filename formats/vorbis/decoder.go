// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"
	"os"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/acouh5/matrix"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

// ReadSamples delegates to the library reader, which fills dst with
// interleaved values and returns the value count (samples times
// channels), the same contract matrix.Source uses.
func (s *source) ReadSamples(dst []float32) (int, error) {
	return s.dec.Read(dst)
}

// Decoder reads Ogg Vorbis recordings via jfreymuth/oggvorbis.
type Decoder struct{}

// Decode reads the full stream into a samples x channels matrix plus
// the stream's sample rate in Hz.
func (Decoder) Decode(r io.Reader) (*matrix.Matrix, float64, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, 0, fmt.Errorf("%v: %w", err, ErrNotVorbisFile)
	}

	src := &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
	}
	m, err := matrix.Collect(src, 4096)
	if err != nil {
		return nil, 0, err
	}
	return m, float64(src.sampleRate), nil
}

// DecodeFile reads the Ogg Vorbis file at path.
func (d Decoder) DecodeFile(path string) (*matrix.Matrix, float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("opening source: %w", err)
	}
	defer f.Close()

	m, rate, err := d.Decode(f)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", path, err)
	}
	return m, rate, nil
}
