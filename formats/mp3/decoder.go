// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"
	"os"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/acouh5/matrix"
	"github.com/ik5/acouh5/utils"
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	channels   int
	buf        []byte
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	// go-mp3 returns 16-bit little-endian PCM bytes (stereo interleaved)
	bytesNeeded := len(dst) * 2
	if cap(s.buf) < bytesNeeded {
		s.buf = make([]byte, bytesNeeded)
	}
	s.buf = s.buf[:bytesNeeded]

	n, err := s.dec.Read(s.buf)
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, nil
	}

	samples := n / 2
	for i := range samples {
		low := uint16(s.buf[2*i])
		high := uint16(s.buf[2*i+1])
		dst[i] = utils.Int16ToFloat32(int16(low | (high << 8)))
	}

	return samples, err
}

// Decoder reads MP3 recordings via go-mp3.
type Decoder struct{}

// Decode reads the full MP3 stream into a samples x channels matrix
// plus the stream's sample rate in Hz.
func (Decoder) Decode(r io.Reader) (*matrix.Matrix, float64, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, 0, fmt.Errorf("%v: %w", err, ErrNotMp3File)
	}

	// go-mp3 always outputs 2-channel PCM.
	src := &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   2,
	}
	m, err := matrix.Collect(src, 8192)
	if err != nil {
		return nil, 0, err
	}
	return m, float64(src.sampleRate), nil
}

// DecodeFile reads the MP3 file at path.
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
