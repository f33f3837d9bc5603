// SPDX-License-Identifier: EPL-2.0

package mattest

import (
	"io"
	"math"

	"github.com/ik5/acouh5/matrix"
)

// MockSource is a test helper that generates measurement data. It
// implements the matrix.Source interface.
type MockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // samples to generate, per channel
	generated    int // samples generated so far, per channel
	waveform     func(sample int, channel int) float32
}

// NewMockSource creates a mock source. totalSamples is the number of
// samples per channel; waveform maps (sample, channel) to a value.
func NewMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		waveform:     waveform,
	}
}

// NewSineSource creates a mock source generating a sine wave on
// every channel.
func NewSineSource(sampleRate, channels, totalSamples int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewRampSource creates a mock source where every value encodes its
// position: sample*channels + channel. Handy for checking that no
// deinterleave or transpose step scrambles the layout.
func NewRampSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		return float32(sample*channels + channel)
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) Close() error    { return nil }

// Reset rewinds the source so it can be read again.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	framesRequested := len(dst) / m.channels
	framesAvailable := m.totalSamples - m.generated
	framesToWrite := min(framesRequested, framesAvailable)

	for frame := range framesToWrite {
		sampleIndex := m.generated + frame
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(sampleIndex, ch)
		}
	}

	m.generated += framesToWrite
	samplesWritten := framesToWrite * m.channels

	if m.generated >= m.totalSamples {
		return samplesWritten, io.EOF
	}
	return samplesWritten, nil
}

// RampMatrix returns a rows x cols matrix where value (i,j) is
// i*cols + j, matching NewRampSource.
func RampMatrix(rows, cols int) *matrix.Matrix {
	m := matrix.New(rows, cols)
	for i := range rows {
		for j := range cols {
			m.Set(i, j, float32(i*cols+j))
		}
	}
	return m
}
