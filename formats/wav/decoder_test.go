// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/acouh5/matrix"
)

func TestDecode_Mono(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 100, 200, -100, -200, 0}
	var buf bytes.Buffer
	if err := WriteWAV16(&buf, 8000, 1, samples); err != nil {
		t.Fatal(err)
	}

	m, rate, err := Decoder{}.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	if rate != 8000 {
		t.Errorf("rate = %v, want 8000", rate)
	}
	if m.Rows() != 6 || m.Cols() != 1 {
		t.Fatalf("shape = %dx%d, want 6x1", m.Rows(), m.Cols())
	}
	for i, s := range samples {
		want := float32(s) / 32768.0
		if math.Abs(float64(m.At(i, 0)-want)) > 1e-6 {
			t.Errorf("At(%d,0) = %v, want %v", i, m.At(i, 0), want)
		}
	}
}

func TestDecode_StereoDeinterleaves(t *testing.T) {
	t.Parallel()

	// Interleaved frames: (100,200), (300,400), (500,600)
	samples := []int16{100, 200, 300, 400, 500, 600}
	var buf bytes.Buffer
	if err := WriteWAV16(&buf, 44100, 2, samples); err != nil {
		t.Fatal(err)
	}

	m, rate, err := Decoder{}.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	if rate != 44100 {
		t.Errorf("rate = %v, want 44100", rate)
	}
	if m.Rows() != 3 || m.Cols() != 2 {
		t.Fatalf("shape = %dx%d, want 3x2", m.Rows(), m.Cols())
	}
	for i := range 3 {
		for j := range 2 {
			want := float32(samples[i*2+j]) / 32768.0
			if m.At(i, j) != want {
				t.Errorf("At(%d,%d) = %v, want %v", i, j, m.At(i, j), want)
			}
		}
	}
}

func TestDecode_NotWav(t *testing.T) {
	t.Parallel()

	_, _, err := Decoder{}.Decode(bytes.NewReader([]byte("definitely not riff data")))
	if !errors.Is(err, ErrNotWavFile) {
		t.Fatalf("Decode() error = %v, want ErrNotWavFile", err)
	}
	if !errors.Is(err, matrix.ErrFormat) {
		t.Error("wav error does not wrap matrix.ErrFormat")
	}
}

func TestDecodeFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "rec.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := WriteWAV16(f, 16000, 1, []int16{1000, -1000}); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	m, rate, err := Decoder{}.DecodeFile(path)
	if err != nil {
		t.Fatalf("DecodeFile() error = %v, want nil", err)
	}
	if rate != 16000 {
		t.Errorf("rate = %v, want 16000", rate)
	}
	if m.Rows() != 2 || m.Cols() != 1 {
		t.Errorf("shape = %dx%d, want 2x1", m.Rows(), m.Cols())
	}
}
