// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"testing"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/acouh5/matrix"
)

// fakeAiffReader feeds canned integer PCM.
type fakeAiffReader struct {
	data   []int
	pos    int
	format *goaudio.Format
}

func (f *fakeAiffReader) Format() *goaudio.Format { return f.format }

func (f *fakeAiffReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if f.pos >= len(f.data) {
		return 0, nil
	}
	n := copy(buf.Data, f.data[f.pos:])
	f.pos += n
	return n, nil
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	src := &source{
		dec: &fakeAiffReader{
			data:   []int{16384, -16384, 8192, -8192},
			format: &goaudio.Format{NumChannels: 2, SampleRate: 32000},
		},
		sampleRate: 32000,
		channels:   2,
		bitDepth:   16,
	}

	m, err := matrix.Collect(src, 4096)
	if err != nil {
		t.Fatalf("Collect() error = %v, want nil", err)
	}

	if m.Rows() != 2 || m.Cols() != 2 {
		t.Fatalf("shape = %dx%d, want 2x2", m.Rows(), m.Cols())
	}
	if m.At(0, 0) != 0.5 || m.At(0, 1) != -0.5 {
		t.Errorf("row 0 = (%v, %v), want (0.5, -0.5)", m.At(0, 0), m.At(0, 1))
	}
}

func TestDecode_NotAiff(t *testing.T) {
	t.Parallel()

	_, _, err := Decoder{}.Decode(bytes.NewReader([]byte("not a form aiff stream")))
	if !errors.Is(err, ErrNotAiffFile) {
		t.Fatalf("Decode() error = %v, want ErrNotAiffFile", err)
	}
	if !errors.Is(err, matrix.ErrFormat) {
		t.Error("aiff error does not wrap matrix.ErrFormat")
	}
}
