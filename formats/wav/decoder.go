// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"os"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/acouh5/matrix"
	"github.com/ik5/acouh5/utils"
)

// Decoder reads PCM WAV recordings via the go-audio library.
type Decoder struct{}

// Decode reads the full WAV stream into a samples x channels matrix
// of [-1,1) values, plus the stream's sample rate in Hz.
func (Decoder) Decode(r io.Reader) (*matrix.Matrix, float64, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		// go-audio needs seeking, so a plain reader gets buffered.
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, 0, fmt.Errorf("reading wav data: %w", err)
		}
		rs = &readSeeker{data: data}
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, 0, ErrNotWavFile
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("decoding wav: %v: %w", err, ErrUnsupportedWavLayout)
	}
	if buf.Format == nil || buf.Format.NumChannels < 1 {
		return nil, 0, ErrUnsupportedWavLayout
	}

	bitDepth := int(dec.BitDepth)
	samples := make([]float32, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = utils.IntToFloat32(v, bitDepth)
	}

	m, err := matrix.FromInterleaved(samples, buf.Format.NumChannels)
	if err != nil {
		return nil, 0, err
	}
	return m, float64(buf.Format.SampleRate), nil
}

// DecodeFile reads the WAV file at path.
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

// readSeeker implements io.ReadSeeker over in-memory data.
type readSeeker struct {
	data   []byte
	offset int64
}

func (rs *readSeeker) Read(p []byte) (n int, err error) {
	if rs.offset >= int64(len(rs.data)) {
		return 0, io.EOF
	}
	n = copy(p, rs.data[rs.offset:])
	rs.offset += int64(n)
	return n, nil
}

func (rs *readSeeker) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64
	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = rs.offset + offset
	case io.SeekEnd:
		newOffset = int64(len(rs.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if newOffset < 0 {
		return 0, fmt.Errorf("negative position")
	}

	rs.offset = newOffset
	return newOffset, nil
}
