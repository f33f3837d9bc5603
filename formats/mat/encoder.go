// SPDX-License-Identifier: EPL-2.0

package mat

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/ik5/acouh5/matrix"
)

// Write writes m as a single mxSINGLE variable in a little-endian
// level 5 MAT-file. It exists for round-trip tests and for handing
// converted data back to tools that still speak the legacy format.
func Write(w io.Writer, name string, m *matrix.Matrix) error {
	if name == "" {
		return fmt.Errorf("empty variable name: %w", matrix.ErrShape)
	}

	rows, cols := m.Rows(), m.Cols()

	namePad := pad8(len(name))
	dataLen := rows * cols * 4
	dataPad := pad8(dataLen)

	// Subelement sizes inside the miMATRIX payload: array flags
	// (8+8), dimensions (8+8), name, real part.
	payload := 16 + 16 + 8 + len(name) + namePad + 8 + dataLen + dataPad

	header := make([]byte, headerSize)
	copy(header, "MATLAB 5.0 MAT-file, written by acouh5")
	for i := len("MATLAB 5.0 MAT-file, written by acouh5"); i < 116; i++ {
		header[i] = ' '
	}
	binary.LittleEndian.PutUint16(header[124:126], versionMagic)
	header[126] = 'I'
	header[127] = 'M'
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	buf := make([]byte, 0, 8+payload)
	buf = tag(buf, miMatrix, payload)

	// Array flags: class in the low byte, no complex/global/logical.
	buf = tag(buf, miUint32, 8)
	buf = binary.LittleEndian.AppendUint32(buf, mxSingle)
	buf = binary.LittleEndian.AppendUint32(buf, 0)

	buf = tag(buf, miInt32, 8)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(rows))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(cols))

	buf = tag(buf, miInt8, len(name))
	buf = append(buf, name...)
	buf = append(buf, make([]byte, namePad)...)

	// Real part, column-major per the format.
	buf = tag(buf, miSingle, dataLen)
	for j := range cols {
		for i := range rows {
			buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(m.At(i, j)))
		}
	}
	buf = append(buf, make([]byte, dataPad)...)

	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("writing variable: %w", err)
	}
	return nil
}

func tag(buf []byte, typ uint32, size int) []byte {
	buf = binary.LittleEndian.AppendUint32(buf, typ)
	return binary.LittleEndian.AppendUint32(buf, uint32(size))
}

func pad8(n int) int {
	if rem := n % 8; rem != 0 {
		return 8 - rem
	}
	return 0
}
