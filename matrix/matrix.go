// SPDX-License-Identifier: EPL-2.0

package matrix

import "fmt"

// Matrix is a two-dimensional float32 array with semantic axes
// (sample index, channel index). Axis 0 is time-ordered at a fixed
// sampling rate, axis 1 is the 0-based contiguous channel index.
// Storage is a single row-major slice.
type Matrix struct {
	data []float32
	rows int
	cols int
}

// New returns a zero-filled rows x cols matrix.
func New(rows, cols int) *Matrix {
	return &Matrix{
		data: make([]float32, rows*cols),
		rows: rows,
		cols: cols,
	}
}

// FromRows builds a matrix from row slices. Every row must have the
// same length.
func FromRows(rows [][]float32) (*Matrix, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("no rows: %w", ErrShape)
	}
	cols := len(rows[0])
	m := New(len(rows), cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d values, want %d: %w", i, len(row), cols, ErrShape)
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}
	return m, nil
}

// FromInterleaved builds a matrix from channel-interleaved samples,
// the layout every audio decoder produces. len(data) must be a
// multiple of channels.
func FromInterleaved(data []float32, channels int) (*Matrix, error) {
	if channels < 1 {
		return nil, fmt.Errorf("channel count %d: %w", channels, ErrShape)
	}
	if len(data)%channels != 0 {
		return nil, fmt.Errorf("%d samples do not divide into %d channels: %w", len(data), channels, ErrShape)
	}
	m := &Matrix{
		data: make([]float32, len(data)),
		rows: len(data) / channels,
		cols: channels,
	}
	copy(m.data, data)
	return m, nil
}

// Rows returns the sample count.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the channel count.
func (m *Matrix) Cols() int { return m.cols }

// At returns the value at sample i, channel j.
func (m *Matrix) At(i, j int) float32 { return m.data[i*m.cols+j] }

// Set stores v at sample i, channel j.
func (m *Matrix) Set(i, j int, v float32) { m.data[i*m.cols+j] = v }

// Row returns sample i as a slice backed by the matrix storage.
func (m *Matrix) Row(i int) []float32 {
	return m.data[i*m.cols : (i+1)*m.cols]
}

// Data returns the row-major backing slice.
func (m *Matrix) Data() []float32 { return m.data }

// Rows2D returns a nested per-row view backed by the matrix storage.
func (m *Matrix) Rows2D() [][]float32 {
	out := make([][]float32, m.rows)
	for i := range out {
		out[i] = m.Row(i)
	}
	return out
}

// Transpose returns a new matrix with the axes swapped.
func (m *Matrix) Transpose() *Matrix {
	t := New(m.cols, m.rows)
	for i := range m.rows {
		for j := range m.cols {
			t.data[j*m.rows+i] = m.data[i*m.cols+j]
		}
	}
	return t
}

// Append grows the matrix along axis 0 by the rows of other. The
// channel counts must match. This is the only permitted mutation of
// an existing matrix.
func (m *Matrix) Append(other *Matrix) error {
	if other.cols != m.cols {
		return fmt.Errorf("appending %d channels to %d: %w", other.cols, m.cols, ErrShape)
	}
	m.data = append(m.data, other.data...)
	m.rows += other.rows
	return nil
}

// ApproxEqual reports whether both matrices have the same shape and
// all values within tol of each other.
func (m *Matrix) ApproxEqual(other *Matrix, tol float32) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i, v := range m.data {
		d := v - other.data[i]
		if d < 0 {
			d = -d
		}
		if d > tol {
			return false
		}
	}
	return true
}
