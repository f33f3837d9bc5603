// SPDX-License-Identifier: EPL-2.0

package matrix

import (
	"errors"
	"testing"
)

func TestFromRows(t *testing.T) {
	t.Parallel()

	m, err := FromRows([][]float32{
		{1.0, 2.0},
		{3.0, 4.0},
		{5.0, 6.0},
	})
	if err != nil {
		t.Fatalf("FromRows() error = %v, want nil", err)
	}

	if m.Rows() != 3 || m.Cols() != 2 {
		t.Fatalf("shape = %dx%d, want 3x2", m.Rows(), m.Cols())
	}
	if m.At(1, 0) != 3.0 || m.At(2, 1) != 6.0 {
		t.Errorf("At() returned wrong values: %v %v", m.At(1, 0), m.At(2, 1))
	}
}

func TestFromRows_Ragged(t *testing.T) {
	t.Parallel()

	_, err := FromRows([][]float32{
		{1.0, 2.0},
		{3.0},
	})
	if !errors.Is(err, ErrShape) {
		t.Errorf("FromRows() error = %v, want ErrShape", err)
	}
}

func TestFromRows_Empty(t *testing.T) {
	t.Parallel()

	if _, err := FromRows(nil); !errors.Is(err, ErrShape) {
		t.Errorf("FromRows(nil) error = %v, want ErrShape", err)
	}
}

func TestFromInterleaved(t *testing.T) {
	t.Parallel()

	// Frames: (0,1), (2,3), (4,5)
	m, err := FromInterleaved([]float32{0, 1, 2, 3, 4, 5}, 2)
	if err != nil {
		t.Fatalf("FromInterleaved() error = %v, want nil", err)
	}

	if m.Rows() != 3 || m.Cols() != 2 {
		t.Fatalf("shape = %dx%d, want 3x2", m.Rows(), m.Cols())
	}
	for i := range 3 {
		for j := range 2 {
			want := float32(i*2 + j)
			if got := m.At(i, j); got != want {
				t.Errorf("At(%d,%d) = %v, want %v", i, j, got, want)
			}
		}
	}
}

func TestFromInterleaved_Uneven(t *testing.T) {
	t.Parallel()

	if _, err := FromInterleaved([]float32{1, 2, 3}, 2); !errors.Is(err, ErrShape) {
		t.Errorf("FromInterleaved() error = %v, want ErrShape", err)
	}
	if _, err := FromInterleaved([]float32{1, 2}, 0); !errors.Is(err, ErrShape) {
		t.Errorf("FromInterleaved(channels=0) error = %v, want ErrShape", err)
	}
}

func TestTranspose(t *testing.T) {
	t.Parallel()

	m, _ := FromRows([][]float32{
		{1, 2, 3},
		{4, 5, 6},
	})
	tr := m.Transpose()

	if tr.Rows() != 3 || tr.Cols() != 2 {
		t.Fatalf("transposed shape = %dx%d, want 3x2", tr.Rows(), tr.Cols())
	}
	for i := range m.Rows() {
		for j := range m.Cols() {
			if tr.At(j, i) != m.At(i, j) {
				t.Errorf("t[%d][%d] = %v, want m[%d][%d] = %v",
					j, i, tr.At(j, i), i, j, m.At(i, j))
			}
		}
	}
}

func TestAppend(t *testing.T) {
	t.Parallel()

	m, _ := FromRows([][]float32{{1, 2}})
	more, _ := FromRows([][]float32{{3, 4}, {5, 6}})

	if err := m.Append(more); err != nil {
		t.Fatalf("Append() error = %v, want nil", err)
	}
	if m.Rows() != 3 {
		t.Fatalf("Rows() = %d after append, want 3", m.Rows())
	}
	if m.At(2, 1) != 6 {
		t.Errorf("At(2,1) = %v, want 6", m.At(2, 1))
	}
}

func TestAppend_ChannelMismatch(t *testing.T) {
	t.Parallel()

	m, _ := FromRows([][]float32{{1, 2}})
	bad, _ := FromRows([][]float32{{1, 2, 3}})

	if err := m.Append(bad); !errors.Is(err, ErrShape) {
		t.Errorf("Append() error = %v, want ErrShape", err)
	}
}

func TestApproxEqual(t *testing.T) {
	t.Parallel()

	a, _ := FromRows([][]float32{{1, 2}, {3, 4}})
	b, _ := FromRows([][]float32{{1.000001, 2}, {3, 3.999999}})
	c, _ := FromRows([][]float32{{1, 2}})

	if !a.ApproxEqual(b, 1e-5) {
		t.Error("ApproxEqual() = false for matrices within tolerance")
	}
	if a.ApproxEqual(b, 1e-8) {
		t.Error("ApproxEqual() = true for matrices outside tolerance")
	}
	if a.ApproxEqual(c, 1) {
		t.Error("ApproxEqual() = true for different shapes")
	}
}

func TestRows2D_SharesStorage(t *testing.T) {
	t.Parallel()

	m := New(2, 2)
	rows := m.Rows2D()
	rows[1][1] = 9

	if m.At(1, 1) != 9 {
		t.Error("Rows2D() returned a copy, want a view of the backing storage")
	}
}
