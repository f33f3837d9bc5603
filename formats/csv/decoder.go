// SPDX-License-Identifier: EPL-2.0

package csv

import (
	stdcsv "encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/ik5/acouh5/matrix"
)

// Decoder reads delimited numeric text: one line per sample, one
// field per channel, every line with the same field count.
type Decoder struct {
	// Comma is the field delimiter. Zero means ','.
	Comma rune
	// SkipHeader discards the first line. The format itself has no
	// header; this is an explicit opt-in, never auto-detected.
	SkipHeader bool
}

// Decode parses the full input into a samples x channels matrix.
func (d Decoder) Decode(r io.Reader) (*matrix.Matrix, error) {
	cr := stdcsv.NewReader(r)
	if d.Comma != 0 {
		cr.Comma = d.Comma
	}
	cr.ReuseRecord = true

	var (
		data []float32
		cols int
		rows int
	)

	first := true
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var pe *stdcsv.ParseError
			if errors.As(err, &pe) && errors.Is(pe.Err, stdcsv.ErrFieldCount) {
				return nil, fmt.Errorf("row %d has %d fields, expected %d: %w",
					pe.Line, len(rec), cols, ErrRaggedRow)
			}
			return nil, fmt.Errorf("row %d: %v: %w", rows+1, err, matrix.ErrParse)
		}

		if first {
			first = false
			cols = len(rec)
			if d.SkipHeader {
				continue
			}
		}

		for j, field := range rec {
			v, err := strconv.ParseFloat(field, 32)
			if err != nil {
				return nil, fmt.Errorf("row %d field %d: %q: %w",
					rows+1, j+1, field, ErrBadNumber)
			}
			data = append(data, float32(v))
		}
		rows++
	}

	if rows == 0 {
		return nil, ErrEmptyInput
	}
	return matrix.FromInterleaved(data, cols)
}

// DecodeFile parses the file at path. Delimited text carries no
// sampling rate, so the returned rate is always 0.
func (d Decoder) DecodeFile(path string) (*matrix.Matrix, float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("opening source: %w", err)
	}
	defer f.Close()

	m, err := d.Decode(f)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", path, err)
	}
	return m, 0, nil
}
