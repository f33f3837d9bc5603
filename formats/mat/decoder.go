// SPDX-License-Identifier: EPL-2.0

package mat

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/ik5/acouh5/matrix"
)

// Level 5 MAT-file constants (the pre-7.3 generation).
const (
	headerSize   = 128
	versionMagic = 0x0100

	miInt8       = 1
	miUint8      = 2
	miInt16      = 3
	miUint16     = 4
	miInt32      = 5
	miUint32     = 6
	miSingle     = 7
	miDouble     = 9
	miMatrix     = 14
	miCompressed = 15

	mxDouble = 6
	mxSingle = 7
	mxInt8   = 8
	mxUint8  = 9
	mxInt16  = 10
	mxUint16 = 11
	mxInt32  = 12
	mxUint32 = 13

	flagComplex = 0x0800
)

// Decoder reads a numeric 2-D array from a level 5 MAT-file.
type Decoder struct {
	// Var is the variable name to load. Empty means the first 2-D
	// numeric array in the file. Files produced by an interactive
	// session often hold only an auto-named variable, so the name is
	// configuration, not something this package guesses.
	Var string
}

// Decode reads the full input and returns the selected variable as a
// samples x channels matrix. MAT-files store arrays column-major;
// the returned matrix is row-major with the same logical
// orientation, so no transpose is needed by the caller.
func (d Decoder) Decode(r io.Reader) (*matrix.Matrix, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	if len(buf) < headerSize {
		return nil, ErrNotMatFile
	}

	bo, err := headerByteOrder(buf)
	if err != nil {
		return nil, err
	}

	p := &parser{buf: buf, pos: headerSize, bo: bo}
	for !p.done() {
		typ, data, err := p.element()
		if err != nil {
			return nil, err
		}

		if typ == miCompressed {
			zr, err := zlib.NewReader(bytes.NewReader(data))
			if err != nil {
				return nil, fmt.Errorf("compressed element: %v: %w", err, matrix.ErrFormat)
			}
			inflated, err := io.ReadAll(zr)
			zr.Close()
			if err != nil {
				return nil, fmt.Errorf("compressed element: %v: %w", err, matrix.ErrFormat)
			}
			inner := &parser{buf: inflated, bo: bo}
			typ, data, err = inner.element()
			if err != nil {
				return nil, err
			}
		}

		if typ != miMatrix {
			continue
		}

		m, name, err := parseMatrix(data, bo)
		if err != nil {
			return nil, err
		}
		if m == nil {
			// Non-numeric or non-2-D variable; keep scanning unless
			// it is the one that was asked for.
			if d.Var != "" && name == d.Var {
				return nil, fmt.Errorf("variable %q: %w", name, ErrNotMatrix)
			}
			continue
		}
		if d.Var == "" || name == d.Var {
			return m, nil
		}
	}

	if d.Var != "" {
		return nil, fmt.Errorf("variable %q: %w", d.Var, ErrVariableNotFound)
	}
	return nil, ErrVariableNotFound
}

// DecodeFile reads the MAT-file at path. The format carries no
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

// headerByteOrder validates the 128-byte header and returns the file
// byte order from the endian indicator.
func headerByteOrder(buf []byte) (binary.ByteOrder, error) {
	switch {
	case buf[126] == 'I' && buf[127] == 'M':
		if binary.LittleEndian.Uint16(buf[124:126]) != versionMagic {
			return nil, ErrNotMatFile
		}
		return binary.LittleEndian, nil
	case buf[126] == 'M' && buf[127] == 'I':
		if binary.BigEndian.Uint16(buf[124:126]) != versionMagic {
			return nil, ErrNotMatFile
		}
		return binary.BigEndian, nil
	default:
		return nil, ErrNotMatFile
	}
}

// parser walks the tagged data elements of a MAT-file region.
type parser struct {
	buf []byte
	pos int
	bo  binary.ByteOrder
}

func (p *parser) done() bool {
	return p.pos+8 > len(p.buf)
}

// element reads one tagged data element, handling the packed "small
// data element" form, and leaves the cursor 64-bit aligned.
func (p *parser) element() (typ uint32, data []byte, err error) {
	if p.done() {
		return 0, nil, fmt.Errorf("truncated element: %w", matrix.ErrFormat)
	}

	word := p.bo.Uint32(p.buf[p.pos:])
	if word>>16 != 0 {
		// Small element: size in the upper half-word, up to 4 data
		// bytes packed beside the tag.
		typ = word & 0xFFFF
		size := int(word >> 16)
		if size > 4 {
			return 0, nil, fmt.Errorf("small element of %d bytes: %w", size, matrix.ErrFormat)
		}
		data = p.buf[p.pos+4 : p.pos+4+size]
		p.pos += 8
		return typ, data, nil
	}

	typ = word
	size := int(p.bo.Uint32(p.buf[p.pos+4:]))
	start := p.pos + 8
	if start+size > len(p.buf) {
		return 0, nil, fmt.Errorf("element overruns file: %w", matrix.ErrFormat)
	}
	data = p.buf[start : start+size]

	p.pos = start + size
	// Compressed payloads are the one element kind the format does
	// not pad to a 64-bit boundary.
	if typ != miCompressed {
		if rem := p.pos % 8; rem != 0 {
			p.pos += 8 - rem
		}
	}
	return typ, data, nil
}

// parseMatrix decodes an miMATRIX element. It returns (nil, name,
// nil) for variables this adapter does not handle, so the caller can
// keep scanning.
func parseMatrix(data []byte, bo binary.ByteOrder) (*matrix.Matrix, string, error) {
	p := &parser{buf: data, bo: bo}

	typ, flags, err := p.element()
	if err != nil {
		return nil, "", err
	}
	if typ != miUint32 || len(flags) < 4 {
		return nil, "", fmt.Errorf("bad array flags: %w", matrix.ErrFormat)
	}
	flagWord := bo.Uint32(flags)
	class := flagWord & 0xFF

	typ, dimData, err := p.element()
	if err != nil {
		return nil, "", err
	}
	if typ != miInt32 {
		return nil, "", fmt.Errorf("bad dimensions element: %w", matrix.ErrFormat)
	}
	dims := make([]int, len(dimData)/4)
	for i := range dims {
		dims[i] = int(int32(bo.Uint32(dimData[i*4:])))
	}

	typ, nameData, err := p.element()
	if err != nil {
		return nil, "", err
	}
	if typ != miInt8 {
		return nil, "", fmt.Errorf("bad name element: %w", matrix.ErrFormat)
	}
	name := string(nameData)

	if !numericClass(class) || len(dims) != 2 || dims[0] < 1 || dims[1] < 1 {
		return nil, name, nil
	}
	if flagWord&flagComplex != 0 {
		return nil, name, fmt.Errorf("variable %q is complex: %w", name, ErrNotMatrix)
	}

	typ, real, err := p.element()
	if err != nil {
		return nil, name, err
	}
	vals, err := numericValues(typ, real, bo)
	if err != nil {
		return nil, name, fmt.Errorf("variable %q: %w", name, err)
	}

	rows, cols := dims[0], dims[1]
	if rows*cols != len(vals) {
		return nil, name, fmt.Errorf("variable %q has %d values for %dx%d: %w",
			name, len(vals), rows, cols, matrix.ErrFormat)
	}

	// Column-major on disk, row-major in memory.
	m := matrix.New(rows, cols)
	for j := range cols {
		col := vals[j*rows : (j+1)*rows]
		for i, v := range col {
			m.Set(i, j, v)
		}
	}
	return m, name, nil
}

func numericClass(class uint32) bool {
	return class >= mxDouble && class <= mxUint32
}

// numericValues converts the raw storage of a numeric subelement to
// float32. The storage type can be narrower than the array class;
// MAT writers compact integral-valued doubles that way.
func numericValues(typ uint32, data []byte, bo binary.ByteOrder) ([]float32, error) {
	switch typ {
	case miDouble:
		out := make([]float32, len(data)/8)
		for i := range out {
			out[i] = float32(math.Float64frombits(bo.Uint64(data[i*8:])))
		}
		return out, nil
	case miSingle:
		out := make([]float32, len(data)/4)
		for i := range out {
			out[i] = math.Float32frombits(bo.Uint32(data[i*4:]))
		}
		return out, nil
	case miInt8:
		out := make([]float32, len(data))
		for i := range out {
			out[i] = float32(int8(data[i]))
		}
		return out, nil
	case miUint8:
		out := make([]float32, len(data))
		for i := range out {
			out[i] = float32(data[i])
		}
		return out, nil
	case miInt16:
		out := make([]float32, len(data)/2)
		for i := range out {
			out[i] = float32(int16(bo.Uint16(data[i*2:])))
		}
		return out, nil
	case miUint16:
		out := make([]float32, len(data)/2)
		for i := range out {
			out[i] = float32(bo.Uint16(data[i*2:]))
		}
		return out, nil
	case miInt32:
		out := make([]float32, len(data)/4)
		for i := range out {
			out[i] = float32(int32(bo.Uint32(data[i*4:])))
		}
		return out, nil
	case miUint32:
		out := make([]float32, len(data)/4)
		for i := range out {
			out[i] = float32(bo.Uint32(data[i*4:]))
		}
		return out, nil
	default:
		return nil, fmt.Errorf("storage type %d: %w", typ, matrix.ErrFormat)
	}
}
