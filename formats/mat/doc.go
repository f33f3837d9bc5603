// SPDX-License-Identifier: EPL-2.0

// Package mat decodes the legacy (pre-7.3) MAT-file matrix format.
//
// The decoder handles both byte orders, plain and zlib-compressed
// data elements, and numeric arrays of any storage width, always
// returning float32. Arrays are stored column-major on disk and come
// back row-major in the logical samples x channels orientation, so
// callers never transpose.
//
// The variable to load is configuration:
//
//	decoder := mat.Decoder{Var: "pressure"}
//	m, err := decoder.Decode(file)
//
// With Var empty the first 2-D numeric array wins, which covers
// single-variable files exported from an interactive session without
// baking any session-specific name into code.
//
// Cell arrays, structs, char arrays, sparse and complex matrices are
// out of scope; hitting one by name fails with ErrNotMatrix.
package mat
