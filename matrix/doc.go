// SPDX-License-Identifier: EPL-2.0

// Package matrix holds the canonical in-memory representation of a
// multichannel acoustic measurement.
//
// # Matrix
//
// A Matrix is a 2-D float32 array with axis 0 as the time-ordered
// sample index and axis 1 as the channel index. Both dimensions are
// fixed once constructed; the only permitted mutation is append-only
// growth along axis 0:
//
//	m, _ := matrix.FromInterleaved(samples, 2)
//	more, _ := matrix.FromInterleaved(extra, 2)
//	m.Append(more)
//
// Constructors cover the layouts the input adapters produce:
// FromRows for row-oriented text sources, FromInterleaved for
// channel-interleaved audio streams.
//
// # Source
//
// The Source interface is the streaming form of the same data. Audio
// decoders implement it and Collect drains one fully into a Matrix:
//
//	src, _ := decoder.Decode(file)
//	m, err := matrix.Collect(src, 4096)
//
// # Error Kinds
//
// ErrParse and ErrFormat are the two error kinds shared by every
// input adapter. Adapter packages wrap their specific sentinels
// around them, so both of these hold:
//
//	errors.Is(err, csv.ErrRaggedRow)
//	errors.Is(err, matrix.ErrParse)
package matrix
