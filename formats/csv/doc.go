// SPDX-License-Identifier: EPL-2.0

// Package csv decodes delimited-text measurement files.
//
// Each line is one time sample, each comma-separated field one
// channel. All lines must carry the same field count; a ragged row
// fails with ErrRaggedRow rather than truncating or padding:
//
//	decoder := csv.Decoder{}
//	m, err := decoder.Decode(file)
//	if errors.Is(err, csv.ErrRaggedRow) {
//	    // report the offending row; the error names it
//	}
//
// The format carries no sampling rate, so the caller must supply one
// when writing the canonical container.
package csv
