// SPDX-License-Identifier: EPL-2.0

package matrix

import (
	"errors"
	"fmt"
)

// Error kinds shared by all input adapters. Format packages wrap
// their own sentinels around these so callers can match either the
// specific failure or the broad kind with errors.Is.
var (
	// ErrParse marks malformed text input (ragged rows, bad numbers).
	ErrParse = errors.New("malformed text input")
	// ErrFormat marks a binary container missing the expected array
	// or holding one of the wrong dimensionality.
	ErrFormat = errors.New("invalid container format")
	// ErrShape marks a dimension mismatch in matrix construction.
	ErrShape = errors.New("dimension mismatch")

	// ErrNoData is returned when a source decodes to zero samples.
	ErrNoData = fmt.Errorf("%w: no samples", ErrFormat)
)
