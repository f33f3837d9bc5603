// SPDX-License-Identifier: EPL-2.0

package acouh5

import "errors"

var (
	// ErrUnsupportedFormat means the requested format tag is not in
	// the registry. The destination is left untouched.
	ErrUnsupportedFormat = errors.New("unsupported source format")
	// ErrNoSampleFreq means neither WithSampleFreq nor the source
	// itself provided a sampling frequency.
	ErrNoSampleFreq = errors.New("no sampling frequency available")
)
