// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"

	"github.com/ik5/acouh5/matrix"
)

var (
	ErrNotWavFile           = fmt.Errorf("%w: not a WAV file", matrix.ErrFormat)
	ErrUnsupportedWavLayout = fmt.Errorf("%w: unsupported WAV layout", matrix.ErrFormat)
)
