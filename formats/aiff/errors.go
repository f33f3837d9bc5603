// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"

	"github.com/ik5/acouh5/matrix"
)

var (
	ErrNotAiffFile           = fmt.Errorf("%w: not an AIFF file", matrix.ErrFormat)
	ErrUnsupportedAiffLayout = fmt.Errorf("%w: unsupported AIFF layout", matrix.ErrFormat)
)
