// SPDX-License-Identifier: EPL-2.0

package mat73

import (
	"fmt"

	"github.com/ik5/acouh5/matrix"
)

var (
	ErrNotMat73File     = fmt.Errorf("%w: not an HDF5-backed MAT-file", matrix.ErrFormat)
	ErrVariableNotFound = fmt.Errorf("%w: dataset not found", matrix.ErrFormat)
	ErrNotMatrix        = fmt.Errorf("%w: not a 2-D numeric dataset", matrix.ErrFormat)
)
