// SPDX-License-Identifier: EPL-2.0

package mat

import (
	"fmt"

	"github.com/ik5/acouh5/matrix"
)

var (
	ErrNotMatFile       = fmt.Errorf("%w: not a level 5 MAT-file", matrix.ErrFormat)
	ErrVariableNotFound = fmt.Errorf("%w: variable not found", matrix.ErrFormat)
	ErrNotMatrix        = fmt.Errorf("%w: not a 2-D numeric array", matrix.ErrFormat)
)
