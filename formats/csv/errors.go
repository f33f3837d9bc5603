// SPDX-License-Identifier: EPL-2.0

package csv

import (
	"fmt"

	"github.com/ik5/acouh5/matrix"
)

var (
	ErrRaggedRow  = fmt.Errorf("%w: ragged row", matrix.ErrParse)
	ErrBadNumber  = fmt.Errorf("%w: non-numeric field", matrix.ErrParse)
	ErrEmptyInput = fmt.Errorf("%w: no rows", matrix.ErrParse)
)
