// SPDX-License-Identifier: EPL-2.0

package container

import (
	"errors"
	"fmt"

	"github.com/ik5/acouh5/matrix"
)

var (
	ErrEmptyMatrix   = errors.New("refusing to write an empty matrix")
	ErrBadSampleFreq = errors.New("sampling frequency must be positive")

	ErrNoDataset    = fmt.Errorf("%w: missing %s dataset", matrix.ErrFormat, DatasetName)
	ErrNoSampleFreq = fmt.Errorf("%w: missing %s attribute", matrix.ErrFormat, SampleFreqAttr)
)
