// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"

	"github.com/ik5/acouh5/matrix"
)

var ErrNotVorbisFile = fmt.Errorf("%w: not an Ogg Vorbis stream", matrix.ErrFormat)
