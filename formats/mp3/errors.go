// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"

	"github.com/ik5/acouh5/matrix"
)

var ErrNotMp3File = fmt.Errorf("%w: not an MP3 stream", matrix.ErrFormat)
