// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 recordings into sample matrices via
// github.com/hajimehoshi/go-mp3. Output is always two channels at
// the stream's native rate.
package mp3
