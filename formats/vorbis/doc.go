// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis recordings into sample matrices
// via github.com/jfreymuth/oggvorbis.
package vorbis
