// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF recordings into sample matrices via
// github.com/go-audio/aiff.
package aiff
