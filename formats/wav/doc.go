// SPDX-License-Identifier: EPL-2.0

// Package wav decodes PCM WAV recordings into sample matrices.
//
// Decoding is backed by github.com/go-audio/wav, so any PCM bit
// depth go-audio handles works; values are normalized to [-1,1) and
// the file's own sample rate is reported alongside the matrix:
//
//	decoder := wav.Decoder{}
//	m, rate, err := decoder.DecodeFile("recording.wav")
//
// WriteWAV16 is the matching minimal encoder, mainly used to produce
// test recordings.
package wav
