// SPDX-License-Identifier: EPL-2.0

package acouh5

import (
	"sync"

	"github.com/ik5/acouh5/formats/aiff"
	"github.com/ik5/acouh5/formats/csv"
	"github.com/ik5/acouh5/formats/mat"
	"github.com/ik5/acouh5/formats/mat73"
	"github.com/ik5/acouh5/formats/mp3"
	"github.com/ik5/acouh5/formats/vorbis"
	"github.com/ik5/acouh5/formats/wav"
	"github.com/ik5/acouh5/matrix"
)

// Format tags a source file format. The set is closed: conversion is
// a fixed dispatch, not a plugin system, though a custom Registry
// can still carry extra decoders.
type Format string

const (
	FormatCSV    Format = "csv"
	FormatMAT    Format = "mat"
	FormatMAT73  Format = "mat73"
	FormatWAV    Format = "wav"
	FormatAIFF   Format = "aiff"
	FormatMP3    Format = "mp3"
	FormatVorbis Format = "ogg"
)

// Decoder parses one source file into a sample matrix. The returned
// rate is the source's own sampling frequency in Hz, or 0 for
// formats that carry none (CSV and both MAT generations).
type Decoder interface {
	DecodeFile(path string) (*matrix.Matrix, float64, error)
}

// Registry maps format tags to decoders.
type Registry struct {
	codecs map[Format]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[Format]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format Format, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format Format) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}

// DefaultRegistry returns a registry holding all built-in decoders
// with their zero-value configuration.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(FormatCSV, csv.Decoder{})
	r.Register(FormatMAT, mat.Decoder{})
	r.Register(FormatMAT73, mat73.Decoder{})
	r.Register(FormatWAV, wav.Decoder{})
	r.Register(FormatAIFF, aiff.Decoder{})
	r.Register(FormatMP3, mp3.Decoder{})
	r.Register(FormatVorbis, vorbis.Decoder{})
	return r
}
