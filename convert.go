// SPDX-License-Identifier: EPL-2.0

package acouh5

import (
	"fmt"

	"github.com/ik5/acouh5/container"
	"github.com/ik5/acouh5/formats/mat"
	"github.com/ik5/acouh5/formats/mat73"
)

// Option configures a single conversion.
type Option func(*options)

type options struct {
	sampleFreq float64
	matVar     string
	chunkRows  int
	registry   *Registry
}

// WithSampleFreq sets the sampling frequency written to the
// destination, in Hz. Mandatory for sources that carry none (CSV and
// both MAT generations); for audio sources it overrides the stream's
// native rate.
func WithSampleFreq(hz float64) Option {
	return func(o *options) { o.sampleFreq = hz }
}

// WithMatVar names the variable to load from a MAT source. Applies
// to FormatMAT and FormatMAT73; without it the first 2-D numeric
// array in the file is used.
func WithMatVar(name string) Option {
	return func(o *options) { o.matVar = name }
}

// WithChunkRows sets the destination chunk length along the sample
// axis instead of container.DefaultChunkRows.
func WithChunkRows(rows int) Option {
	return func(o *options) { o.chunkRows = rows }
}

// WithRegistry swaps the decoder registry, allowing custom formats.
func WithRegistry(r *Registry) Option {
	return func(o *options) { o.registry = r }
}

// Convert reads the source file in the given format and writes it as
// a canonical container at dstPath: one extensible float32 dataset
// "time_data" of shape samples x channels with a single scalar
// attribute "sample_freq".
//
// The whole matrix is materialized in memory between the read and
// the write; sources that do not fit in memory are out of scope. The
// destination is truncated if it exists, but is never touched before
// the format tag resolves and the source decodes, so a failed
// conversion of a bad source leaves an existing destination intact.
// Errors are deterministic and surface unchanged: there is nothing
// transient here to retry.
func Convert(srcPath string, format Format, dstPath string, opts ...Option) error {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	reg := o.registry
	if reg == nil {
		reg = DefaultRegistry()
	}

	dec, ok := reg.Get(format)
	if !ok {
		return fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
	}
	if o.matVar != "" {
		switch format {
		case FormatMAT:
			dec = mat.Decoder{Var: o.matVar}
		case FormatMAT73:
			dec = mat73.Decoder{Var: o.matVar}
		}
	}

	m, rate, err := dec.DecodeFile(srcPath)
	if err != nil {
		return err
	}

	freq := o.sampleFreq
	if freq == 0 {
		freq = rate
	}
	if freq == 0 {
		return fmt.Errorf("converting %s: %w", srcPath, ErrNoSampleFreq)
	}
	// A supplied negative frequency falls through to the writer,
	// which rejects it as container.ErrBadSampleFreq.

	if o.chunkRows > 0 {
		return container.WriteChunked(dstPath, m, freq, o.chunkRows)
	}
	return container.Write(dstPath, m, freq)
}
