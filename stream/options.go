package stream

import (
	"github.com/cwbudde/algo-agc/dsp/core"
	"github.com/gopxl/beep"
)

// Option configures an AGC.
type Option func(*options)

type options struct {
	processor []core.ProcessorOption
	bed       beep.Streamer
	muted     func() bool
	params    map[string]string
}

// WithLookahead sets the lookahead window in seconds.
func WithLookahead(seconds float64) Option {
	return func(o *options) {
		o.processor = append(o.processor, core.WithLookahead(seconds))
	}
}

// WithBlockSize sets the number of frames processed per internal block.
func WithBlockSize(frames int) Option {
	return func(o *options) {
		o.processor = append(o.processor, core.WithBlockSize(frames))
	}
}

// WithBed mixes bed into the output, scaled by the ducking factor.
func WithBed(bed beep.Streamer) Option {
	return func(o *options) {
		o.bed = bed
	}
}

// WithMute installs a callback polled once per Stream call. While it
// reports true the ducker releases.
func WithMute(muted func() bool) Option {
	return func(o *options) {
		o.muted = muted
	}
}

// WithParams applies engine key/value parameters to both channels.
func WithParams(params map[string]string) Option {
	return func(o *options) {
		if o.params == nil {
			o.params = make(map[string]string, len(params))
		}

		for k, v := range params {
			o.params[k] = v
		}
	}
}
