package stream

import (
	"fmt"
	"math"
	"slices"

	"github.com/cwbudde/algo-agc/dsp/core"
	"github.com/cwbudde/algo-agc/dsp/effects/agc"
	"github.com/cwbudde/algo-vecmath"
	"github.com/gopxl/beep"
)

// Stats summarises what the AGC has done so far.
type Stats struct {
	Frames int
	// PeakIn and PeakOut are absolute sample peaks over both channels.
	PeakIn  float64
	PeakOut float64
	// MaxReductionDB is the largest red meter reading seen.
	MaxReductionDB float64
	// MinDuck is the lowest ducking factor seen.
	MinDuck float64
}

// AGC is a beep.Streamer running a linked AGC pair over a voice stream.
type AGC struct {
	voice beep.Streamer
	bed   beep.Streamer
	muted func() bool
	pair  *agc.Pair
	cfg   core.ProcessorConfig

	left  []float64
	right []float64
	duck  []float64
	bedL  []float64
	bedR  []float64
	bedFr [][2]float64

	drained bool
	tail    int
	stats   Stats
	err     error
}

// New wraps voice. The sample rate must match the voice and bed streams.
func New(voice beep.Streamer, sampleRate beep.SampleRate, opts ...Option) (*AGC, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("stream: sample rate %d: %w", sampleRate, agc.ErrInvalidSampleRate)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	cfg := core.ApplyProcessorOptions(append([]core.ProcessorOption{core.WithSampleRate(float64(sampleRate))}, o.processor...)...)

	pair, err := agc.NewPair(int(sampleRate), cfg.Lookahead)
	if err != nil {
		return nil, fmt.Errorf("stream: %w", err)
	}

	keys := make([]string, 0, len(o.params))
	for k := range o.params {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	for _, k := range keys {
		if err := pair.Set(k, o.params[k]); err != nil {
			pair.Free()
			return nil, fmt.Errorf("stream: %w", err)
		}
	}

	n := cfg.BlockSize

	return &AGC{
		voice: voice,
		bed:   o.bed,
		muted: o.muted,
		pair:  pair,
		cfg:   cfg,
		left:  make([]float64, n),
		right: make([]float64, n),
		duck:  make([]float64, n),
		bedL:  make([]float64, n),
		bedR:  make([]float64, n),
		bedFr: make([][2]float64, n),
		tail:  pair.Left.BufferLength(),
		stats: Stats{MinDuck: 1},
	}, nil
}

// Stream implements beep.Streamer.
func (a *AGC) Stream(samples [][2]float64) (n int, ok bool) {
	if len(samples) == 0 {
		return 0, !a.drained || a.tail > 0
	}

	if !a.drained {
		n, ok = a.voice.Stream(samples)
		if !ok || n < len(samples) {
			a.drained = true

			if err := a.voice.Err(); err != nil {
				a.err = err
			}
		}
	}

	if a.drained && n < len(samples) {
		pad := min(len(samples)-n, a.tail)
		clear(samples[n : n+pad])
		a.tail -= pad
		n += pad
	}

	if n == 0 {
		return 0, false
	}

	muted := a.muted != nil && a.muted()

	for off := 0; off < n; off += a.cfg.BlockSize {
		a.process(samples[off:min(off+a.cfg.BlockSize, n)], muted)
	}

	return n, true
}

// Err implements beep.Streamer.
func (a *AGC) Err() error { return a.err }

// Pair returns the engine. Parameter changes must not race with Stream.
func (a *AGC) Pair() *agc.Pair { return a.pair }

// Stats returns processing statistics.
func (a *AGC) Stats() Stats { return a.stats }

// Close releases the engine.
func (a *AGC) Close() error {
	a.pair.Free()
	return nil
}

func (a *AGC) process(frames [][2]float64, muted bool) {
	k := core.Deinterleave(a.left, a.right, frames)
	left, right, duck := a.left[:k], a.right[:k], a.duck[:k]

	for i := range k {
		a.stats.PeakIn = max(a.stats.PeakIn, math.Abs(left[i]), math.Abs(right[i]))

		left[i], right[i] = a.pair.ProcessSample(left[i], right[i], muted)
		duck[i] = a.pair.DuckingFactor()

		red, _, _ := a.pair.MeterLevels()
		a.stats.MaxReductionDB = max(a.stats.MaxReductionDB, red)
		a.stats.MinDuck = min(a.stats.MinDuck, duck[i])
	}

	if a.bed != nil {
		a.mixBed(left, right, duck)
	}

	core.Interleave(frames, left, right)

	for i := range k {
		a.stats.PeakOut = max(a.stats.PeakOut, math.Abs(left[i]), math.Abs(right[i]))
	}

	a.stats.Frames += k
}

func (a *AGC) mixBed(left, right, duck []float64) {
	k := len(left)
	frames := a.bedFr[:k]

	m, ok := a.bed.Stream(frames)
	clear(frames[m:])

	if !ok || m < k {
		if err := a.bed.Err(); err != nil && a.err == nil {
			a.err = err
		}

		a.bed = nil
	}

	bedL, bedR := a.bedL[:k], a.bedR[:k]
	core.Deinterleave(bedL, bedR, frames)

	vecmath.MulBlockInPlace(bedL, duck)
	vecmath.MulBlockInPlace(bedR, duck)
	vecmath.AddBlockInPlace(left, bedL)
	vecmath.AddBlockInPlace(right, bedR)
}
