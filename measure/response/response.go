package response

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

var (
	// ErrInvalidSize is returned when the analysis length is not a power of
	// two of at least 2.
	ErrInvalidSize = errors.New("response: size must be a power of two >= 2")
	// ErrInvalidSampleRate is returned for a non-positive or non-finite
	// sample rate.
	ErrInvalidSampleRate = errors.New("response: sample rate must be > 0")
)

// Processor is anything that filters one sample at a time.
type Processor interface {
	ProcessSample(x float64) float64
}

// Response is a linear magnitude response over bins 0..size/2.
type Response struct {
	SampleRate float64
	Size       int
	Magnitude  []float64
}

// Measure feeds p an impulse of size samples and returns its magnitude
// response. p is left in whatever state the impulse leaves it.
func Measure(p Processor, sampleRate float64, size int) (*Response, error) {
	if size < 2 || size&(size-1) != 0 {
		return nil, fmt.Errorf("response: size %d: %w", size, ErrInvalidSize)
	}

	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("response: sample rate %g: %w", sampleRate, ErrInvalidSampleRate)
	}

	in := make([]complex128, size)
	for i := range in {
		x := 0.0
		if i == 0 {
			x = 1
		}

		in[i] = complex(p.ProcessSample(x), 0)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("response: fft plan: %w", err)
	}

	out := make([]complex128, size)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("response: fft: %w", err)
	}

	bins := size/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)

	for k := range bins {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	return &Response{SampleRate: sampleRate, Size: size, Magnitude: mag}, nil
}

// BinHz returns the centre frequency of bin k.
func (r *Response) BinHz(k int) float64 {
	return float64(k) * r.SampleRate / float64(r.Size)
}

// At returns the linear magnitude at freqHz, interpolated between the two
// neighbouring bins and clamped to the DC and Nyquist bins.
func (r *Response) At(freqHz float64) float64 {
	pos := freqHz * float64(r.Size) / r.SampleRate
	last := len(r.Magnitude) - 1

	switch {
	case pos <= 0:
		return r.Magnitude[0]
	case pos >= float64(last):
		return r.Magnitude[last]
	}

	k := int(pos)
	frac := pos - float64(k)

	return r.Magnitude[k]*(1-frac) + r.Magnitude[k+1]*frac
}

// AtDB returns At(freqHz) in dB (20·log10).
func (r *Response) AtDB(freqHz float64) float64 {
	return 20 * math.Log10(r.At(freqHz))
}
