package testutil

import (
	"math"
	"math/rand"
)

// Sine returns length samples of a sine starting at phase zero.
func Sine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate

	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}

	return out
}

// Noise returns uniform white noise in [-amplitude, amplitude) drawn from a
// fixed seed.
func Noise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))

	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}

	return out
}

// Bursts alternates loud and quiet noise segments of period samples each,
// starting loud.
func Bursts(seed int64, loud, quiet float64, period, length int) []float64 {
	out := Noise(seed, 1, length)

	for i := range out {
		if (i/period)%2 == 0 {
			out[i] *= loud
		} else {
			out[i] *= quiet
		}
	}

	return out
}

// Impulse returns a unit impulse at pos. An out-of-range pos yields silence.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}

	return out
}

// Peak returns the largest absolute value in data and its index. An empty
// slice yields (0, -1).
func Peak(data []float64) (float64, int) {
	peak, at := 0.0, -1

	for i, v := range data {
		if a := math.Abs(v); at < 0 || a > peak {
			peak, at = a, i
		}
	}

	return peak, at
}
