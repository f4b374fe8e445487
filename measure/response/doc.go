// Package response measures the magnitude response of a per-sample
// processor from its impulse response.
//
// The processor is driven with a unit impulse followed by silence and the
// captured impulse response is transformed with a single FFT. The result is
// only meaningful for processors that are linear and whose impulse response
// has decayed within the analysis length.
package response
