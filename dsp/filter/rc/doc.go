// Package rc provides one-pole filters that emulate an active analog
// resistor-capacitor network.
//
// Coefficients are derived from a cutoff frequency by matching the
// exponential decay of the RC time constant τ = 1/(2π·f) at the sample
// period T:
//
//	A = 1 - T/(τ+T)   lowpass pole
//	B = 1 - A         lowpass input weight
//	C = τ/(τ+T)       highpass coefficient
//
// A single [State] can be driven in several topologies:
//   - ResonantHighpass: highpass with band-pass feedback scaled by Q,
//     12 dB/octave per stage when cascaded.
//   - DetailHighpass / DetailLowpass: 6 dB/octave shelving-style detail
//     enhancement, output = x + amount·filtered.
//   - PhaseRotate: lowpass minus highpass of the same input, shifting phase
//     while keeping the magnitude close to unity.
//   - BandSplit: resonant split returning both lowpass and highpass terms,
//     used as a sibilance sidechain.
//
// All operations are allocation-free and keep no global state.
package rc
