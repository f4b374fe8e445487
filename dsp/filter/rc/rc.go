package rc

// Coefficients holds the derived coefficients of one RC stage.
type Coefficients struct {
	CutoffHz float64
	Q        float64
	A        float64
	B        float64
	C        float64
}

// State is the per-instance memory of one RC stage. It must not be shared
// between filters.
type State struct {
	LastIn   float64
	Lowpass  float64
	Bandpass float64
	Highpass float64
}

// Design derives coefficients for the given cutoff, resonance and sample
// rate. No validation is performed.
func Design(cutoffHz, q, sampleRate float64) Coefficients {
	const twoPi = 6.28318530717958647692528676655900576839433879875021

	tau := 1.0 / (twoPi * cutoffHz)
	period := 1.0 / sampleRate
	a := 1.0 - period/(tau+period)

	return Coefficients{
		CutoffHz: cutoffHz,
		Q:        q,
		A:        a,
		B:        1.0 - a,
		C:        tau / (tau + period),
	}
}

// ResonantHighpass runs one 12 dB/octave highpass stage.
func (s *State) ResonantHighpass(c *Coefficients, x float64) float64 {
	x += c.Q * s.Bandpass
	s.Highpass = c.C * (s.Highpass + x - s.LastIn)
	s.Bandpass = s.Bandpass*c.A + s.Highpass*c.B
	s.LastIn = x

	return s.Highpass
}

// DetailHighpass adds amount times the 6 dB/octave highpass of x to x.
func (s *State) DetailHighpass(c *Coefficients, amount, x float64) float64 {
	s.Highpass = c.C * (s.Highpass + x - s.LastIn)
	s.LastIn = x

	return x + s.Highpass*amount
}

// DetailLowpass adds amount times the 6 dB/octave lowpass of x to x.
func (s *State) DetailLowpass(c *Coefficients, amount, x float64) float64 {
	s.Lowpass = s.Lowpass*c.A + x*c.B

	return x + s.Lowpass*amount
}

// PhaseRotate returns lowpass(x) - highpass(x).
func (s *State) PhaseRotate(c *Coefficients, x float64) float64 {
	s.Highpass = c.C * (s.Highpass + x - s.LastIn)
	s.Lowpass = s.Lowpass*c.A + x*c.B
	s.LastIn = x

	return s.Lowpass - s.Highpass
}

// BandSplit feeds x through the resonant network and returns the
// band-pass-fed lowpass and the highpass terms.
//
// The highpass difference is taken against the raw input while the stored
// last input is the fed-back one.
func (s *State) BandSplit(c *Coefficients, x float64) (low, high float64) {
	fed := x + c.Q*s.Bandpass
	s.Lowpass = s.Lowpass*c.A + fed*c.B
	s.Highpass = c.C * (s.Highpass + x - s.LastIn)
	s.Bandpass = s.Bandpass*c.A + s.Highpass*c.B
	s.LastIn = fed

	return s.Lowpass, s.Highpass
}

// Reset clears the filter memory.
func (s *State) Reset() {
	*s = State{}
}
