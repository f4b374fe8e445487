package agc

import "github.com/cwbudde/algo-agc/dsp/filter/rc"

const (
	deEssOnRatio  = 4.0 / 3.0
	deEssOffRatio = 3.0 / 4.0
)

// deEsser compares the envelopes of a high and a low band split at 1 kHz.
type deEsser struct {
	coeffs rc.Coefficients
	split  rc.State
	high   quadFollower
	low    quadFollower
	bias   float64
	gain   float64
	active bool
}

// follow splits x and returns the high and low band envelopes.
func (d *deEsser) follow(s *resetSchedule, phase int, x float64) (high, low float64) {
	lo, hi := d.split.BandSplit(&d.coeffs, x)
	return d.high.process(s, phase, hi), d.low.process(s, phase, lo)
}

func (d *deEsser) update(high, low float64) bool {
	biased := high * d.bias
	if biased > low*deEssOnRatio {
		d.active = true
	}

	if biased < low*deEssOffRatio {
		d.active = false
	}

	return d.active
}

func (d *deEsser) level() float64 {
	if d.active {
		return d.gain
	}

	return 1
}

func (d *deEsser) reset() {
	d.split.Reset()
	d.high.reset()
	d.low.reset()
	d.active = false
}
