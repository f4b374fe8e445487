package agc

import "github.com/cwbudde/algo-agc/dsp/core"

// noiseGate is a hysteretic gate driven by the signal envelope.
type noiseGate struct {
	on     float64
	off    float64
	gain   float64
	active bool
}

func (g *noiseGate) setThreshold(db float64) {
	g.on = core.DoublingDBToLinear(db - gateHysteresisDB)
	g.off = core.DoublingDBToLinear(db + gateHysteresisDB)
}

// update returns the gate state after observing env. Between the two
// thresholds the previous state is kept.
func (g *noiseGate) update(env float64) bool {
	if env < g.on {
		g.active = true
	}

	if env > g.off {
		g.active = false
	}

	return g.active
}

func (g *noiseGate) level() float64 {
	if g.active {
		return g.gain
	}

	return 1
}
