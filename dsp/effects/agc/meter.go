package agc

import "math"

// meterDecimation masks the read position so meters refresh every eighth
// sample.
const meterDecimation = 7

type meterSnapshot struct {
	red    float64
	yellow float64
	green  float64
}

var unityMeters = meterSnapshot{red: 1, yellow: 1, green: 1}

// MeterLevels returns the attenuation in dB carried by the gain authority:
// red is the distance of the pre-gate gain from the maximum ratio, yellow
// the de-esser reduction and green the gate reduction. Zero means no
// reduction.
func (c *Channel) MeterLevels() (redDB, yellowDB, greenDB float64) {
	m := c.authorityChannel().meter
	return attenuationDB(m.red), attenuationDB(m.yellow), attenuationDB(m.green)
}

// DuckingFactor returns the factor a host should apply to a secondary
// source, in [1-limit, 1] for limits within [0, 1].
func (c *Channel) DuckingFactor() float64 {
	return c.authorityChannel().duck.factor
}

// ResetStats sets the ducking factor and all meters of the gain authority
// back to unity.
func (c *Channel) ResetStats() {
	a := c.authorityChannel()
	a.duck.factor = 1
	a.meter = unityMeters
}

func attenuationDB(level float64) float64 {
	if level <= 0 {
		return math.Inf(1)
	}

	return levelToAttenuation(level)
}
