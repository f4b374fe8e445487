package agc

import "math"

// ducker derives the factor a host applies to a secondary source while the
// microphone carries signal.
type ducker struct {
	enabled   bool
	factor    float64
	attack    float64
	release   float64
	hold      int
	holdReset int
}

func (d *ducker) configure(cfg DuckerConfig, sampleRate float64) {
	d.enabled = cfg.Enabled
	d.release = 1000 / (cfg.ReleaseMs * sampleRate)
	d.holdReset = int(cfg.HoldMs * sampleRate / 1000)
}

// update moves the factor towards the desired value. Neither direction
// overshoots it and release never exceeds unity.
func (d *ducker) update(muted bool, gain, env, limit float64) {
	if muted || !d.enabled {
		d.factor = math.Min(d.factor+d.release, 1)
		return
	}

	desired := math.Max(1-limit, 1-gain*env)

	switch {
	case d.factor < desired:
		if d.hold == 0 {
			d.factor = math.Min(d.factor+d.release, desired)
		} else {
			d.hold--
		}
	case d.factor > desired:
		d.factor = math.Max(d.factor-d.attack, desired)
		d.hold = d.holdReset
	}
}
