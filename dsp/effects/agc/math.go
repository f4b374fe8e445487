//go:build !fastmath

package agc

import "github.com/cwbudde/algo-agc/dsp/core"

func levelToAttenuation(level float64) float64 {
	return core.AttenuationDB(level)
}
