//go:build fastmath

package agc

import approx "github.com/meko-christian/algo-approx"

const ln10 = 2.302585092994045684017991454684364208

func levelToAttenuation(level float64) float64 {
	return -20 * approx.FastLog(level) / ln10
}
