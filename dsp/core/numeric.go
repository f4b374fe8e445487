package core

import "math"

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// ClampInt limits an integer to the inclusive range [min, max].
func ClampInt(value, min, max int) int {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// DBToLinear converts dB to linear amplitude (20*log10 convention).
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}

// DoublingDBToLinear converts dB to a linear factor using the
// "6 dB per doubling" convention: 2^(dB/6).
//
// It differs from [DBToLinear] by about 0.3% and is the convention used by
// the microphone processing controls (limit, gate and de-esser levels).
func DoublingDBToLinear(db float64) float64 {
	return math.Pow(2, db/6)
}

// AttenuationDB expresses a linear gain factor as attenuation in dB,
// -20*log10(gain). Unity gain is 0 dB and positive values mean the signal
// is turned down.
func AttenuationDB(gain float64) float64 {
	return -LinearToDB(gain)
}
