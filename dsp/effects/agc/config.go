package agc

const (
	// MaxSubsonicStages is the number of cascaded subsonic highpass stages.
	MaxSubsonicStages = 4

	subsonicQ        = 0.375
	detailQ          = 0.375
	rotatorStages    = 4
	rotatorCutoffHz  = 300.0
	deEssCutoffHz    = 1000.0
	deEssQ           = 1.0
	gateHysteresisDB = 1.0
)

// FilterConfig controls the stage-1 filter cascade.
type FilterConfig struct {
	// SubsonicCutoffHz is the cutoff of every subsonic highpass stage.
	SubsonicCutoffHz float64
	// SubsonicStages is the number of active stages, 0 to MaxSubsonicStages.
	SubsonicStages int
	// HFDetail is a linear multiplier for the highpassed detail added back
	// to the signal.
	HFDetail   float64
	HFCutoffHz float64
	// LFDetail is a linear multiplier for the lowpassed detail added back
	// to the signal.
	LFDetail   float64
	LFCutoffHz float64
	// PhaseRotate enables the four-stage phase rotator.
	PhaseRotate bool
}

// DefaultFilterConfig returns the stock filter settings.
func DefaultFilterConfig() FilterConfig {
	return FilterConfig{
		SubsonicCutoffHz: 100,
		SubsonicStages:   MaxSubsonicStages,
		HFDetail:         4,
		HFCutoffHz:       2000,
		LFDetail:         4,
		LFCutoffHz:       150,
		PhaseRotate:      true,
	}
}

// DynamicsConfig controls gain computation, noise gate and de-esser.
type DynamicsConfig struct {
	// GainDB is the maximum amplification, 10^(dB/20).
	GainDB float64
	// LimitDB is the output ceiling, 2^(dB/6).
	LimitDB float64
	// GateThresholdDB centres the gate hysteresis band. The gate closes
	// 1 dB below and opens 1 dB above it.
	GateThresholdDB float64
	// GateGainDB is the gain applied while gated, 2^(dB/6).
	GateGainDB float64
	// DeEssBias scales the high-band envelope before it is compared with
	// the low-band envelope.
	DeEssBias float64
	// DeEssGainDB is the gain applied while de-essing, 2^(dB/6).
	DeEssGainDB float64
}

// DefaultDynamicsConfig returns the stock dynamics settings.
func DefaultDynamicsConfig() DynamicsConfig {
	return DynamicsConfig{
		GainDB:          3,
		LimitDB:         -3,
		GateThresholdDB: -20,
		GateGainDB:      -6,
		DeEssBias:       0.35,
		DeEssGainDB:     -6,
	}
}

// DuckerConfig controls the auxiliary ducking factor.
type DuckerConfig struct {
	Enabled bool
	// ReleaseMs is the time to recover from full ducking to unity.
	ReleaseMs float64
	// HoldMs is how long ducking is held before release starts.
	HoldMs float64
}

// DefaultDuckerConfig returns the stock ducker settings.
func DefaultDuckerConfig() DuckerConfig {
	return DuckerConfig{
		Enabled:   false,
		ReleaseMs: 250,
		HoldMs:    500,
	}
}
