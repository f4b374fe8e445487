package agc

import (
	"github.com/cwbudde/algo-agc/dsp/core"
	"github.com/cwbudde/algo-agc/dsp/filter/rc"
)

// prefilterBank holds the stage-1 coefficients. A channel reads the bank of
// its gain authority so a linked pair filters identically.
type prefilterBank struct {
	subsonic    rc.Coefficients
	stages      int
	hf          rc.Coefficients
	hfDetail    float64
	lf          rc.Coefficients
	lfDetail    float64
	rotator     rc.Coefficients
	phaseRotate bool
}

type prefilterState struct {
	subsonic [MaxSubsonicStages]rc.State
	hf       rc.State
	lf       rc.State
	rotator  [rotatorStages]rc.State
}

func newPrefilterBank(sampleRate float64, cfg FilterConfig) prefilterBank {
	b := prefilterBank{rotator: rc.Design(rotatorCutoffHz, 0, sampleRate)}
	b.configure(sampleRate, cfg, cfg, true)

	return b
}

// configure recomputes only the coefficients whose cutoff changed unless all
// is set.
func (b *prefilterBank) configure(sampleRate float64, prev, cfg FilterConfig, all bool) {
	if all || cfg.SubsonicCutoffHz != prev.SubsonicCutoffHz {
		b.subsonic = rc.Design(cfg.SubsonicCutoffHz, subsonicQ, sampleRate)
	}

	if all || cfg.HFCutoffHz != prev.HFCutoffHz {
		b.hf = rc.Design(cfg.HFCutoffHz, detailQ, sampleRate)
	}

	if all || cfg.LFCutoffHz != prev.LFCutoffHz {
		b.lf = rc.Design(cfg.LFCutoffHz, detailQ, sampleRate)
	}

	b.stages = cfg.SubsonicStages
	b.hfDetail = cfg.HFDetail
	b.lfDetail = cfg.LFDetail
	b.phaseRotate = cfg.PhaseRotate
}

func (s *prefilterState) process(b *prefilterBank, x float64) float64 {
	for i := 0; i < b.stages; i++ {
		x = s.subsonic[i].ResonantHighpass(&b.subsonic, x)
	}

	x = s.hf.DetailHighpass(&b.hf, b.hfDetail, x)
	x = s.lf.DetailLowpass(&b.lf, b.lfDetail, x)

	if b.phaseRotate {
		for i := range s.rotator {
			x = s.rotator[i].PhaseRotate(&b.rotator, x)
		}
	}

	return x
}

func (s *prefilterState) reset() {
	*s = prefilterState{}
}

// Prefilter is a standalone copy of the stage-1 filter cascade. It runs the
// same filters a [Channel] applies before the lookahead ring and is meant
// for analysis and offline rendering.
type Prefilter struct {
	bank  prefilterBank
	state prefilterState
}

// NewPrefilter returns a prefilter for the given sample rate and settings.
// SubsonicStages is clamped to [0, MaxSubsonicStages].
func NewPrefilter(sampleRate int, cfg FilterConfig) *Prefilter {
	cfg = clampStages(cfg)

	return &Prefilter{bank: newPrefilterBank(float64(sampleRate), cfg)}
}

// ProcessSample filters one sample.
func (p *Prefilter) ProcessSample(x float64) float64 {
	return p.state.process(&p.bank, x)
}

// ProcessInPlace filters buf in place.
func (p *Prefilter) ProcessInPlace(buf []float64) {
	for i := range buf {
		buf[i] = p.state.process(&p.bank, buf[i])
	}
}

// Reset clears the filter memory.
func (p *Prefilter) Reset() {
	p.state.reset()
}

func clampStages(cfg FilterConfig) FilterConfig {
	cfg.SubsonicStages = core.ClampInt(cfg.SubsonicStages, 0, MaxSubsonicStages)
	return cfg
}
