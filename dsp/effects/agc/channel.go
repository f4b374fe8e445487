package agc

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-agc/dsp/core"
	"github.com/cwbudde/algo-agc/dsp/delay"
	"github.com/cwbudde/algo-agc/dsp/filter/rc"
)

// envelopeEpsilon keeps the limit division finite on silence.
const envelopeEpsilon = 1e-4

// Channel is the gain controller for one audio channel.
type Channel struct {
	sampleRate int
	ring       *delay.Lookahead

	filters  FilterConfig
	dynamics DynamicsConfig
	ducking  DuckerConfig

	bank prefilterBank
	pre  prefilterState

	ratio    float64
	gainStep float64
	limit    float64

	schedule resetSchedule
	signal   quadFollower
	gate     noiseGate
	deEss    deEsser
	duck     ducker

	gain  float64
	input float64
	meter meterSnapshot

	partner   *Channel
	authority authority
}

// New creates a channel with default settings. The lookahead ring holds
// floor(sampleRate*lookaheadSeconds) samples.
func New(sampleRate int, lookaheadSeconds float64) (*Channel, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("agc: sample rate %d: %w", sampleRate, ErrInvalidSampleRate)
	}

	if lookaheadSeconds <= 0 || math.IsNaN(lookaheadSeconds) || math.IsInf(lookaheadSeconds, 0) {
		return nil, fmt.Errorf("agc: lookahead %g: %w", lookaheadSeconds, ErrInvalidLookahead)
	}

	samples := math.Floor(float64(sampleRate) * lookaheadSeconds)
	if samples < 1 || samples > MaxBufferLength {
		return nil, fmt.Errorf("agc: lookahead of %g samples: %w", samples, ErrAllocation)
	}

	ring, err := delay.NewLookahead(int(samples))
	if err != nil {
		return nil, fmt.Errorf("agc: %w: %w", ErrAllocation, err)
	}

	sr := float64(sampleRate)
	c := &Channel{
		sampleRate: sampleRate,
		ring:       ring,
		filters:    DefaultFilterConfig(),
		schedule:   newResetSchedule(ring.Len()),
		meter:      unityMeters,
		authority:  authoritySelf,
	}

	c.bank = newPrefilterBank(sr, c.filters)
	c.deEss.coeffs = rc.Design(deEssCutoffHz, deEssQ, sr)
	c.duck.factor = 1
	c.duck.attack = 1 / float64(ring.Len())
	c.SetDynamics(DefaultDynamicsConfig())
	c.SetDucker(DefaultDuckerConfig())

	return c, nil
}

// Free releases the lookahead ring and unlinks the partner. The channel
// must not be processed afterwards.
func (c *Channel) Free() {
	if c == nil {
		return
	}

	c.unlink()
	c.ring = nil
}

// SampleRate returns the sample rate in Hz.
func (c *Channel) SampleRate() int { return c.sampleRate }

// BufferLength returns the lookahead length in samples.
func (c *Channel) BufferLength() int { return c.ring.Len() }

// Gain returns the currently applied gain of this channel's own dynamics.
// A partnered channel outputs its authority's gain instead.
func (c *Channel) Gain() float64 { return c.gain }

// IsGated reports whether the noise gate of the gain authority is closed.
func (c *Channel) IsGated() bool { return c.authorityChannel().gate.active }

// IsDeEssing reports whether the de-esser of the gain authority is engaged.
func (c *Channel) IsDeEssing() bool { return c.authorityChannel().deEss.active }

// Filters returns the current filter settings.
func (c *Channel) Filters() FilterConfig { return c.filters }

// Dynamics returns the current dynamics settings.
func (c *Channel) Dynamics() DynamicsConfig { return c.dynamics }

// Ducker returns the current ducker settings.
func (c *Channel) Ducker() DuckerConfig { return c.ducking }

// SetFilters replaces the filter settings. Only coefficients whose cutoff
// changed are recomputed and filter memory is kept. SubsonicStages is
// clamped to [0, MaxSubsonicStages].
func (c *Channel) SetFilters(cfg FilterConfig) {
	cfg = clampStages(cfg)
	c.bank.configure(float64(c.sampleRate), c.filters, cfg, false)
	c.filters = cfg
}

// SetDynamics replaces the gain, limit, gate and de-esser settings.
func (c *Channel) SetDynamics(cfg DynamicsConfig) {
	c.dynamics = cfg
	c.ratio = core.DBToLinear(cfg.GainDB)
	c.gainStep = c.ratio / float64(c.ring.Len())
	c.limit = core.DoublingDBToLinear(cfg.LimitDB)
	c.gate.setThreshold(cfg.GateThresholdDB)
	c.gate.gain = core.DoublingDBToLinear(cfg.GateGainDB)
	c.deEss.bias = cfg.DeEssBias
	c.deEss.gain = core.DoublingDBToLinear(cfg.DeEssGainDB)
}

// SetDucker replaces the ducker settings. The current factor and hold
// countdown are kept.
func (c *Channel) SetDucker(cfg DuckerConfig) {
	c.ducking = cfg
	c.duck.configure(cfg, float64(c.sampleRate))
}

// Prefilter returns a standalone prefilter with the stage-1 settings this
// channel currently uses and fresh filter memory.
func (c *Channel) Prefilter() *Prefilter {
	a := c.authorityChannel()
	return &Prefilter{bank: a.bank}
}

// ProcessStage1 filters x with the authority's settings and this channel's
// own filter memory and pushes the result into the lookahead ring.
func (c *Channel) ProcessStage1(x float64) {
	x = c.pre.process(&c.authorityChannel().bank, x)
	c.input = x
	c.ring.Push(x)
}

// ProcessStage2 updates the gain, gate, de-esser, ducker and meters. It is
// a no-op unless the channel is its own gain authority. micIsMuted only
// affects the ducker.
func (c *Channel) ProcessStage2(micIsMuted bool) {
	if !c.IsAuthority() {
		return
	}

	x := c.input
	if c.combinesPartner() {
		x = (c.input + c.partner.input) * 0.5
	}

	phase := c.ring.WritePos() % c.schedule.cycle
	high, low := c.deEss.follow(&c.schedule, phase, x)
	env := c.signal.process(&c.schedule, phase, x)

	target := math.Min(c.ratio, c.limit/(env+envelopeEpsilon))
	preGate := target

	if c.gate.update(env) {
		target *= c.gate.gain
	}

	if c.deEss.update(high, low) {
		target *= c.deEss.gain
	}

	c.slew(target)
	c.duck.update(micIsMuted, target, env, c.limit)

	if c.ring.ReadPos()&meterDecimation == 0 {
		c.meter = meterSnapshot{
			red:    preGate / c.ratio,
			yellow: c.deEss.level(),
			green:  c.gate.level(),
		}
	}
}

// ProcessStage3 returns the delayed sample scaled by the authority gain.
func (c *Channel) ProcessStage3() float64 {
	return c.ring.Delayed() * c.authorityChannel().gain
}

// Process runs all three stages for an unlinked channel.
func (c *Channel) Process(x float64, micIsMuted bool) float64 {
	c.ProcessStage1(x)
	c.ProcessStage2(micIsMuted)

	return c.ProcessStage3()
}

// ProcessInPlace runs Process over buf.
func (c *Channel) ProcessInPlace(buf []float64, micIsMuted bool) {
	for i := range buf {
		buf[i] = c.Process(buf[i], micIsMuted)
	}
}

// Reset clears filter memory, the lookahead ring, followers and detector
// state. Settings are kept; the applied gain restarts at zero.
func (c *Channel) Reset() {
	c.ring.Reset()
	c.pre.reset()
	c.signal.reset()
	c.deEss.reset()
	c.gate.active = false
	c.duck.factor = 1
	c.duck.hold = 0
	c.gain = 0
	c.input = 0
	c.meter = unityMeters
}

// slew moves the applied gain one step towards target without passing it.
func (c *Channel) slew(target float64) {
	switch {
	case c.gain < target:
		c.gain = math.Min(c.gain+c.gainStep, target)
	case c.gain > target:
		c.gain = math.Max(c.gain-c.gainStep, target)
	}
}
