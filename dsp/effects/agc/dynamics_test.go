package agc

import (
	"math"
	"testing"
)

func TestNoiseGateHysteresis(t *testing.T) {
	g := noiseGate{gain: 0.5}
	g.setThreshold(-20)

	if math.Abs(g.on-math.Exp2(-21.0/6)) > 1e-15 || math.Abs(g.off-math.Exp2(-19.0/6)) > 1e-15 {
		t.Fatalf("thresholds on=%v off=%v", g.on, g.off)
	}

	mid := (g.on + g.off) / 2
	steps := []struct {
		env  float64
		want bool
	}{
		{mid, false},
		{g.on * 0.9, true},
		{mid, true},
		{g.off, true},
		{g.off * 1.1, false},
		{mid, false},
		{0, true},
	}

	for i, s := range steps {
		if got := g.update(s.env); got != s.want {
			t.Fatalf("step %d env=%v: gated = %v, want %v", i, s.env, got, s.want)
		}
	}

	if g.level() != 0.5 {
		t.Fatalf("level() = %v while gated, want 0.5", g.level())
	}
}

func TestDeEsserHysteresis(t *testing.T) {
	d := deEsser{bias: 0.5, gain: 0.25}
	steps := []struct {
		high, low float64
		want      bool
	}{
		{1, 1, false},   // 0.5 < 0.75
		{3, 1, true},    // 1.5 > 1.333
		{2, 1, true},    // 1.0 inside the band keeps state
		{1.4, 1, false}, // 0.7 < 0.75
		{1.6, 1, false}, // 0.8 inside the band
	}

	for i, s := range steps {
		if got := d.update(s.high, s.low); got != s.want {
			t.Fatalf("step %d: active = %v, want %v", i, got, s.want)
		}
	}

	if d.level() != 1 {
		t.Fatalf("level() = %v while idle, want 1", d.level())
	}
}

func TestDuckerSteps(t *testing.T) {
	d := ducker{enabled: true, factor: 1, attack: 0.1, release: 0.01, holdReset: 3}
	const limit = 0.707

	// desired = max(1-limit, 1-gain*env) = 0.5
	for range 5 {
		d.update(false, 1, 0.5, limit)
	}

	if math.Abs(d.factor-0.5) > 1e-12 {
		t.Fatalf("factor = %v after attack, want 0.5", d.factor)
	}

	d.update(false, 1, 0.5, limit)

	if math.Abs(d.factor-0.5) > 1e-12 {
		t.Fatalf("attack overshot: %v", d.factor)
	}

	// Silence asks for unity but the hold counts down first.
	for i := range 3 {
		d.update(false, 1, 0, limit)

		if math.Abs(d.factor-0.5) > 1e-12 {
			t.Fatalf("hold step %d: factor = %v", i, d.factor)
		}
	}

	d.update(false, 1, 0, limit)

	if math.Abs(d.factor-0.51) > 1e-12 {
		t.Fatalf("first release step: factor = %v, want 0.51", d.factor)
	}

	for range 100 {
		d.update(true, 1, 0.5, limit)
	}

	if d.factor != 1 {
		t.Fatalf("muted release: factor = %v, want 1", d.factor)
	}
}

func TestDuckerFloor(t *testing.T) {
	d := ducker{enabled: true, factor: 1, attack: 0.5, release: 0.01}

	for range 10 {
		d.update(false, 2, 5, 0.707)
	}

	if math.Abs(d.factor-(1-0.707)) > 1e-12 {
		t.Fatalf("factor = %v, want floor %v", d.factor, 1-0.707)
	}
}

func TestDuckerDisabled(t *testing.T) {
	d := ducker{factor: 0.3, release: 0.2}

	d.update(false, 1, 1, 0.707)

	if math.Abs(d.factor-0.5) > 1e-12 {
		t.Fatalf("factor = %v, want release to 0.5", d.factor)
	}

	for range 5 {
		d.update(false, 1, 1, 0.707)
	}

	if d.factor != 1 {
		t.Fatalf("factor = %v, want 1", d.factor)
	}
}
