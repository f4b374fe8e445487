package agc

import (
	"errors"
	"math"
	"slices"
	"testing"
)

func TestSetMatchesTypedSetters(t *testing.T) {
	tests := []struct {
		key, value string
		check      func(c *Channel) bool
	}{
		{"gain", "6", func(c *Channel) bool {
			return c.Dynamics().GainDB == 6 && math.Abs(c.ratio-math.Pow(10, 0.3)) < 1e-12
		}},
		{"limit", "-6", func(c *Channel) bool { return math.Abs(c.limit-0.5) < 1e-12 }},
		{"ngthresh", "-30", func(c *Channel) bool {
			return math.Abs(c.gate.on-math.Exp2(-31.0/6)) < 1e-12 && math.Abs(c.gate.off-math.Exp2(-29.0/6)) < 1e-12
		}},
		{"nggain", "-12", func(c *Channel) bool { return math.Abs(c.gate.gain-0.25) < 1e-12 }},
		{"deessbias", "0.5", func(c *Channel) bool { return c.deEss.bias == 0.5 }},
		{"deessgain", "-18", func(c *Channel) bool { return math.Abs(c.deEss.gain-0.125) < 1e-12 }},
		{"duckenable", "1", func(c *Channel) bool { return c.duck.enabled }},
		{"duckenable", "yes", func(c *Channel) bool { return !c.duck.enabled }},
		{"duckrelease", "100", func(c *Channel) bool { return math.Abs(c.duck.release-1000/(100.0*testRate)) < 1e-15 }},
		{"duckhold", "30.7", func(c *Channel) bool { return c.Ducker().HoldMs == 30 && c.duck.holdReset == 1440 }},
		{"phaserotate", "0", func(c *Channel) bool { return !c.Filters().PhaseRotate && !c.bank.phaseRotate }},
		{"phaserotate", "1abc", func(c *Channel) bool { return c.bank.phaseRotate }},
		{"phaserotate", "", func(c *Channel) bool { return !c.bank.phaseRotate }},
		{"hpcutoff", "80", func(c *Channel) bool { return c.bank.subsonic.CutoffHz == 80 }},
		{"hpstages", "2.4", func(c *Channel) bool { return c.bank.stages == 2 }},
		{"hpstages", "2.5", func(c *Channel) bool { return c.bank.stages == 3 }},
		{"hpstages", "9", func(c *Channel) bool { return c.bank.stages == MaxSubsonicStages }},
		{"hpstages", "-3", func(c *Channel) bool { return c.bank.stages == 0 }},
		{"hfmulti", "2", func(c *Channel) bool { return c.bank.hfDetail == 2 }},
		{"hfcutoff", "3000", func(c *Channel) bool { return c.bank.hf.CutoffHz == 3000 }},
		{"lfmulti", " 1.5 ", func(c *Channel) bool { return c.bank.lfDetail == 1.5 }},
		{"lfcutoff", "120", func(c *Channel) bool { return c.bank.lf.CutoffHz == 120 }},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			c := newTestChannel(t)
			if err := c.Set(tt.key, tt.value); err != nil {
				t.Fatalf("Set() error = %v", err)
			}

			if !tt.check(c) {
				t.Fatalf("Set(%q, %q) did not apply", tt.key, tt.value)
			}
		})
	}
}

func TestSetGainRecomputesStep(t *testing.T) {
	c := newTestChannel(t)
	if err := c.Set("gain", "0"); err != nil {
		t.Fatal(err)
	}

	if c.ratio != 1 || math.Abs(c.gainStep-1.0/480) > 1e-15 {
		t.Fatalf("ratio = %v step = %v", c.ratio, c.gainStep)
	}
}

func TestSetMalformedValue(t *testing.T) {
	for _, value := range []string{"", "abc", "3dB", "nan", "Inf", "0x"} {
		c := newTestChannel(t)
		before := c.Dynamics()

		err := c.Set("limit", value)
		if !errors.Is(err, ErrMalformedValue) {
			t.Fatalf("Set(limit, %q) error = %v, want ErrMalformedValue", value, err)
		}

		if c.Dynamics() != before {
			t.Fatalf("Set(limit, %q) changed the config", value)
		}
	}
}

func TestSetUnknownKeyIgnored(t *testing.T) {
	c := newTestChannel(t)
	before := *c

	if err := c.Set("reverb", "12"); err != nil {
		t.Fatalf("Set() error = %v, want nil", err)
	}

	if c.Filters() != before.Filters() || c.Dynamics() != before.Dynamics() || c.Ducker() != before.Ducker() {
		t.Fatal("unknown key changed settings")
	}
}

func TestParamKeys(t *testing.T) {
	keys := ParamKeys()
	if len(keys) != 16 {
		t.Fatalf("len(ParamKeys()) = %d, want 16", len(keys))
	}

	if !slices.IsSorted(keys) {
		t.Fatalf("ParamKeys() not sorted: %v", keys)
	}

	for _, k := range keys {
		c := newTestChannel(t)
		if err := c.Set(k, "1"); err != nil {
			t.Fatalf("Set(%q, 1) error = %v", k, err)
		}
	}
}
