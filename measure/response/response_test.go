package response

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-agc/dsp/effects/agc"
)

type passthrough struct{}

func (passthrough) ProcessSample(x float64) float64 { return x }

type scaledDelay struct {
	gain float64
	last float64
}

func (d *scaledDelay) ProcessSample(x float64) float64 {
	y := d.last
	d.last = x

	return y * d.gain
}

func TestMeasureValidation(t *testing.T) {
	tests := []struct {
		name string
		rate float64
		size int
		want error
	}{
		{"size one", 48000, 1, ErrInvalidSize},
		{"size not pow2", 48000, 1000, ErrInvalidSize},
		{"zero rate", 0, 1024, ErrInvalidSampleRate},
		{"nan rate", math.NaN(), 1024, ErrInvalidSampleRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Measure(passthrough{}, tt.rate, tt.size); !errors.Is(err, tt.want) {
				t.Fatalf("Measure() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestMeasureFlat(t *testing.T) {
	r, err := Measure(&scaledDelay{gain: 0.5}, 48000, 256)
	if err != nil {
		t.Fatal(err)
	}

	if len(r.Magnitude) != 129 {
		t.Fatalf("bins = %d, want 129", len(r.Magnitude))
	}

	for k, m := range r.Magnitude {
		if math.Abs(m-0.5) > 1e-9 {
			t.Fatalf("bin %d = %v, want 0.5", k, m)
		}
	}

	if got := r.BinHz(128); got != 24000 {
		t.Fatalf("BinHz(128) = %v, want 24000", got)
	}
}

func TestAtInterpolates(t *testing.T) {
	r := &Response{SampleRate: 8, Size: 8, Magnitude: []float64{1, 2, 4, 8, 16}}

	tests := []struct {
		hz, want float64
	}{
		{-1, 1},
		{0.5, 1.5},
		{2, 4},
		{3.25, 10},
		{9, 16},
	}

	for _, tt := range tests {
		if got := r.At(tt.hz); got != tt.want {
			t.Fatalf("At(%v) = %v, want %v", tt.hz, got, tt.want)
		}
	}
}

func TestPhaseRotatorIsNearlyAllpass(t *testing.T) {
	p := agc.NewPrefilter(48000, agc.FilterConfig{
		SubsonicCutoffHz: 100,
		HFCutoffHz:       2000,
		LFCutoffHz:       150,
		PhaseRotate:      true,
	})

	r, err := Measure(p, 48000, 8192)
	if err != nil {
		t.Fatal(err)
	}

	for k := 1; k < len(r.Magnitude); k++ {
		db := 20 * math.Log10(r.Magnitude[k])
		if math.Abs(db) > 2 {
			t.Fatalf("%.1f Hz: %.2f dB, want within 2 dB", r.BinHz(k), db)
		}
	}
}

func TestSubsonicCascade(t *testing.T) {
	cfg := agc.DefaultFilterConfig()
	cfg.HFDetail = 0
	cfg.LFDetail = 0
	cfg.PhaseRotate = false

	r, err := Measure(agc.NewPrefilter(48000, cfg), 48000, 8192)
	if err != nil {
		t.Fatal(err)
	}

	if db := r.AtDB(20); db > -40 {
		t.Fatalf("20 Hz: %.1f dB, want below -40 dB", db)
	}

	if db := r.AtDB(1000); math.Abs(db) > 1 {
		t.Fatalf("1 kHz: %.2f dB, want within 1 dB", db)
	}
}

func BenchmarkMeasure(b *testing.B) {
	for range b.N {
		p := agc.NewPrefilter(48000, agc.DefaultFilterConfig())
		if _, err := Measure(p, 48000, 4096); err != nil {
			b.Fatal(err)
		}
	}
}
