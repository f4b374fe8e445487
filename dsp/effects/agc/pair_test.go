package agc

import (
	"testing"

	"github.com/cwbudde/algo-agc/internal/testutil"
)

func newTestPair(t *testing.T) *Pair {
	t.Helper()

	p, err := NewPair(testRate, 0.01)
	if err != nil {
		t.Fatalf("NewPair() error = %v", err)
	}

	return p
}

func TestPairLinking(t *testing.T) {
	p := newTestPair(t)

	if p.Left.Partner() != p.Right || p.Right.Partner() != p.Left {
		t.Fatal("channels not linked")
	}

	if !p.Left.IsAuthority() || p.Right.IsAuthority() {
		t.Fatal("left must be the only authority")
	}

	if !p.Left.combinesPartner() || p.Right.combinesPartner() {
		t.Fatal("only the left channel averages both inputs")
	}
}

func TestPairIdenticalInputsMatchMono(t *testing.T) {
	p := newTestPair(t)
	mono := newTestChannel(t)

	in := testutil.Bursts(4, 1.2, 0.03, 2400, 24000)

	for n, x := range in {
		l, r := p.ProcessSample(x, x, false)
		m := mono.Process(x, false)

		if l != m || r != m {
			t.Fatalf("sample %d: pair (%v, %v), mono %v", n, l, r, m)
		}
	}
}

func TestPairRightFollowsLeftGain(t *testing.T) {
	p := newTestPair(t)
	left := testutil.Noise(1, 0.01, 6000)
	right := testutil.Sine(440, testRate, 0.8, 6000)
	ref := p.Right.Prefilter()

	filtered := make([]float64, len(right))
	for n := range right {
		filtered[n] = ref.ProcessSample(right[n])

		_, r := p.ProcessSample(left[n], right[n], false)
		if p.Right.Gain() != 0 {
			t.Fatal("follower computed its own gain")
		}

		want := 0.0
		if n >= p.Right.BufferLength() {
			want = filtered[n-p.Right.BufferLength()] * p.Left.Gain()
		}

		if r != want {
			t.Fatalf("sample %d: right = %v, want %v", n, r, want)
		}
	}
}

func TestPairSetAppliesToBoth(t *testing.T) {
	p := newTestPair(t)
	if err := p.Set("limit", "-6"); err != nil {
		t.Fatal(err)
	}

	if p.Left.Dynamics().LimitDB != -6 || p.Right.Dynamics().LimitDB != -6 {
		t.Fatal("Set did not reach both channels")
	}
}

func TestPairFollowerUsesAuthorityFilters(t *testing.T) {
	p := newTestPair(t)
	if err := p.Left.Set("phaserotate", "0"); err != nil {
		t.Fatal(err)
	}

	if p.Right.Prefilter().bank.phaseRotate {
		t.Fatal("follower does not read the authority filter bank")
	}
}

func TestPairInPlaceUsesCommonLength(t *testing.T) {
	p := newTestPair(t)
	left := testutil.Noise(2, 0.5, 100)
	right := testutil.Noise(3, 0.5, 60)
	tail := left[60]

	p.ProcessInPlace(left, right, false)

	if left[60] != tail {
		t.Fatal("samples past the common length were processed")
	}
}

func TestSetAsPartnersRelinks(t *testing.T) {
	a := newTestChannel(t)
	b := newTestChannel(t)
	c := newTestChannel(t)

	SetAsPartners(a, b)
	a.SetPartneredMode(true)
	SetAsPartners(b, c)

	if a.Partner() != nil || !a.IsAuthority() {
		t.Fatal("stale link kept on a")
	}

	if b.Partner() != c || c.Partner() != b {
		t.Fatal("b and c not linked")
	}

	SetAsPartners(c, c)

	if c.Partner() != nil || b.Partner() != nil {
		t.Fatal("self link must only unlink")
	}
}

func TestPartneredModeWithoutPartner(t *testing.T) {
	c := newTestChannel(t)
	c.SetPartneredMode(true)

	if !c.IsAuthority() {
		t.Fatal("channel without partner must stay its own authority")
	}
}

func BenchmarkPairProcess(b *testing.B) {
	p, err := NewPair(testRate, 0.01)
	if err != nil {
		b.Fatal(err)
	}

	left := testutil.Noise(1, 0.5, 512)
	right := testutil.Noise(2, 0.5, 512)

	b.ReportAllocs()
	b.ResetTimer()

	for range b.N {
		p.ProcessInPlace(left, right, false)
	}
}
