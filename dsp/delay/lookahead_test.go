package delay

import "testing"

func TestNewLookaheadValidation(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		wantErr bool
	}{
		{"valid 1", 1, false},
		{"valid 480", 480, false},
		{"invalid zero", 0, true},
		{"invalid negative", -4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewLookahead(tt.length)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewLookahead(%d) error = %v, wantErr %v", tt.length, err, tt.wantErr)
			}

			if !tt.wantErr && l.Len() != tt.length {
				t.Fatalf("Len() = %d, want %d", l.Len(), tt.length)
			}
		})
	}
}

func TestLookaheadDelayIsLength(t *testing.T) {
	for _, length := range []int{1, 2, 3, 7, 480} {
		l, err := NewLookahead(length)
		if err != nil {
			t.Fatal(err)
		}

		for n := range 3 * length {
			l.Push(float64(n + 1))

			want := 0.0
			if n >= length {
				want = float64(n + 1 - length)
			}

			if got := l.Delayed(); got != want {
				t.Fatalf("length %d push %d: Delayed() = %v, want %v", length, n, got, want)
			}
		}
	}
}

func TestLookaheadPositions(t *testing.T) {
	l, _ := NewLookahead(4)

	if l.WritePos() != 3 || l.ReadPos() != 1 {
		t.Fatalf("initial positions = (%d, %d), want (3, 1)", l.WritePos(), l.ReadPos())
	}

	for range 10 {
		l.Push(1)
	}

	if l.WritePos() != 13 || l.ReadPos() != 11 {
		t.Fatalf("positions = (%d, %d), want (13, 11)", l.WritePos(), l.ReadPos())
	}
}

func TestLookaheadReset(t *testing.T) {
	l, _ := NewLookahead(3)
	for i := range 5 {
		l.Push(float64(i + 1))
	}

	l.Reset()

	if l.WritePos() != 2 || l.ReadPos() != 1 || l.Delayed() != 0 {
		t.Fatalf("Reset() left positions (%d, %d) delayed %v", l.WritePos(), l.ReadPos(), l.Delayed())
	}

	for range 3 {
		l.Push(9)
		if l.Delayed() != 0 {
			t.Fatalf("stale sample %v after Reset()", l.Delayed())
		}
	}
}

func BenchmarkLookaheadPush(b *testing.B) {
	l, _ := NewLookahead(480)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		l.Push(0.5)
		_ = l.Delayed()
	}
}
