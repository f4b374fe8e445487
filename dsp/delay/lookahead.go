package delay

import "fmt"

// Lookahead is a fixed-length circular store that returns every pushed
// sample exactly Len() pushes later.
//
// The write position starts at Len()-1 and the read position at 1; both
// advance by one per push and are never reset by parameter changes.
type Lookahead struct {
	buffer   []float64
	writePos int
	readPos  int
	delayed  float64
}

// NewLookahead returns a ring holding length samples.
func NewLookahead(length int) (*Lookahead, error) {
	if length <= 0 {
		return nil, fmt.Errorf("lookahead length must be > 0: %d", length)
	}

	return &Lookahead{
		buffer:   make([]float64, length),
		writePos: length - 1,
		readPos:  1,
	}, nil
}

// Len returns the ring length, which is also the delay in samples.
func (l *Lookahead) Len() int {
	return len(l.buffer)
}

// Push stores x and advances both positions. The sample that x replaces is
// latched and returned by Delayed until the next push.
func (l *Lookahead) Push(x float64) {
	slot := l.writePos % len(l.buffer)
	l.delayed = l.buffer[slot]
	l.buffer[slot] = x
	l.writePos++
	l.readPos++
}

// Delayed returns the sample pushed Len() pushes before the latest one.
func (l *Lookahead) Delayed() float64 {
	return l.delayed
}

// WritePos returns the monotonically increasing write counter.
func (l *Lookahead) WritePos() int {
	return l.writePos
}

// ReadPos returns the monotonically increasing read counter.
func (l *Lookahead) ReadPos() int {
	return l.readPos
}

// Reset clears the stored audio and restores the initial positions.
func (l *Lookahead) Reset() {
	for i := range l.buffer {
		l.buffer[i] = 0
	}

	l.writePos = len(l.buffer) - 1
	l.readPos = 1
	l.delayed = 0
}
