package agc

// Pair is a linked stereo pair. Left is the gain authority and follows the
// average of both filtered inputs; Right applies Left's gain.
type Pair struct {
	Left  *Channel
	Right *Channel
}

// NewPair creates and links two channels.
func NewPair(sampleRate int, lookaheadSeconds float64) (*Pair, error) {
	left, err := New(sampleRate, lookaheadSeconds)
	if err != nil {
		return nil, err
	}

	right, err := New(sampleRate, lookaheadSeconds)
	if err != nil {
		left.Free()
		return nil, err
	}

	SetAsPartners(left, right)
	right.SetPartneredMode(true)

	return &Pair{Left: left, Right: right}, nil
}

// ProcessSample runs one stereo frame through the pair.
func (p *Pair) ProcessSample(left, right float64, micIsMuted bool) (float64, float64) {
	p.Left.ProcessStage1(left)
	p.Right.ProcessStage1(right)
	p.Left.ProcessStage2(micIsMuted)
	p.Right.ProcessStage2(micIsMuted)

	return p.Left.ProcessStage3(), p.Right.ProcessStage3()
}

// ProcessInPlace processes the common length of left and right in place.
func (p *Pair) ProcessInPlace(left, right []float64, micIsMuted bool) {
	n := min(len(left), len(right))
	for i := range n {
		left[i], right[i] = p.ProcessSample(left[i], right[i], micIsMuted)
	}
}

// Set applies a key/value parameter to both channels so the pair keeps
// identical settings if it is ever unlinked.
func (p *Pair) Set(key, value string) error {
	if err := p.Left.Set(key, value); err != nil {
		return err
	}

	return p.Right.Set(key, value)
}

// MeterLevels returns the pair's meter readings.
func (p *Pair) MeterLevels() (redDB, yellowDB, greenDB float64) {
	return p.Left.MeterLevels()
}

// DuckingFactor returns the pair's ducking factor.
func (p *Pair) DuckingFactor() float64 {
	return p.Left.DuckingFactor()
}

// Reset clears the processing state of both channels.
func (p *Pair) Reset() {
	p.Left.Reset()
	p.Right.Reset()
}

// Free releases both channels.
func (p *Pair) Free() {
	p.Left.Free()
	p.Right.Free()
}
