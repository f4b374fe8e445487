package core

// Deinterleave splits stereo frames into left and right. It copies
// min(len(frames), len(left), len(right)) frames and returns that count.
func Deinterleave(left, right []float64, frames [][2]float64) int {
	n := min(len(frames), len(left), len(right))
	for i := range n {
		left[i] = frames[i][0]
		right[i] = frames[i][1]
	}
	return n
}

// Interleave writes left and right into stereo frames and returns the number
// of frames written.
func Interleave(frames [][2]float64, left, right []float64) int {
	n := min(len(frames), len(left), len(right))
	for i := range n {
		frames[i][0] = left[i]
		frames[i][1] = right[i]
	}
	return n
}
