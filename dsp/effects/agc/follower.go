package agc

import "math"

// resetSchedule holds the staggered reset points shared by every quad
// follower of a channel. The cycle is twice the lookahead length so each
// slot sees a full lookahead window before it is cleared.
type resetSchedule struct {
	cycle  int
	points [4]int
}

func newResetSchedule(length int) resetSchedule {
	cycle := 2 * length

	return resetSchedule{
		cycle:  cycle,
		points: [4]int{0, cycle / 4, cycle * 2 / 4, cycle * 3 / 4},
	}
}

// quadFollower is a peak hold with four staggered slots. Its output never
// decays smoothly; it drops when the slot carrying the peak is cleared.
type quadFollower struct {
	slots [4]float64
}

func (f *quadFollower) process(s *resetSchedule, phase int, x float64) float64 {
	x = math.Abs(x)
	highest := 0.0

	for i := range f.slots {
		if s.points[i] == phase {
			f.slots[i] = 0
		}

		if x > f.slots[i] {
			f.slots[i] = x
		}

		if f.slots[i] > highest {
			highest = f.slots[i]
		}
	}

	return highest
}

func (f *quadFollower) reset() {
	f.slots = [4]float64{}
}
