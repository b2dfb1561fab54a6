package puzzle

import "time"

// Minimize removes clues from clues one at a time, keeping any removal
// that still uniquely solves table, until no further single-clue removal
// helps (a local minimum) or deadline elapses. deadline <= 0 means
// unbounded. Returns the best clue list found and whether the deadline
// tripped before a local minimum was confirmed.
//
// Deadline is checked with a monotonic clock read between inner-loop
// iterations, never inside a blocking call.
func Minimize(clues []*Clue, table *Table, deadline time.Duration) ([]*Clue, bool) {
	start := time.Now()
	unbounded := deadline <= 0

	expired := func() bool {
		return !unbounded && time.Since(start) >= deadline
	}

	best := clues
	queue := [][]*Clue{clues}
	timeElapsed := false

	for len(queue) > 0 {
		if expired() {
			timeElapsed = true
			break
		}

		cur := queue[0]
		queue = queue[1:]

		for k := range cur {
			if expired() {
				timeElapsed = true
				break
			}

			try := without(cur, k)
			n := CountSolutions(try, NewCandidateStore(table), 2)
			if n == 1 && len(try) < len(best) {
				best = try
				queue = append(queue, try)
			}
		}
	}

	return best, timeElapsed
}

// without returns a new slice containing every element of clues except
// the one at index k.
func without(clues []*Clue, k int) []*Clue {
	out := make([]*Clue, 0, len(clues)-1)
	for i, c := range clues {
		if i != k {
			out = append(out, c)
		}
	}
	return out
}
