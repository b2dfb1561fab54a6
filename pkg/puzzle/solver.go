package puzzle

// CountSolutions runs an iterative propagate-then-branch depth-first search
// over store, stopping as soon as it has found limit distinct solutions
// (or the search space is exhausted), and returns however many it found.
// Passing limit=2 turns this into a uniqueness check: a puzzle is unique
// iff CountSolutions(clues, store, 2) == 1.
//
// Uses an explicit stack of store snapshots rather than language recursion,
// with every frame propagated to a fixed point before it is allowed to
// branch.
func CountSolutions(clues []*Clue, store *CandidateStore, limit int) int {
	if limit <= 0 {
		return 0
	}

	count := 0
	stack := []*CandidateStore{store}

	for len(stack) > 0 && count < limit {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !Propagate(clues, cur) {
			continue
		}
		if cur.IsSolved() {
			count++
			continue
		}

		cell, ok := cur.FirstUnresolvedCell()
		if !ok {
			continue
		}

		var values []int
		cur.Get(cell.Row, cell.Col).IterateValues(func(v int) {
			values = append(values, v)
		})
		for _, v := range values {
			branch := cur.Clone()
			branch.Get(cell.Row, cell.Col).AssignTo(v)
			stack = append(stack, branch)
		}
	}
	return count
}

// HasUniqueSolution reports whether clues applied to a freshly-built store
// for table pin down exactly one solution.
func HasUniqueSolution(clues []*Clue, table *Table) bool {
	return CountSolutions(clues, NewCandidateStore(table), 2) == 1
}
