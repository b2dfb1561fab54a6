package puzzle

// Propagate runs the bijection and clue-driven pruning rules to a fixed
// point. It returns false the moment any cell's candidate set goes empty
// (a contradiction), true otherwise — the store may still have unresolved
// cells on a true return; IsSolved reports that.
//
// Alternates a cheap domain-reduction pass (row bijection) with the full
// constraint pass (per-clue generalized arc consistency) until neither
// moves anything.
func Propagate(clues []*Clue, store *CandidateStore) bool {
	for {
		changed := false

		if applyBijection(store) {
			changed = true
		}
		if store.IsDead() {
			return false
		}

		for _, c := range clues {
			if applyClue(c, store) {
				changed = true
			}
			if store.IsDead() {
				return false
			}
		}

		if !changed {
			return true
		}
	}
}

// applyBijection enforces that each attribute row is a permutation:
// a cell resolved to a value removes that value from every other cell in
// the row (naked single), and a value with only one remaining candidate
// cell in the row is assigned there (hidden single).
func applyBijection(store *CandidateStore) bool {
	changed := false
	m := store.Table.M()

	for i, row := range store.Cells {
		for j, cs := range row {
			if !cs.IsSingleton() {
				continue
			}
			v := cs.SingletonValue()
			for jj := range row {
				if jj == j {
					continue
				}
				if store.Cells[i][jj].Remove(v) {
					changed = true
				}
			}
		}

		for v := 1; v <= m; v++ {
			onlyCol := -1
			count := 0
			for j, cs := range row {
				if cs.Has(v) {
					count++
					onlyCol = j
				}
			}
			if count == 1 && !row[onlyCol].IsSingleton() {
				row[onlyCol].AssignTo(v)
				changed = true
			}
		}
	}
	return changed
}

// applyClue restricts each bound cell's candidate set to the columns that
// participate in at least one predicate-satisfying tuple — generalized
// arc consistency for the clue's k-ary relation, k in {1,2,3}.
func applyClue(c *Clue, store *CandidateStore) bool {
	k := len(c.Rows)
	m := store.Table.M()

	domains := make([][]int, k)
	for t := 0; t < k; t++ {
		for p := 0; p < m; p++ {
			if store.Get(c.Rows[t], p).Has(c.Labels[t]) {
				domains[t] = append(domains[t], p)
			}
		}
	}

	supported := make([]map[int]bool, k)
	for t := range supported {
		supported[t] = make(map[int]bool, len(domains[t]))
	}

	tuple := make([]int, k)
	var walk func(t int)
	walk = func(t int) {
		if t == k {
			if c.Pred(tuple...) {
				for i, p := range tuple {
					supported[i][p] = true
				}
			}
			return
		}
		for _, p := range domains[t] {
			tuple[t] = p
			walk(t + 1)
		}
	}
	walk(0)

	changed := false
	for t := 0; t < k; t++ {
		for _, p := range domains[t] {
			if !supported[t][p] {
				if store.Get(c.Rows[t], p).Remove(c.Labels[t]) {
					changed = true
				}
			}
		}
	}
	return changed
}
