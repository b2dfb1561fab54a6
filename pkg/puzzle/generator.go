package puzzle

import "math/rand"

// attemptStatus is the outcome of one generateAttempt call: success,
// a dead store (no solution remains), or stuck (no progress possible).
type attemptStatus int

const (
	attemptSuccess attemptStatus = iota
	attemptDead
	attemptStuck
)

// maxAttemptIterations bounds a single attempt's inner loop so a run of
// bad luck (no neighbour available, no candidate clue holds, repeatedly)
// terminates as stuck instead of spinning forever.
const maxAttemptIterations = 2000

// Generate builds a clue list that uniquely solves table at the given
// level: up to tries attempts (default 10 when tries <= 0), keeping the
// shortest successful set seen. If no attempt succeeds, the last attempt's
// (possibly non-solving) list is returned — callers must not assume
// unique-solvability before running it through Minimize/CountSolutions.
func Generate(table *Table, level int, rng *rand.Rand, tries int) ([]*Clue, error) {
	catalog, err := BuildCatalog(level, table.M())
	if err != nil {
		return nil, err
	}
	if tries <= 0 {
		tries = 10
	}

	var best, last []*Clue
	for attempt := 0; attempt < tries; attempt++ {
		clues, status := generateAttempt(table, catalog, level, rng)
		last = clues
		if status == attemptSuccess && (best == nil || len(clues) < len(best)) {
			best = clues
		}
	}
	if best != nil {
		return best, nil
	}
	return last, nil
}

// generateAttempt runs one pass of the sample-anchor / enumerate-candidates
// / append-and-propagate loop against a fresh store.
func generateAttempt(table *Table, catalog []Template, level int, rng *rand.Rand) ([]*Clue, attemptStatus) {
	store := NewCandidateStore(table)
	var clues []*Clue

	for iter := 0; iter < maxAttemptIterations; iter++ {
		if store.IsDead() {
			return clues, attemptDead
		}
		if store.IsSolved() {
			return clues, attemptSuccess
		}

		unresolved := store.UnresolvedCells()
		if len(unresolved) == 0 {
			return clues, attemptStuck
		}

		anchor := unresolved[rng.Intn(len(unresolved))]
		avail := []Cell{anchor}
		anchor2Set := false

		if level >= 2 && len(unresolved) >= 2 {
			remainder := make([]Cell, 0, len(unresolved)-1)
			for _, c := range unresolved {
				if c != anchor {
					remainder = append(remainder, c)
				}
			}
			anchor2 := remainder[rng.Intn(len(remainder))]
			avail = append(avail, anchor2)
			anchor2Set = true
		}

		neighbours := neighbourSet(table, anchor)
		if len(neighbours) > 0 {
			nb := neighbours[rng.Intn(len(neighbours))]
			avail = appendUnique(avail, nb)
		}

		if level >= 2 && !anchor2Set {
			var right []Cell
			for _, nb := range neighbours {
				if nb.Col == anchor.Col+1 {
					right = append(right, nb)
				}
			}
			if len(right) > 0 {
				avail = appendUnique(avail, right[rng.Intn(len(right))])
			}
		}

		candidates := enumerateCandidates(table, catalog, avail)
		if len(candidates) == 0 {
			continue
		}

		chosen := candidates[rng.Intn(len(candidates))]
		rendering := chosen.template.Renderings[rng.Intn(len(chosen.template.Renderings))]
		clue := bindClue(table, chosen.template, chosen.cells, rendering)

		clues = append(clues, clue)
		if !Propagate(clues, store) {
			return clues, attemptDead
		}
	}
	return clues, attemptStuck
}

// neighbourSet returns every cell (i', anchor.Col+delta) for delta in
// {-1,0,+1}, any attribute row i', excluding the anchor itself.
func neighbourSet(table *Table, anchor Cell) []Cell {
	var out []Cell
	n, m := table.N(), table.M()
	for _, delta := range [3]int{-1, 0, 1} {
		j := anchor.Col + delta
		if j < 0 || j >= m {
			continue
		}
		for i := 0; i < n; i++ {
			c := Cell{Row: i, Col: j}
			if c == anchor {
				continue
			}
			out = append(out, c)
		}
	}
	return out
}

func appendUnique(cells []Cell, c Cell) []Cell {
	for _, existing := range cells {
		if existing == c {
			return cells
		}
	}
	return append(cells, c)
}

type candidateClue struct {
	template Template
	cells    []Cell
}

// enumerateCandidates tries every catalog template against every ordered
// binding permutation of avail and keeps those the solution satisfies.
// Arity-1 templates are tried against avail[0] (the anchor) only.
func enumerateCandidates(table *Table, catalog []Template, avail []Cell) []candidateClue {
	var out []candidateClue
	for _, tmpl := range catalog {
		switch tmpl.Arity {
		case 1:
			c := avail[0]
			if tmpl.Pred(c.Col) {
				out = append(out, candidateClue{tmpl, []Cell{c}})
			}
		case 2:
			for _, perm := range permutations2(avail) {
				if tmpl.ExceptFlag && perm[0].Row == perm[1].Row {
					continue
				}
				if tmpl.Pred(perm[0].Col, perm[1].Col) {
					out = append(out, candidateClue{tmpl, perm})
				}
			}
		case 3:
			for _, perm := range permutations3(avail) {
				rows := []int{perm[0].Row, perm[1].Row, perm[2].Row}
				if tmpl.ExceptFlag && sharesAttributeRow(rows) {
					continue
				}
				if tmpl.Pred(perm[0].Col, perm[1].Col, perm[2].Col) {
					out = append(out, candidateClue{tmpl, perm})
				}
			}
		}
	}
	return out
}

// permutations2 returns every ordered pair of distinct cells from cells.
func permutations2(cells []Cell) [][]Cell {
	var out [][]Cell
	for i := range cells {
		for j := range cells {
			if i == j {
				continue
			}
			out = append(out, []Cell{cells[i], cells[j]})
		}
	}
	return out
}

// permutations3 returns every ordering of three distinct cells drawn from
// cells (a no-op producing nothing unless len(cells) >= 3).
func permutations3(cells []Cell) [][]Cell {
	var out [][]Cell
	n := len(cells)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			for k := 0; k < n; k++ {
				if k == i || k == j {
					continue
				}
				out = append(out, []Cell{cells[i], cells[j], cells[k]})
			}
		}
	}
	return out
}

// bindClue resolves a chosen template and cell binding against table's
// true solution into an immutable Clue.
func bindClue(table *Table, tmpl Template, cells []Cell, rendering string) *Clue {
	rows := make([]int, len(cells))
	attrNames := make([]string, len(cells))
	values := make([]string, len(cells))
	labels := make([]int, len(cells))
	for t, c := range cells {
		rows[t] = c.Row
		attrNames[t] = table.Rows[c.Row].Name
		v := table.Rows[c.Row].Values[c.Col]
		values[t] = v
		labels[t] = table.ColumnOf(c.Row, v)
	}
	return &Clue{
		Rows:      rows,
		AttrNames: attrNames,
		Values:    values,
		Labels:    labels,
		Pred:      tmpl.Pred,
		Template:  rendering,
	}
}
