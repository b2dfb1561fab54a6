package puzzle

// AllSatisfiedClues enumerates every binding of every catalog template at
// the given level against table's full cell set and keeps each one the
// table actually satisfies — the maximal set of true statements about
// table at that level, independent of any particular generated clue list.
//
// This exists for verification tooling (the solve command): checking
// whether a table is uniquely determined by everything that could be said
// about it, as a sanity bound ahead of running the generator proper. It is
// never used by Generate itself, which samples a small, local avail set
// instead of the whole board.
func AllSatisfiedClues(table *Table, level int) ([]*Clue, error) {
	catalog, err := BuildCatalog(level, table.M())
	if err != nil {
		return nil, err
	}

	var all []Cell
	for i := 0; i < table.N(); i++ {
		for j := 0; j < table.M(); j++ {
			all = append(all, Cell{Row: i, Col: j})
		}
	}

	candidates := enumerateCandidates(table, catalog, all)
	// enumerateCandidates binds arity-1 templates to all[0] only; bind them
	// to every other cell here as well.
	for _, tmpl := range catalog {
		if tmpl.Arity != 1 {
			continue
		}
		for _, c := range all[1:] {
			if tmpl.Pred(c.Col) {
				candidates = append(candidates, candidateClue{tmpl, []Cell{c}})
			}
		}
	}
	clues := make([]*Clue, 0, len(candidates))
	for _, c := range candidates {
		clues = append(clues, bindClue(table, c.template, c.cells, c.template.Renderings[0]))
	}
	return clues, nil
}
