package puzzle

import "testing"

func TestAllSatisfiedCluesPinsDownSmallTable(t *testing.T) {
	table := mustTable(t, []AttributeRow{{Name: "A", Values: []string{"a", "b"}}})

	clues, err := AllSatisfiedClues(table, 18)
	if err != nil {
		t.Fatalf("AllSatisfiedClues() error: %v", err)
	}
	if len(clues) == 0 {
		t.Fatalf("AllSatisfiedClues() returned no clues for a 2-column table")
	}

	store := NewCandidateStore(table)
	if n := CountSolutions(clues, store, 2); n != 1 {
		t.Fatalf("CountSolutions() with the maximal clue set = %d, want 1", n)
	}
}

func TestAllSatisfiedCluesEveryClueTrueOfTable(t *testing.T) {
	table := mustTable(t, []AttributeRow{
		{Name: "A", Values: []string{"a1", "a2", "a3"}},
		{Name: "B", Values: []string{"b1", "b2", "b3"}},
	})

	clues, err := AllSatisfiedClues(table, 5)
	if err != nil {
		t.Fatalf("AllSatisfiedClues() error: %v", err)
	}
	for _, c := range clues {
		cols := make([]int, len(c.Labels))
		for i, label := range c.Labels {
			cols[i] = label - 1
		}
		if !c.Pred(cols...) {
			t.Fatalf("clue %q is not actually satisfied by its own binding", c.Render())
		}
	}
}

func TestAllSatisfiedCluesRejectsInvalidLevel(t *testing.T) {
	table := mustTable(t, []AttributeRow{{Name: "A", Values: []string{"a", "b"}}})
	if _, err := AllSatisfiedClues(table, 0); err == nil {
		t.Fatalf("AllSatisfiedClues() error = nil for an out-of-range level")
	}
}
