package puzzle

import (
	"testing"
	"time"
)

func TestMinimizeRemovesRedundantClue(t *testing.T) {
	table := mustTable(t, []AttributeRow{{Name: "A", Values: []string{"a", "b"}}})
	farLeft := Template{Arity: 1, Pred: predFarLeft, Renderings: []string{"%[1]s:%[2]s is on the far left"}}
	farRight := Template{Arity: 1, Pred: predFarRight(1), Renderings: []string{"%[1]s:%[2]s is on the far right"}}

	redundant := []*Clue{
		clueFor(table, farLeft, []Cell{{Row: 0, Col: 0}}),
		clueFor(table, farRight, []Cell{{Row: 0, Col: 1}}),
	}

	best, timeElapsed := Minimize(redundant, table, time.Second)
	if timeElapsed {
		t.Fatalf("Minimize() time_elapsed = true, want false")
	}
	if len(best) != 1 {
		t.Fatalf("Minimize() left %d clues, want 1 (either one alone disambiguates)", len(best))
	}
	if n := CountSolutions(best, NewCandidateStore(table), 2); n != 1 {
		t.Fatalf("minimized set has %d solutions, want 1", n)
	}
}

func TestMinimizeKeepsNecessaryClues(t *testing.T) {
	table := mustTable(t, []AttributeRow{{Name: "A", Values: []string{"a", "b"}}})
	farLeft := Template{Arity: 1, Pred: predFarLeft, Renderings: []string{"%[1]s:%[2]s is on the far left"}}

	clues := []*Clue{clueFor(table, farLeft, []Cell{{Row: 0, Col: 0}})}
	best, timeElapsed := Minimize(clues, table, time.Second)
	if timeElapsed {
		t.Fatalf("Minimize() time_elapsed = true, want false")
	}
	if len(best) != 1 {
		t.Fatalf("Minimize() removed the only necessary clue: left %d", len(best))
	}
}

func TestMinimizeZeroDeadlineIsUnbounded(t *testing.T) {
	table := mustTable(t, []AttributeRow{{Name: "A", Values: []string{"a", "b"}}})
	farLeft := Template{Arity: 1, Pred: predFarLeft, Renderings: []string{"%[1]s:%[2]s is on the far left"}}
	clues := []*Clue{clueFor(table, farLeft, []Cell{{Row: 0, Col: 0}})}

	best, timeElapsed := Minimize(clues, table, 0)
	if timeElapsed {
		t.Fatalf("Minimize() with deadline<=0 reported time_elapsed = true")
	}
	if len(best) != 1 {
		t.Fatalf("Minimize() = %d clues, want 1", len(best))
	}
}
