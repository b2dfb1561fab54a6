package puzzle

import "testing"

func clueFor(table *Table, tmpl Template, cells []Cell) *Clue {
	rows := make([]int, len(cells))
	values := make([]string, len(cells))
	labels := make([]int, len(cells))
	attrNames := make([]string, len(cells))
	for t, c := range cells {
		rows[t] = c.Row
		v := table.Rows[c.Row].Values[c.Col]
		values[t] = v
		attrNames[t] = table.Rows[c.Row].Name
		labels[t] = table.ColumnOf(c.Row, v)
	}
	return &Clue{Rows: rows, AttrNames: attrNames, Values: values, Labels: labels, Pred: tmpl.Pred, Template: tmpl.Renderings[0]}
}

func TestPropagateSoundConsistentClue(t *testing.T) {
	table := mustTable(t, []AttributeRow{
		{Name: "A", Values: []string{"x", "y", "z"}},
		{Name: "B", Values: []string{"p", "q", "r"}},
	})
	store := NewCandidateStore(table)

	farLeft := Template{Arity: 1, Pred: predFarLeft, Renderings: []string{"%[1]s:%[2]s is on the far left"}}
	c := clueFor(table, farLeft, []Cell{{Row: 0, Col: 0}}) // "x" is truly at column 0

	ok := Propagate([]*Clue{c}, store)
	if !ok {
		t.Fatalf("Propagate() = false for a clue consistent with the solution")
	}
	if store.IsDead() {
		t.Fatalf("store went dead on a sound clue")
	}
	if !store.Get(0, 0).Has(1) {
		t.Fatalf("propagation dropped the true solution value from its cell")
	}
}

func TestPropagateInjectedFalseClueDeadEnds(t *testing.T) {
	// Scenario S5: a clue asserting a value is at column 0 when its true
	// column is not 0, injected next to a true clue that already places
	// another value at column 0, must dead-end the store.
	table := mustTable(t, []AttributeRow{
		{Name: "A", Values: []string{"x", "y", "z"}},
	})
	store := NewCandidateStore(table)

	farLeft := Template{Arity: 1, Pred: predFarLeft, Renderings: []string{"%[1]s:%[2]s is on the far left"}}
	// "x" is truly at column 0.
	truth := clueFor(table, farLeft, []Cell{{Row: 0, Col: 0}})
	// "y" is truly at column 1, not column 0.
	c := clueFor(table, farLeft, []Cell{{Row: 0, Col: 1}})

	ok := Propagate([]*Clue{truth, c}, store)
	if ok {
		t.Fatalf("Propagate() = true for a clue inconsistent with the solution, want false (dead)")
	}
}

func TestApplyBijectionHiddenSingle(t *testing.T) {
	table := mustTable(t, []AttributeRow{{Name: "A", Values: []string{"x", "y"}}})
	store := NewCandidateStore(table)
	// Remove label 1 ("x") from column 1, leaving it the only candidate at
	// column 0 — a hidden single that bijection propagation must resolve.
	store.Get(0, 1).Remove(1)

	applyBijection(store)

	if !store.Get(0, 0).IsSingleton() || store.Get(0, 0).SingletonValue() != 1 {
		t.Fatalf("hidden single not resolved at column 0")
	}
}
