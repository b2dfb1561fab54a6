package puzzle

// templateGroup bundles the one or more Templates introduced together at a
// given level — e.g. "immediately left of" and "immediately right of" are
// always added and removed as a pair. Grouping them lets the level-13..20
// removal rule pop exactly one head group per level, in a fixed order.
type templateGroup struct {
	name      string
	templates []Template
}

// BuildCatalog returns the level-gated set of clue templates for a table
// with m columns. Levels 1..12 are additive; levels 13..20 remove exactly
// one head group per level, in a fixed order (identity, adjacency,
// boundary/middle, between, left-or-right, parity-position,
// somewhere-left/right, inequality). The XOR/OR-equality/OR-inequality
// groups introduced at levels 10-12 are never removed.
func BuildCatalog(level, m int) ([]Template, error) {
	if level < 1 || level > 20 {
		return nil, NewInvalidLevelError(level)
	}
	if m <= 1 {
		return nil, NewTooFewObjectsError(m, level)
	}
	if m == 2 && level >= 19 {
		return nil, NewTooFewObjectsError(m, level)
	}

	groups := buildTemplateGroups(m)

	var included []templateGroup
	for _, g := range groups {
		if g.addedAtLevel <= level {
			included = append(included, g.templateGroup)
		}
	}

	if level >= 13 {
		remove := level - 12
		if remove > len(included) {
			remove = len(included)
		}
		included = included[remove:]
	}

	var out []Template
	for _, g := range included {
		out = append(out, g.templates...)
	}
	return out, nil
}

type leveledGroup struct {
	addedAtLevel int
	templateGroup
}

// buildTemplateGroups constructs the full, level-ordered group list — the
// first 8 groups are exactly the ones named in the removal order, kept in
// construction order so that slicing included[remove:] pops the right
// heads.
func buildTemplateGroups(m int) []leveledGroup {
	last := m - 1
	mid := m / 2

	groups := []leveledGroup{
		{1, templateGroup{"identity", []Template{
			{Arity: 2, Pred: predEqual, Renderings: []string{
				"%[1]s:%[2]s is the same position as %[3]s:%[4]s",
				"%[3]s:%[4]s is the same position as %[1]s:%[2]s",
			}, AddedAtLevel: 1},
		}}},
		{1, templateGroup{"adjacency", []Template{
			{Arity: 2, Pred: predImmediatelyLeftOf, Renderings: []string{
				"%[1]s:%[2]s is immediately to the left of %[3]s:%[4]s",
			}, AddedAtLevel: 1},
			{Arity: 2, Pred: predImmediatelyRightOf, Renderings: []string{
				"%[1]s:%[2]s is immediately to the right of %[3]s:%[4]s",
			}, AddedAtLevel: 1},
		}}},
		{1, templateGroup{"boundary/middle", boundaryMiddleTemplates(m, last, mid)}},
		{2, templateGroup{"between", []Template{
			{Arity: 3, Pred: predImmediatelyBetween, Renderings: []string{
				"%[1]s:%[2]s is immediately between %[3]s:%[4]s and %[5]s:%[6]s",
				"%[1]s:%[2]s is immediately between %[5]s:%[6]s and %[3]s:%[4]s",
			}, AddedAtLevel: 2},
		}}},
		{3, templateGroup{"left-or-right", []Template{
			{Arity: 2, Pred: predLeftOrRightOf, Renderings: []string{
				"%[1]s:%[2]s is on the left or right of %[3]s:%[4]s",
			}, AddedAtLevel: 3},
			{Arity: 1, Pred: predFarLeftOrRight(last), Renderings: []string{
				"%[1]s:%[2]s is on the far left or far right",
			}, AddedAtLevel: 3},
		}}},
		{4, templateGroup{"parity-position", []Template{
			{Arity: 1, Pred: predOddPosition, Renderings: []string{
				"%[1]s:%[2]s is in an odd position",
			}, AddedAtLevel: 4},
			{Arity: 1, Pred: predEvenPosition, Renderings: []string{
				"%[1]s:%[2]s is in an even position",
			}, AddedAtLevel: 4},
		}}},
		{5, templateGroup{"somewhere-left/right", []Template{
			{Arity: 2, Pred: predSomewhereLeft, Renderings: []string{
				"%[1]s:%[2]s is somewhere to the left of %[3]s:%[4]s",
			}, AddedAtLevel: 5},
			{Arity: 2, Pred: predSomewhereRight, Renderings: []string{
				"%[1]s:%[2]s is somewhere to the right of %[3]s:%[4]s",
			}, AddedAtLevel: 5},
		}}},
		{6, templateGroup{"inequality", []Template{
			{Arity: 2, Pred: predNotEqual, ExceptFlag: true, Renderings: []string{
				"%[1]s:%[2]s != %[3]s:%[4]s",
				"%[3]s:%[4]s != %[1]s:%[2]s",
			}, AddedAtLevel: 6},
		}}},
		// Never removed: added at 7-12, absent from the removal list.
		{7, templateGroup{"somewhere-between", []Template{
			{Arity: 3, Pred: predSomewhereBetween, Renderings: []string{
				"%[1]s:%[2]s is somewhere between %[3]s:%[4]s and %[5]s:%[6]s",
				"%[1]s:%[2]s is somewhere between %[5]s:%[6]s and %[3]s:%[4]s",
			}, AddedAtLevel: 7},
		}}},
		{8, templateGroup{"bound-inequality", []Template{
			{Arity: 2, Pred: predNotLeftOf, Renderings: []string{
				"%[1]s:%[2]s is not to the left of %[3]s:%[4]s",
			}, AddedAtLevel: 8},
			{Arity: 2, Pred: predNotRightOf, Renderings: []string{
				"%[1]s:%[2]s is not to the right of %[3]s:%[4]s",
			}, AddedAtLevel: 8},
		}}},
		{9, templateGroup{"parity-relation", []Template{
			{Arity: 2, Pred: predDifferentParity, ExceptFlag: true, Renderings: []string{
				"%[1]s:%[2]s and %[3]s:%[4]s have different parity positions",
				"%[3]s:%[4]s and %[1]s:%[2]s have different parity positions",
			}, AddedAtLevel: 9},
			{Arity: 2, Pred: predSameParity, ExceptFlag: true, Renderings: []string{
				"%[1]s:%[2]s and %[3]s:%[4]s have the same parity positions",
				"%[3]s:%[4]s and %[1]s:%[2]s have the same parity positions",
			}, AddedAtLevel: 9},
		}}},
		{10, templateGroup{"xor-equality", []Template{
			{Arity: 3, Pred: predXOREquality, ExceptFlag: true, Renderings: []string{
				"%[1]s:%[2]s == %[3]s:%[4]s or %[1]s:%[2]s == %[5]s:%[6]s, but not both",
			}, AddedAtLevel: 10},
		}}},
		{11, templateGroup{"or-equality", []Template{
			{Arity: 3, Pred: predOREquality, ExceptFlag: true, Renderings: []string{
				"%[1]s:%[2]s == %[3]s:%[4]s or %[1]s:%[2]s == %[5]s:%[6]s",
			}, AddedAtLevel: 11},
		}}},
		{12, templateGroup{"or-inequality", []Template{
			{Arity: 3, Pred: predORInequality, ExceptFlag: true, Renderings: []string{
				"%[1]s:%[2]s != %[3]s:%[4]s or %[1]s:%[2]s != %[5]s:%[6]s",
			}, AddedAtLevel: 12},
		}}},
	}
	return groups
}

func boundaryMiddleTemplates(m, last, mid int) []Template {
	tmpls := []Template{
		{Arity: 1, Pred: predFarLeft, Renderings: []string{
			"%[1]s:%[2]s is on the far left",
		}, AddedAtLevel: 1},
		{Arity: 1, Pred: predFarRight(last), Renderings: []string{
			"%[1]s:%[2]s is on the far right",
		}, AddedAtLevel: 1},
	}
	if m%2 != 0 {
		tmpls = append(tmpls, Template{Arity: 1, Pred: predMiddle(mid), Renderings: []string{
			"%[1]s:%[2]s is in the middle",
		}, AddedAtLevel: 1})
	}
	return tmpls
}

// --- predicates ---

func predEqual(cols ...int) bool               { return cols[0] == cols[1] }
func predImmediatelyLeftOf(cols ...int) bool   { return cols[0] == cols[1]-1 }
func predImmediatelyRightOf(cols ...int) bool  { return cols[0] == cols[1]+1 }
func predFarLeft(cols ...int) bool             { return cols[0] == 0 }

func predFarRight(last int) Predicate {
	return func(cols ...int) bool { return cols[0] == last }
}

func predMiddle(mid int) Predicate {
	return func(cols ...int) bool { return cols[0] == mid }
}

func predImmediatelyBetween(cols ...int) bool {
	j1, j2, j3 := cols[0], cols[1], cols[2]
	return (j2+1 == j1 && j1 == j3-1) || (j3+1 == j1 && j1 == j2-1)
}

func predLeftOrRightOf(cols ...int) bool {
	return cols[0] == cols[1]-1 || cols[0] == cols[1]+1
}

func predFarLeftOrRight(last int) Predicate {
	return func(cols ...int) bool { return cols[0] == 0 || cols[0] == last }
}

func predOddPosition(cols ...int) bool  { return (cols[0]+1)%2 != 0 }
func predEvenPosition(cols ...int) bool { return (cols[0]+1)%2 == 0 }

func predSomewhereLeft(cols ...int) bool  { return cols[0] < cols[1] }
func predSomewhereRight(cols ...int) bool { return cols[0] > cols[1] }

func predNotEqual(cols ...int) bool { return cols[0] != cols[1] }

func predSomewhereBetween(cols ...int) bool {
	j1, j2, j3 := cols[0], cols[1], cols[2]
	return (j2 < j1 && j1 < j3) || (j3 < j1 && j1 < j2)
}

func predNotLeftOf(cols ...int) bool { return cols[0] >= cols[1] }
func predNotRightOf(cols ...int) bool { return cols[0] <= cols[1] }

func predDifferentParity(cols ...int) bool { return cols[0]%2 != cols[1]%2 }
func predSameParity(cols ...int) bool      { return cols[0]%2 == cols[1]%2 }

func predXOREquality(cols ...int) bool {
	j1, j2, j3 := cols[0], cols[1], cols[2]
	eqB, eqC := j1 == j2, j1 == j3
	return eqB != eqC
}

func predOREquality(cols ...int) bool {
	j1, j2, j3 := cols[0], cols[1], cols[2]
	return j1 == j2 || j1 == j3
}

func predORInequality(cols ...int) bool {
	j1, j2, j3 := cols[0], cols[1], cols[2]
	return j1 != j2 || j1 != j3
}
