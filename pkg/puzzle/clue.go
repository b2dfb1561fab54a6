package puzzle

import "fmt"

// Predicate is a small function over 1, 2, or 3 column indices (0-indexed,
// in [0, M-1]) deciding whether a binding of cells satisfies a clue's
// relation. Predicate is a plain func value (often a closure over M-derived
// bounds such as last or mid); arity is fixed per Template and known at
// call sites. Every evaluation, including each one in the propagation
// kernel's inner loop, is an indirect call through this func value.
type Predicate func(cols ...int) bool

// Template is one entry of the Rule Catalog: an arity, a predicate over
// that many column indices, the renderable phrasings for it, and whether
// it must be rejected when two or more of its bindings share an attribute
// row (ExceptFlag).
type Template struct {
	Arity        int
	Pred         Predicate
	Renderings   []string // fmt templates using explicit %[n]s verbs
	ExceptFlag   bool
	AddedAtLevel int
}

// Clue is the bound, renderable premise: a tuple (rows, values, pred,
// template) plus the already-chosen rendering string.
// Labels holds the 1-indexed candidate-set identity (Table.ColumnOf) of
// each Values[t] in Rows[t], resolved once at construction time —
// propagation only ever touches Rows/Labels/Pred, never the Table itself,
// so the kernel has no need to see the hidden solution beyond this one
// label lookup. Pred, by contrast, is evaluated on 0-indexed store
// positions (array indices into a CandidateStore row), matching the
// column arithmetic in the Rule Catalog's predicates.
type Clue struct {
	Rows      []int
	AttrNames []string
	Values    []string
	Labels    []int
	Pred      Predicate
	Template  string
}

// Render substitutes (attribute_name, value) pairs into the clue's
// template in binding order. Substitution is pure textual replacement; no
// locale-dependent case transforms are applied.
func (c *Clue) Render() string {
	args := make([]any, 0, len(c.Rows)*2)
	for t := range c.Rows {
		args = append(args, c.AttrNames[t], c.Values[t])
	}
	return fmt.Sprintf(c.Template, args...)
}

// sharesAttributeRow reports whether any two entries of rows repeat an
// attribute index — the ExceptFlag rejection rule.
func sharesAttributeRow(rows []int) bool {
	for i := 0; i < len(rows); i++ {
		for j := i + 1; j < len(rows); j++ {
			if rows[i] == rows[j] {
				return true
			}
		}
	}
	return false
}
