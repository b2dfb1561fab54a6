// Package puzzle implements the zebra-style logic puzzle generation core:
// a candidate store, a propagation kernel, a uniqueness-checking solver, a
// level-gated clue catalog, a clue generator, and a deadline-bounded
// minimizer.
package puzzle

import "math/bits"

// CandidateSet is a fixed-width bitset tracking, for one (attribute row,
// column) cell of a CandidateStore, which of the row's M solution columns
// could still be the true occupant of that cell. Bit k (1-indexed) set
// means "the value that truly belongs to solution column k is still a
// candidate here".
//
// Representation: one uint64 word per 64 values, giving O(1) membership
// and O(words) everything else. CandidateSet is mutated in place by the
// propagation kernel — callers that need isolation (the Solver, the
// Minimizer) take an explicit Clone first, so no two recursion frames
// alias the same cells.
type CandidateSet struct {
	m     int
	words []uint64
}

func wordsFor(m int) int {
	if m <= 0 {
		return 0
	}
	return (m + 63) / 64
}

// NewFullCandidateSet returns a set containing every column 1..m.
func NewFullCandidateSet(m int) *CandidateSet {
	cs := &CandidateSet{m: m, words: make([]uint64, wordsFor(m))}
	for v := 1; v <= m; v++ {
		cs.set(v)
	}
	return cs
}

// NewCandidateSetFromValues returns a set containing exactly the given
// 1-indexed columns (out-of-range values are ignored).
func NewCandidateSetFromValues(m int, values ...int) *CandidateSet {
	cs := &CandidateSet{m: m, words: make([]uint64, wordsFor(m))}
	for _, v := range values {
		if v >= 1 && v <= m {
			cs.set(v)
		}
	}
	return cs
}

func (cs *CandidateSet) set(v int) {
	wordIdx := (v - 1) / 64
	bitOffset := uint((v - 1) % 64)
	cs.words[wordIdx] |= 1 << bitOffset
}

func (cs *CandidateSet) clear(v int) {
	wordIdx := (v - 1) / 64
	bitOffset := uint((v - 1) % 64)
	cs.words[wordIdx] &^= 1 << bitOffset
}

// Has reports whether column v (1-indexed) is still a candidate.
func (cs *CandidateSet) Has(v int) bool {
	if v < 1 || v > cs.m {
		return false
	}
	wordIdx := (v - 1) / 64
	bitOffset := uint((v - 1) % 64)
	return (cs.words[wordIdx]>>bitOffset)&1 == 1
}

// Remove deletes v from the set in place. Returns true if the set changed.
func (cs *CandidateSet) Remove(v int) bool {
	if !cs.Has(v) {
		return false
	}
	cs.clear(v)
	return true
}

// AssignTo narrows the set to exactly {v} in place.
func (cs *CandidateSet) AssignTo(v int) {
	for i := range cs.words {
		cs.words[i] = 0
	}
	if v >= 1 && v <= cs.m {
		cs.set(v)
	}
}

// Count returns the number of candidate columns remaining.
func (cs *CandidateSet) Count() int {
	n := 0
	for _, w := range cs.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// IsSingleton reports whether exactly one column remains.
func (cs *CandidateSet) IsSingleton() bool {
	return cs.Count() == 1
}

// IsDead reports whether no column remains.
func (cs *CandidateSet) IsDead() bool {
	return cs.Count() == 0
}

// SingletonValue returns the sole remaining column. Behavior is undefined
// if the set is not a singleton.
func (cs *CandidateSet) SingletonValue() int {
	for wordIdx, w := range cs.words {
		if w != 0 {
			return wordIdx*64 + bits.TrailingZeros64(w) + 1
		}
	}
	return 0
}

// IterateValues calls f for each remaining column in ascending order.
func (cs *CandidateSet) IterateValues(f func(v int)) {
	for wordIdx, w := range cs.words {
		for w != 0 {
			lowest := w & -w
			v := wordIdx*64 + bits.TrailingZeros64(w) + 1
			f(v)
			w &^= lowest
		}
	}
}

// Clone returns an independent copy.
func (cs *CandidateSet) Clone() *CandidateSet {
	words := make([]uint64, len(cs.words))
	copy(words, cs.words)
	return &CandidateSet{m: cs.m, words: words}
}

// Equal reports structural equality.
func (cs *CandidateSet) Equal(other *CandidateSet) bool {
	if cs.m != other.m || len(cs.words) != len(other.words) {
		return false
	}
	for i := range cs.words {
		if cs.words[i] != other.words[i] {
			return false
		}
	}
	return true
}
