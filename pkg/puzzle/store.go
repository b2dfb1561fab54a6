package puzzle

import (
	"encoding/binary"
	"hash/fnv"
)

// CandidateStore is the N×M grid of CandidateSets: Cells[i][j] holds the
// set of solution columns that could still be the true occupant of
// (attribute row i, column j).
type CandidateStore struct {
	Table *Table
	Cells [][]*CandidateSet // Cells[i][j]
}

// NewCandidateStore returns a store with every cell fully unresolved —
// every column is a candidate at every cell of every row.
func NewCandidateStore(table *Table) *CandidateStore {
	n, m := table.N(), table.M()
	cells := make([][]*CandidateSet, n)
	for i := 0; i < n; i++ {
		cells[i] = make([]*CandidateSet, m)
		for j := 0; j < m; j++ {
			cells[i][j] = NewFullCandidateSet(m)
		}
	}
	return &CandidateStore{Table: table, Cells: cells}
}

// Get returns the candidate set at (row, col).
func (s *CandidateStore) Get(row, col int) *CandidateSet {
	return s.Cells[row][col]
}

// Clone returns a deep, independent copy — required before the Solver or
// Minimizer recurses into a branch, so no two frames alias the same cells.
func (s *CandidateStore) Clone() *CandidateStore {
	cells := make([][]*CandidateSet, len(s.Cells))
	for i, row := range s.Cells {
		newRow := make([]*CandidateSet, len(row))
		for j, cs := range row {
			newRow[j] = cs.Clone()
		}
		cells[i] = newRow
	}
	return &CandidateStore{Table: s.Table, Cells: cells}
}

// IsDead reports whether any cell has an empty candidate set.
func (s *CandidateStore) IsDead() bool {
	for _, row := range s.Cells {
		for _, cs := range row {
			if cs.IsDead() {
				return true
			}
		}
	}
	return false
}

// IsSolved reports whether every cell is a singleton.
func (s *CandidateStore) IsSolved() bool {
	for _, row := range s.Cells {
		for _, cs := range row {
			if !cs.IsSingleton() {
				return false
			}
		}
	}
	return true
}

// Cell identifies one (attribute row, column) position.
type Cell struct {
	Row, Col int
}

// UnresolvedCells returns every cell whose candidate set has more than one
// value, in row-major order.
func (s *CandidateStore) UnresolvedCells() []Cell {
	var cells []Cell
	for i, row := range s.Cells {
		for j, cs := range row {
			if cs.Count() > 1 {
				cells = append(cells, Cell{Row: i, Col: j})
			}
		}
	}
	return cells
}

// FirstUnresolvedCell returns the first unresolved cell in row-major order
// and true, or the zero Cell and false if the store is fully solved.
func (s *CandidateStore) FirstUnresolvedCell() (Cell, bool) {
	for i, row := range s.Cells {
		for j, cs := range row {
			if cs.Count() > 1 {
				return Cell{Row: i, Col: j}, true
			}
		}
	}
	return Cell{}, false
}

// Equal reports structural equality between two stores. CountSolutions
// does not call it: its branches assign disjoint values to one cell, so
// the solved stores it counts are distinct by construction.
func (s *CandidateStore) Equal(other *CandidateStore) bool {
	if len(s.Cells) != len(other.Cells) {
		return false
	}
	for i := range s.Cells {
		if len(s.Cells[i]) != len(other.Cells[i]) {
			return false
		}
		for j := range s.Cells[i] {
			if !s.Cells[i][j].Equal(other.Cells[i][j]) {
				return false
			}
		}
	}
	return true
}

// Hash returns a canonical hash of the store's bit grid; structurally
// equal stores hash to the same value.
func (s *CandidateStore) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	for _, row := range s.Cells {
		for _, cs := range row {
			cs.IterateValues(func(v int) {
				binary.LittleEndian.PutUint64(buf[:], uint64(v))
				_, _ = h.Write(buf[:])
			})
			_, _ = h.Write([]byte{0xff}) // cell separator
		}
	}
	return h.Sum64()
}
