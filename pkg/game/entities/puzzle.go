package entities

import (
	"github.com/zyedidia/generic/mapset"

	"lampcavern/pkg/engine/store"
)

// PedestalPuzzle is the ordered-gem puzzle definition
type PedestalPuzzle struct {
	// Kind required on each pedestal, index 0 first
	Order []string

	kinds mapset.Set[string]
}

// NewPedestalPuzzle creates a puzzle requiring order on pedestals 0..n-1
func NewPedestalPuzzle(order []string) *PedestalPuzzle {
	kinds := mapset.New[string]()
	for _, k := range order {
		kinds.Put(k)
	}
	o := make([]string, len(order))
	copy(o, order)
	return &PedestalPuzzle{Order: o, kinds: kinds}
}

// Accepts returns true if kind is one of the puzzle's gems
func (p *PedestalPuzzle) Accepts(kind string) bool {
	return p.kinds.Has(kind)
}

// CheckSolution reports whether the persisted slots hold the required order.
// Every required index must be among the discovered pedestals; with fewer
// pedestals the puzzle can never be solved.
func (p *PedestalPuzzle) CheckSolution(slots []Pedestal, s store.Store) bool {
	if len(p.Order) != PedestalCount || len(slots) < PedestalCount {
		return false
	}

	found := mapset.New[int]()
	for _, slot := range slots {
		found.Put(slot.Index)
	}

	for i, want := range p.Order {
		if !found.Has(i) {
			return false
		}
		got, ok := s.Get(SlotKey(i))
		if !ok || got != want {
			return false
		}
	}
	return true
}

// IsSolved reads the persisted solved flag
func IsSolved(s store.Store) bool {
	v, ok := s.Get(SolvedKey)
	return ok && v == SolvedValue
}
