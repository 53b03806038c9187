package entities

import (
	"testing"

	"lampcavern/pkg/engine/store"
	"lampcavern/pkg/engine/world"
)

var order = []string{"(O)68", "(O)62", "(O)64", "(O)575"}

func fourPedestals() []Pedestal {
	var slots []Pedestal
	for i := 0; i < PedestalCount; i++ {
		slots = append(slots, Pedestal{Tile: world.Pt(2+2*i, 3), Index: i})
	}
	return slots
}

func fill(s store.Store, kinds ...string) {
	for i, k := range kinds {
		if k != "" {
			s.Set(SlotKey(i), k)
		}
	}
}

func TestCheckSolution(t *testing.T) {
	tests := []struct {
		name  string
		kinds []string
		want  bool
	}{
		{"correct order", []string{"(O)68", "(O)62", "(O)64", "(O)575"}, true},
		{"last two swapped", []string{"(O)68", "(O)62", "(O)575", "(O)64"}, false},
		{"reversed", []string{"(O)575", "(O)64", "(O)62", "(O)68"}, false},
		{"partial fill", []string{"(O)68", "(O)62", "", ""}, false},
		{"one missing", []string{"(O)68", "", "(O)64", "(O)575"}, false},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPedestalPuzzle(order)
			s := store.NewMemory()
			fill(s, tt.kinds...)
			if got := p.CheckSolution(fourPedestals(), s); got != tt.want {
				t.Errorf("CheckSolution(%v) = %v, want %v", tt.kinds, got, tt.want)
			}
		})
	}
}

func TestCheckSolution_FewerThanFourPedestals(t *testing.T) {
	p := NewPedestalPuzzle(order)
	s := store.NewMemory()
	fill(s, order...)

	if p.CheckSolution(fourPedestals()[:3], s) {
		t.Error("CheckSolution with 3 pedestals = true, want false")
	}
}

func TestCheckSolution_MissingIndex(t *testing.T) {
	p := NewPedestalPuzzle(order)
	s := store.NewMemory()
	fill(s, order...)

	slots := fourPedestals()
	slots[3].Index = 2 // two pedestals claim index 2, none has 3
	if p.CheckSolution(slots, s) {
		t.Error("CheckSolution without index 3 = true, want false")
	}
}

func TestAccepts(t *testing.T) {
	p := NewPedestalPuzzle(order)
	if !p.Accepts("(O)64") {
		t.Error("Accepts(Ruby) = false, want true")
	}
	if p.Accepts("(O)390") {
		t.Error("Accepts(Stone) = true, want false")
	}
}

func TestIsSolved(t *testing.T) {
	s := store.NewMemory()
	if IsSolved(s) {
		t.Error("IsSolved(empty) = true")
	}
	s.Set(SolvedKey, "true")
	if IsSolved(s) {
		t.Error("IsSolved(\"true\") = true, want false (only \"1\" counts)")
	}
	s.Set(SolvedKey, SolvedValue)
	if !IsSolved(s) {
		t.Error("IsSolved(\"1\") = false")
	}
}

func TestSlotKey(t *testing.T) {
	if got := SlotKey(3); got != "pedestal:3" {
		t.Errorf("SlotKey(3) = %q, want pedestal:3", got)
	}
}
