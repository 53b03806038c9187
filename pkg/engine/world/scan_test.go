package world

import (
	"slices"
	"testing"
)

func collectPoints(m *Map, property string, layers ...string) []Point {
	var pts []Point
	for mk := range ScanProperty(m, property, layers...) {
		pts = append(pts, mk.Point)
	}
	return pts
}

func TestScan_LayerThenRowOrder(t *testing.T) {
	m := NewMap(3, 2)
	m.SetTile(LayerFront, 0, 0, NewTile(0).Set("mark", "front"))
	m.SetTile(LayerBuildings, 2, 1, NewTile(0).Set("mark", "b2"))
	m.SetTile(LayerBuildings, 1, 0, NewTile(0).Set("mark", "b1"))
	m.SetTile(LayerBack, 2, 0, NewTile(0).Set("mark", "back"))

	var got []string
	for mk := range Scan(m) {
		v, _ := mk.Properties.String("mark")
		got = append(got, v)
	}
	want := []string{"back", "b1", "b2", "front"}
	if !slices.Equal(got, want) {
		t.Errorf("scan order = %v, want %v", got, want)
	}
}

func TestScan_Stable(t *testing.T) {
	m := NewMap(4, 4)
	for i := 0; i < 4; i++ {
		m.SetTile(LayerBack, i, 3-i, NewTile(0).Set("puzzle-rock", "T"))
	}
	first := collectPoints(m, "puzzle-rock")
	second := collectPoints(m, "puzzle-rock")
	if !slices.Equal(first, second) {
		t.Errorf("scan not stable: %v then %v", first, second)
	}
}

func TestScanProperty_SkipsBlankAndMissing(t *testing.T) {
	m := NewMap(3, 1)
	m.SetTile(LayerBack, 0, 0, NewTile(0).Set("puzzle-rock", "T"))
	m.SetTile(LayerBack, 1, 0, NewTile(0).Set("puzzle-rock", "  "))
	m.SetTile(LayerBack, 2, 0, NewTile(0).SetDefault("puzzle-rock", "1"))

	got := collectPoints(m, "puzzle-rock")
	want := []Point{Pt(0, 0), Pt(2, 0)}
	if !slices.Equal(got, want) {
		t.Errorf("markers = %v, want %v", got, want)
	}
}

func TestScan_MissingLayerSkipped(t *testing.T) {
	m := NewMap(2, 2)
	m.SetTile(LayerBack, 1, 1, NewTile(0).Set("hint-rock", "T"))

	got := collectPoints(m, "hint-rock", "Paths", LayerBack)
	if len(got) != 1 || got[0] != Pt(1, 1) {
		t.Errorf("markers = %v, want [1,1]", got)
	}
}

func TestScan_NilMap(t *testing.T) {
	for range Scan(nil) {
		t.Fatal("nil map yielded a marker")
	}
}

func TestScan_EarlyBreak(t *testing.T) {
	m := NewMap(5, 5)
	for x := 0; x < 5; x++ {
		m.SetTile(LayerBack, x, 0, NewTile(0).Set("puzzle-rock", "T"))
	}
	n := 0
	for range ScanProperty(m, "puzzle-rock") {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("consumed %d markers, want 2", n)
	}
}
