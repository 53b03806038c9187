package world

import "testing"

func TestNewMap_HasConventionalLayers(t *testing.T) {
	m := NewMap(2, 3)
	for _, name := range DefaultLayers {
		if m.Layer(name) == nil {
			t.Errorf("Layer(%q) = nil, want layer", name)
		}
	}
	if m.Width() != 2 || m.Height() != 3 {
		t.Errorf("size = %dx%d, want 2x3", m.Width(), m.Height())
	}
}

func TestLayer_OutOfBounds(t *testing.T) {
	l := NewLayer(LayerBack, 2, 2)
	if l.SetTile(2, 0, NewTile(0)) {
		t.Error("SetTile(2,0) = true, want false")
	}
	if l.Tile(-1, 0) != nil {
		t.Error("Tile(-1,0) != nil")
	}
}

func TestMap_TileLookup(t *testing.T) {
	m := NewMap(4, 4)
	tile := NewTile(7)
	if !m.SetTile(LayerBuildings, 3, 2, tile) {
		t.Fatal("SetTile failed")
	}
	if got := m.Tile(LayerBuildings, Pt(3, 2)); got != tile {
		t.Errorf("Tile = %v, want %v", got, tile)
	}
	if got := m.Tile("Missing", Pt(3, 2)); got != nil {
		t.Errorf("Tile on missing layer = %v, want nil", got)
	}
}

func TestPoint_Add(t *testing.T) {
	p := Pt(5, 5)
	tests := []struct {
		dir  Direction
		want Point
	}{
		{North, Pt(5, 4)},
		{South, Pt(5, 6)},
		{East, Pt(6, 5)},
		{West, Pt(4, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			if got := p.Add(tt.dir); got != tt.want {
				t.Errorf("Add(%v) = %v, want %v", tt.dir, got, tt.want)
			}
		})
	}
}

func TestCatalog_Create(t *testing.T) {
	c := Catalog{"(O)68": "Topaz"}
	item, ok := c.Create("(O)68")
	if !ok || item.Kind != "(O)68" || item.Stack != 1 {
		t.Errorf("Create(known) = (%v, %v), want single Topaz", item, ok)
	}
	if _, ok := c.Create("(O)999"); ok {
		t.Error("Create(unknown) ok = true, want false")
	}
	if got := c.Name("(O)999"); got != "(O)999" {
		t.Errorf("Name(unknown) = %q, want id", got)
	}
}

func TestParsePoint(t *testing.T) {
	tests := []struct {
		in     string
		want   Point
		wantOK bool
	}{
		{"3,4", Pt(3, 4), true},
		{" 10 , -2 ", Pt(10, -2), true},
		{"3", Point{}, false},
		{"a,4", Point{}, false},
		{"", Point{}, false},
	}
	for _, tt := range tests {
		got, ok := ParsePoint(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ParsePoint(%q) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
	if p, _ := ParsePoint(Pt(7, 9).String()); p != Pt(7, 9) {
		t.Errorf("ParsePoint(String()) = %v, want 7,9", p)
	}
}
