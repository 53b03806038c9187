package world

// Conventional layer names, in scan order
const (
	LayerBack      = "Back"
	LayerBuildings = "Buildings"
	LayerFront     = "Front"
)

// DefaultLayers is the fixed layer order used by every marker scan
var DefaultLayers = []string{LayerBack, LayerBuildings, LayerFront}

// Layer is one named grid of optional tiles
type Layer struct {
	Name   string
	width  int
	height int
	tiles  []*Tile
}

// NewLayer creates an empty layer with the given dimensions
func NewLayer(name string, width, height int) *Layer {
	if width <= 0 || height <= 0 {
		panic("Layer dimensions must be positive")
	}
	return &Layer{
		Name:   name,
		width:  width,
		height: height,
		tiles:  make([]*Tile, width*height),
	}
}

// Width returns the number of columns in the layer
func (l *Layer) Width() int {
	return l.width
}

// Height returns the number of rows in the layer
func (l *Layer) Height() int {
	return l.height
}

// IsValidPosition checks if x/y is within layer bounds
func (l *Layer) IsValidPosition(x, y int) bool {
	return x >= 0 && x < l.width && y >= 0 && y < l.height
}

// Tile returns the tile at x/y, or nil if empty or out of bounds
func (l *Layer) Tile(x, y int) *Tile {
	if !l.IsValidPosition(x, y) {
		return nil
	}
	return l.tiles[y*l.width+x]
}

// SetTile places t at x/y. Returns false if out of bounds.
func (l *Layer) SetTile(x, y int, t *Tile) bool {
	if !l.IsValidPosition(x, y) {
		return false
	}
	l.tiles[y*l.width+x] = t
	return true
}

// ForEachTile calls fn for every non-empty tile, row by row
func (l *Layer) ForEachTile(fn func(x, y int, t *Tile)) {
	for y := 0; y < l.height; y++ {
		for x := 0; x < l.width; x++ {
			if t := l.tiles[y*l.width+x]; t != nil {
				fn(x, y, t)
			}
		}
	}
}

// Map is a location's tile map: a set of named layers sharing one size
type Map struct {
	width  int
	height int
	layers map[string]*Layer
	order  []string
}

// NewMap creates a map with the three conventional layers
func NewMap(width, height int) *Map {
	m := &Map{
		width:  width,
		height: height,
		layers: make(map[string]*Layer),
	}
	for _, name := range DefaultLayers {
		m.AddLayer(name)
	}
	return m
}

// Width returns the map width in tiles
func (m *Map) Width() int {
	return m.width
}

// Height returns the map height in tiles
func (m *Map) Height() int {
	return m.height
}

// AddLayer adds (or returns the existing) layer with the given name
func (m *Map) AddLayer(name string) *Layer {
	if l, ok := m.layers[name]; ok {
		return l
	}
	l := NewLayer(name, m.width, m.height)
	m.layers[name] = l
	m.order = append(m.order, name)
	return l
}

// Layer returns the named layer, or nil if the map has none
func (m *Map) Layer(name string) *Layer {
	if m == nil {
		return nil
	}
	return m.layers[name]
}

// LayerNames returns the layer names in creation order
func (m *Map) LayerNames() []string {
	names := make([]string, len(m.order))
	copy(names, m.order)
	return names
}

// IsValidPosition checks if p is inside the map
func (m *Map) IsValidPosition(p Point) bool {
	return p.X >= 0 && p.X < m.width && p.Y >= 0 && p.Y < m.height
}

// SetTile places a tile on the named layer, creating the layer if needed
func (m *Map) SetTile(layer string, x, y int, t *Tile) bool {
	return m.AddLayer(layer).SetTile(x, y, t)
}

// Tile returns the tile on the named layer at p, or nil
func (m *Map) Tile(layer string, p Point) *Tile {
	l := m.Layer(layer)
	if l == nil {
		return nil
	}
	return l.Tile(p.X, p.Y)
}
