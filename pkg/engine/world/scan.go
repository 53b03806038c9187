package world

import "iter"

// Marker is one annotated tile found by a scan
type Marker struct {
	Point
	Layer      string
	Properties Properties
}

// Scan lazily yields every non-empty tile of the named layers with its merged
// properties. Layers are visited in the order given (DefaultLayers when none
// are given), each row by row, left to right. Layers missing from the map are
// skipped.
func Scan(m *Map, layers ...string) iter.Seq[Marker] {
	if len(layers) == 0 {
		layers = DefaultLayers
	}
	return func(yield func(Marker) bool) {
		if m == nil {
			return
		}
		for _, name := range layers {
			l := m.Layer(name)
			if l == nil {
				continue
			}
			for y := 0; y < l.Height(); y++ {
				for x := 0; x < l.Width(); x++ {
					t := l.Tile(x, y)
					if t == nil {
						continue
					}
					if !yield(Marker{Point: Point{X: x, Y: y}, Layer: name, Properties: t.Merged()}) {
						return
					}
				}
			}
		}
	}
}

// ScanProperty yields only the markers on which property exists
func ScanProperty(m *Map, property string, layers ...string) iter.Seq[Marker] {
	return func(yield func(Marker) bool) {
		for mk := range Scan(m, layers...) {
			if !mk.Properties.Has(property) {
				continue
			}
			if !yield(mk) {
				return
			}
		}
	}
}
