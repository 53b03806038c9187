// Package world provides generic 2D tile-map primitives.
// These are engine-level constructs usable by any tile-based location.
package world

import (
	"fmt"
	"strconv"
	"strings"
)

// Point is an integer tile coordinate.
type Point struct {
	X int
	Y int
}

// Pt is shorthand for Point{X: x, Y: y}
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p offset by the given direction
func (p Point) Add(dir Direction) Point {
	dx, dy := dir.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// String returns "x,y"
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// ParsePoint parses the "x,y" form written by Point.String
func ParsePoint(s string) (Point, bool) {
	xs, ys, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return Point{}, false
	}
	x, errX := strconv.Atoi(strings.TrimSpace(xs))
	y, errY := strconv.Atoi(strings.TrimSpace(ys))
	if errX != nil || errY != nil {
		return Point{}, false
	}
	return Point{X: x, Y: y}, true
}

// Tile represents a single tile on one map layer.
// A tile carries two property sources: the properties set on this tile
// instance, and the defaults attached to the tile's index in its tilesheet.
type Tile struct {
	// Sheet index of the tile graphic
	Index int

	// Properties set on this tile instance (take precedence)
	Properties map[string]string

	// IndexProperties are the tilesheet defaults for Index
	IndexProperties map[string]string
}

// NewTile creates a tile with empty property sources
func NewTile(index int) *Tile {
	return &Tile{
		Index:           index,
		Properties:      make(map[string]string),
		IndexProperties: make(map[string]string),
	}
}

// Set sets an instance property and returns the tile for chaining
func (t *Tile) Set(name, value string) *Tile {
	if t.Properties == nil {
		t.Properties = make(map[string]string)
	}
	t.Properties[name] = value
	return t
}

// SetDefault sets a tile-index default property and returns the tile for chaining
func (t *Tile) SetDefault(name, value string) *Tile {
	if t.IndexProperties == nil {
		t.IndexProperties = make(map[string]string)
	}
	t.IndexProperties[name] = value
	return t
}

// Merged returns the resolved properties of the tile. Instance properties
// override tile-index defaults with the same name.
func (t *Tile) Merged() Properties {
	if t == nil {
		return nil
	}
	merged := make(Properties, len(t.Properties)+len(t.IndexProperties))
	for k, v := range t.IndexProperties {
		merged[k] = v
	}
	for k, v := range t.Properties {
		merged[k] = v
	}
	return merged
}
