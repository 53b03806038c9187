package gameplay

import (
	"github.com/zyedidia/generic/mapset"

	"lampcavern/pkg/engine/world"
	"lampcavern/pkg/game/entities"
)

// HintRocks are the tiles of the current cavern that show the hint letter
type HintRocks struct {
	tiles mapset.Set[world.Point]
}

// NewHintRocks creates an empty set
func NewHintRocks() *HintRocks {
	return &HintRocks{tiles: mapset.New[world.Point]()}
}

// Scan replaces the set with the hint-rock tiles of m
func (h *HintRocks) Scan(m *world.Map) int {
	h.Clear()
	for mk := range world.ScanProperty(m, entities.PropHintRock) {
		h.tiles.Put(mk.Point)
	}
	return h.tiles.Size()
}

// Clear empties the set
func (h *HintRocks) Clear() {
	h.tiles = mapset.New[world.Point]()
}

// Has returns true if p is a hint rock
func (h *HintRocks) Has(p world.Point) bool {
	return h.tiles.Has(p)
}

// Len returns the number of hint rocks
func (h *HintRocks) Len() int {
	return h.tiles.Size()
}
