package effects

import (
	"lampcavern/pkg/engine/world"
	"lampcavern/pkg/game/entities"
)

// WarpTable holds the teleport links of one location, at most one per tile
type WarpTable interface {
	Warp(from world.Point) (entities.WarpLink, bool)
	AddWarp(link entities.WarpLink)
	RemoveWarp(from world.Point)
}

// EnsureWarp makes link present, replacing a different link on the same tile.
// It returns false when the table already held it.
func EnsureWarp(t WarpTable, link entities.WarpLink) bool {
	if cur, ok := t.Warp(link.From); ok {
		if cur == link {
			return false
		}
		t.RemoveWarp(link.From)
	}
	t.AddWarp(link)
	return true
}

// ClearWarp removes the link on from, if any. It returns false when there
// was nothing to remove.
func ClearWarp(t WarpTable, from world.Point) bool {
	if _, ok := t.Warp(from); !ok {
		return false
	}
	t.RemoveWarp(from)
	return true
}
