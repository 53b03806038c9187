package entities

import "lampcavern/pkg/engine/world"

// WarpSpot is the puzzle's warp pad: the pad tile and where it leads once
// the puzzle is solved
type WarpSpot struct {
	Tile   world.Point
	Target string
	X      int
	Y      int
}

// Link returns the teleport link the host registers for this spot
func (w WarpSpot) Link() WarpLink {
	return WarpLink{From: w.Tile, Target: w.Target, To: world.Pt(w.X, w.Y)}
}

// WarpLink is a host-level teleport: stepping on From moves the player to
// To in the Target location
type WarpLink struct {
	From   world.Point
	Target string
	To     world.Point
}
