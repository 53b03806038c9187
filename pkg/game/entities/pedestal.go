package entities

import (
	"strconv"

	"lampcavern/pkg/engine/world"
)

// Tile properties read by the cavern systems
const (
	PropPuzzleRock    = "puzzle-rock"
	PropPedestalIndex = "pedestal-index"
	PropDrawOffsetX   = "draw-offset-x"
	PropDrawOffsetY   = "draw-offset-y"
	PropWarpPad       = "warp-pad"
	PropWarpTarget    = "warp-target"
	PropWarpX         = "warp-x"
	PropWarpY         = "warp-y"
	PropHintRock      = "hint-rock"
)

// Location store keys
const (
	slotKeyPrefix = "pedestal:"
	SolvedKey     = "pedestal:solved"
	SolvedValue   = "1"
)

// PedestalCount is the number of slots a solvable puzzle has
const PedestalCount = 4

// SlotKey returns the location store key of pedestal slot index
func SlotKey(index int) string {
	return slotKeyPrefix + strconv.Itoa(index)
}

// Pedestal is one puzzle slot discovered on the map
type Pedestal struct {
	Tile       world.Point
	Index      int
	DrawOffset Offset
}

// Offset is a pixel offset
type Offset struct {
	X int
	Y int
}

// ValidPedestalIndex reports whether i names one of the puzzle slots
func ValidPedestalIndex(i int) bool {
	return i >= 0 && i < PedestalCount
}
