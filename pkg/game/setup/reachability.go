package setup

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"lampcavern/pkg/engine/world"
	"lampcavern/pkg/game/entities"
	"lampcavern/pkg/game/state"
)

// Reachable returns every tile of loc the player can walk to from start
func Reachable(loc *state.Location, start world.Point) mapset.Set[world.Point] {
	reachable := mapset.New[world.Point]()
	queue := []world.Point{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if reachable.Has(current) || !loc.Walkable(current) {
			continue
		}
		reachable.Put(current)

		for _, dir := range world.AllDirections() {
			if n := current.Add(dir); !reachable.Has(n) {
				queue = append(queue, n)
			}
		}
	}
	return reachable
}

// usable returns true if some reachable tile is next to p
func usable(reachable mapset.Set[world.Point], p world.Point) bool {
	for _, dir := range world.AllDirections() {
		if reachable.Has(p.Add(dir)) {
			return true
		}
	}
	return false
}

// CheckCavern reports what keeps the puzzle in loc from being solvable when
// entering at start: missing pedestals, pedestals or ore rocks nobody can stand
// next to, and an unreachable warp pad.
func CheckCavern(loc *state.Location, start world.Point) []string {
	var problems []string
	reachable := Reachable(loc, start)
	if !reachable.Has(start) {
		return []string{fmt.Sprintf("entry tile %v is not walkable", start)}
	}

	pedestals := 0
	for mk := range world.ScanProperty(loc.Map, entities.PropPedestalIndex) {
		idx, ok := mk.Properties.Int(entities.PropPedestalIndex)
		if !ok || !entities.ValidPedestalIndex(idx) {
			continue
		}
		pedestals++
		if !usable(reachable, mk.Point) {
			problems = append(problems, fmt.Sprintf("pedestal %d at %v cannot be reached", idx, mk.Point))
		}
	}
	if pedestals < entities.PedestalCount {
		problems = append(problems, fmt.Sprintf("found %d pedestals, want %d", pedestals, entities.PedestalCount))
	}

	rocks := 0
	for mk := range world.ScanProperty(loc.Map, entities.PropPuzzleRock) {
		rocks++
		if !reachable.Has(mk.Point) && !usable(reachable, mk.Point) {
			problems = append(problems, fmt.Sprintf("ore rock at %v cannot be reached", mk.Point))
		}
	}
	if rocks < entities.PedestalCount {
		problems = append(problems, fmt.Sprintf("found %d ore rocks, want at least %d", rocks, entities.PedestalCount))
	}

	pad := false
	for mk := range world.ScanProperty(loc.Map, entities.PropWarpPad) {
		pad = true
		if !reachable.Has(mk.Point) {
			problems = append(problems, fmt.Sprintf("warp pad at %v cannot be reached", mk.Point))
		}
		break
	}
	if !pad {
		problems = append(problems, "no warp pad")
	}
	return problems
}
