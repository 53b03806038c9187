package gameplay

import (
	"lampcavern/pkg/engine/world"
	"lampcavern/pkg/game/effects"
)

// Move turns the player to dir and steps if the tile is walkable. Stepping
// onto a teleport link warps the player after the tick has seen the step.
func (s *Session) Move(dir world.Direction) bool {
	p := s.Game.Player
	if !dir.IsValid() {
		return false
	}
	p.Facing = dir

	loc := s.Game.Current()
	if loc == nil {
		return false
	}
	next := p.Pos.Add(dir)
	if !loc.Walkable(next) {
		return false
	}
	p.Pos = next

	s.Tick()

	if link, ok := loc.Warp(next); ok {
		s.log.Info("warp", "from", loc.Name, "to", link.Target, "tile", link.To.String())
		s.apply([]effects.Intent{effects.Teleport(link.Target, link.To)})
	}
	return true
}
