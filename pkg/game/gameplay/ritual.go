package gameplay

import (
	"lampcavern/pkg/engine/world"
	"lampcavern/pkg/game/effects"
	"lampcavern/pkg/game/text"
)

// lampRitual returns the intents of using the lamp between the desert
// pillars, or nil when the player is not holding it there
func (s *Session) lampRitual() []effects.Intent {
	cfg := s.Config
	p := s.Game.Player
	if p.Location != cfg.RitualLocation {
		return nil
	}
	held, ok := p.Held()
	if !ok || held.Kind != cfg.LampItem {
		return nil
	}
	if !cfg.RitualBox.Contains(p.Pos.X, p.Pos.Y) {
		return nil
	}

	s.log.Info("lamp ritual", "location", p.Location, "tile", p.Pos.String())
	return []effects.Intent{
		effects.Sound(cfg.Sounds.Ritual),
		effects.Notify(text.Get(text.LampRitual)),
		effects.Teleport(cfg.RitualWarp.Location, world.Pt(cfg.RitualWarp.X, cfg.RitualWarp.Y)),
	}
}
