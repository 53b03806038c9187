package gameplay

import (
	"lampcavern/pkg/engine/world"
	"lampcavern/pkg/game/effects"
	"lampcavern/pkg/game/entities"
	"lampcavern/pkg/game/levelgen"
	"lampcavern/pkg/game/text"
)

// Interact uses whatever the player is facing. The lamp ritual takes
// precedence anywhere inside the pillars.
func (s *Session) Interact() bool {
	return s.InteractAt(s.Game.Player.Target())
}

// InteractAt uses tile in the player's location. Returns false when nothing
// there reacts.
func (s *Session) InteractAt(tile world.Point) bool {
	if intents := s.lampRitual(); intents != nil {
		s.apply(intents)
		return true
	}

	loc := s.Game.Current()
	if loc == nil {
		return false
	}

	if s.Puzzle.Loaded && loc.Name == s.Puzzle.Location {
		if _, ok := s.Puzzle.Slot(tile); ok {
			var intents []effects.Intent
			s.Puzzle, intents = s.Machine.Interact(s.Puzzle, tile, s.Game.Player, loc.Store, s.Factory)
			s.apply(intents)
			return true
		}
	}

	if s.Hints.Has(tile) {
		s.apply([]effects.Intent{
			effects.Sound(s.Config.Sounds.HintRock),
			effects.Notify(text.Get(text.HintRock)),
		})
		return true
	}

	if obj, ok := loc.Object(tile); ok {
		if obj.CanBeGrabbed {
			s.pickUp(tile, obj)
		} else {
			s.mine(tile, obj)
		}
		return true
	}

	s.Game.AddMessage(text.Get(text.NothingHere))
	return false
}

// mine breaks an ore node and gives the player its drop
func (s *Session) mine(tile world.Point, obj entities.Object) {
	loc := s.Game.Current()

	kind, ok := s.Config.DropFor(obj.Kind)
	if !ok {
		kind = obj.Kind
	}
	item, ok := s.Factory.Create(kind)
	if !ok {
		s.log.Warn("ore node has no drop", "kind", obj.Kind)
		return
	}
	if !s.Game.Player.AddItem(item) {
		s.apply([]effects.Intent{
			effects.Fail(text.Get(text.NoInventorySpace)),
			effects.Sound(s.Config.Sounds.Cancel),
		})
		return
	}

	loc.RemoveObject(tile)
	levelgen.NewSpawnRegistry(loc.Store).Forget(tile)
	s.apply([]effects.Intent{
		effects.Sound(s.Config.Sounds.HintRock),
		effects.Notify(text.Get(text.MinedOre, s.itemName(kind))),
	})
}

func (s *Session) pickUp(tile world.Point, obj entities.Object) {
	loc := s.Game.Current()
	item, ok := s.Factory.Create(obj.Kind)
	if !ok {
		return
	}
	if !s.Game.Player.AddItem(item) {
		s.apply([]effects.Intent{effects.Fail(text.Get(text.NoInventorySpace))})
		return
	}
	loc.RemoveObject(tile)
	s.apply([]effects.Intent{effects.Sound(s.Config.Sounds.TakeBack)})
}

func (s *Session) itemName(kind string) string {
	if s.Game.Catalog != nil {
		return s.Game.Catalog.Name(kind)
	}
	return kind
}
