// Package gameplay routes host events (location entry, interaction, movement,
// per-frame tick and render) to the cavern systems and applies their effects.
package gameplay

import (
	"log/slog"

	"lampcavern/pkg/engine/world"
	"lampcavern/pkg/game/config"
	"lampcavern/pkg/game/effects"
	"lampcavern/pkg/game/levelgen"
	"lampcavern/pkg/game/pedestal"
	"lampcavern/pkg/game/state"
)

// WarpTextureWidth is the pixel width of the warp circle texture
const WarpTextureWidth = 256

// Session owns the cavern systems for one running game
type Session struct {
	Game    *state.Game
	Config  *config.Config
	Factory world.ItemFactory

	Machine *pedestal.Machine
	Puzzle  pedestal.State

	Hints *HintRocks

	// Optional screenshot and map dump handlers
	Tools DevTools

	rng     levelgen.Shuffler
	applier *effects.Applier
	log     *slog.Logger

	// Last placement pass, for the HUD and devtools
	LastPlacement levelgen.Report
}

// NewSession wires the cavern systems to g
func NewSession(g *state.Game, cfg *config.Config, rng levelgen.Shuffler, factory world.ItemFactory, log *slog.Logger) *Session {
	return &Session{
		Game:    g,
		Config:  cfg,
		Factory: factory,
		Machine: pedestal.NewMachine(cfg, log),
		Hints:   NewHintRocks(),
		rng:     rng,
		applier: &effects.Applier{
			Host: g,
			Geometry: effects.Geometry{
				ID:           cfg.WarpSpriteID,
				TileSize:     cfg.TileSize,
				Span:         cfg.WarpSpriteTiles,
				TextureWidth: WarpTextureWidth,
			},
			Log: log.With("system", "effects"),
		},
		log: log,
	}
}

// Start places the player in location at tile and runs the entry handling
func (s *Session) Start(location string, tile world.Point) {
	s.Game.Player.Location = location
	s.Game.Player.Pos = tile
	s.EnterLocation(location)
}

// EnterLocation runs the location-entry handling of every system. Entry to a
// location none of them cares about unloads the puzzle.
func (s *Session) EnterLocation(name string) {
	loc := s.Game.Location(name)
	if loc == nil {
		s.log.Warn("entered unknown location", "location", name)
		s.Puzzle = pedestal.State{}
		return
	}
	s.log.Debug("entered", "location", name)

	if name == s.Config.OreCavern {
		s.LastPlacement = levelgen.PlaceOres(loc, loc.Map, loc.Store, s.rng, s.Factory, s.Config, s.log.With("system", "ores"))
	}

	if name == s.Config.PedestalCavern {
		var intents []effects.Intent
		s.Puzzle, intents = s.Machine.Load(name, loc.Map, loc.Store)
		s.apply(intents)
		s.Hints.Scan(loc.Map)
	} else {
		s.Puzzle = pedestal.State{}
		s.Hints.Clear()
	}
}

// Tick advances the per-frame systems
func (s *Session) Tick() {
	if s.Game.Player.Location != s.Puzzle.Location {
		return
	}
	var intents []effects.Intent
	s.Puzzle, intents = s.Machine.Tick(s.Puzzle, s.Game.Player.Pos)
	s.apply(intents)
}

// Render draws the items resting on the pedestals of the current location
func (s *Session) Render(d pedestal.Drawer) {
	loc := s.Game.Current()
	if loc == nil || loc.Name != s.Puzzle.Location {
		return
	}
	s.Machine.Render(s.Puzzle, loc.Store, s.Factory, d)
}

// apply hands intents to the host, then runs entry handling for a location
// the player was warped into
func (s *Session) apply(intents []effects.Intent) {
	if len(intents) == 0 {
		return
	}
	s.applier.Apply(intents)

	if next := s.Game.PendingEntry; next != "" {
		s.Game.PendingEntry = ""
		s.EnterLocation(next)
	}
}
