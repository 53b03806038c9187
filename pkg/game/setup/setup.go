// Package setup builds the playground world: the desert with the pillar box,
// the lamp cavern and the cavern behind its warp pad.
package setup

import (
	"log/slog"

	"lampcavern/pkg/engine/world"
	"lampcavern/pkg/game/config"
	"lampcavern/pkg/game/entities"
	"lampcavern/pkg/game/state"
)

var itemNames = map[string]string{
	"(O)68":  "Topaz",
	"(O)62":  "Aquamarine",
	"(O)64":  "Ruby",
	"(O)575": "Obsidian",
	"(O)390": "Stone",
	"(O)670": "Stone Node",

	"(O)LampStone_Topaz":      "Topaz Node",
	"(O)LampStone_Aquamarine": "Aquamarine Node",
	"(O)LampStone_Ruby":       "Ruby Node",
	"(O)LampStone_Obsidian":   "Obsidian Node",

	"(O)Adil.WhispersOfTheLamp.Items_Old_Lamp": "Old Lamp",
}

// Catalog returns the item catalog covering every kind cfg names
func Catalog(cfg *config.Config) world.Catalog {
	c := world.Catalog{}
	add := func(kind string) {
		if kind != "" {
			c[kind] = itemNames[kind]
		}
	}
	for _, k := range cfg.MainOres {
		add(k)
	}
	for _, k := range cfg.RequiredOrder {
		add(k)
	}
	add(cfg.FallbackOre)
	add(cfg.FallbackDrop)
	add(cfg.LampItem)
	return c
}

// Start is where a new game begins
type Start struct {
	Location string
	Tile     world.Point
}

// RegisterLocations adds the desert and every cavern location to g. Locations
// already present (a loaded save registers nothing, but a host may) are left
// alone.
func RegisterLocations(g *state.Game, cfg *config.Config, log *slog.Logger) {
	add := func(name string, build func() *world.Map) {
		if name == "" || g.Location(name) != nil {
			return
		}
		g.AddLocation(name, build())
		log.Info("added location", "location", name)
	}

	add(cfg.RitualLocation, func() *world.Map { return DesertMap(cfg.RitualBox) })
	add(cfg.PedestalCavern, CavernMap)
	add(cfg.OreCavern, CavernMap)
	for _, name := range cfg.ExtraLocations {
		add(name, SecondCavernMap)
	}

	// the second cavern leads back outside the pillars
	if loc := g.Location(cfg.DefaultWarp.Location); loc != nil && cfg.RitualLocation != "" {
		loc.AddWarp(exitLink(cfg))
	}
}

// NewGame creates a game with every location registered and the player in
// the desert south of the pillars, holding the lamp
func NewGame(g *state.Game, cfg *config.Config, log *slog.Logger) Start {
	RegisterLocations(g, cfg, log)

	if g.Player.AddItem(world.NewItem(cfg.LampItem)) {
		g.Player.Select(0)
	}
	return Start{Location: cfg.RitualLocation, Tile: desertArrival(cfg)}
}

// desertArrival is the tile just below the pillar box
func desertArrival(cfg *config.Config) world.Point {
	box := cfg.RitualBox
	return world.Pt(box.X+box.Width/2, box.Y+box.Height+2)
}

func exitLink(cfg *config.Config) entities.WarpLink {
	return entities.WarpLink{From: SecondCavernExit, Target: cfg.RitualLocation, To: desertArrival(cfg)}
}
