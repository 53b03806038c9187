// Package config holds the add-on configuration: location names, item ids,
// puzzle order, warp defaults and effect names.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Rect is an inclusive-exclusive tile rectangle
type Rect struct {
	X      int `mapstructure:"x"`
	Y      int `mapstructure:"y"`
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// Contains reports whether the tile x/y lies inside the rectangle
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Warp is a destination location and tile
type Warp struct {
	Location string `mapstructure:"location"`
	X        int    `mapstructure:"x"`
	Y        int    `mapstructure:"y"`
}

// Sounds names the cues played by the cavern systems
type Sounds struct {
	Cancel    string `mapstructure:"cancel"`
	TakeBack  string `mapstructure:"take_back"`
	Place     string `mapstructure:"place"`
	Solved    string `mapstructure:"solved"`
	Departure string `mapstructure:"departure"`
	HintRock  string `mapstructure:"hint_rock"`
	Ritual    string `mapstructure:"ritual"`
}

// Config is the add-on configuration
type Config struct {
	// Location whose puzzle-rock markers receive ore nodes on entry
	OreCavern string `mapstructure:"ore_cavern"`

	// Location holding the pedestals and warp pad
	PedestalCavern string `mapstructure:"pedestal_cavern"`

	// Additional locations registered with the host on save load
	ExtraLocations []string `mapstructure:"extra_locations"`

	// Ore node kinds, shuffled onto the first markers
	MainOres []string `mapstructure:"main_ores"`

	// Kind placed on every marker left after the main ores
	FallbackOre string `mapstructure:"fallback_ore"`

	// Item a mined fallback node yields. Main ore nodes yield the
	// RequiredOrder gem at the same position as their MainOres entry.
	FallbackDrop string `mapstructure:"fallback_drop"`

	// Required pedestal contents, index 0 first
	RequiredOrder []string `mapstructure:"required_order"`

	// Destination used when the warp pad carries no overrides
	DefaultWarp Warp `mapstructure:"default_warp"`

	// Pixel offset of items drawn above a pedestal
	DrawOffsetX int `mapstructure:"draw_offset_x"`
	DrawOffsetY int `mapstructure:"draw_offset_y"`

	// Pixel size of one tile
	TileSize int `mapstructure:"tile_size"`

	// Reserved id of the warp circle sprite, and its size in tiles
	WarpSpriteID    int `mapstructure:"warp_sprite_id"`
	WarpSpriteTiles int `mapstructure:"warp_sprite_tiles"`

	// Lamp ritual: holding LampItem inside RitualBox in RitualLocation
	// warps the player to RitualWarp
	LampItem       string `mapstructure:"lamp_item"`
	RitualLocation string `mapstructure:"ritual_location"`
	RitualBox      Rect   `mapstructure:"ritual_box"`
	RitualWarp     Warp   `mapstructure:"ritual_warp"`

	Sounds Sounds `mapstructure:"sounds"`

	// Log level for subsystem diagnostics
	LogLevel string `mapstructure:"log_level"`

	// HUD language
	Language string `mapstructure:"language"`

	// Key overrides, action name -> key code ("save: p")
	Keys map[string]string `mapstructure:"keys"`
}

// Default returns the shipped configuration
func Default() *Config {
	return &Config{
		OreCavern:      "Whispers_DesertCavern",
		PedestalCavern: "Whispers_DesertCavern",
		ExtraLocations: []string{"Whispers_SecondCavern"},
		MainOres: []string{
			"(O)LampStone_Topaz",
			"(O)LampStone_Aquamarine",
			"(O)LampStone_Ruby",
			"(O)LampStone_Obsidian",
		},
		FallbackOre:  "(O)670",
		FallbackDrop: "(O)390",
		RequiredOrder: []string{
			"(O)68",  // Topaz
			"(O)62",  // Aquamarine
			"(O)64",  // Ruby
			"(O)575", // Obsidian
		},
		DefaultWarp:     Warp{Location: "Whispers_SecondCavern", X: 8, Y: 8},
		DrawOffsetX:     0,
		DrawOffsetY:     -72,
		TileSize:        64,
		WarpSpriteID:    7004001,
		WarpSpriteTiles: 4,
		LampItem:        "(O)Adil.WhispersOfTheLamp.Items_Old_Lamp",
		RitualLocation:  "Desert",
		RitualBox:       Rect{X: 26, Y: 139, Width: 9, Height: 7},
		RitualWarp:      Warp{Location: "Whispers_DesertCavern", X: 8, Y: 8},
		Sounds: Sounds{
			Cancel:    "cancel",
			TakeBack:  "coin",
			Place:     "stoneStep",
			Solved:    "secret1",
			Departure: "wand",
			HintRock:  "stoneCrack",
			Ritual:    "wand",
		},
		LogLevel: "info",
		Language: "en",
	}
}

// Load returns the default configuration overlaid with the file at path.
// An empty path returns the defaults. Keys missing from the file keep their
// default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("LAMPCAVERN")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("config file %s: %w", path, os.ErrNotExist)
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	// Lists in the file replace the defaults instead of overwriting them
	// element by element
	for key, list := range map[string]*[]string{
		"extra_locations": &cfg.ExtraLocations,
		"main_ores":       &cfg.MainOres,
		"required_order":  &cfg.RequiredOrder,
	} {
		if v.IsSet(key) {
			*list = nil
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return Default(), fmt.Errorf("decode config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// DropFor returns the item a mined node of kind yields
func (c *Config) DropFor(kind string) (string, bool) {
	for i, ore := range c.MainOres {
		if ore == kind && i < len(c.RequiredOrder) {
			return c.RequiredOrder[i], true
		}
	}
	if kind == c.FallbackOre && c.FallbackDrop != "" {
		return c.FallbackDrop, true
	}
	return "", false
}

// SpriteSize returns the pixel side of the warp sprite
func (c *Config) SpriteSize() int {
	return c.WarpSpriteTiles * c.TileSize
}

// Validate checks the values the puzzle and placement logic rely on
func (c *Config) Validate() error {
	if c.OreCavern == "" && c.PedestalCavern == "" {
		return errors.New("no cavern location configured")
	}
	if len(c.MainOres) == 0 {
		return errors.New("main_ores must list at least one kind")
	}
	if len(c.RequiredOrder) != 4 {
		return fmt.Errorf("required_order must list 4 kinds, got %d", len(c.RequiredOrder))
	}
	if c.TileSize <= 0 {
		return fmt.Errorf("tile_size must be positive, got %d", c.TileSize)
	}
	if c.WarpSpriteTiles <= 0 {
		return fmt.Errorf("warp_sprite_tiles must be positive, got %d", c.WarpSpriteTiles)
	}
	return nil
}
