// Package ebiten provides an Ebiten-based 2D graphical renderer for the lamp cavern.
package ebiten

import "image/color"

// Color palette
var (
	colorBackground      = color.RGBA{26, 22, 30, 255}
	colorFloor           = color.RGBA{70, 62, 58, 255}
	colorSand            = color.RGBA{196, 164, 108, 255}
	colorWall            = color.RGBA{46, 40, 44, 255}
	colorPillar          = color.RGBA{150, 120, 80, 255}
	colorPedestal        = color.RGBA{160, 160, 170, 255}
	colorWarpPad         = color.RGBA{90, 90, 120, 255}
	colorWarpOpen        = color.RGBA{120, 200, 255, 255}
	colorHintRock        = color.RGBA{110, 110, 160, 255}
	colorOre             = color.RGBA{130, 100, 90, 255}
	colorItem            = color.RGBA{220, 170, 255, 255}
	colorPlayer          = color.RGBA{0, 255, 0, 255}
	colorFocus           = color.RGBA{255, 255, 255, 90}
	colorGlow            = color.RGBA{120, 200, 255, 255}
	colorText            = color.RGBA{200, 210, 245, 255}
	colorSubtle          = color.RGBA{120, 130, 180, 255}
	colorDenied          = color.RGBA{255, 100, 100, 255}
	colorPanelBackground = color.RGBA{30, 30, 50, 220}
)

// Gem colors by item kind; unknown kinds draw gray
var gemColors = map[string]color.RGBA{
	"(O)68":  {255, 200, 60, 255},  // Topaz
	"(O)62":  {90, 220, 230, 255},  // Aquamarine
	"(O)64":  {230, 40, 60, 255},   // Ruby
	"(O)575": {80, 40, 110, 255},   // Obsidian
	"(O)390": {150, 150, 150, 255}, // Stone

	"(O)LampStone_Topaz":      {255, 200, 60, 255},
	"(O)LampStone_Aquamarine": {90, 220, 230, 255},
	"(O)LampStone_Ruby":       {230, 40, 60, 255},
	"(O)LampStone_Obsidian":   {80, 40, 110, 255},
}

var colorUnknownGem = color.RGBA{170, 170, 170, 255}

// Tile size limits (pixels on screen)
const (
	defaultTileSize = 32
	minTileSize     = 16
	maxTileSize     = 64
	tileSizeStep    = 8
)

// Key repeat timing (milliseconds)
const (
	keyRepeatInitialDelay = 250
	keyRepeatInterval     = 90
)

const (
	windowWidth  = 1024
	windowHeight = 768
	hudHeight    = 140
	fontSize     = 14
	sampleRate   = 44100
)

func gemColor(kind string) color.RGBA {
	if c, ok := gemColors[kind]; ok {
		return c
	}
	return colorUnknownGem
}
