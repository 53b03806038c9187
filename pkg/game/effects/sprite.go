package effects

import "lampcavern/pkg/engine/world"

// Sprite is a temporary decorative sprite placed in a location
type Sprite struct {
	ID int

	// Top-left position in pixels
	X float64
	Y float64

	Scale float64

	// Draw order; larger draws later
	Depth float64
}

// SpriteLayer holds the temporary sprites of one location
type SpriteLayer interface {
	AddSprite(s Sprite)

	// RemoveSprites removes every sprite with id and returns how many
	RemoveSprites(id int) int
}

// Geometry describes how the warp sprite is anchored
type Geometry struct {
	ID       int
	TileSize int

	// Side of the sprite in tiles
	Span int

	// Pixel width of the source texture
	TextureWidth int
}

// Place returns the warp sprite centered over tile
func (g Geometry) Place(tile world.Point) Sprite {
	ts := float64(g.TileSize)
	size := float64(g.Span) * ts
	half := ts/2 - size/2

	scale := 1.0
	if g.TextureWidth > 0 {
		scale = size / float64(g.TextureWidth)
	}

	return Sprite{
		ID:    g.ID,
		X:     float64(tile.X)*ts + half,
		Y:     float64(tile.Y)*ts + half,
		Scale: scale,
		Depth: (float64(tile.Y)*ts+ts)/10000 + 0.0001,
	}
}

// ShowWarpSprite replaces any warp sprite in layer with one over tile
func ShowWarpSprite(layer SpriteLayer, g Geometry, tile world.Point) {
	layer.RemoveSprites(g.ID)
	layer.AddSprite(g.Place(tile))
}

// HideWarpSprite removes every warp sprite from layer
func HideWarpSprite(layer SpriteLayer, g Geometry) int {
	return layer.RemoveSprites(g.ID)
}
