// Package renderer turns a running session into frames that the terminal and
// graphical backends draw.
package renderer

import (
	"math"

	"lampcavern/pkg/engine/world"
	"lampcavern/pkg/game/entities"
	"lampcavern/pkg/game/gameplay"
	"lampcavern/pkg/game/setup"
	"lampcavern/pkg/game/state"
)

// Glyph is what one map tile shows
type Glyph int

const (
	GlyphVoid Glyph = iota
	GlyphFloor
	GlyphSand
	GlyphWall
	GlyphPillar
	GlyphPedestal
	GlyphWarpPad
	GlyphWarpOpen
	GlyphHintRock
	GlyphOre
	GlyphItem
	GlyphPlayer
)

// Cell is one visible map tile
type Cell struct {
	Glyph Glyph

	// Kind of the item resting on a pedestal
	Item string

	// Under the warp circle sprite
	Glow bool

	// Faced by the player
	Focus bool
}

// InventorySlot is one inventory entry for the status bar
type InventorySlot struct {
	Name   string
	Stack  int
	Active bool
}

// Frame is a consistent snapshot of everything a backend draws
type Frame struct {
	Location string

	// Map tile shown in the top-left cell
	Origin world.Point

	// Visible tiles, indexed [row][col]
	Cells [][]Cell

	Player world.Point
	Facing world.Direction

	// Display name of the held item, empty with empty hands
	Held string

	Inventory []InventorySlot
	Messages  []state.Message

	// Pedestals filled, for the status bar
	Placed int
	Solved bool
}

// Cell returns the cell showing map tile p
func (f *Frame) Cell(p world.Point) (Cell, bool) {
	r, c := p.Y-f.Origin.Y, p.X-f.Origin.X
	if r < 0 || r >= len(f.Cells) || c < 0 || c >= len(f.Cells[r]) {
		return Cell{}, false
	}
	return f.Cells[r][c], true
}

// BuildFrame snapshots s for a viewport of cols by rows tiles centered on the
// player
func BuildFrame(s *gameplay.Session, cols, rows int) Frame {
	g := s.Game
	p := g.Player
	f := Frame{
		Location: p.Location,
		Player:   p.Pos,
		Facing:   p.Facing,
		Messages: append([]state.Message(nil), g.Messages...),
		Solved:   s.Puzzle.Solved,
		Placed:   countFilled(s),
	}

	if held, ok := p.Held(); ok {
		f.Held = g.Catalog.Name(held.Kind)
	}
	for i, it := range p.Items {
		if it.IsEmpty() {
			continue
		}
		f.Inventory = append(f.Inventory, InventorySlot{Name: g.Catalog.Name(it.Kind), Stack: it.Stack, Active: i == p.Active})
	}

	loc := g.Current()
	if loc == nil || cols <= 0 || rows <= 0 {
		return f
	}

	f.Origin = world.Pt(
		clamp(p.Pos.X-cols/2, 0, max(0, loc.Map.Width()-cols)),
		clamp(p.Pos.Y-rows/2, 0, max(0, loc.Map.Height()-rows)),
	)

	f.Cells = make([][]Cell, rows)
	for r := range f.Cells {
		f.Cells[r] = make([]Cell, cols)
		for c := range f.Cells[r] {
			tile := world.Pt(f.Origin.X+c, f.Origin.Y+r)
			f.Cells[r][c] = Cell{Glyph: classify(s, loc, tile), Focus: tile == p.Target()}
		}
	}

	markGlow(&f, loc, s.Config.TileSize, s.Config.SpriteSize())
	s.Render(&frameDrawer{frame: &f, slots: s.Puzzle.Slots, tileSize: s.Config.TileSize})

	if r, c := p.Pos.Y-f.Origin.Y, p.Pos.X-f.Origin.X; r >= 0 && r < rows && c >= 0 && c < cols {
		f.Cells[r][c].Glyph = GlyphPlayer
	}
	return f
}

func countFilled(s *gameplay.Session) int {
	loc := s.Game.Location(s.Puzzle.Location)
	if loc == nil {
		return 0
	}
	n := 0
	for _, slot := range s.Puzzle.Slots {
		if v, ok := loc.Store.Get(entities.SlotKey(slot.Index)); ok && v != "" {
			n++
		}
	}
	return n
}

func classify(s *gameplay.Session, loc *state.Location, p world.Point) Glyph {
	if !loc.Map.IsValidPosition(p) {
		return GlyphVoid
	}
	if obj, ok := loc.Object(p); ok {
		if obj.CanBeGrabbed {
			return GlyphItem
		}
		return GlyphOre
	}

	if b := loc.Map.Tile(world.LayerBuildings, p); b != nil {
		switch {
		case b.Merged().Has(entities.PropPedestalIndex):
			return GlyphPedestal
		case s.Hints.Has(p) || b.Merged().Truthy(entities.PropHintRock):
			return GlyphHintRock
		case b.Index == setup.TilePillar:
			return GlyphPillar
		default:
			return GlyphWall
		}
	}

	if _, ok := loc.Warp(p); ok {
		return GlyphWarpOpen
	}
	back := loc.Map.Tile(world.LayerBack, p)
	switch {
	case back == nil:
		return GlyphVoid
	case back.Merged().Truthy(entities.PropWarpPad):
		return GlyphWarpPad
	case back.Index == setup.TileSand:
		return GlyphSand
	default:
		return GlyphFloor
	}
}

// markGlow flags the cells covered by the location's warp sprites, each
// spriteSize pixels square
func markGlow(f *Frame, loc *state.Location, tileSize, spriteSize int) {
	if tileSize <= 0 || spriteSize <= 0 {
		return
	}
	ts, size := float64(tileSize), float64(spriteSize)
	for _, sp := range loc.Sprites() {
		x0, x1 := int(math.Floor(sp.X/ts)), int(math.Ceil((sp.X+size)/ts))
		y0, y1 := int(math.Floor(sp.Y/ts)), int(math.Ceil((sp.Y+size)/ts))
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				r, c := y-f.Origin.Y, x-f.Origin.X
				if r >= 0 && r < len(f.Cells) && c >= 0 && c < len(f.Cells[r]) {
					f.Cells[r][c].Glow = true
				}
			}
		}
	}
}

// frameDrawer maps pedestal item draw positions back onto the pedestal cells
type frameDrawer struct {
	frame    *Frame
	slots    []entities.Pedestal
	tileSize int
}

func (d *frameDrawer) DrawItem(item *world.Item, x, y float64) {
	for _, slot := range d.slots {
		sx := slot.Tile.X*d.tileSize + slot.DrawOffset.X
		sy := slot.Tile.Y*d.tileSize + slot.DrawOffset.Y
		if float64(sx) != x || float64(sy) != y {
			continue
		}
		r, c := slot.Tile.Y-d.frame.Origin.Y, slot.Tile.X-d.frame.Origin.X
		if r >= 0 && r < len(d.frame.Cells) && c >= 0 && c < len(d.frame.Cells[r]) {
			d.frame.Cells[r][c].Item = item.Kind
		}
		return
	}
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
