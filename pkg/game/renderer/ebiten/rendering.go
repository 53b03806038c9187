package ebiten

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"lampcavern/pkg/engine/world"
	"lampcavern/pkg/game/renderer"
	"lampcavern/pkg/game/text"
)

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	f := &e.frame
	e.drawMap(screen, f)
	if e.session != nil {
		e.drawSprites(screen, f)
		e.session.Render(&itemDrawer{e: e, screen: screen, frame: f})
	}
	e.drawPlayer(screen, f)
	e.drawHUD(screen, f)
}

// fillRect fills a screen rectangle with col
func (e *EbitenRenderer) fillRect(screen *ebiten.Image, x, y, w, h float64, col color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(e.pixel, op)
}

// tileOrigin returns the screen position of frame cell r, c
func (e *EbitenRenderer) tileOrigin(r, c int) (float64, float64) {
	return float64(c * e.tileSize), float64(r * e.tileSize)
}

func (e *EbitenRenderer) drawMap(screen *ebiten.Image, f *renderer.Frame) {
	ts := float64(e.tileSize)
	for r, row := range f.Cells {
		for c, cell := range row {
			x, y := e.tileOrigin(r, c)
			e.drawCell(screen, cell, x, y, ts)
			if cell.Focus {
				e.fillRect(screen, x, y, ts, ts, colorFocus)
			}
		}
	}
}

func (e *EbitenRenderer) drawCell(screen *ebiten.Image, cell renderer.Cell, x, y, ts float64) {
	inset := ts / 6
	switch cell.Glyph {
	case renderer.GlyphVoid:
	case renderer.GlyphSand:
		e.fillRect(screen, x, y, ts, ts, colorSand)
	case renderer.GlyphWall:
		e.fillRect(screen, x, y, ts, ts, colorWall)
	case renderer.GlyphPillar:
		e.fillRect(screen, x, y, ts, ts, colorSand)
		e.fillRect(screen, x+inset, y-ts/2, ts-2*inset, ts*1.5, colorPillar)
	case renderer.GlyphPedestal:
		e.fillRect(screen, x, y, ts, ts, colorFloor)
		e.fillRect(screen, x+inset, y+inset, ts-2*inset, ts-inset, colorPedestal)
	case renderer.GlyphWarpPad:
		e.fillRect(screen, x, y, ts, ts, colorFloor)
		e.fillRect(screen, x+inset, y+inset, ts-2*inset, ts-2*inset, colorWarpPad)
	case renderer.GlyphWarpOpen:
		e.fillRect(screen, x, y, ts, ts, colorFloor)
		e.fillRect(screen, x+inset, y+inset, ts-2*inset, ts-2*inset, colorWarpOpen)
	case renderer.GlyphHintRock:
		e.fillRect(screen, x, y, ts, ts, colorFloor)
		e.fillRect(screen, x+inset, y+inset, ts-2*inset, ts-2*inset, colorHintRock)
	case renderer.GlyphOre:
		e.fillRect(screen, x, y, ts, ts, colorFloor)
		e.fillRect(screen, x+inset, y+inset, ts-2*inset, ts-2*inset, colorOre)
	case renderer.GlyphItem:
		e.fillRect(screen, x, y, ts, ts, colorFloor)
		e.fillRect(screen, x+ts/3, y+ts/3, ts/3, ts/3, colorItem)
	default:
		e.fillRect(screen, x, y, ts, ts, colorFloor)
	}
}

// drawSprites draws the temporary sprites of the current location. Sprite
// positions are in map pixels of the configured tile size.
func (e *EbitenRenderer) drawSprites(screen *ebiten.Image, f *renderer.Frame) {
	loc := e.session.Game.Current()
	mapTile := float64(e.session.Config.TileSize)
	if loc == nil || mapTile <= 0 {
		return
	}
	k := float64(e.tileSize) / mapTile
	for _, sp := range loc.Sprites() {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(sp.Scale*k, sp.Scale*k)
		op.GeoM.Translate((sp.X-float64(f.Origin.X)*mapTile)*k, (sp.Y-float64(f.Origin.Y)*mapTile)*k)
		screen.DrawImage(e.warpTexture, op)
	}
}

func (e *EbitenRenderer) drawPlayer(screen *ebiten.Image, f *renderer.Frame) {
	r, c := f.Player.Y-f.Origin.Y, f.Player.X-f.Origin.X
	if r < 0 || r >= len(f.Cells) || c < 0 || c >= len(f.Cells[r]) {
		return
	}
	ts := float64(e.tileSize)
	x, y := e.tileOrigin(r, c)
	e.fillRect(screen, x+ts/4, y+ts/8, ts/2, ts*3/4, colorPlayer)

	// facing marker
	dx, dy := f.Facing.Delta()
	cx, cy := x+ts/2+float64(dx)*ts/3, y+ts/2+float64(dy)*ts/3
	e.fillRect(screen, cx-ts/10, cy-ts/10, ts/5, ts/5, colorBackground)
}

func (e *EbitenRenderer) drawHUD(screen *ebiten.Image, f *renderer.Frame) {
	top := float64(e.screenHeight - hudHeight)
	e.fillRect(screen, 0, top, float64(e.screenWidth), hudHeight, colorPanelBackground)

	lh := e.lineHeight()
	x, y := 10.0, top+6

	held := f.Held
	if held == "" {
		held = text.Get(text.EmptyHands)
	}
	status := fmt.Sprintf("%s: %s   %s: %s", text.Get(text.Location), f.Location, text.Get(text.Holding), held)
	if f.Placed > 0 || f.Solved {
		status += fmt.Sprintf("   %d/4", f.Placed)
	}
	e.drawText(screen, status, x, y, colorText)
	y += lh

	names := make([]string, 0, len(f.Inventory))
	for _, slot := range f.Inventory {
		name := slot.Name
		if slot.Stack > 1 {
			name = fmt.Sprintf("%s x%d", name, slot.Stack)
		}
		if slot.Active {
			name = "[" + name + "]"
		}
		names = append(names, name)
	}
	e.drawText(screen, text.Get(text.Inventory)+": "+strings.Join(names, ", "), x, y, colorSubtle)
	y += lh

	for _, m := range f.Messages {
		col := colorText
		if m.Error {
			col = colorDenied
		}
		e.drawText(screen, m.Text, x, y, col)
		y += lh
	}
}

// itemDrawer draws pedestal items at their map pixel positions
type itemDrawer struct {
	e      *EbitenRenderer
	screen *ebiten.Image
	frame  *renderer.Frame
}

func (d *itemDrawer) DrawItem(item *world.Item, x, y float64) {
	mapTile := float64(d.e.session.Config.TileSize)
	if mapTile <= 0 {
		return
	}
	k := float64(d.e.tileSize) / mapTile
	sx := (x - float64(d.frame.Origin.X)*mapTile) * k
	sy := (y - float64(d.frame.Origin.Y)*mapTile) * k
	d.e.drawGem(d.screen, sx, sy, float64(d.e.tileSize), gemColor(item.Kind))
}

// drawGem draws a diamond filling a tile-sized box at x, y
func (e *EbitenRenderer) drawGem(screen *ebiten.Image, x, y, ts float64, col color.Color) {
	op := &ebiten.DrawImageOptions{}
	side := ts / 2 / math.Sqrt2
	op.GeoM.Scale(side, side)
	op.GeoM.Translate(-side/2, -side/2)
	op.GeoM.Rotate(math.Pi / 4)
	op.GeoM.Translate(x+ts/2, y+ts/2)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(e.pixel, op)
}

// newWarpTexture builds the glowing warp circle texture
func newWarpTexture(size int) *ebiten.Image {
	pix := make([]byte, size*size*4)
	c := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)+0.5-c, float64(y)+0.5-c) / c
			// bright ring near the edge, faint fill inside
			a := 0.0
			switch {
			case d > 1:
			case d > 0.8:
				a = 1 - math.Abs(d-0.9)*10
			default:
				a = 0.15 * d
			}
			a = max(0, min(a, 1))
			i := (y*size + x) * 4
			pix[i] = byte(float64(colorGlow.R) * a)
			pix[i+1] = byte(float64(colorGlow.G) * a)
			pix[i+2] = byte(float64(colorGlow.B) * a)
			pix[i+3] = byte(255 * a)
		}
	}
	img := ebiten.NewImage(size, size)
	img.WritePixels(pix)
	return img
}
