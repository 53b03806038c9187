package effects

import (
	"math"
	"testing"

	"lampcavern/pkg/engine/logging"
	"lampcavern/pkg/engine/world"
	"lampcavern/pkg/game/entities"
)

type warpTable map[world.Point]entities.WarpLink

func (w warpTable) Warp(from world.Point) (entities.WarpLink, bool) {
	l, ok := w[from]
	return l, ok
}
func (w warpTable) AddWarp(link entities.WarpLink) { w[link.From] = link }
func (w warpTable) RemoveWarp(from world.Point)    { delete(w, from) }

type spriteLayer struct {
	sprites []Sprite
}

func (l *spriteLayer) AddSprite(s Sprite) { l.sprites = append(l.sprites, s) }
func (l *spriteLayer) RemoveSprites(id int) int {
	kept := l.sprites[:0]
	n := 0
	for _, s := range l.sprites {
		if s.ID == id {
			n++
			continue
		}
		kept = append(kept, s)
	}
	l.sprites = kept
	return n
}

type host struct {
	sounds   []string
	messages []string
	warps    warpTable
	sprites  *spriteLayer
	player   entities.WarpLink
}

func newHost() *host {
	return &host{warps: warpTable{}, sprites: &spriteLayer{}}
}

func (h *host) PlaySound(name string)           { h.sounds = append(h.sounds, name) }
func (h *host) ShowMessage(text string, _ bool) { h.messages = append(h.messages, text) }
func (h *host) WarpPlayer(loc string, to world.Point) {
	h.player = entities.WarpLink{Target: loc, To: to}
}

func (h *host) Warps(location string) WarpTable {
	if location != "cavern" {
		return nil
	}
	return h.warps
}

func (h *host) Sprites(location string) SpriteLayer {
	if location != "cavern" {
		return nil
	}
	return h.sprites
}

var geometry = Geometry{ID: 7004001, TileSize: 64, Span: 4, TextureWidth: 128}

func TestGeometry_Place(t *testing.T) {
	s := geometry.Place(world.Pt(10, 5))

	// 4x4 tiles centered on tile 10,5: left edge 1.5 tiles left of the tile
	if s.X != 640-96 || s.Y != 320-96 {
		t.Errorf("position = %v,%v, want %v,%v", s.X, s.Y, 640-96, 320-96)
	}
	if s.Scale != 2 {
		t.Errorf("Scale = %v, want 2", s.Scale)
	}
	if s.ID != geometry.ID {
		t.Errorf("ID = %d, want %d", s.ID, geometry.ID)
	}
	if want := 0.0385; math.Abs(s.Depth-want) > 1e-12 {
		t.Errorf("Depth = %v, want %v", s.Depth, want)
	}

	// centre of sprite is centre of tile
	cx := s.X + float64(geometry.Span*geometry.TileSize)/2
	if cx != 640+32 {
		t.Errorf("centre x = %v, want %v", cx, 640+32)
	}
}

func TestShowWarpSprite_ExactlyOne(t *testing.T) {
	l := &spriteLayer{}
	l.AddSprite(Sprite{ID: 1})

	ShowWarpSprite(l, geometry, world.Pt(1, 1))
	ShowWarpSprite(l, geometry, world.Pt(2, 2))

	n := 0
	for _, s := range l.sprites {
		if s.ID == geometry.ID {
			n++
		}
	}
	if n != 1 {
		t.Errorf("warp sprites = %d, want 1", n)
	}
	if len(l.sprites) != 2 {
		t.Errorf("sprites = %d, want 2 (unrelated sprite kept)", len(l.sprites))
	}
}

func TestHideWarpSprite_SafeWhenEmpty(t *testing.T) {
	l := &spriteLayer{}
	if n := HideWarpSprite(l, geometry); n != 0 {
		t.Errorf("HideWarpSprite on empty layer = %d, want 0", n)
	}

	l.AddSprite(geometry.Place(world.Pt(0, 0)))
	l.AddSprite(geometry.Place(world.Pt(0, 0)))
	if n := HideWarpSprite(l, geometry); n != 2 {
		t.Errorf("HideWarpSprite = %d, want 2", n)
	}
}

func TestEnsureWarp_Idempotent(t *testing.T) {
	w := warpTable{}
	link := entities.WarpLink{From: world.Pt(4, 4), Target: "second", To: world.Pt(8, 8)}

	if !EnsureWarp(w, link) {
		t.Error("first EnsureWarp = false, want true")
	}
	if EnsureWarp(w, link) {
		t.Error("second EnsureWarp = true, want false")
	}
	if len(w) != 1 {
		t.Errorf("links = %d, want 1", len(w))
	}

	moved := link
	moved.To = world.Pt(1, 1)
	if !EnsureWarp(w, moved) || w[link.From] != moved {
		t.Errorf("EnsureWarp did not replace link, got %+v", w[link.From])
	}
}

func TestClearWarp_Idempotent(t *testing.T) {
	w := warpTable{}
	if ClearWarp(w, world.Pt(1, 1)) {
		t.Error("ClearWarp on empty table = true, want false")
	}
	w.AddWarp(entities.WarpLink{From: world.Pt(1, 1)})
	if !ClearWarp(w, world.Pt(1, 1)) || len(w) != 0 {
		t.Error("ClearWarp did not remove link")
	}
}

func TestApplier_Apply(t *testing.T) {
	h := newHost()
	a := &Applier{Host: h, Geometry: geometry, Log: logging.Discard()}
	link := entities.WarpLink{From: world.Pt(4, 4), Target: "second", To: world.Pt(8, 8)}

	a.Apply([]Intent{
		Sound("secret1"),
		Notify("hello"),
		Link("cavern", link),
		Show("cavern", link.From),
		Link("elsewhere", link),
	})

	if len(h.sounds) != 1 || h.sounds[0] != "secret1" {
		t.Errorf("sounds = %v, want [secret1]", h.sounds)
	}
	if len(h.messages) != 1 {
		t.Errorf("messages = %v, want 1", h.messages)
	}
	if len(h.warps) != 1 || len(h.sprites.sprites) != 1 {
		t.Errorf("warps = %d sprites = %d, want 1 and 1", len(h.warps), len(h.sprites.sprites))
	}

	// reconciling twice leaves the same state
	a.Apply([]Intent{Link("cavern", link), Show("cavern", link.From)})
	if len(h.warps) != 1 || len(h.sprites.sprites) != 1 {
		t.Errorf("after re-apply warps = %d sprites = %d, want 1 and 1", len(h.warps), len(h.sprites.sprites))
	}

	a.Apply([]Intent{Unlink("cavern", link), Hide("cavern"), Hide("cavern")})
	if len(h.warps) != 0 || len(h.sprites.sprites) != 0 {
		t.Errorf("after hide warps = %d sprites = %d, want 0 and 0", len(h.warps), len(h.sprites.sprites))
	}

	a.Apply([]Intent{Teleport("second", world.Pt(8, 8))})
	if h.player.Target != "second" || h.player.To != world.Pt(8, 8) {
		t.Errorf("player warp = %+v, want second 8,8", h.player)
	}
}

func TestCountAndSounds(t *testing.T) {
	in := []Intent{Sound("a"), Fail("x"), Sound("b"), Hide("c")}
	if Count(in, PlaySound) != 2 || Count(in, ShowSprite) != 0 {
		t.Errorf("Count mismatch for %v", in)
	}
	if got := Sounds(in); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("Sounds = %v, want [a b]", got)
	}
	if !in[1].Error {
		t.Error("Fail intent Error = false")
	}
}
