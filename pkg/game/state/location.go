package state

import (
	"sort"

	"lampcavern/pkg/engine/store"
	"lampcavern/pkg/engine/world"
	"lampcavern/pkg/game/effects"
	"lampcavern/pkg/game/entities"
)

// Location is one map the player can be in, with its objects, teleport
// links and temporary sprites
type Location struct {
	Name  string
	Map   *world.Map
	Store *store.Memory

	objects map[world.Point]entities.Object
	warps   map[world.Point]entities.WarpLink
	sprites []effects.Sprite
}

// NewLocation creates an empty location over m, persisting into s
func NewLocation(name string, m *world.Map, s *store.Memory) *Location {
	return &Location{
		Name:    name,
		Map:     m,
		Store:   s,
		objects: make(map[world.Point]entities.Object),
		warps:   make(map[world.Point]entities.WarpLink),
	}
}

// Object returns the object on p
func (l *Location) Object(p world.Point) (entities.Object, bool) {
	o, ok := l.objects[p]
	return o, ok
}

// PlaceObject puts obj on p, replacing any object there
func (l *Location) PlaceObject(p world.Point, obj entities.Object) {
	obj.Tile = p
	l.objects[p] = obj
}

// RemoveObject clears p
func (l *Location) RemoveObject(p world.Point) {
	delete(l.objects, p)
}

// Objects returns every object, row by row
func (l *Location) Objects() []entities.Object {
	out := make([]entities.Object, 0, len(l.objects))
	for _, o := range l.objects {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Tile.Y != out[j].Tile.Y {
			return out[i].Tile.Y < out[j].Tile.Y
		}
		return out[i].Tile.X < out[j].Tile.X
	})
	return out
}

// Warp returns the teleport link on from
func (l *Location) Warp(from world.Point) (entities.WarpLink, bool) {
	w, ok := l.warps[from]
	return w, ok
}

// AddWarp adds link, replacing any link on the same tile
func (l *Location) AddWarp(link entities.WarpLink) {
	l.warps[link.From] = link
}

// RemoveWarp removes the link on from
func (l *Location) RemoveWarp(from world.Point) {
	delete(l.warps, from)
}

// WarpCount returns the number of teleport links
func (l *Location) WarpCount() int {
	return len(l.warps)
}

// AddSprite adds a temporary sprite
func (l *Location) AddSprite(s effects.Sprite) {
	l.sprites = append(l.sprites, s)
}

// RemoveSprites removes every sprite with id
func (l *Location) RemoveSprites(id int) int {
	kept := l.sprites[:0]
	removed := 0
	for _, s := range l.sprites {
		if s.ID == id {
			removed++
			continue
		}
		kept = append(kept, s)
	}
	l.sprites = kept
	return removed
}

// Sprites returns the temporary sprites in draw order
func (l *Location) Sprites() []effects.Sprite {
	out := make([]effects.Sprite, len(l.sprites))
	copy(out, l.sprites)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Depth < out[j].Depth })
	return out
}

// Walkable returns true if the player may stand on p: the tile has ground on
// the Back layer, nothing on Buildings, and no object.
func (l *Location) Walkable(p world.Point) bool {
	if !l.Map.IsValidPosition(p) {
		return false
	}
	if l.Map.Tile(world.LayerBack, p) == nil {
		return false
	}
	if b := l.Map.Tile(world.LayerBuildings, p); b != nil && !b.Merged().Truthy(PropPassable) {
		return false
	}
	_, blocked := l.objects[p]
	return !blocked
}

// PropPassable marks a Buildings tile the player can walk over
const PropPassable = "passable"
