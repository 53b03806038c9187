package levelgen

import (
	"strings"

	"github.com/zyedidia/generic/mapset"

	"lampcavern/pkg/engine/store"
	"lampcavern/pkg/engine/world"
)

// Registry keys live under "spawn:" in the location store: "spawn:tiles" is
// the tile index, "spawn:<x>,<y>" the object id at a tile.
const (
	spawnKeyPrefix = "spawn:"
	spawnIndexKey  = "tiles"
)

// SpawnRegistry records which objects of a location the placement engine
// created, keyed by tile. It lives in the location store so cleanup works
// after a save/reload.
type SpawnRegistry struct {
	s store.Store
}

// NewSpawnRegistry wraps a location store
func NewSpawnRegistry(s store.Store) *SpawnRegistry {
	return &SpawnRegistry{s: store.Prefixed{Prefix: spawnKeyPrefix, Inner: s}}
}

func spawnKey(p world.Point) string {
	return p.String()
}

// Tiles returns the registered tiles in registration order
func (r *SpawnRegistry) Tiles() []world.Point {
	v, ok := r.s.Get(spawnIndexKey)
	if !ok {
		return nil
	}
	var tiles []world.Point
	for _, field := range strings.Fields(v) {
		if p, ok := world.ParsePoint(field); ok {
			tiles = append(tiles, p)
		}
	}
	return tiles
}

// ID returns the object id registered at p
func (r *SpawnRegistry) ID(p world.Point) (string, bool) {
	return r.s.Get(spawnKey(p))
}

// Record registers the object id spawned at p
func (r *SpawnRegistry) Record(p world.Point, id string) {
	if !r.s.Contains(spawnKey(p)) {
		tiles := r.Tiles()
		tiles = append(tiles, p)
		r.writeIndex(tiles)
	}
	r.s.Set(spawnKey(p), id)
}

// Forget drops the registration at p
func (r *SpawnRegistry) Forget(p world.Point) {
	if !r.s.Contains(spawnKey(p)) {
		return
	}
	r.s.Remove(spawnKey(p))

	var rest []world.Point
	for _, t := range r.Tiles() {
		if t != p {
			rest = append(rest, t)
		}
	}
	r.writeIndex(rest)
}

// Clear drops every registration
func (r *SpawnRegistry) Clear() {
	for _, p := range r.Tiles() {
		r.s.Remove(spawnKey(p))
	}
	r.s.Remove(spawnIndexKey)
}

func (r *SpawnRegistry) writeIndex(tiles []world.Point) {
	if len(tiles) == 0 {
		r.s.Remove(spawnIndexKey)
		return
	}
	seen := mapset.New[world.Point]()
	fields := make([]string, 0, len(tiles))
	for _, p := range tiles {
		if seen.Has(p) {
			continue
		}
		seen.Put(p)
		fields = append(fields, p.String())
	}
	r.s.Set(spawnIndexKey, strings.Join(fields, " "))
}
