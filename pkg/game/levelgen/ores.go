// Package levelgen places procedurally generated objects on location maps.
package levelgen

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"

	"lampcavern/pkg/engine/store"
	"lampcavern/pkg/engine/world"
	"lampcavern/pkg/game/config"
	"lampcavern/pkg/game/entities"
)

// MainKindCount caps how many main kinds one placement pass puts down
const MainKindCount = 4

// ObjectLayer is the object layer of one location
type ObjectLayer interface {
	Object(p world.Point) (entities.Object, bool)
	PlaceObject(p world.Point, obj entities.Object)
	RemoveObject(p world.Point)
}

// Report summarises one placement pass
type Report struct {
	// Usable puzzle-rock markers found
	Markers int

	// Objects placed, main kinds plus fallback
	Placed   int
	Main     int
	Fallback int

	// Placements dropped because the factory could not build the kind
	Skipped int

	// Previously spawned objects removed by the reset
	Removed int
}

// LogValue implements slog.LogValuer
func (r Report) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("markers", r.Markers),
		slog.Int("placed", r.Placed),
		slog.Int("main", r.Main),
		slog.Int("fallback", r.Fallback),
		slog.Int("skipped", r.Skipped),
		slog.Int("removed", r.Removed),
	)
}

// PlaceOres repopulates the ore nodes of a location.
//
// Objects spawned by an earlier pass are removed first, so entering the
// location repeatedly never stacks nodes. Every free puzzle-rock marker then
// receives one node: the main kinds go one-to-one onto randomly chosen
// markers and every other marker gets the fallback kind.
func PlaceOres(loc ObjectLayer, m *world.Map, spawns store.Store, rng Shuffler, factory world.ItemFactory, cfg *config.Config, log *slog.Logger) Report {
	var report Report
	registry := NewSpawnRegistry(spawns)

	report.Removed = clearSpawned(loc, registry)

	markers := freeMarkers(loc, m)
	report.Markers = len(markers)
	if len(markers) == 0 {
		log.Info("no puzzle-rock markers", "removed", report.Removed)
		return report
	}

	Shuffle(rng, markers)

	kinds := make([]string, len(cfg.MainOres))
	copy(kinds, cfg.MainOres)
	Shuffle(rng, kinds)

	mainCount := min(MainKindCount, len(markers), len(kinds))

	for i, p := range markers {
		kind := cfg.FallbackOre
		if i < mainCount {
			kind = kinds[i]
		}

		item, ok := factory.Create(kind)
		if !ok || item.IsEmpty() {
			log.Warn("cannot create ore node", "kind", kind, "tile", p.String())
			report.Skipped++
			continue
		}

		obj := entities.Object{
			ID:           uuid.NewString(),
			Kind:         item.Kind,
			Tile:         p,
			CanBeGrabbed: false,
		}
		loc.PlaceObject(p, obj)
		registry.Record(p, obj.ID)

		report.Placed++
		if i < mainCount {
			report.Main++
		} else {
			report.Fallback++
		}
	}

	log.Info("placed ore nodes", "report", report)
	return report
}

// clearSpawned removes objects recorded by an earlier pass. An object that
// was replaced since (mined, or a different object moved in) keeps its tile.
func clearSpawned(loc ObjectLayer, registry *SpawnRegistry) int {
	removed := 0
	for _, p := range registry.Tiles() {
		id, _ := registry.ID(p)
		if obj, ok := loc.Object(p); ok && id != "" && obj.ID == id {
			loc.RemoveObject(p)
			removed++
		}
	}
	registry.Clear()
	return removed
}

// freeMarkers returns the puzzle-rock tiles with no object on them, once each,
// in scan order
func freeMarkers(loc ObjectLayer, m *world.Map) []world.Point {
	seen := mapset.New[world.Point]()
	var out []world.Point
	for mk := range world.ScanProperty(m, entities.PropPuzzleRock) {
		if seen.Has(mk.Point) {
			continue
		}
		seen.Put(mk.Point)
		if _, occupied := loc.Object(mk.Point); occupied {
			continue
		}
		out = append(out, mk.Point)
	}
	return out
}
