// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gookit/color"

	"lampcavern/pkg/engine/world"
	"lampcavern/pkg/game/entities"
	"lampcavern/pkg/game/state"
)

const mapDumpFilename = "map.txt"

// annotations are the properties the dump lists, in legend order
var annotations = []string{
	entities.PropPuzzleRock,
	entities.PropPedestalIndex,
	entities.PropWarpPad,
	entities.PropHintRock,
}

// tileSymbol returns the single-character symbol for map tile p (no player overlay)
func tileSymbol(loc *state.Location, p world.Point) rune {
	if obj, ok := loc.Object(p); ok {
		if obj.CanBeGrabbed {
			return 'i'
		}
		return 'o'
	}

	if b := loc.Map.Tile(world.LayerBuildings, p); b != nil {
		props := b.Merged()
		if idx, ok := props.Int(entities.PropPedestalIndex); ok && entities.ValidPedestalIndex(idx) {
			return rune('0' + idx)
		}
		if props.Truthy(entities.PropHintRock) {
			return 'h'
		}
		return '#'
	}

	back := loc.Map.Tile(world.LayerBack, p)
	switch {
	case back == nil:
		return ' '
	case back.Merged().Truthy(entities.PropWarpPad):
		if _, ok := loc.Warp(p); ok {
			return 'W'
		}
		return 'w'
	case back.Merged().Truthy(entities.PropPuzzleRock):
		return 'r'
	}
	if _, ok := loc.Warp(p); ok {
		return 'W'
	}
	return '.'
}

// dumper writes sections, with colored headers when color is on
type dumper struct {
	w        io.Writer
	useColor bool
	err      error
}

func (d *dumper) printf(format string, a ...any) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, format, a...)
}

func (d *dumper) section(title string) {
	header := "--- " + title + " ---"
	if d.useColor {
		header = color.Style{color.FgMagenta, color.OpBold}.Sprint(header)
	}
	d.printf("%s\n", header)
}

// DumpLocation writes a debug dump of loc: metadata, legend, the map with the
// player overlaid when player stands in loc, every annotated tile, objects,
// teleport links, sprites and the location store.
func DumpLocation(w io.Writer, loc *state.Location, player *state.Player, useColor bool) error {
	d := &dumper{w: w, useColor: useColor}
	m := loc.Map

	d.printf("=== MAP DUMP: %s ===\n\n", loc.Name)

	d.section("Metadata")
	d.printf("width: %d\n", m.Width())
	d.printf("height: %d\n", m.Height())
	d.printf("coordinate_system: x,y (0-based, y grows downwards)\n")
	d.printf("layers: %s\n", strings.Join(m.LayerNames(), ", "))
	playerHere := player != nil && player.Location == loc.Name
	if playerHere {
		d.printf("player: %s facing: %s\n", player.Pos, player.Facing)
	}
	d.printf("\n")

	d.section("Legend")
	d.printf(". = floor  # = building  r = puzzle rock  o = ore node  i = item  0-3 = pedestal  w = warp pad  W = active warp  h = hint rock  @ = player\n\n")

	d.section("Map")
	for y := 0; y < m.Height(); y++ {
		var row strings.Builder
		for x := 0; x < m.Width(); x++ {
			p := world.Pt(x, y)
			if playerHere && p == player.Pos {
				row.WriteRune('@')
				continue
			}
			row.WriteRune(tileSymbol(loc, p))
		}
		d.printf("%s\n", row.String())
	}
	d.printf("\n")

	d.section("Annotated tiles")
	for _, prop := range annotations {
		d.printf("%s:\n", prop)
		for mk := range world.ScanProperty(m, prop) {
			v, _ := mk.Properties.String(prop)
			d.printf("  tile: %s layer: %s value: %q\n", mk.Point, mk.Layer, v)
		}
	}
	d.printf("\n")

	d.section("Objects")
	for _, obj := range loc.Objects() {
		d.printf("  tile: %s kind: %s id: %s grabbable: %v\n", obj.Tile, obj.Kind, obj.ID, obj.CanBeGrabbed)
	}
	d.printf("\n")

	d.section("Warps")
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if link, ok := loc.Warp(world.Pt(x, y)); ok {
				d.printf("  from: %s to: %s @ %s\n", link.From, link.Target, link.To)
			}
		}
	}
	d.printf("\n")

	d.section("Sprites")
	for _, sp := range loc.Sprites() {
		d.printf("  id: %d x: %.1f y: %.1f scale: %.3f depth: %.4f\n", sp.ID, sp.X, sp.Y, sp.Scale, sp.Depth)
	}
	d.printf("\n")

	d.section("Store")
	data := loc.Store.Snapshot()
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		d.printf("  %s = %q\n", k, data[k])
	}
	d.printf("\n=== END MAP DUMP ===\n")

	return d.err
}

// DumpLocationToFile writes the dump of the named location to map.txt in dir
// and returns its absolute path
func DumpLocationToFile(g *state.Game, name, dir string) (string, error) {
	loc := g.Location(name)
	if loc == nil {
		return "", fmt.Errorf("unknown location %q", name)
	}

	absPath, err := filepath.Abs(filepath.Join(dir, mapDumpFilename))
	if err != nil {
		return "", err
	}
	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := DumpLocation(f, loc, g.Player, false); err != nil {
		return absPath, err
	}
	return absPath, f.Sync()
}
