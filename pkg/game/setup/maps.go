package setup

import (
	"fmt"
	"strconv"

	"lampcavern/pkg/engine/world"
	"lampcavern/pkg/game/config"
	"lampcavern/pkg/game/entities"
)

// Tile sheet indices used by the demo maps
const (
	TileFloor    = 1
	TileWall     = 2
	TilePedestal = 3
	TilePad      = 4
	TileHintRock = 5
	TileRock     = 6
	TileSand     = 7
	TilePillar   = 8
)

// ParseMap builds a map from text rows. Legend:
//
//	' '  nothing
//	'.'  floor
//	'~'  sand
//	'#'  wall
//	'I'  pillar
//	'r'  floor with a puzzle-rock marker
//	'0'-'3' pedestal with that index
//	'W'  warp pad
//	'h'  hint rock
func ParseMap(rows []string) (*world.Map, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty map")
	}
	width := len(rows[0])
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d is %d wide, want %d", y, len(row), width)
		}
	}

	m := world.NewMap(width, len(rows))
	for y, row := range rows {
		for x := 0; x < width; x++ {
			c := row[x]
			if c == ' ' {
				continue
			}

			ground := world.NewTile(TileFloor)
			switch c {
			case '~':
				ground = world.NewTile(TileSand)
			case 'r':
				ground = world.NewTile(TileRock)
			}
			m.SetTile(world.LayerBack, x, y, ground)

			switch c {
			case '.', '~':
			case '#':
				m.SetTile(world.LayerBuildings, x, y, world.NewTile(TileWall))
			case 'I':
				m.SetTile(world.LayerBuildings, x, y, world.NewTile(TilePillar))
			case 'r':
				ground.Set(entities.PropPuzzleRock, "T")
			case '0', '1', '2', '3':
				m.SetTile(world.LayerBuildings, x, y,
					world.NewTile(TilePedestal).Set(entities.PropPedestalIndex, strconv.Itoa(int(c-'0'))))
			case 'W':
				m.SetTile(world.LayerBack, x, y, world.NewTile(TilePad).Set(entities.PropWarpPad, "T"))
			case 'h':
				// hint rocks carry the marker as a tile-sheet default
				m.SetTile(world.LayerBuildings, x, y, world.NewTile(TileHintRock).SetDefault(entities.PropHintRock, "T"))
			default:
				return nil, fmt.Errorf("unknown map glyph %q at %d,%d", c, x, y)
			}
		}
	}
	return m, nil
}

func mustParse(rows []string) *world.Map {
	m, err := ParseMap(rows)
	if err != nil {
		panic(err)
	}
	return m
}

var cavernRows = []string{
	"####################",
	"#..................#",
	"#.rr....h.....rr...#",
	"#.r............r...#",
	"#..................#",
	"#....0..1..2..3....#",
	"#..................#",
	"#........W.........#",
	"#..................#",
	"#.r..............r.#",
	"#..rr..........rr..#",
	"#..................#",
	"#..................#",
	"####################",
}

var secondCavernRows = []string{
	"################",
	"#..............#",
	"#..............#",
	"#..............#",
	"#..............#",
	"#..............#",
	"#..............#",
	"#..............#",
	"#..............#",
	"#..............#",
	"#..............#",
	"################",
}

// CavernMap returns the puzzle cavern
func CavernMap() *world.Map {
	return mustParse(cavernRows)
}

// SecondCavernMap returns the cavern behind the warp pad
func SecondCavernMap() *world.Map {
	return mustParse(secondCavernRows)
}

// SecondCavernExit is the tile of the second cavern that leads back to the
// desert
var SecondCavernExit = world.Pt(14, 10)

// DesertMap returns a sand map large enough to hold the pillar box, with a
// pillar on each corner of box
func DesertMap(box config.Rect) *world.Map {
	w := max(box.X+box.Width+6, 40)
	h := max(box.Y+box.Height+6, 40)
	m := world.NewMap(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.SetTile(world.LayerBack, x, y, world.NewTile(TileSand))
			if x == 0 || y == 0 || x == w-1 || y == h-1 {
				m.SetTile(world.LayerBuildings, x, y, world.NewTile(TileWall))
			}
		}
	}

	corners := []world.Point{
		{X: box.X - 1, Y: box.Y - 1},
		{X: box.X + box.Width, Y: box.Y - 1},
		{X: box.X - 1, Y: box.Y + box.Height},
		{X: box.X + box.Width, Y: box.Y + box.Height},
	}
	for _, p := range corners {
		m.SetTile(world.LayerBuildings, p.X, p.Y, world.NewTile(TilePillar))
	}
	return m
}
