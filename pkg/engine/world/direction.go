package world

// Direction is a cardinal step on a tile map
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

var directions = [...]struct {
	name   string
	dx, dy int
}{
	North: {"North", 0, -1},
	East:  {"East", 1, 0},
	South: {"South", 0, 1},
	West:  {"West", -1, 0},
}

// AllDirections lists the directions clockwise from North
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

func (d Direction) String() string {
	if !d.IsValid() {
		return "Unknown"
	}
	return directions[d].name
}

// IsValid reports whether d is one of the four directions
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Delta returns the tile offset of one step; y grows downwards
func (d Direction) Delta() (dx, dy int) {
	if !d.IsValid() {
		return 0, 0
	}
	return directions[d].dx, directions[d].dy
}
