// Package pedestal runs the four-pedestal gem puzzle of the cavern.
//
// The puzzle is a value (State) advanced by transition methods on Machine.
// Each transition returns the next State and the side effects the caller
// must apply; slot contents and the solved flag live in the location store.
package pedestal

import (
	"log/slog"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"lampcavern/pkg/engine/store"
	"lampcavern/pkg/engine/world"
	"lampcavern/pkg/game/config"
	"lampcavern/pkg/game/effects"
	"lampcavern/pkg/game/entities"
	"lampcavern/pkg/game/text"
)

// Hand is what the player is carrying
type Hand interface {
	// Held returns the active item, if any
	Held() (*world.Item, bool)

	// ConsumeHeld takes one from the held stack, dropping it when empty
	ConsumeHeld()

	// AddItem returns false when there is no room
	AddItem(item *world.Item) bool
}

// Drawer draws item icons in world pixel coordinates
type Drawer interface {
	DrawItem(item *world.Item, x, y float64)
}

// State is the puzzle as last loaded for one location
type State struct {
	Location string
	Loaded   bool

	Slots []entities.Pedestal

	Warp    entities.WarpSpot
	HasWarp bool

	Solved bool

	// Player stood on the warp pad on the previous tick
	WasOnPad bool
}

// Slot returns the pedestal on tile
func (s State) Slot(tile world.Point) (entities.Pedestal, bool) {
	for _, p := range s.Slots {
		if p.Tile == tile {
			return p, true
		}
	}
	return entities.Pedestal{}, false
}

// Machine holds the fixed puzzle definition and effect names
type Machine struct {
	cfg    *config.Config
	puzzle *entities.PedestalPuzzle
	log    *slog.Logger
}

// NewMachine creates a puzzle machine for cfg
func NewMachine(cfg *config.Config, log *slog.Logger) *Machine {
	return &Machine{
		cfg:    cfg,
		puzzle: entities.NewPedestalPuzzle(cfg.RequiredOrder),
		log:    log.With("system", "pedestal"),
	}
}

// Puzzle returns the puzzle definition
func (m *Machine) Puzzle() *entities.PedestalPuzzle {
	return m.puzzle
}

// Load rebuilds the puzzle from the location map and store, and reconciles
// the teleport link and warp sprite with the persisted solved flag.
func (m *Machine) Load(location string, mp *world.Map, s store.Store) (State, []effects.Intent) {
	st := State{Location: location, Loaded: true}
	st.Slots = m.scanPedestals(mp)
	st.Warp, st.HasWarp = m.scanWarp(mp)
	st.Solved = entities.IsSolved(s)

	m.log.Info("loaded",
		"location", location,
		"pedestals", len(st.Slots),
		"warp", st.HasWarp,
		"solved", st.Solved,
	)
	if len(st.Slots) < entities.PedestalCount {
		m.log.Warn("puzzle cannot be solved", "pedestals", len(st.Slots))
	}

	var intents []effects.Intent
	switch {
	case st.Solved && st.HasWarp:
		intents = append(intents,
			effects.Link(location, st.Warp.Link()),
			effects.Show(location, st.Warp.Tile),
		)
	case st.Solved:
		m.log.Warn("solved but no warp pad on map", "location", location)
	case st.HasWarp:
		intents = append(intents,
			effects.Unlink(location, st.Warp.Link()),
			effects.Hide(location),
		)
	default:
		intents = append(intents, effects.Hide(location))
	}
	return st, intents
}

func (m *Machine) scanPedestals(mp *world.Map) []entities.Pedestal {
	var slots []entities.Pedestal
	indices := mapset.New[int]()
	tiles := mapset.New[world.Point]()

	for mk := range world.ScanProperty(mp, entities.PropPedestalIndex) {
		idx, ok := mk.Properties.Int(entities.PropPedestalIndex)
		if !ok || !entities.ValidPedestalIndex(idx) {
			m.log.Debug("ignoring pedestal marker", "tile", mk.Point.String(), "layer", mk.Layer)
			continue
		}
		if indices.Has(idx) || tiles.Has(mk.Point) {
			m.log.Warn("duplicate pedestal", "tile", mk.Point.String(), "index", idx)
			continue
		}
		indices.Put(idx)
		tiles.Put(mk.Point)

		slots = append(slots, entities.Pedestal{
			Tile:  mk.Point,
			Index: idx,
			DrawOffset: entities.Offset{
				X: mk.Properties.IntOr(entities.PropDrawOffsetX, m.cfg.DrawOffsetX),
				Y: mk.Properties.IntOr(entities.PropDrawOffsetY, m.cfg.DrawOffsetY),
			},
		})
	}
	return slots
}

func (m *Machine) scanWarp(mp *world.Map) (entities.WarpSpot, bool) {
	for mk := range world.ScanProperty(mp, entities.PropWarpPad) {
		p := mk.Properties
		return entities.WarpSpot{
			Tile:   mk.Point,
			Target: p.StringOr(entities.PropWarpTarget, m.cfg.DefaultWarp.Location),
			X:      p.IntOr(entities.PropWarpX, m.cfg.DefaultWarp.X),
			Y:      p.IntOr(entities.PropWarpY, m.cfg.DefaultWarp.Y),
		}, true
	}
	return entities.WarpSpot{}, false
}

// Interact handles the player using tile. Tiles that are not pedestals are
// ignored.
func (m *Machine) Interact(st State, tile world.Point, hand Hand, s store.Store, factory world.ItemFactory) (State, []effects.Intent) {
	if !st.Loaded {
		return st, nil
	}
	slot, ok := st.Slot(tile)
	if !ok {
		return st, nil
	}

	sounds := m.cfg.Sounds
	if st.Solved {
		return st, []effects.Intent{effects.Sound(sounds.Cancel)}
	}

	key := entities.SlotKey(slot.Index)
	current, filled := slotKind(s, key)

	held, holding := hand.Held()
	if holding && held.IsEmpty() {
		holding = false
	}

	switch {
	case !holding && filled:
		item, ok := factory.Create(current)
		if !ok {
			m.log.Warn("cannot create slot item", "kind", current, "index", slot.Index)
			return st, []effects.Intent{effects.Sound(sounds.Cancel)}
		}
		if !hand.AddItem(item) {
			return st, []effects.Intent{
				effects.Fail(text.Get(text.NoInventorySpace)),
				effects.Sound(sounds.Cancel),
			}
		}
		s.Remove(key)
		m.log.Debug("took gem", "index", slot.Index, "kind", current)
		return st, []effects.Intent{effects.Sound(sounds.TakeBack)}

	case !holding:
		return st, []effects.Intent{effects.Sound(sounds.Cancel)}

	case filled:
		return st, []effects.Intent{
			effects.Fail(text.Get(text.HandsFull)),
			effects.Sound(sounds.Cancel),
		}

	case !m.puzzle.Accepts(held.Kind):
		return st, []effects.Intent{
			effects.Fail(text.Get(text.GemDoesNotFit)),
			effects.Sound(sounds.Cancel),
		}
	}

	kind := held.Kind
	s.Set(key, kind)
	hand.ConsumeHeld()
	m.log.Debug("placed gem", "index", slot.Index, "kind", kind)

	intents := []effects.Intent{effects.Sound(sounds.Place)}
	if !m.puzzle.CheckSolution(st.Slots, s) {
		return st, intents
	}

	s.Set(entities.SolvedKey, entities.SolvedValue)
	st.Solved = true
	m.log.Info("puzzle solved", "location", st.Location)

	intents = append(intents,
		effects.Sound(sounds.Solved),
		effects.Notify(text.Get(text.PuzzleSolved)),
	)
	if st.HasWarp {
		intents = append(intents,
			effects.Link(st.Location, st.Warp.Link()),
			effects.Show(st.Location, st.Warp.Tile),
		)
	}
	return st, intents
}

// Tick plays the departure sound when the player steps onto the open warp pad
func (m *Machine) Tick(st State, player world.Point) (State, []effects.Intent) {
	if !st.Loaded || !st.Solved || !st.HasWarp {
		st.WasOnPad = false
		return st, nil
	}

	on := player == st.Warp.Tile
	var intents []effects.Intent
	if on && !st.WasOnPad {
		intents = append(intents, effects.Sound(m.cfg.Sounds.Departure))
	}
	st.WasOnPad = on
	return st, intents
}

// Render draws the item held by every filled pedestal
func (m *Machine) Render(st State, s store.Store, factory world.ItemFactory, d Drawer) {
	ts := m.cfg.TileSize
	for _, slot := range st.Slots {
		kind, ok := slotKind(s, entities.SlotKey(slot.Index))
		if !ok {
			continue
		}
		item, ok := factory.Create(kind)
		if !ok {
			continue
		}
		x := slot.Tile.X*ts + slot.DrawOffset.X
		y := slot.Tile.Y*ts + slot.DrawOffset.Y
		d.DrawItem(item, float64(x), float64(y))
	}
}

func slotKind(s store.Store, key string) (string, bool) {
	v, ok := s.Get(key)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return v, true
}
