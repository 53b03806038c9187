package state

import "lampcavern/pkg/engine/world"

// DefaultCapacity is the number of inventory slots a new player has
const DefaultCapacity = 12

// Player is the player's position and inventory
type Player struct {
	Location string
	Pos      world.Point
	Facing   world.Direction

	// Inventory slots; nil entries are empty
	Items []*world.Item

	// Index of the held slot
	Active int
}

// NewPlayer creates a player with capacity empty slots
func NewPlayer(capacity int) *Player {
	return &Player{Items: make([]*world.Item, capacity), Facing: world.South}
}

// Target returns the tile the player is facing
func (p *Player) Target() world.Point {
	return p.Pos.Add(p.Facing)
}

// Held returns the item in the active slot
func (p *Player) Held() (*world.Item, bool) {
	if p.Active < 0 || p.Active >= len(p.Items) {
		return nil, false
	}
	it := p.Items[p.Active]
	if it.IsEmpty() {
		return nil, false
	}
	return it, true
}

// ConsumeHeld takes one from the active stack
func (p *Player) ConsumeHeld() {
	it, ok := p.Held()
	if !ok {
		return
	}
	it.Stack--
	if it.Stack <= 0 {
		p.Items[p.Active] = nil
	}
}

// AddItem stacks item onto a slot of the same kind, or the first empty slot.
// Returns false when the inventory is full.
func (p *Player) AddItem(item *world.Item) bool {
	if item.IsEmpty() {
		return true
	}
	for _, it := range p.Items {
		if it != nil && it.Kind == item.Kind {
			it.Stack += item.Stack
			return true
		}
	}
	for i, it := range p.Items {
		if it.IsEmpty() {
			p.Items[i] = item
			return true
		}
	}
	return false
}

// HasItem returns true if any slot holds kind
func (p *Player) HasItem(kind string) bool {
	for _, it := range p.Items {
		if !it.IsEmpty() && it.Kind == kind {
			return true
		}
	}
	return false
}

// Select makes slot i the active slot
func (p *Player) Select(i int) bool {
	if i < 0 || i >= len(p.Items) {
		return false
	}
	p.Active = i
	return true
}

// Cycle moves the active slot by delta, wrapping
func (p *Player) Cycle(delta int) {
	n := len(p.Items)
	if n == 0 {
		return
	}
	p.Active = ((p.Active+delta)%n + n) % n
}
