package state

import (
	"sort"

	"lampcavern/pkg/engine/store"
	"lampcavern/pkg/engine/world"
	"lampcavern/pkg/game/effects"
)

// Message is one line of the HUD message log
type Message struct {
	Text  string
	Error bool
}

// Game represents the playground world: every registered location, the
// player and the HUD
type Game struct {
	Locations map[string]*Location

	// Per-location persistent stores, saved as one file
	Book *store.Book

	Player *Player

	// Item names for the HUD
	Catalog world.Catalog

	Messages []Message

	// Sounds played since the last DrainSounds
	Sounds []string

	// Location the player was warped into and whose entry has not yet been
	// handled
	PendingEntry string

	Quit bool
}

// NewGame creates a game backed by book
func NewGame(book *store.Book, catalog world.Catalog) *Game {
	if book == nil {
		book = store.NewBook()
	}
	return &Game{
		Locations: make(map[string]*Location),
		Book:      book,
		Player:    NewPlayer(DefaultCapacity),
		Catalog:   catalog,
		Messages:  make([]Message, 0),
	}
}

// AddLocation registers a location over m. An existing location of the same
// name is returned unchanged.
func (g *Game) AddLocation(name string, m *world.Map) *Location {
	if l, ok := g.Locations[name]; ok {
		return l
	}
	l := NewLocation(name, m, g.Book.Location(name))
	g.Locations[name] = l
	return l
}

// Location returns the named location, or nil
func (g *Game) Location(name string) *Location {
	return g.Locations[name]
}

// LocationNames returns the registered location names, sorted
func (g *Game) LocationNames() []string {
	names := make([]string, 0, len(g.Locations))
	for name := range g.Locations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Current returns the location the player is in
func (g *Game) Current() *Location {
	return g.Locations[g.Player.Location]
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	g.addMessage(Message{Text: msg})
}

func (g *Game) addMessage(m Message) {
	const maxMessages = 5
	g.Messages = append(g.Messages, m)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]Message, 0)
}

// DrainSounds returns and clears the pending sounds
func (g *Game) DrainSounds() []string {
	s := g.Sounds
	g.Sounds = nil
	return s
}

// PlaySound implements effects.Host
func (g *Game) PlaySound(name string) {
	g.Sounds = append(g.Sounds, name)
}

// ShowMessage implements effects.Host
func (g *Game) ShowMessage(text string, isError bool) {
	g.addMessage(Message{Text: text, Error: isError})
}

// Warps implements effects.Host
func (g *Game) Warps(location string) effects.WarpTable {
	l, ok := g.Locations[location]
	if !ok {
		return nil
	}
	return l
}

// Sprites implements effects.Host
func (g *Game) Sprites(location string) effects.SpriteLayer {
	l, ok := g.Locations[location]
	if !ok {
		return nil
	}
	return l
}

// WarpPlayer implements effects.Host. Unknown locations are ignored.
func (g *Game) WarpPlayer(location string, to world.Point) {
	if _, ok := g.Locations[location]; !ok {
		return
	}
	g.Player.Location = location
	g.Player.Pos = to
	g.PendingEntry = location
}
