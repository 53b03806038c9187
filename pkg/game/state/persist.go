package state

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"lampcavern/pkg/engine/store"
	"lampcavern/pkg/engine/world"
)

// PlayerStore is the book entry holding the player. The leading underscore
// keeps it apart from location names.
const PlayerStore = "_player"

const (
	keyLocation = "location"
	keyPos      = "pos"
	keyFacing   = "facing"
	keyActive   = "active"
	keySlot     = "slot:"
)

// StorePlayer writes the player into the book so it is saved with the
// locations
func (g *Game) StorePlayer() {
	s := g.Book.Location(PlayerStore)
	for _, k := range s.Keys("") {
		s.Remove(k)
	}

	p := g.Player
	s.Set(keyLocation, p.Location)
	s.Set(keyPos, p.Pos.String())
	s.Set(keyFacing, strconv.Itoa(int(p.Facing)))
	s.Set(keyActive, strconv.Itoa(p.Active))
	for i, it := range p.Items {
		if it.IsEmpty() {
			continue
		}
		s.Set(keySlot+strconv.Itoa(i), fmt.Sprintf("%d %s", it.Stack, it.Kind))
	}
}

// RestorePlayer reads the player back from the book. It returns false when the
// book holds no player or names a location that is not registered.
func (g *Game) RestorePlayer() bool {
	if !slices.Contains(g.Book.Names(), PlayerStore) {
		return false
	}
	s := g.Book.Location(PlayerStore)

	loc, _ := s.Get(keyLocation)
	if g.Location(loc) == nil {
		return false
	}
	posText, _ := s.Get(keyPos)
	pos, ok := world.ParsePoint(posText)
	if !ok {
		return false
	}

	p := NewPlayer(len(g.Player.Items))
	p.Location = loc
	p.Pos = pos
	if f, err := strconv.Atoi(storeValue(s, keyFacing)); err == nil && world.Direction(f).IsValid() {
		p.Facing = world.Direction(f)
	}
	for _, k := range s.Keys(keySlot) {
		i, err := strconv.Atoi(strings.TrimPrefix(k, keySlot))
		if err != nil || i < 0 || i >= len(p.Items) {
			continue
		}
		stackText, kind, ok := strings.Cut(storeValue(s, k), " ")
		stack, err := strconv.Atoi(stackText)
		if !ok || err != nil || stack <= 0 {
			continue
		}
		p.Items[i] = &world.Item{Kind: kind, Stack: stack}
	}
	if a, err := strconv.Atoi(storeValue(s, keyActive)); err == nil {
		p.Select(a)
	}

	g.Player = p
	return true
}

func storeValue(s store.Store, key string) string {
	v, _ := s.Get(key)
	return v
}
