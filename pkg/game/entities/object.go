package entities

import "lampcavern/pkg/engine/world"

// Object is a placed object on a location's object layer
type Object struct {
	// Unique id, used to recognise objects the placement engine spawned
	ID string

	// Qualified item kind
	Kind string

	Tile world.Point

	// False for nodes that must be mined rather than picked up
	CanBeGrabbed bool
}
