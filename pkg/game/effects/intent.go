// Package effects describes the side effects of cavern state transitions as
// intents, and applies them to a host.
package effects

import (
	"fmt"

	"lampcavern/pkg/engine/world"
	"lampcavern/pkg/game/entities"
)

// Kind identifies an intent
type Kind int

// Intent kinds
const (
	PlaySound Kind = iota + 1
	ShowMessage
	AddWarp
	RemoveWarp
	ShowSprite
	HideSprite
	WarpPlayer
)

func (k Kind) String() string {
	switch k {
	case PlaySound:
		return "PlaySound"
	case ShowMessage:
		return "ShowMessage"
	case AddWarp:
		return "AddWarp"
	case RemoveWarp:
		return "RemoveWarp"
	case ShowSprite:
		return "ShowSprite"
	case HideSprite:
		return "HideSprite"
	case WarpPlayer:
		return "WarpPlayer"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Intent is one side effect requested by a transition
type Intent struct {
	Kind Kind

	// Location the effect targets (warps, sprites)
	Location string

	// PlaySound
	Sound string

	// ShowMessage
	Message string
	Error   bool

	// ShowSprite anchor tile
	Tile world.Point

	// AddWarp, RemoveWarp, and WarpPlayer (Target and To)
	Warp entities.WarpLink
}

func (i Intent) String() string {
	switch i.Kind {
	case PlaySound:
		return "PlaySound(" + i.Sound + ")"
	case ShowMessage:
		return fmt.Sprintf("ShowMessage(%q, error=%v)", i.Message, i.Error)
	case AddWarp, RemoveWarp:
		return fmt.Sprintf("%s(%s %v -> %s %v)", i.Kind, i.Location, i.Warp.From, i.Warp.Target, i.Warp.To)
	case ShowSprite:
		return fmt.Sprintf("ShowSprite(%s %v)", i.Location, i.Tile)
	case HideSprite:
		return "HideSprite(" + i.Location + ")"
	case WarpPlayer:
		return fmt.Sprintf("WarpPlayer(%s %v)", i.Warp.Target, i.Warp.To)
	}
	return i.Kind.String()
}

// Sound requests a sound cue
func Sound(name string) Intent {
	return Intent{Kind: PlaySound, Sound: name}
}

// Notify requests an informational HUD message
func Notify(text string) Intent {
	return Intent{Kind: ShowMessage, Message: text}
}

// Fail requests an error HUD message
func Fail(text string) Intent {
	return Intent{Kind: ShowMessage, Message: text, Error: true}
}

// Link requests the teleport link be present in location
func Link(location string, link entities.WarpLink) Intent {
	return Intent{Kind: AddWarp, Location: location, Warp: link}
}

// Unlink requests the teleport link be absent from location
func Unlink(location string, link entities.WarpLink) Intent {
	return Intent{Kind: RemoveWarp, Location: location, Warp: link}
}

// Show requests the warp sprite be shown over tile
func Show(location string, tile world.Point) Intent {
	return Intent{Kind: ShowSprite, Location: location, Tile: tile}
}

// Hide requests every warp sprite in location be removed
func Hide(location string) Intent {
	return Intent{Kind: HideSprite, Location: location}
}

// Teleport requests the player be moved to tile to in target
func Teleport(target string, to world.Point) Intent {
	return Intent{Kind: WarpPlayer, Warp: entities.WarpLink{Target: target, To: to}}
}

// Count returns how many intents of kind k are in intents
func Count(intents []Intent, k Kind) int {
	n := 0
	for _, i := range intents {
		if i.Kind == k {
			n++
		}
	}
	return n
}

// Sounds returns the sound names requested by intents, in order
func Sounds(intents []Intent) []string {
	var out []string
	for _, i := range intents {
		if i.Kind == PlaySound {
			out = append(out, i.Sound)
		}
	}
	return out
}
