package effects

import (
	"log/slog"

	"lampcavern/pkg/engine/world"
)

// Host is the game side that intents are applied to
type Host interface {
	PlaySound(name string)
	ShowMessage(text string, isError bool)

	// Warps and Sprites return nil for unknown locations
	Warps(location string) WarpTable
	Sprites(location string) SpriteLayer

	WarpPlayer(location string, to world.Point)
}

// Applier applies intents to a host
type Applier struct {
	Host     Host
	Geometry Geometry
	Log      *slog.Logger
}

// Apply performs intents in order. Intents aimed at a location the host does
// not know are dropped and logged.
func (a *Applier) Apply(intents []Intent) {
	for _, in := range intents {
		switch in.Kind {
		case PlaySound:
			if in.Sound != "" {
				a.Host.PlaySound(in.Sound)
			}
		case ShowMessage:
			a.Host.ShowMessage(in.Message, in.Error)
		case AddWarp, RemoveWarp:
			t := a.Host.Warps(in.Location)
			if t == nil {
				a.Log.Warn("warp intent for unknown location", "intent", in.String())
				continue
			}
			if in.Kind == AddWarp {
				EnsureWarp(t, in.Warp)
			} else {
				ClearWarp(t, in.Warp.From)
			}
		case ShowSprite, HideSprite:
			l := a.Host.Sprites(in.Location)
			if l == nil {
				a.Log.Warn("sprite intent for unknown location", "intent", in.String())
				continue
			}
			if in.Kind == ShowSprite {
				ShowWarpSprite(l, a.Geometry, in.Tile)
			} else {
				HideWarpSprite(l, a.Geometry)
			}
		case WarpPlayer:
			a.Host.WarpPlayer(in.Warp.Target, in.Warp.To)
		default:
			a.Log.Warn("unknown intent", "kind", in.Kind.String())
		}
		a.Log.Debug("applied", "intent", in.String())
	}
}
