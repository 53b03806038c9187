package renderer

import (
	"lampcavern/pkg/engine/input"
	"lampcavern/pkg/game/gameplay"
)

// Renderer defines the interface for game rendering backends
type Renderer interface {
	// Init initializes the renderer (colors, fonts, window, audio)
	Init() error

	// RenderFrame renders a complete game frame: the map around the
	// player, the inventory bar and the message pane
	RenderFrame(s *gameplay.Session)

	// GetInput gets user input (blocking for TUI, channel-fed for GUI)
	GetInput() input.Intent

	// GetViewportSize returns the visible map area in tiles
	GetViewportSize() (cols, rows int)
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// RenderFrame renders a frame with the current renderer
func RenderFrame(s *gameplay.Session) {
	if Current != nil {
		Current.RenderFrame(s)
	}
}

// GetInput gets user input from the current renderer
func GetInput() input.Intent {
	if Current != nil {
		return Current.GetInput()
	}
	return input.Intent{Action: input.ActionQuit}
}

// GetViewportSize returns viewport dimensions
func GetViewportSize() (cols, rows int) {
	if Current != nil {
		return Current.GetViewportSize()
	}
	return 21, 13
}
