package devtools

import (
	"lampcavern/pkg/game/gameplay"
	"lampcavern/pkg/game/renderer"
)

// Tools writes screenshots and map dumps into Dir. A zero Cols or Rows uses
// the active renderer's viewport.
type Tools struct {
	Dir        string
	Cols, Rows int
}

// Screenshot saves an HTML screenshot of the current view
func (t Tools) Screenshot(s *gameplay.Session) (string, error) {
	cols, rows := t.Cols, t.Rows
	if cols <= 0 || rows <= 0 {
		cols, rows = renderer.GetViewportSize()
	}
	return SaveScreenshotHTML(s, cols, rows, t.Dir)
}

// DumpMap writes the dump of the player's location
func (t Tools) DumpMap(s *gameplay.Session) (string, error) {
	return DumpLocationToFile(s.Game, s.Game.Player.Location, t.Dir)
}
