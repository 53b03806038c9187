package gameplay

import (
	engineinput "lampcavern/pkg/engine/input"
	"lampcavern/pkg/engine/world"
	"lampcavern/pkg/game/text"
)

// Saver persists the game
type Saver interface {
	Save() error
}

// DevTools writes debugging artifacts for the session and returns their paths
type DevTools interface {
	Screenshot(s *Session) (string, error)
	DumpMap(s *Session) (string, error)
}

// ProcessIntent handles a high-level input intent from the tiered input system.
func (s *Session) ProcessIntent(intent engineinput.Intent, saver Saver) {
	g := s.Game

	switch intent.Action {
	case engineinput.ActionNone:
		return

	case engineinput.ActionQuit:
		g.Quit = true

	case engineinput.ActionMoveNorth:
		s.Move(world.North)
	case engineinput.ActionMoveSouth:
		s.Move(world.South)
	case engineinput.ActionMoveWest:
		s.Move(world.West)
	case engineinput.ActionMoveEast:
		s.Move(world.East)

	case engineinput.ActionInteract, engineinput.ActionAction:
		s.Interact()

	case engineinput.ActionNextItem:
		g.Player.Cycle(1)
	case engineinput.ActionPrevItem:
		g.Player.Cycle(-1)

	case engineinput.ActionSave:
		if saver == nil {
			return
		}
		if err := saver.Save(); err != nil {
			s.log.Error("save failed", "err", err)
			g.ShowMessage(err.Error(), true)
			return
		}
		g.AddMessage(text.Get(text.SavedGame))

	case engineinput.ActionScreenshot:
		s.runTool("screenshot", text.ScreenshotSaved, func(d DevTools) (string, error) { return d.Screenshot(s) })

	case engineinput.ActionDebugMapDump:
		s.runTool("map dump", text.MapDumped, func(d DevTools) (string, error) { return d.DumpMap(s) })
	}
}

func (s *Session) runTool(name, doneKey string, run func(DevTools) (string, error)) {
	if s.Tools == nil {
		return
	}
	path, err := run(s.Tools)
	if err != nil {
		s.log.Error(name+" failed", "err", err)
		s.Game.ShowMessage(err.Error(), true)
		return
	}
	s.log.Info(name+" written", "path", path)
	s.Game.AddMessage(text.Get(doneKey, path))
}
