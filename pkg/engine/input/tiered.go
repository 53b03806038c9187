package input

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/zyedidia/generic/mapset"
)

// Device is where a raw input came from
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceGamepad
	DeviceTerminal
)

// Action is what a binding asks the game to do
type Action int

const (
	ActionNone Action = iota

	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	ActionNextItem
	ActionPrevItem

	ActionQuit
	ActionSave
	ActionScreenshot
	ActionDebugMapDump // dump the current location to map.txt
	ActionAction       // generic confirm, reserved
	ActionInteract     // use the faced tile, reserved
	ActionZoomIn
	ActionZoomOut

	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:         "None",
	ActionMoveNorth:    "Move North",
	ActionMoveSouth:    "Move South",
	ActionMoveWest:     "Move West",
	ActionMoveEast:     "Move East",
	ActionNextItem:     "Next Item",
	ActionPrevItem:     "Previous Item",
	ActionQuit:         "Quit",
	ActionSave:         "Save",
	ActionScreenshot:   "Screenshot",
	ActionDebugMapDump: "Map Dump",
	ActionAction:       "Action",
	ActionInteract:     "Interact",
	ActionZoomIn:       "Zoom In",
	ActionZoomOut:      "Zoom Out",
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return actionNames[ActionNone]
	}
	return actionNames[a]
}

// Intent is the action a debounced input resolved to
type Intent struct {
	Action Action
}

// RawInput is an event as a device reported it. Code is the binding code,
// e.g. "arrow_up", "e" or "gamepad_a".
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is a raw input that passed repeat filtering. Ebiten and the
// terminal already deliver one event per press, so it only drops the
// timestamp.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput filters a raw event
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{Device: raw.Device, Code: raw.Code}
}

// defaultCodes lists the codes bound to each action at startup
var defaultCodes = map[Action][]string{
	ActionMoveNorth:    {"arrow_up", "w", "k", "gamepad_dpad_up"},
	ActionMoveSouth:    {"arrow_down", "s", "j", "gamepad_dpad_down"},
	ActionMoveWest:     {"arrow_left", "a", "h", "gamepad_dpad_left"},
	ActionMoveEast:     {"arrow_right", "d", "l", "gamepad_dpad_right"},
	ActionNextItem:     {"tab", "]", "gamepad_rb"},
	ActionPrevItem:     {"shift_tab", "[", "gamepad_lb"},
	ActionQuit:         {"quit", "q", "escape", "gamepad_b"},
	ActionSave:         {"f5", "save", "gamepad_start"},
	ActionScreenshot:   {"screenshot", "f12"},
	ActionDebugMapDump: {"f8"},
	ActionInteract:     {"e", "enter", "gamepad_a"},
	ActionAction:       {"action"},
	ActionZoomIn:       {"=", "+", "numpad_add"},
	ActionZoomOut:      {"-", "numpad_subtract"},
}

// reservedCodes always keep their default action
var reservedCodes = newCodeSet("arrow_up", "arrow_down", "arrow_left", "arrow_right", "e", "enter", "gamepad_a")

func newCodeSet(codes ...string) mapset.Set[string] {
	set := mapset.New[string]()
	for _, c := range codes {
		set.Put(c)
	}
	return set
}

// bindings maps codes to actions
var bindings = defaultBindings()

func defaultBindings() map[string]Action {
	b := make(map[string]Action)
	for act, codes := range defaultCodes {
		for _, c := range codes {
			b[c] = act
		}
	}
	return b
}

// MapToIntent resolves a debounced input through the current bindings
func MapToIntent(ev DebouncedInput) Intent {
	return Intent{Action: bindings[ev.Code]}
}

// ActionName returns the display name of a
func ActionName(a Action) string {
	return a.String()
}

// ActionByName looks an action up by display name, ignoring case, with
// underscores standing for spaces ("next_item")
func ActionByName(name string) (Action, bool) {
	name = strings.ReplaceAll(strings.TrimSpace(name), "_", " ")
	for a := ActionMoveNorth; a < actionCount; a++ {
		if strings.EqualFold(actionNames[a], name) {
			return a, true
		}
	}
	return ActionNone, false
}

// GetBindingsByAction returns the bound codes of every action, sorted
func GetBindingsByAction() map[Action][]string {
	out := make(map[Action][]string)
	for code, act := range bindings {
		out[act] = append(out[act], code)
	}
	for _, codes := range out {
		slices.Sort(codes)
	}
	return out
}

// SetSingleBinding makes code the only binding of action. Reserved codes and
// the bindings of reserved actions are left alone.
func SetSingleBinding(action Action, code string) {
	if action == ActionAction || action == ActionInteract {
		return
	}
	for c, a := range bindings {
		if a == action && !reservedCodes.Has(c) {
			delete(bindings, c)
		}
	}
	if code != "" && !reservedCodes.Has(code) {
		bindings[code] = action
	}
}

// ResetBindings restores the startup bindings
func ResetBindings() {
	bindings = defaultBindings()
}

// Rebind applies action name -> code overrides, such as the "keys" section
// of a config file. Unknown action names are reported and skipped.
func Rebind(overrides map[string]string) error {
	var errs []error
	for name, code := range overrides {
		act, ok := ActionByName(name)
		if !ok {
			errs = append(errs, fmt.Errorf("unknown action %q", name))
			continue
		}
		SetSingleBinding(act, strings.ToLower(strings.TrimSpace(code)))
	}
	return errors.Join(errs...)
}
