package ebiten

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "lampcavern/pkg/engine/input"
)

// repeatingKeys are held-down keys that repeat, mapped to binding codes
var repeatingKeys = []struct {
	key  ebiten.Key
	code string
}{
	{ebiten.KeyArrowUp, "arrow_up"},
	{ebiten.KeyArrowDown, "arrow_down"},
	{ebiten.KeyArrowLeft, "arrow_left"},
	{ebiten.KeyArrowRight, "arrow_right"},
	{ebiten.KeyW, "w"},
	{ebiten.KeyA, "a"},
	{ebiten.KeyS, "s"},
	{ebiten.KeyD, "d"},
	{ebiten.KeyH, "h"},
	{ebiten.KeyJ, "j"},
	{ebiten.KeyK, "k"},
	{ebiten.KeyL, "l"},
}

// pressKeys fire once per press
var pressKeys = []struct {
	key  ebiten.Key
	code string
}{
	{ebiten.KeyE, "e"},
	{ebiten.KeyEnter, "enter"},
	{ebiten.KeyBracketLeft, "["},
	{ebiten.KeyBracketRight, "]"},
	{ebiten.KeyF5, "f5"},
	{ebiten.KeyF8, "f8"},
	{ebiten.KeyF12, "f12"},
	{ebiten.KeyQ, "q"},
	{ebiten.KeyEscape, "escape"},
	{ebiten.KeyEqual, "="},
	{ebiten.KeyMinus, "-"},
	{ebiten.KeyNumpadAdd, "numpad_add"},
	{ebiten.KeyNumpadSubtract, "numpad_subtract"},
}

// gamepadButtons maps standard layout buttons to binding codes
var gamepadButtons = []struct {
	button ebiten.StandardGamepadButton
	code   string
}{
	{ebiten.StandardGamepadButtonLeftTop, "gamepad_dpad_up"},
	{ebiten.StandardGamepadButtonLeftBottom, "gamepad_dpad_down"},
	{ebiten.StandardGamepadButtonLeftLeft, "gamepad_dpad_left"},
	{ebiten.StandardGamepadButtonLeftRight, "gamepad_dpad_right"},
	{ebiten.StandardGamepadButtonRightBottom, "gamepad_a"},
	{ebiten.StandardGamepadButtonRightRight, "gamepad_b"},
	{ebiten.StandardGamepadButtonFrontTopLeft, "gamepad_lb"},
	{ebiten.StandardGamepadButtonFrontTopRight, "gamepad_rb"},
	{ebiten.StandardGamepadButtonCenterRight, "gamepad_start"},
}

// intentFor runs a raw code through the tiered input layers
func intentFor(device engineinput.Device, code string) engineinput.Intent {
	return engineinput.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
		Device:    device,
		Code:      code,
		Timestamp: time.Now(),
	}))
}

// pollKeyboard returns the intents of keys pressed this frame
func (e *EbitenRenderer) pollKeyboard() []engineinput.Intent {
	var intents []engineinput.Intent
	add := func(code string) {
		if intent := intentFor(engineinput.DeviceKeyboard, code); intent.Action != engineinput.ActionNone {
			intents = append(intents, intent)
		}
	}

	for _, k := range repeatingKeys {
		if e.shouldRepeatKey(ebiten.IsKeyPressed(k.key), k.code) {
			add(k.code)
		}
	}
	for _, k := range pressKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			add(k.code)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			add("shift_tab")
		} else {
			add("tab")
		}
	}
	return intents
}

// pollGamepad returns the intents of gamepad buttons and stick moves this
// frame
func (e *EbitenRenderer) pollGamepad() []engineinput.Intent {
	var intents []engineinput.Intent
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, b := range gamepadButtons {
			if inpututil.IsStandardGamepadButtonJustPressed(id, b.button) {
				intents = append(intents, intentFor(engineinput.DeviceGamepad, b.code))
			}
		}

		// Left stick with key repeat
		const deadZone = 0.5
		x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		y := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		sticks := []struct {
			held bool
			dir  string
		}{
			{y < -deadZone, "up"},
			{y > deadZone, "down"},
			{x < -deadZone, "left"},
			{x > deadZone, "right"},
		}
		for _, st := range sticks {
			if e.shouldRepeatKey(st.held, fmt.Sprintf("gamepad_%d_stick_%s", id, st.dir)) {
				intents = append(intents, intentFor(engineinput.DeviceGamepad, "gamepad_dpad_"+st.dir))
			}
		}
	}
	return intents
}

// shouldRepeatKey returns true on the first frame a key is held and then
// every keyRepeatInterval after keyRepeatInitialDelay
func (e *EbitenRenderer) shouldRepeatKey(pressed bool, code string) bool {
	now := time.Now().UnixMilli()
	state, exists := e.keyRepeatState[code]

	if !pressed {
		delete(e.keyRepeatState, code)
		return false
	}
	if !exists {
		e.keyRepeatState[code] = keyRepeatInfo{firstPressed: now, lastRepeat: now}
		return true
	}

	if now-state.firstPressed >= keyRepeatInitialDelay && now-state.lastRepeat >= keyRepeatInterval {
		state.lastRepeat = now
		e.keyRepeatState[code] = state
		return true
	}
	return false
}
