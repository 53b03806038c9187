package input

import (
	"errors"
	"strings"
	"testing"
)

func TestDecodeKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"\x1b[A", "arrow_up"},
		{"\x1bOD", "arrow_left"},
		{"\x1b[Z", "shift_tab"},
		{"\x1b[15~", "f5"},
		{"\x1b[19~", "f8"},
		{"\x1b[24~", "f12"},
		{"\x1b[17~", ""},
		{"\x1b", "escape"},
		{"\r", "enter"},
		{"\t", "tab"},
		{"E", "e"},
		{"]", "]"},
		{"\x01", ""},
	}
	for _, tt := range tests {
		got, err := DecodeKey(strings.NewReader(tt.in))
		if err != nil {
			t.Errorf("DecodeKey(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("DecodeKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDecodeKey_CtrlC(t *testing.T) {
	if _, err := DecodeKey(strings.NewReader("\x03")); !errors.Is(err, ErrInterrupted) {
		t.Errorf("DecodeKey(Ctrl+C) error = %v, want ErrInterrupted", err)
	}
}

func TestMapToIntent(t *testing.T) {
	tests := []struct {
		code string
		want Action
	}{
		{"arrow_up", ActionMoveNorth},
		{"a", ActionMoveWest},
		{"e", ActionInteract},
		{"tab", ActionNextItem},
		{"f5", ActionSave},
		{"f8", ActionDebugMapDump},
		{"f12", ActionScreenshot},
		{"nope", ActionNone},
	}
	for _, tt := range tests {
		got := MapToIntent(NewDebouncedInput(RawInput{Device: DeviceTerminal, Code: tt.code}))
		if got.Action != tt.want {
			t.Errorf("MapToIntent(%q) = %s, want %s", tt.code, ActionName(got.Action), ActionName(tt.want))
		}
	}
}

func TestActionByName(t *testing.T) {
	if a, ok := ActionByName("next_item"); !ok || a != ActionNextItem {
		t.Errorf("ActionByName(next_item) = %v, %v", a, ok)
	}
	if a, ok := ActionByName("Interact"); !ok || a != ActionInteract {
		t.Errorf("ActionByName(Interact) = %v, %v", a, ok)
	}
	if _, ok := ActionByName("fly"); ok {
		t.Error("ActionByName(fly) = ok")
	}
}

func TestSetSingleBinding(t *testing.T) {
	t.Cleanup(ResetBindings)
	SetSingleBinding(ActionSave, "p")

	if got := MapToIntent(DebouncedInput{Code: "p"}); got.Action != ActionSave {
		t.Errorf("p -> %s, want Save", got.Action)
	}
	if got := MapToIntent(DebouncedInput{Code: "f5"}); got.Action != ActionNone {
		t.Errorf("f5 -> %s after rebinding, want None", got.Action)
	}
	// reserved codes cannot be taken
	SetSingleBinding(ActionQuit, "e")
	if got := MapToIntent(DebouncedInput{Code: "e"}); got.Action != ActionInteract {
		t.Errorf("e -> %s, want Interact", got.Action)
	}
	// reserved actions keep their codes
	SetSingleBinding(ActionInteract, "x")
	if got := MapToIntent(DebouncedInput{Code: "enter"}); got.Action != ActionInteract {
		t.Errorf("enter -> %s, want Interact", got.Action)
	}
}

func TestRebind(t *testing.T) {
	t.Cleanup(ResetBindings)

	err := Rebind(map[string]string{"save": " P ", "fly": "f"})
	if err == nil || !strings.Contains(err.Error(), `unknown action "fly"`) {
		t.Errorf("Rebind error = %v, want unknown action", err)
	}
	if got := MapToIntent(DebouncedInput{Code: "p"}); got.Action != ActionSave {
		t.Errorf("p -> %s, want Save", got.Action)
	}

	ResetBindings()
	if got := MapToIntent(DebouncedInput{Code: "f5"}); got.Action != ActionSave {
		t.Errorf("f5 -> %s after reset, want Save", got.Action)
	}
}

func TestGetBindingsByAction(t *testing.T) {
	got := GetBindingsByAction()[ActionZoomIn]
	want := []string{"+", "=", "numpad_add"}
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("zoom in codes = %v, want %v", got, want)
	}
}

func TestActionString(t *testing.T) {
	if got := ActionDebugMapDump.String(); got != "Map Dump" {
		t.Errorf("String() = %q", got)
	}
	if got := Action(99).String(); got != "None" {
		t.Errorf("out of range String() = %q, want None", got)
	}
}

func TestReservedCodes(t *testing.T) {
	for _, code := range []string{"arrow_up", "arrow_down", "arrow_left", "arrow_right", "e", "enter", "gamepad_a"} {
		if !reservedCodes.Has(code) {
			t.Errorf("reservedCodes.Has(%q) = false, want true", code)
		}
	}
	if reservedCodes.Size() != 7 {
		t.Errorf("reservedCodes.Size() = %d, want 7", reservedCodes.Size())
	}
	if reservedCodes.Has("w") {
		t.Error(`reservedCodes.Has("w") = true, want false`)
	}
}
