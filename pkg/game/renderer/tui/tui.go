package tui

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/gookit/color"

	"lampcavern/pkg/engine/input"
	"lampcavern/pkg/engine/terminal"
	"lampcavern/pkg/game/gameplay"
	"lampcavern/pkg/game/renderer"
	"lampcavern/pkg/game/text"
)

// Icon constants, two characters per tile
const (
	PlayerIcon    = "@ "
	IconVoid      = "  "
	IconFloor     = ". "
	IconSand      = "~ "
	IconWall      = "▒▒"
	IconPillar    = "║ "
	IconPedestal  = "□ "
	IconFilled    = "▣ "
	IconWarpPad   = "○ "
	IconWarpOpen  = "◎ "
	IconHintRock  = "▲ "
	IconOre       = "◆ "
	IconItem      = "? "
	IconGlowFloor = "· "
)

// Viewport margins and minimum sizes
const (
	ViewportMinRows = 7
	ViewportMinCols = 15

	// Location line, status bar, actions, message pane (header + 5) and prompt
	ViewportTopMargin = 13
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	colorFloor       color.Style
	colorSand        color.Style
	colorWall        color.Style
	colorPedestal    color.Style
	colorGem         color.Style
	colorWarp        color.Style
	colorHint        color.Style
	colorOre         color.Style
	colorItem        color.Style
	colorPlayer      color.Style
	colorFocus       color.Style
	colorCell        color.Style
	colorAction      color.Style
	colorActionShort color.Style
	colorDenied      color.Style
	colorSubtle      color.Style

	regexpStringFunctions *regexp.Regexp

	keys  *input.KeyReader
	lines *bufio.Reader
}

// New creates a new TUI renderer
func New() *TUIRenderer {
	return &TUIRenderer{}
}

// Init initializes the TUI renderer (colors, key reader)
func (t *TUIRenderer) Init() error {
	t.colorFloor = color.Style{color.FgGray}
	t.colorSand = color.Style{color.FgYellow}
	t.colorWall = color.Style{color.FgGray, color.OpBold}
	t.colorPedestal = color.Style{color.FgWhite, color.OpBold}
	t.colorGem = color.Style{color.FgMagenta, color.OpBold}
	t.colorWarp = color.Style{color.FgCyan, color.OpBold}
	t.colorHint = color.Style{color.FgBlue, color.OpBold}
	t.colorOre = color.Style{color.FgRed}
	t.colorItem = color.Style{color.FgMagenta}
	t.colorPlayer = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	t.colorFocus = color.Style{color.FgBlack, color.BgWhite}
	t.colorCell = color.Style{color.FgBlue}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}

	t.regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:().']+)}`)

	t.keys = input.NewKeyReader(os.Stdin)
	t.lines = bufio.NewReader(os.Stdin)
	return nil
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// GetInput gets one key press and returns a high-level Intent. Without a
// terminal, keys are read from the piped input byte by byte.
func (t *TUIRenderer) GetInput() input.Intent {
	var (
		code string
		err  error
	)
	if t.keys.IsTerminal() {
		code, err = t.keys.ReadKey()
	} else {
		code, err = input.DecodeKey(t.lines)
	}
	if err != nil {
		if !errors.Is(err, input.ErrInterrupted) {
			fmt.Fprintf(os.Stderr, "input: %v\n", err)
		}
		return input.Intent{Action: input.ActionQuit}
	}

	raw := input.RawInput{
		Device:    input.DeviceTerminal,
		Code:      code,
		Timestamp: time.Now(),
	}
	return input.MapToIntent(input.NewDebouncedInput(raw))
}

// FormatText formats a message with the markup system:
// GT{KEY} translates, ITEM{..}, ROOM{..} and ACTION{..} colorize.
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	ret := fmt.Sprintf(msg, args...)

	for _, match := range t.regexpStringFunctions.FindAllStringSubmatch(ret, -1) {
		function := match[1]
		operand := match[2]

		var val string
		switch function {
		case "GT":
			val = text.Get(operand)
		case "ITEM":
			val = t.colorItem.Sprint(operand)
		case "ROOM":
			val = t.colorCell.Sprint(operand)
		case "ACTION":
			val = t.colorActionShort.Sprint(operand[0:1]) + t.colorAction.Sprint(operand[1:])
		default:
			continue
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// GetViewportSize returns the viewport dimensions based on terminal size
func (t *TUIRenderer) GetViewportSize() (cols, rows int) {
	cols, rows = terminal.Viewport(ViewportTopMargin)
	cols = max(cols, ViewportMinCols)
	rows = max(rows, ViewportMinRows)

	// Keep both odd for centering
	if rows%2 == 0 {
		rows--
	}
	if cols%2 == 0 {
		cols--
	}
	return cols, rows
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(s *gameplay.Session) {
	cols, rows := t.GetViewportSize()
	f := renderer.BuildFrame(s, cols, rows)

	t.Clear()
	t.printString("GT{LOCATION}: ROOM{%s}\n", f.Location)
	t.printMap(&f)
	t.printStatusBar(&f)
	t.printPossibleActions()
	t.printMessagesPane(&f)
	if sounds := s.Game.DrainSounds(); len(sounds) > 0 {
		fmt.Println(t.colorSubtle.Sprint("♪ " + strings.Join(sounds, " ")))
	}
	fmt.Printf("\n> ")
}

func (t *TUIRenderer) printString(msg string, a ...any) {
	fmt.Print(t.FormatText(msg, a...))
}

func (t *TUIRenderer) printMap(f *renderer.Frame) {
	var b strings.Builder
	for _, row := range f.Cells {
		for _, c := range row {
			b.WriteString(t.renderCell(c))
		}
		b.WriteString("\n")
	}
	fmt.Print(b.String())
}

// renderCell returns the string representation of a cell
func (t *TUIRenderer) renderCell(c renderer.Cell) string {
	var s string
	switch c.Glyph {
	case renderer.GlyphPlayer:
		return t.colorPlayer.Sprint(PlayerIcon)
	case renderer.GlyphFloor:
		if c.Glow {
			s = t.colorWarp.Sprint(IconGlowFloor)
		} else {
			s = t.colorFloor.Sprint(IconFloor)
		}
	case renderer.GlyphSand:
		s = t.colorSand.Sprint(IconSand)
	case renderer.GlyphWall:
		s = t.colorWall.Sprint(IconWall)
	case renderer.GlyphPillar:
		s = t.colorSand.Sprint(IconPillar)
	case renderer.GlyphPedestal:
		if c.Item != "" {
			s = t.colorGem.Sprint(IconFilled)
		} else {
			s = t.colorPedestal.Sprint(IconPedestal)
		}
	case renderer.GlyphWarpPad:
		s = t.colorSubtle.Sprint(IconWarpPad)
	case renderer.GlyphWarpOpen:
		s = t.colorWarp.Sprint(IconWarpOpen)
	case renderer.GlyphHintRock:
		s = t.colorHint.Sprint(IconHintRock)
	case renderer.GlyphOre:
		s = t.colorOre.Sprint(IconOre)
	case renderer.GlyphItem:
		s = t.colorItem.Sprint(IconItem)
	default:
		return IconVoid
	}
	if c.Focus {
		return t.colorFocus.Sprint(color.ClearCode(s))
	}
	return s
}

func (t *TUIRenderer) printStatusBar(f *renderer.Frame) {
	held := text.Get(text.EmptyHands)
	if f.Held != "" {
		held = "ITEM{" + f.Held + "}"
	}
	t.printString("GT{HOLDING}: %s   ", held)

	if f.Placed > 0 || f.Solved {
		t.printString("ACTION{Pedestals} %d/4", f.Placed)
		if f.Solved {
			fmt.Print(" " + t.colorGem.Sprint("✓"))
		}
	}
	fmt.Println()

	names := make([]string, 0, len(f.Inventory))
	for _, slot := range f.Inventory {
		name := slot.Name
		if slot.Stack > 1 {
			name = fmt.Sprintf("%s x%d", name, slot.Stack)
		}
		if slot.Active {
			name = t.colorActionShort.Sprint("[" + name + "]")
		} else {
			name = t.colorItem.Sprint(name)
		}
		names = append(names, name)
	}
	t.printString("GT{INVENTORY}: ")
	fmt.Println(strings.Join(names, ", "))
}

// hintActions are listed under the status bar with their current keys
var hintActions = []input.Action{
	input.ActionInteract,
	input.ActionNextItem,
	input.ActionSave,
	input.ActionQuit,
}

func (t *TUIRenderer) printPossibleActions() {
	fmt.Println(t.keyHints())
}

// keyHints lists the first keyboard code bound to each hint action
func (t *TUIRenderer) keyHints() string {
	bound := input.GetBindingsByAction()
	hints := []string{t.colorActionShort.Sprint("wasd") + " " + t.colorAction.Sprint("Move")}
	for _, act := range hintActions {
		i := slices.IndexFunc(bound[act], func(code string) bool {
			return !strings.HasPrefix(code, "gamepad_")
		})
		if i < 0 {
			continue
		}
		hints = append(hints, t.colorActionShort.Sprint(bound[act][i])+" "+t.colorAction.Sprint(input.ActionName(act)))
	}
	return strings.Join(hints, "  ")
}

func (t *TUIRenderer) printMessagesPane(f *renderer.Frame) {
	fmt.Println(t.colorSubtle.Sprint(strings.Repeat("─", 40)))
	for _, m := range f.Messages {
		if m.Error {
			fmt.Println(t.colorDenied.Sprint(m.Text))
		} else {
			fmt.Println(m.Text)
		}
	}
}
