package ebiten

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	engineinput "lampcavern/pkg/engine/input"
	"lampcavern/pkg/game/gameplay"
	"lampcavern/pkg/game/renderer"
)

// keyRepeatInfo tracks the repeat state for a key or button
type keyRepeatInfo struct {
	firstPressed int64
	lastRepeat   int64
}

// EbitenRenderer is the Ebiten-based graphical renderer. Update, Draw and
// every session call run on the Ebiten game goroutine.
type EbitenRenderer struct {
	log *slog.Logger

	// Screen pixels per map tile (adjustable with +/-)
	tileSize int

	// Window size as last reported to Layout
	screenWidth  int
	screenHeight int

	fontSource *text.GoTextFaceSource
	cachedFace *text.GoTextFace

	// 1x1 white image scaled and tinted to fill rectangles
	pixel *ebiten.Image

	// Warp circle texture, gameplay.WarpTextureWidth pixels wide
	warpTexture *ebiten.Image

	sounds *soundBank

	session *gameplay.Session
	saver   gameplay.Saver

	// Latest snapshot, drawn by Draw
	frame renderer.Frame

	// Intents polled during the current Update
	pending []engineinput.Intent

	keyRepeatState map[string]keyRepeatInfo
}

// New creates a new Ebiten renderer
func New(log *slog.Logger) *EbitenRenderer {
	return &EbitenRenderer{
		log:            log,
		tileSize:       defaultTileSize,
		screenWidth:    windowWidth,
		screenHeight:   windowHeight,
		keyRepeatState: make(map[string]keyRepeatInfo),
	}
}

// Init loads the font, builds the textures and opens the audio context
func (e *EbitenRenderer) Init() error {
	src, err := loadFont()
	if err != nil {
		return err
	}
	e.fontSource = src

	e.pixel = ebiten.NewImage(1, 1)
	e.pixel.Fill(color.White)
	e.warpTexture = newWarpTexture(gameplay.WarpTextureWidth)
	e.sounds = newSoundBank(e.log)

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("Lamp Cavern")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return nil
}

// Run starts the Ebiten game loop on s and blocks until the player quits or
// the window is closed
func (e *EbitenRenderer) Run(s *gameplay.Session, saver gameplay.Saver) error {
	e.session = s
	e.saver = saver
	e.RenderFrame(s)

	if err := ebiten.RunGame(e); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

// Update handles input and game logic (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	s := e.session
	if s == nil {
		return nil
	}

	e.pending = append(e.pending[:0], e.pollGamepad()...)
	e.pending = append(e.pending, e.pollKeyboard()...)

	for len(e.pending) > 0 {
		intent := e.GetInput()
		switch intent.Action {
		case engineinput.ActionZoomIn:
			e.tileSize = min(e.tileSize+tileSizeStep, maxTileSize)
		case engineinput.ActionZoomOut:
			e.tileSize = max(e.tileSize-tileSizeStep, minTileSize)
		default:
			s.ProcessIntent(intent, e.saver)
		}
		if s.Game.Quit {
			return ebiten.Termination
		}
	}

	s.Tick()
	e.sounds.Play(s.Game.DrainSounds())
	e.RenderFrame(s)
	return nil
}

// Layout returns the game's logical screen size
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.screenWidth, e.screenHeight = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// RenderFrame snapshots s for the next Draw
func (e *EbitenRenderer) RenderFrame(s *gameplay.Session) {
	cols, rows := e.GetViewportSize()
	e.frame = renderer.BuildFrame(s, cols, rows)
}

// GetInput returns the next intent polled this frame, or ActionNone
func (e *EbitenRenderer) GetInput() engineinput.Intent {
	if len(e.pending) == 0 {
		return engineinput.Intent{Action: engineinput.ActionNone}
	}
	intent := e.pending[0]
	e.pending = e.pending[1:]
	return intent
}

// GetViewportSize returns the map area in tiles, kept odd for centering
func (e *EbitenRenderer) GetViewportSize() (cols, rows int) {
	cols = max(e.screenWidth/e.tileSize, 3)
	rows = max((e.screenHeight-hudHeight)/e.tileSize, 3)
	if cols%2 == 0 {
		cols--
	}
	if rows%2 == 0 {
		rows--
	}
	return cols, rows
}
