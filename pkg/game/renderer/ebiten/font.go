package ebiten

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
)

// loadFont parses the embedded Go Mono font
func loadFont() (*text.GoTextFaceSource, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return src, nil
}

// getFontFace returns a cached face for the HUD
func (e *EbitenRenderer) getFontFace() *text.GoTextFace {
	if e.cachedFace == nil {
		e.cachedFace = &text.GoTextFace{Source: e.fontSource, Size: fontSize}
	}
	return e.cachedFace
}

// drawText draws str with its top-left corner at x, y
func (e *EbitenRenderer) drawText(screen *ebiten.Image, str string, x, y float64, col color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, str, e.getFontFace(), op)
}

// lineHeight returns the HUD line spacing
func (e *EbitenRenderer) lineHeight() float64 {
	return fontSize * 1.4
}
