package devtools

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"lampcavern/pkg/game/gameplay"
	"lampcavern/pkg/game/renderer"
)

// htmlGlyphs maps glyphs to an icon and a CSS class
var htmlGlyphs = map[renderer.Glyph][2]string{
	renderer.GlyphVoid:     {" ", "void"},
	renderer.GlyphFloor:    {".", "floor"},
	renderer.GlyphSand:     {"~", "sand"},
	renderer.GlyphWall:     {"▒", "wall"},
	renderer.GlyphPillar:   {"║", "pillar"},
	renderer.GlyphPedestal: {"□", "pedestal"},
	renderer.GlyphWarpPad:  {"○", "pad"},
	renderer.GlyphWarpOpen: {"◎", "warp"},
	renderer.GlyphHintRock: {"▲", "hint"},
	renderer.GlyphOre:      {"◆", "ore"},
	renderer.GlyphItem:     {"?", "item"},
	renderer.GlyphPlayer:   {"@", "player"},
}

// ScreenshotHTML renders a cols by rows view of the session as an HTML page
func ScreenshotHTML(s *gameplay.Session, cols, rows int) string {
	f := renderer.BuildFrame(s, cols, rows)

	var b strings.Builder
	b.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Lamp Cavern - Screenshot</title>
    <style>
        body { background-color: #1a161e; color: #eee; font-family: 'Courier New', monospace; padding: 20px; }
        .header { color: #bb86fc; font-size: 18px; margin-bottom: 10px; }
        .map-row { white-space: pre; line-height: 1.2; font-size: 16px; }
        .player { color: #00ff00; font-weight: bold; }
        .wall { color: #666; }
        .floor { color: #888; }
        .sand { color: #c4a46c; }
        .pillar { color: #967850; }
        .pedestal { color: #ccc; }
        .gem { color: #ff66ff; font-weight: bold; }
        .pad { color: #6a6a90; }
        .warp { color: #78c8ff; font-weight: bold; }
        .glow { background-color: #1c3040; }
        .hint { color: #6e6ea0; }
        .ore { color: #d07060; }
        .item { color: #bb86fc; }
        .void { color: #1a161e; }
        .message { color: #ccc; margin: 5px 0; }
        .error { color: #ff6464; }
    </style>
</head>
<body>
`)

	fmt.Fprintf(&b, "    <div class=\"header\">%s</div>\n", html.EscapeString(f.Location))
	for _, row := range f.Cells {
		b.WriteString(`    <div class="map-row">`)
		for _, c := range row {
			g := htmlGlyphs[c.Glyph]
			class := g[1]
			if c.Glyph == renderer.GlyphPedestal && c.Item != "" {
				class = "gem"
			}
			if c.Glow {
				class += " glow"
			}
			fmt.Fprintf(&b, `<span class="%s">%s</span>`, class, g[0])
		}
		b.WriteString("</div>\n")
	}

	names := make([]string, 0, len(f.Inventory))
	for _, slot := range f.Inventory {
		name := html.EscapeString(slot.Name)
		if slot.Active {
			name = "<b>" + name + "</b>"
		}
		names = append(names, name)
	}
	fmt.Fprintf(&b, "    <div class=\"message\">Inventory: %s</div>\n", strings.Join(names, ", "))

	for _, m := range f.Messages {
		class := "message"
		if m.Error {
			class += " error"
		}
		fmt.Fprintf(&b, "    <div class=\"%s\">%s</div>\n", class, html.EscapeString(m.Text))
	}
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

// SaveScreenshotHTML writes ScreenshotHTML to a timestamped file in dir and
// returns its path
func SaveScreenshotHTML(s *gameplay.Session, cols, rows int, dir string) (string, error) {
	name := fmt.Sprintf("screenshot-%s.html", time.Now().Format("20060102-150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(ScreenshotHTML(s, cols, rows)), 0o644); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}
