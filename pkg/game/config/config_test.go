package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefault_Valid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v, want nil", err)
	}
	if len(cfg.MainOres) != 4 {
		t.Errorf("len(MainOres) = %d, want 4", len(cfg.MainOres))
	}
	if got := cfg.SpriteSize(); got != 256 {
		t.Errorf("SpriteSize() = %d, want 256", got)
	}
	if cfg.DefaultWarp.Location != "Whispers_SecondCavern" || cfg.DefaultWarp.X != 8 || cfg.DefaultWarp.Y != 8 {
		t.Errorf("DefaultWarp = %+v, want Whispers_SecondCavern@8,8", cfg.DefaultWarp)
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") err = %v", err)
	}
	if cfg.OreCavern != Default().OreCavern {
		t.Errorf("OreCavern = %q, want default", cfg.OreCavern)
	}
}

func TestLoad_YAMLOverlay(t *testing.T) {
	path := writeConfig(t, "cavern.yaml", `
pedestal_cavern: Test_Cavern
draw_offset_y: -40
default_warp:
  location: Elsewhere
  x: 3
  y: 4
sounds:
  departure: whoosh
keys:
  save: p
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.PedestalCavern != "Test_Cavern" {
		t.Errorf("PedestalCavern = %q, want Test_Cavern", cfg.PedestalCavern)
	}
	if cfg.DrawOffsetY != -40 {
		t.Errorf("DrawOffsetY = %d, want -40", cfg.DrawOffsetY)
	}
	if cfg.DefaultWarp != (Warp{Location: "Elsewhere", X: 3, Y: 4}) {
		t.Errorf("DefaultWarp = %+v", cfg.DefaultWarp)
	}
	if cfg.Sounds.Departure != "whoosh" {
		t.Errorf("Sounds.Departure = %q, want whoosh", cfg.Sounds.Departure)
	}
	if cfg.Keys["save"] != "p" {
		t.Errorf("Keys = %v, want save: p", cfg.Keys)
	}
	// untouched keys keep defaults
	if cfg.OreCavern != "Whispers_DesertCavern" {
		t.Errorf("OreCavern = %q, want default", cfg.OreCavern)
	}
	if cfg.Sounds.Cancel != "cancel" {
		t.Errorf("Sounds.Cancel = %q, want default", cfg.Sounds.Cancel)
	}
}

func TestLoad_Missing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want os.ErrNotExist", err)
	}
	if cfg == nil {
		t.Fatal("cfg = nil, want defaults")
	}
}

func TestLoad_InvalidOrder(t *testing.T) {
	path := writeConfig(t, "bad.yaml", "required_order: [\"(O)68\", \"(O)62\"]\n")
	if _, err := Load(path); err == nil {
		t.Error("Load with 2 required kinds err = nil, want error")
	}
}

func TestLoad_ListsReplaceDefaults(t *testing.T) {
	path := writeConfig(t, "lists.yaml", `
main_ores: ["(O)A"]
extra_locations: []
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.MainOres) != 1 || cfg.MainOres[0] != "(O)A" {
		t.Errorf("MainOres = %v, want [(O)A]", cfg.MainOres)
	}
	if len(cfg.ExtraLocations) != 0 {
		t.Errorf("ExtraLocations = %v, want empty", cfg.ExtraLocations)
	}
	if len(cfg.RequiredOrder) != 4 {
		t.Errorf("RequiredOrder = %v, want the default 4 kinds", cfg.RequiredOrder)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"no main ores", func(c *Config) { c.MainOres = nil }},
		{"short order", func(c *Config) { c.RequiredOrder = c.RequiredOrder[:3] }},
		{"no tile size", func(c *Config) { c.TileSize = 0 }},
		{"no sprite tiles", func(c *Config) { c.WarpSpriteTiles = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 26, Y: 139, Width: 9, Height: 7}
	tests := []struct {
		x, y int
		want bool
	}{
		{26, 139, true},
		{34, 145, true},
		{35, 145, false},
		{30, 146, false},
		{25, 140, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestDropFor(t *testing.T) {
	cfg := Default()
	tests := []struct {
		kind   string
		want   string
		wantOK bool
	}{
		{"(O)LampStone_Topaz", "(O)68", true},
		{"(O)LampStone_Obsidian", "(O)575", true},
		{"(O)670", "(O)390", true},
		{"(O)999", "", false},
	}
	for _, tt := range tests {
		got, ok := cfg.DropFor(tt.kind)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("DropFor(%s) = %q, %v, want %q, %v", tt.kind, got, ok, tt.want, tt.wantOK)
		}
	}
}
