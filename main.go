package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"lampcavern/pkg/engine/input"
	"lampcavern/pkg/engine/logging"
	"lampcavern/pkg/engine/store"
	"lampcavern/pkg/engine/terminal"
	"lampcavern/pkg/game/config"
	"lampcavern/pkg/game/devtools"
	"lampcavern/pkg/game/gameplay"
	"lampcavern/pkg/game/renderer"
	ebitenrenderer "lampcavern/pkg/game/renderer/ebiten"
	"lampcavern/pkg/game/renderer/tui"
	"lampcavern/pkg/game/setup"
	"lampcavern/pkg/game/state"
	"lampcavern/pkg/game/text"
)

// fileSaver saves the player and every location store to one file
type fileSaver struct {
	g    *state.Game
	path string
}

func (f *fileSaver) Save() error {
	f.g.StorePlayer()
	return f.g.Book.Save(f.path)
}

// loadBook reads the save file, starting fresh when there is none
func loadBook(path string, log *slog.Logger) *store.Book {
	book, err := store.Load(path)
	switch {
	case err == nil:
		log.Info("loaded save", "path", path, "locations", len(book.Names()))
	case errors.Is(err, os.ErrNotExist):
		log.Debug("no save file, starting a new game", "path", path)
	default:
		log.Warn("could not read save file, starting a new game", "path", path, "err", err)
	}
	return book
}

// buildGame creates the game from book, restoring the saved player or
// starting a new game
func buildGame(book *store.Book, cfg *config.Config, log *slog.Logger) (*state.Game, setup.Start) {
	g := state.NewGame(book, setup.Catalog(cfg))
	setup.RegisterLocations(g, cfg, log)

	if g.RestorePlayer() {
		return g, setup.Start{Location: g.Player.Location, Tile: g.Player.Pos}
	}
	return g, setup.NewGame(g, cfg, log)
}

// mainLoop runs a blocking renderer until the player quits
func mainLoop(s *gameplay.Session, saver gameplay.Saver) {
	for !s.Game.Quit {
		renderer.RenderFrame(s)
		s.ProcessIntent(renderer.GetInput(), saver)
	}
}

func main() {
	rendererName := flag.String("renderer", "tui", "renderer backend: tui or ebiten")
	configPath := flag.String("config", "", "config file (yaml, toml or json)")
	savePath := flag.String("save", "lampcavern-save.json", "save file")
	newGame := flag.Bool("new", false, "ignore the save file and start a new game")
	seed := flag.Int64("seed", 0, "random seed for ore placement (0 = time based)")
	lang := flag.String("lang", "", "HUD language, overrides the config")
	dump := flag.String("dump", "", "print a marker dump of the named location and exit")
	devDir := flag.String("devdir", ".", "directory for screenshots (F12) and map dumps (F8)")
	flag.Parse()

	cfg, cfgErr := config.Load(*configPath)
	log := logging.New(os.Stderr, logging.ParseLevel(cfg.LogLevel), terminal.IsInteractive())
	if cfgErr != nil {
		log.Warn("using default configuration", "err", cfgErr)
	}

	if err := input.Rebind(cfg.Keys); err != nil {
		log.Warn("ignoring key overrides", "err", err)
	}

	language := cfg.Language
	if *lang != "" {
		language = *lang
	}
	text.Init(language)

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Debug("random source", "seed", *seed)

	book := store.NewBook()
	if !*newGame {
		book = loadBook(*savePath, log)
	}
	g, start := buildGame(book, cfg, log)

	s := gameplay.NewSession(g, cfg, rand.New(rand.NewSource(*seed)), g.Catalog, log)
	s.Tools = devtools.Tools{Dir: *devDir}
	s.Start(start.Location, start.Tile)

	if *dump != "" {
		if *dump != start.Location {
			s.EnterLocation(*dump)
		}
		loc := g.Location(*dump)
		if loc == nil {
			fmt.Fprintf(os.Stderr, "unknown location %q\n", *dump)
			os.Exit(1)
		}
		if err := devtools.DumpLocation(os.Stdout, loc, g.Player, terminal.IsInteractive()); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	saver := &fileSaver{g: g, path: *savePath}

	switch *rendererName {
	case "ebiten":
		e := ebitenrenderer.New(log.With("system", "ebiten"))
		if err := e.Init(); err != nil {
			log.Error("init renderer", "err", err)
			os.Exit(1)
		}
		renderer.SetRenderer(e)
		if err := e.Run(s, saver); err != nil {
			log.Error("renderer stopped", "err", err)
		}
	case "tui":
		t := tui.New()
		if err := t.Init(); err != nil {
			log.Error("init renderer", "err", err)
			os.Exit(1)
		}
		renderer.SetRenderer(t)
		mainLoop(s, saver)
	default:
		fmt.Fprintf(os.Stderr, "unknown renderer %q (want tui or ebiten)\n", *rendererName)
		os.Exit(2)
	}

	if err := saver.Save(); err != nil {
		log.Error("save on exit failed", "err", err)
		os.Exit(1)
	}
	log.Info("saved", "path", *savePath)
}
