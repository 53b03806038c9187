// Package text holds the player-facing strings, looked up by key through
// gotext from the embedded catalogues.
package text

import (
	_ "embed"
	"fmt"

	"github.com/leonelquinteros/gotext"
)

// Message keys
const (
	NoInventorySpace    = "NO_INVENTORY_SPACE"
	HandsFull           = "HANDS_FULL"
	GemDoesNotFit       = "GEM_DOES_NOT_FIT"
	PedestalEmpty       = "PEDESTAL_EMPTY"
	PuzzleAlreadySolved = "PUZZLE_ALREADY_SOLVED"
	PuzzleSolved        = "PUZZLE_SOLVED"
	PlacedGem           = "PLACED_GEM"
	TookGem             = "TOOK_GEM"
	HintRock            = "HINT_ROCK"
	LampRitual          = "LAMP_RITUAL"
	MinedOre            = "MINED_ORE"
	NothingHere         = "NOTHING_HERE"
	Inventory           = "INVENTORY"
	Location            = "LOCATION"
	Holding             = "HOLDING"
	EmptyHands          = "EMPTY_HANDS"
	SavedGame           = "SAVED_GAME"
	ScreenshotSaved     = "SCREENSHOT_SAVED"
	MapDumped           = "MAP_DUMPED"
)

//go:embed default.po
var defaultPo []byte

//go:embed fr.po
var frPo []byte

var catalogues = map[string][]byte{
	"en": defaultPo,
	"fr": frPo,
}

// english backs keys the selected language does not translate
var english = parse(defaultPo)

// Keys are looked up at runtime, so the lookups go through function values
// to keep vet's non-constant format string check quiet.
var (
	dynamicGet = gotext.Get
	englishGet = english.Get
)

func parse(data []byte) *gotext.Po {
	po := gotext.NewPo()
	po.Parse(data)
	return po
}

// Init selects the language used by Get. Unknown languages fall back to
// English.
func Init(lang string) {
	data, ok := catalogues[lang]
	if !ok {
		lang, data = "en", defaultPo
	}
	l := gotext.NewLocale("", lang)
	l.AddTranslator("default", parse(data))
	gotext.SetStorage(l)
}

// Languages returns the embedded language codes
func Languages() []string {
	return []string{"en", "fr"}
}

// Get returns the translation of key
func Get(key string, vars ...any) string {
	s := dynamicGet(key)
	if s == key {
		s = englishGet(key)
	}
	if len(vars) > 0 {
		return fmt.Sprintf(s, vars...)
	}
	return s
}
