// cmd/game/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/rparrett/taipo/internal/app"
	"github.com/rparrett/taipo/internal/config"
	"github.com/rparrett/taipo/internal/defs"
	"github.com/rparrett/taipo/internal/lexicon"
	"github.com/rparrett/taipo/internal/state"
	"github.com/rparrett/taipo/internal/ui"
)

func main() {
	dataDir := flag.String("data", "assets/data", "definition override directory")
	wordsDir := flag.String("words", "assets/words", "word list directory")
	fontPath := flag.String("font", "assets/fonts/game.ttf", "ui font (needs kana coverage for kana word lists)")
	flag.Parse()

	lib, err := defs.LoadAll(*dataDir)
	if err != nil {
		log.Fatalf("loading definitions: %v", err)
	}

	phrases, err := loadPhrases(*wordsDir)
	if err != nil {
		log.Fatalf("loading word lists: %v", err)
	}
	if len(phrases) == 0 {
		log.Fatal("no word lists found, nothing to type")
	}

	faces, err := ui.LoadFaces(*fontPath)
	if err != nil {
		log.Fatalf("loading fonts: %v", err)
	}

	res := state.Resources{
		Lib:   lib,
		Faces: faces,
		NewPool: func() *lexicon.Pool {
			return lexicon.NewPool(phrases)
		},
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("taipo")
	if err := ebiten.RunGame(app.New(res)); err != nil {
		log.Fatal(err)
	}
}

// loadPhrases reads every word list under dir. Files ending in .jp.txt are
// kana lists typed as romaji; plain .txt files are typed as written.
func loadPhrases(dir string) ([]lexicon.Phrase, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return nil, err
	}

	var phrases []lexicon.Phrase
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", path, err)
		}

		var parsed []lexicon.Phrase
		if strings.HasSuffix(path, ".jp.txt") {
			parsed, err = lexicon.ParseKana(f)
		} else {
			parsed, err = lexicon.ParsePlain(f)
		}
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		phrases = append(phrases, parsed...)
	}
	return phrases, nil
}
