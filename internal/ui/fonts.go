// internal/ui/fonts.go
package ui

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/rparrett/taipo/internal/config"
)

// Faces bundles the font faces the UI draws with.
type Faces struct {
	Label font.Face
	Input font.Face
}

// LoadFaces builds the UI faces. If a font file is present under
// assets/fonts it is used (kana prompts need a font with kana coverage);
// otherwise the bundled Go font serves for plain word lists.
func LoadFaces(path string) (*Faces, error) {
	data := goregular.TTF
	if path != "" {
		if fileData, err := os.ReadFile(path); err == nil {
			data = fileData
		}
	}

	tt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}

	label, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    config.FontSizeLabel,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("creating label face: %w", err)
	}
	input, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    config.FontSizeInput,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("creating input face: %w", err)
	}

	return &Faces{Label: label, Input: input}, nil
}
