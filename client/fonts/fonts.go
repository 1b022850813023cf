package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const dpi = 72

// Fonts holds the faces used across scenes.
type Fonts struct {
	// Small is used for notices and in-game labels.
	Small font.Face
	// Normal is used for menu entries and board marks.
	Normal font.Face
	// Large is used for titles and the game over overlay.
	Large font.Face
}

func Load() (*Fonts, error) {
	ttfFont, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %v", err)
	}

	tt, err := opentype.Parse(fonts.MPlus1pRegular_ttf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %v", err)
	}
	large, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    48,
		DPI:     dpi,
		Hinting: font.HintingVertical,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %v", err)
	}

	return &Fonts{
		Small: truetype.NewFace(ttfFont, &truetype.Options{
			Size:    18,
			DPI:     dpi,
			Hinting: font.HintingFull,
		}),
		Normal: truetype.NewFace(ttfFont, &truetype.Options{
			Size:    24,
			DPI:     dpi,
			Hinting: font.HintingFull,
		}),
		Large: large,
	}, nil
}
