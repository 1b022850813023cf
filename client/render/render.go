package render

import (
	"image/color"

	"github.com/cbodonnell/arcade/client/fonts"
	"github.com/cbodonnell/arcade/pkg/game/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var (
	ColorWhite = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ColorBlack = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	ColorGreen = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	ColorRed   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	ColorBlue  = color.RGBA{R: 0, G: 0, B: 255, A: 255}
)

// Context carries what scenes need to draw: fonts and the play field.
type Context struct {
	Fonts  *fonts.Fonts
	Bounds types.Bounds
}

func NewContext(fonts *fonts.Fonts, bounds types.Bounds) *Context {
	return &Context{
		Fonts:  fonts,
		Bounds: bounds,
	}
}

// DrawCell fills the grid cell whose top-left corner is pos.
func (c *Context) DrawCell(screen *ebiten.Image, pos types.Position, clr color.Color) {
	size := float32(c.Bounds.CellSize)
	vector.DrawFilledRect(screen, float32(pos.X), float32(pos.Y), size, size, clr, false)
}

// StrokeRect outlines a rectangle.
func (c *Context) StrokeRect(screen *ebiten.Image, x, y, w, h int, width float32, clr color.Color) {
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), width, clr, false)
}

// DrawText draws msg with its top-left corner at x, y.
func (c *Context) DrawText(screen *ebiten.Image, msg string, face font.Face, x, y int, clr color.Color) {
	text.Draw(screen, msg, face, x, y+face.Metrics().Ascent.Ceil(), clr)
}
