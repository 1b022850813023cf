package objects

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// TextOverlayObject draws upper-cased text in the middle of the screen.
type TextOverlayObject struct {
	*BaseObject

	text string
	face font.Face
	// offsetY shifts the text down from the vertical center
	offsetY int
}

func NewTextOverlayObject(id string, text string, face font.Face, offsetY int) GameObject {
	return &TextOverlayObject{
		BaseObject: NewBaseObject(id, nil),
		text:       text,
		face:       face,
		offsetY:    offsetY,
	}
}

func (o *TextOverlayObject) Draw(screen *ebiten.Image) {
	t := strings.ToUpper(o.text)
	bounds, _ := font.BoundString(o.face, t)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(screen.Bounds().Dx())/2-float64(bounds.Max.X>>6)/2, float64(screen.Bounds().Dy())/2-float64(bounds.Min.Y>>6)/2+float64(o.offsetY))
	op.ColorScale.ScaleWithColor(color.White)
	text.DrawWithOptions(screen, t, o.face, op)
}
