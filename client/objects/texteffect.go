package objects

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// TextEffect is text drawn for a fixed number of ticks. It removes
// itself from its parent when the ticks run out.
type TextEffect struct {
	*BaseObject

	text  string
	face  font.Face
	x     int
	y     int
	color color.Color
	ttl   int
}

type NewTextEffectOptions struct {
	// Text is the text to display.
	Text string
	// Face is the font face used to draw the text.
	Face font.Face
	// X is the x-coordinate of the top-left corner of the text.
	X int
	// Y is the y-coordinate of the top-left corner of the text.
	Y int
	// Color is the color of the text.
	Color color.Color
	// TTL is the time to live in ticks. Zero keeps the text until removed.
	TTL int
	// ZIndex is the z-index of the text effect.
	ZIndex int
}

func NewTextEffect(id string, opts NewTextEffectOptions) *TextEffect {
	clr := opts.Color
	if clr == nil {
		clr = color.White
	}

	baseObjectOpts := &NewBaseObjectOpts{
		ZIndex: opts.ZIndex,
	}

	return &TextEffect{
		BaseObject: NewBaseObject(id, baseObjectOpts),
		text:       opts.Text,
		face:       opts.Face,
		x:          opts.X,
		y:          opts.Y,
		color:      clr,
		ttl:        opts.TTL,
	}
}

func (o *TextEffect) Update() error {
	if o.ttl > 0 {
		o.ttl--
		if o.ttl == 0 {
			if err := o.BaseObject.RemoveFromParent(); err != nil {
				return fmt.Errorf("failed to remove text effect from parent: %w", err)
			}
		}
	}
	return nil
}

func (o *TextEffect) Draw(screen *ebiten.Image) {
	text.Draw(screen, o.text, o.face, o.x, o.y+o.face.Metrics().Ascent.Ceil(), o.color)
}
