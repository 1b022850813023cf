package scenes

import (
	"image/color"

	"github.com/cbodonnell/arcade/client/flow"
	"github.com/cbodonnell/arcade/client/input"
	"github.com/cbodonnell/arcade/client/render"
	"github.com/cbodonnell/arcade/pkg/log"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

type MenuScene struct {
	*BaseScene

	onSelect func(trigger flow.Trigger) error
	ui       *ebitenui.UI
	// selected is set by button handlers and consumed in Update
	selected *flow.Trigger
}

type MenuSceneOptions struct {
	Render *render.Context
	// OnSelect is called with the menu choice: a game selection or quit.
	OnSelect func(trigger flow.Trigger) error
}

var _ Scene = &MenuScene{}

func NewMenuScene(opts MenuSceneOptions) (Scene, error) {
	return &MenuScene{
		BaseScene: NewBaseScene("menu-root", opts.Render),
		onSelect:  opts.OnSelect,
	}, nil
}

func (s *MenuScene) Init() error {
	s.renderUI()
	return s.BaseScene.Init()
}

var (
	menuTextColor     = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	menuDisabledColor = color.NRGBA{R: 200, G: 200, B: 200, A: 255}
	menuButtonImage   = &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(color.NRGBA{R: 40, G: 110, B: 40, A: 255}),
		Hover:   image.NewNineSliceColor(color.NRGBA{R: 30, G: 150, B: 30, A: 255}),
		Pressed: image.NewNineSliceColor(color.NRGBA{R: 20, G: 80, B: 20, A: 255}),
	}
)

func (s *MenuScene) renderUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(16),
			widget.RowLayoutOpts.Padding(widget.Insets{
				Top:   160,
				Left:  150,
				Right: 150,
			}))),
	)

	rootContainer.AddChild(widget.NewText(
		widget.TextOpts.Text("Select a Game:", s.render.Fonts.Large, menuTextColor),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
	))

	rootContainer.AddChild(s.newGameButton("1. Snake", flow.TriggerSelectSnake))
	rootContainer.AddChild(s.newGameButton("2. Tic-Tac-Toe", flow.TriggerSelectTicTacToe))

	s.ui = &ebitenui.UI{
		Container: rootContainer,
	}
}

// newGameButton creates a full-width button that selects trigger when clicked.
func (s *MenuScene) newGameButton(label string, trigger flow.Trigger) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
				Stretch:  true,
			}),
		),
		widget.ButtonOpts.Image(menuButtonImage),
		widget.ButtonOpts.Text(label, s.render.Fonts.Normal, &widget.ButtonTextColor{
			Idle:     menuTextColor,
			Disabled: menuDisabledColor,
		}),
		widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(8)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			s.selected = &trigger
		}),
	)
}

func (s *MenuScene) Update() error {
	s.ui.Update()

	trigger, ok := input.MenuTrigger()
	if !ok && s.selected != nil {
		trigger, ok = *s.selected, true
	}
	s.selected = nil
	if ok {
		log.Debug("Menu selected %s", trigger)
		return s.onSelect(trigger)
	}

	return s.BaseScene.Update()
}

func (s *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(render.ColorBlack)
	s.ui.Draw(screen)
	s.BaseScene.Draw(screen)
}
