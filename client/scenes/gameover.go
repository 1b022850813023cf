package scenes

import (
	"github.com/cbodonnell/arcade/client/input"
	"github.com/cbodonnell/arcade/client/objects"
	"github.com/cbodonnell/arcade/client/render"
	"github.com/cbodonnell/arcade/pkg/game/constants"
	"github.com/hajimehoshi/ebiten/v2"
)

// GameOverScene shows the final result until dismissed or timed out.
type GameOverScene struct {
	*BaseScene

	summary   string
	ticks     int
	onDismiss func() error
}

type GameOverSceneOptions struct {
	Render *render.Context
	// Summary is shown under the title, e.g. the final score.
	Summary string
	// OnDismiss is called on a positive press, quit, or after the display times out.
	OnDismiss func() error
}

var _ Scene = &GameOverScene{}

func NewGameOverScene(opts GameOverSceneOptions) (Scene, error) {
	return &GameOverScene{
		BaseScene: NewBaseScene("gameover-root", opts.Render),
		summary:   opts.Summary,
		onDismiss: opts.OnDismiss,
	}, nil
}

func (s *GameOverScene) Init() error {
	if err := s.Root.AddChild(objects.NewTextOverlayObject("overlay-gameover", "Game Over!", s.render.Fonts.Large, 0)); err != nil {
		return err
	}
	if s.summary != "" {
		if err := s.Root.AddChild(objects.NewTextOverlayObject("overlay-summary", s.summary, s.render.Fonts.Normal, 50)); err != nil {
			return err
		}
	}
	return s.BaseScene.Init()
}

func (s *GameOverScene) Update() error {
	s.ticks++
	if s.ticks >= constants.GameOverTicks || input.IsPositiveJustPressed() || input.IsQuitRequested() {
		return s.onDismiss()
	}
	return s.BaseScene.Update()
}

func (s *GameOverScene) Draw(screen *ebiten.Image) {
	screen.Fill(render.ColorBlack)
	s.BaseScene.Draw(screen)
}
