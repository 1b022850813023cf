package scenes

import (
	"context"
	"fmt"

	"github.com/cbodonnell/arcade/client/input"
	"github.com/cbodonnell/arcade/client/render"
	"github.com/cbodonnell/arcade/pkg/game"
	"github.com/cbodonnell/arcade/pkg/game/constants"
	"github.com/cbodonnell/arcade/pkg/repositories"
	"github.com/cbodonnell/arcade/pkg/session"
	"github.com/hajimehoshi/ebiten/v2"
)

// SnakeScene runs one snake session.
type SnakeScene struct {
	*BaseScene

	game       *game.SnakeGame
	controller *session.Controller
	onEnd      func(status session.Status, summary string) error
}

type SnakeSceneOptions struct {
	Render     *render.Context
	Game       *game.SnakeGame
	Repository repositories.Repository
	// OnEnd is called once when the session is over or quit.
	OnEnd func(status session.Status, summary string) error
}

var _ Scene = &SnakeScene{}

func NewSnakeScene(opts SnakeSceneOptions) (Scene, error) {
	if opts.Game == nil {
		return nil, fmt.Errorf("snake game is required")
	}

	s := &SnakeScene{
		BaseScene: NewBaseScene("snake-root", opts.Render),
		game:      opts.Game,
		onEnd:     opts.OnEnd,
	}
	s.controller = session.NewController(session.NewControllerOptions{
		Game:          opts.Game,
		Repository:    opts.Repository,
		Notifier:      s.BaseScene,
		StepInterval:  constants.SnakeStepInterval,
		NoticeTicks:   constants.NoticeTicks,
		EndOnGameOver: true,
	})
	return s, nil
}

func (s *SnakeScene) Init() error {
	s.controller.Start(context.Background())
	return s.BaseScene.Init()
}

func (s *SnakeScene) Update() error {
	ctx := context.Background()
	for _, a := range input.Actions(input.SnakeBindings, false) {
		s.controller.HandleAction(ctx, a)
	}

	if status := s.controller.Tick(); status != session.StatusRunning {
		return s.onEnd(status, fmt.Sprintf("Score: %d", s.game.State().Score()))
	}

	return s.BaseScene.Update()
}

func (s *SnakeScene) Draw(screen *ebiten.Image) {
	screen.Fill(render.ColorBlack)

	state := s.game.State()
	for _, pos := range state.Body() {
		s.render.DrawCell(screen, pos, render.ColorGreen)
	}
	s.render.DrawCell(screen, state.Food(), render.ColorRed)
	if obstacle, ok := state.Obstacle(); ok {
		s.render.DrawCell(screen, obstacle, render.ColorBlue)
	}
	s.render.DrawText(screen, fmt.Sprintf("Score: %d", state.Score()), s.render.Fonts.Small, 10, 10, render.ColorWhite)

	s.BaseScene.Draw(screen)
}
