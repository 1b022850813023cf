package scenes

import (
	"context"
	"fmt"

	"github.com/cbodonnell/arcade/client/input"
	"github.com/cbodonnell/arcade/client/render"
	"github.com/cbodonnell/arcade/pkg/game"
	"github.com/cbodonnell/arcade/pkg/game/constants"
	"github.com/cbodonnell/arcade/pkg/game/tictactoe"
	"github.com/cbodonnell/arcade/pkg/repositories"
	"github.com/cbodonnell/arcade/pkg/session"
	"github.com/hajimehoshi/ebiten/v2"
)

// TicTacToeScene runs one tic-tac-toe session. A finished game stays on
// screen with its result until the player resets or quits.
type TicTacToeScene struct {
	*BaseScene

	game       *game.TicTacToeGame
	controller *session.Controller
	onEnd      func(status session.Status, summary string) error
}

type TicTacToeSceneOptions struct {
	Render     *render.Context
	Game       *game.TicTacToeGame
	Repository repositories.Repository
	// OnEnd is called once when the session is quit.
	OnEnd func(status session.Status, summary string) error
}

var _ Scene = &TicTacToeScene{}

func NewTicTacToeScene(opts TicTacToeSceneOptions) (Scene, error) {
	if opts.Game == nil {
		return nil, fmt.Errorf("tic-tac-toe game is required")
	}

	s := &TicTacToeScene{
		BaseScene: NewBaseScene("tictactoe-root", opts.Render),
		game:      opts.Game,
		onEnd:     opts.OnEnd,
	}
	s.controller = session.NewController(session.NewControllerOptions{
		Game:        opts.Game,
		Repository:  opts.Repository,
		Notifier:    s.BaseScene,
		NoticeTicks: constants.NoticeTicks,
	})
	return s, nil
}

func (s *TicTacToeScene) Init() error {
	s.controller.Start(context.Background())
	return s.BaseScene.Init()
}

func (s *TicTacToeScene) Update() error {
	ctx := context.Background()
	for _, a := range input.Actions(input.TicTacToeBindings, true) {
		s.controller.HandleAction(ctx, a)
	}

	if status := s.controller.Tick(); status != session.StatusRunning {
		return s.onEnd(status, s.result())
	}

	return s.BaseScene.Update()
}

func (s *TicTacToeScene) result() string {
	state := s.game.State()
	if !state.IsOver() {
		return ""
	}
	if winner := state.Winner(); winner != tictactoe.Empty {
		return fmt.Sprintf("Player %s wins!", winner)
	}
	return "It's a Tie!"
}

func (s *TicTacToeScene) Draw(screen *ebiten.Image) {
	screen.Fill(render.ColorBlack)

	size := s.game.CellSize()
	board := s.game.State().Board()
	for row := range board {
		for col, mark := range board[row] {
			x, y := col*size, row*size
			s.render.StrokeRect(screen, x, y, size, size, 2, render.ColorWhite)
			if mark != tictactoe.Empty {
				s.render.DrawText(screen, string(mark), s.render.Fonts.Normal, x+constants.GridSize, y+constants.GridSize, render.ColorWhite)
			}
		}
	}

	if result := s.result(); result != "" {
		s.render.DrawText(screen, result, s.render.Fonts.Normal, constants.ScreenWidth/4, constants.ScreenHeight/3, render.ColorWhite)
	}

	s.BaseScene.Draw(screen)
}
