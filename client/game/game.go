package game

import (
	"fmt"
	"math/rand"

	"github.com/cbodonnell/arcade/client/flow"
	"github.com/cbodonnell/arcade/client/render"
	"github.com/cbodonnell/arcade/client/scenes"
	arcade "github.com/cbodonnell/arcade/pkg/game"
	"github.com/cbodonnell/arcade/pkg/game/constants"
	"github.com/cbodonnell/arcade/pkg/log"
	"github.com/cbodonnell/arcade/pkg/repositories"
	"github.com/cbodonnell/arcade/pkg/session"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// debug is a boolean value indicating whether debug mode is enabled.
	debug bool
	// render is shared by every scene.
	render *render.Context
	// repository stores the saved game.
	repository repositories.Repository
	// rng seeds each snake session.
	rng *rand.Rand
	// mode is the current game mode.
	mode flow.GameMode
	// scene is the current scene.
	scene scenes.Scene
}

type NewGameOptions struct {
	Debug      bool
	Render     *render.Context
	Repository repositories.Repository
	// Rand is optional.
	Rand *rand.Rand
}

func NewGame(opts NewGameOptions) (ebiten.Game, error) {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	g := &Game{
		debug:      opts.Debug,
		render:     opts.Render,
		repository: opts.Repository,
		rng:        rng,
	}

	if err := g.loadMenu(); err != nil {
		return nil, fmt.Errorf("failed to load menu scene: %v", err)
	}

	return g, nil
}

func (g *Game) SetScene(scene scenes.Scene) error {
	if g.scene != nil {
		if err := g.scene.Destroy(); err != nil {
			return fmt.Errorf("failed to destroy previous scene: %v", err)
		}
	}

	g.scene = scene
	if err := g.scene.Init(); err != nil {
		return fmt.Errorf("failed to initialize scene: %v", err)
	}

	return nil
}

// transition moves to the mode that follows trigger and loads its scene.
func (g *Game) transition(trigger flow.Trigger, summary string) error {
	next := g.mode.Next(trigger)
	if next == g.mode {
		return nil
	}
	log.Debug("Transitioning from %s to %s on %s", g.mode, next, trigger)

	switch next {
	case flow.GameModeMenu:
		return g.loadMenu()
	case flow.GameModeSnake:
		return g.loadSnake()
	case flow.GameModeTicTacToe:
		return g.loadTicTacToe()
	case flow.GameModeOver:
		return g.loadGameOver(summary)
	case flow.GameModeExiting:
		g.mode = flow.GameModeExiting
	}
	return nil
}

func (g *Game) loadMenu() error {
	menu, err := scenes.NewMenuScene(scenes.MenuSceneOptions{
		Render: g.render,
		OnSelect: func(trigger flow.Trigger) error {
			return g.transition(trigger, "")
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create menu scene: %v", err)
	}
	if err := g.SetScene(menu); err != nil {
		return fmt.Errorf("failed to set menu scene: %v", err)
	}
	g.mode = flow.GameModeMenu
	return nil
}

// onSessionEnd maps a finished session onto the flow.
func (g *Game) onSessionEnd(status session.Status, summary string) error {
	log.Info("Session ended: %s", status)
	if status == session.StatusOver {
		return g.transition(flow.TriggerGameOver, summary)
	}
	return g.transition(flow.TriggerQuit, summary)
}

func (g *Game) loadSnake() error {
	snakeScene, err := scenes.NewSnakeScene(scenes.SnakeSceneOptions{
		Render: g.render,
		Game: arcade.NewSnakeGame(arcade.NewSnakeGameOptions{
			Bounds: g.render.Bounds,
			Rand:   rand.New(rand.NewSource(g.rng.Int63())),
		}),
		Repository: g.repository,
		OnEnd:      g.onSessionEnd,
	})
	if err != nil {
		return fmt.Errorf("failed to create snake scene: %v", err)
	}
	if err := g.SetScene(snakeScene); err != nil {
		return fmt.Errorf("failed to set snake scene: %v", err)
	}
	g.mode = flow.GameModeSnake
	return nil
}

func (g *Game) loadTicTacToe() error {
	ticTacToeScene, err := scenes.NewTicTacToeScene(scenes.TicTacToeSceneOptions{
		Render:     g.render,
		Game:       arcade.NewTicTacToeGame(),
		Repository: g.repository,
		OnEnd:      g.onSessionEnd,
	})
	if err != nil {
		return fmt.Errorf("failed to create tic-tac-toe scene: %v", err)
	}
	if err := g.SetScene(ticTacToeScene); err != nil {
		return fmt.Errorf("failed to set tic-tac-toe scene: %v", err)
	}
	g.mode = flow.GameModeTicTacToe
	return nil
}

func (g *Game) loadGameOver(summary string) error {
	gameOver, err := scenes.NewGameOverScene(scenes.GameOverSceneOptions{
		Render:  g.render,
		Summary: summary,
		OnDismiss: func() error {
			return g.transition(flow.TriggerDismiss, "")
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create game over scene: %v", err)
	}
	if err := g.SetScene(gameOver); err != nil {
		return fmt.Errorf("failed to set game over scene: %v", err)
	}
	g.mode = flow.GameModeOver
	return nil
}

func (g *Game) Update() error {
	if g.mode == flow.GameModeExiting {
		return ebiten.Termination
	}

	// Update the current scene
	if err := g.scene.Update(); err != nil {
		return fmt.Errorf("failed to update scene: %v", err)
	}

	if g.mode == flow.GameModeExiting {
		log.Info("Exiting")
		return ebiten.Termination
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.debug {
		g.drawDebugOverlay(screen)
	}
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %0.1f", ebiten.ActualFPS()), constants.ScreenWidth-100, 0)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %0.1f", ebiten.ActualTPS()), constants.ScreenWidth-100, 16)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Mode: %s", g.mode), constants.ScreenWidth-100, 32)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return constants.ScreenWidth, constants.ScreenHeight
}
