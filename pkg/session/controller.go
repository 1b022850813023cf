package session

import (
	"context"
	"fmt"

	"github.com/cbodonnell/arcade/pkg/log"
	"github.com/cbodonnell/arcade/pkg/repositories"
)

type Status int

const (
	StatusRunning Status = iota
	// StatusOver means the game ended and the game over display should follow.
	StatusOver
	// StatusQuit means the player left the session.
	StatusQuit
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "Running"
	case StatusOver:
		return "Over"
	case StatusQuit:
		return "Quit"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Controller drives one play session of a Playable.
type Controller struct {
	game          Playable
	repository    repositories.Repository
	notifier      Notifier
	stepInterval  int
	noticeTicks   int
	endOnGameOver bool

	ticks       int
	pausedTicks int
	status      Status
}

// NewControllerOptions contains options for creating a new Controller.
type NewControllerOptions struct {
	Game       Playable
	Repository repositories.Repository
	// Notifier is optional
	Notifier Notifier
	// StepInterval is the number of ticks between game steps. Defaults to 1.
	StepInterval int
	// NoticeTicks is how long a failed load pauses the simulation.
	NoticeTicks int
	// EndOnGameOver ends the session as soon as the game is over.
	EndOnGameOver bool
}

func NewController(opts NewControllerOptions) *Controller {
	stepInterval := opts.StepInterval
	if stepInterval < 1 {
		stepInterval = 1
	}
	notifier := opts.Notifier
	if notifier == nil {
		notifier = NotifierFunc(func(string, int) {})
	}
	return &Controller{
		game:          opts.Game,
		repository:    opts.Repository,
		notifier:      notifier,
		stepInterval:  stepInterval,
		noticeTicks:   opts.NoticeTicks,
		endOnGameOver: opts.EndOnGameOver,
	}
}

// Start resumes a saved game of the same type if there is one. Any
// failure falls back to the fresh game that is already in place.
func (c *Controller) Start(ctx context.Context) {
	c.ticks = 0
	c.pausedTicks = 0
	c.status = StatusRunning

	if err := c.restoreSaved(ctx); err != nil {
		log.Debug("Starting a new %s game: %v", c.game.Name(), err)
		return
	}
	log.Info("Resumed saved %s game", c.game.Name())
}

func (c *Controller) Game() Playable {
	return c.game
}

func (c *Controller) Status() Status {
	return c.status
}

// Paused reports whether the simulation is held by a notice.
func (c *Controller) Paused() bool {
	return c.pausedTicks > 0
}

// HandleAction applies one player action.
func (c *Controller) HandleAction(ctx context.Context, a Action) {
	if c.status != StatusRunning {
		return
	}

	switch a.Type {
	case ActionQuit:
		c.status = StatusQuit
	case ActionSave:
		c.save(ctx)
	case ActionLoad:
		c.load(ctx)
	case ActionReset:
		c.game.Reset()
		c.pausedTicks = 0
		log.Debug("Reset %s game", c.game.Name())
	default:
		if c.Paused() {
			return
		}
		c.game.HandleAction(a)
	}
}

// Tick advances the session by one frame and returns its status.
func (c *Controller) Tick() Status {
	if c.status != StatusRunning {
		return c.status
	}

	if c.pausedTicks > 0 {
		c.pausedTicks--
		return c.status
	}

	c.ticks++
	if c.ticks >= c.stepInterval {
		c.ticks = 0
		c.game.Step()
	}

	if c.endOnGameOver && c.game.IsOver() {
		c.status = StatusOver
	}
	return c.status
}

func (c *Controller) save(ctx context.Context) {
	if err := c.repository.SaveGameRecord(ctx, c.game.Snapshot()); err != nil {
		log.Error("Failed to save %s game: %v", c.game.Name(), err)
		c.notifier.Notify(fmt.Sprintf("Error saving %s game!", c.game.Name()), c.noticeTicks)
		return
	}
	log.Info("Game saved successfully!")
}

func (c *Controller) load(ctx context.Context) {
	if err := c.restoreSaved(ctx); err != nil {
		log.Warn("Failed to load %s game: %v", c.game.Name(), err)
		c.notifier.Notify(fmt.Sprintf("No saved %s game found!", c.game.Name()), c.noticeTicks)
		c.pausedTicks = c.noticeTicks
		return
	}
	log.Info("Game loaded successfully!")
}

func (c *Controller) restoreSaved(ctx context.Context) error {
	saved, err := c.repository.LoadGameRecord(ctx)
	if err != nil {
		return fmt.Errorf("failed to load saved game: %v", err)
	}
	if saved == nil {
		return fmt.Errorf("no saved game")
	}
	if saved.GameType != c.game.GameType() {
		return fmt.Errorf("saved game is %s", saved.GameType)
	}
	if err := c.game.Restore(saved); err != nil {
		return fmt.Errorf("failed to restore saved game: %v", err)
	}
	return nil
}
