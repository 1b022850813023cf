package constants

import "time"

const (
	// ScreenWidth is the width of the play field in pixels
	ScreenWidth int = 600
	// ScreenHeight is the height of the play field in pixels
	ScreenHeight int = 480
	// GridSize is the side of a grid cell in pixels. All positions are multiples of it.
	GridSize int = 20

	// TicksPerSecond is the rate the program loop runs at
	TicksPerSecond int = 60

	// SnakeStepsPerSecond is the number of snake simulation steps per second
	SnakeStepsPerSecond int = 10
	// SnakeStepInterval is the number of loop ticks between snake steps
	SnakeStepInterval int = TicksPerSecond / SnakeStepsPerSecond
	// FoodScore is the score awarded for each food eaten
	FoodScore int = 10
	// ObstacleMinLength is the snake length at which obstacles start to appear
	ObstacleMinLength int = 5
	// InputBufferDepth is the maximum number of pending direction changes
	InputBufferDepth int = 8

	// TicTacToeCellSize is the side of a tic-tac-toe cell in pixels
	TicTacToeCellSize int = GridSize * 3

	// NoticeDuration is how long a transient notice stays on screen
	NoticeDuration time.Duration = 2 * time.Second
	// NoticeTicks is NoticeDuration expressed in loop ticks
	NoticeTicks int = int(NoticeDuration/time.Second) * TicksPerSecond
	// GameOverTicks is how long the game over screen waits before returning to the menu on its own
	GameOverTicks int = 3 * TicksPerSecond
)
