package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/cbodonnell/arcade/client/fonts"
	"github.com/cbodonnell/arcade/client/game"
	"github.com/cbodonnell/arcade/client/render"
	"github.com/cbodonnell/arcade/pkg/game/constants"
	"github.com/cbodonnell/arcade/pkg/game/types"
	"github.com/cbodonnell/arcade/pkg/log"
	"github.com/cbodonnell/arcade/pkg/repositories"
	"github.com/cbodonnell/arcade/pkg/version"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	defaultSaveURL := os.Getenv("ARCADE_SAVE_URL")
	if defaultSaveURL == "" {
		defaultSaveURL = repositories.DefaultSaveURL
	}

	logLevel := flag.String("log-level", "info", "Log level")
	saveURL := flag.String("save-url", defaultSaveURL, "Save store URL (file://, sqlite://, postgresql:// or memory://)")
	debug := flag.Bool("debug", false, "Show the FPS/TPS overlay")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting arcade version %s", version.Get())
	ctx := context.Background()

	repository, err := repositories.NewRepositoryFromURL(ctx, *saveURL)
	if err != nil {
		panic(fmt.Sprintf("Failed to create save store: %v", err))
	}
	defer repository.Close(ctx)
	log.Info("Saving games to %s", *saveURL)

	loadedFonts, err := fonts.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load fonts: %v", err))
	}

	g, err := game.NewGame(game.NewGameOptions{
		Debug:      *debug,
		Render:     render.NewContext(loadedFonts, types.DefaultBounds()),
		Repository: repository,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}

	ebiten.SetWindowSize(constants.ScreenWidth, constants.ScreenHeight)
	ebiten.SetWindowTitle("Snake and Tic-Tac-Toe Games")
	ebiten.SetTPS(constants.TicksPerSecond)
	ebiten.SetWindowClosingHandled(true)
	if err := ebiten.RunGame(g); err != nil {
		log.Error("Failed to run game: %v", err)
		repository.Close(ctx)
		os.Exit(1)
	}
}
