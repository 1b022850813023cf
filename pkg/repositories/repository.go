package repositories

import (
	"context"

	"github.com/cbodonnell/arcade/pkg/records"
)

// Repository stores the single saved game. Every save overwrites the
// previous one regardless of its game type.
type Repository interface {
	Close(ctx context.Context) error
	// SaveGameRecord replaces the saved game.
	SaveGameRecord(ctx context.Context, game *records.SavedGame) error
	// LoadGameRecord returns the saved game, or nil if nothing has been saved.
	LoadGameRecord(ctx context.Context) (*records.SavedGame, error)
}
