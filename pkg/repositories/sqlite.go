package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cbodonnell/arcade/pkg/records"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

const createSQLiteSavedGameTableSQL = `
CREATE TABLE IF NOT EXISTS saved_game (
	slot INTEGER PRIMARY KEY CHECK (slot = 0),
	save_id TEXT NOT NULL,
	game_type TEXT NOT NULL,
	payload BLOB NOT NULL,
	saved_at INTEGER NOT NULL
);
`

// SQLiteRepository stores the saved game as a single row holding
// zstd-compressed JSON.
type SQLiteRepository struct {
	db *sql.DB
}

var _ Repository = &SQLiteRepository{}

func NewSQLiteRepository(ctx context.Context, path string) (Repository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	if _, err := db.ExecContext(ctx, createSQLiteSavedGameTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create saved_game table: %v", err)
	}

	return &SQLiteRepository{
		db: db,
	}, nil
}

func (r *SQLiteRepository) Close(ctx context.Context) error {
	return r.db.Close()
}

func (r *SQLiteRepository) SaveGameRecord(ctx context.Context, game *records.SavedGame) error {
	payload, err := records.SerializeCompressed(game)
	if err != nil {
		return fmt.Errorf("failed to serialize saved game: %v", err)
	}

	q := `
	INSERT OR REPLACE INTO saved_game (slot, save_id, game_type, payload, saved_at)
	VALUES (0, ?, ?, ?, ?);
	`
	_, err = r.db.ExecContext(ctx, q, uuid.New().String(), string(game.GameType), payload, time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to insert saved game: %v", err)
	}

	return nil
}

func (r *SQLiteRepository) LoadGameRecord(ctx context.Context) (*records.SavedGame, error) {
	q := `
	SELECT payload FROM saved_game WHERE slot = 0;
	`
	var payload []byte
	if err := r.db.QueryRowContext(ctx, q).Scan(&payload); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan saved game: %v", err)
	}

	game, err := records.DeserializeCompressed(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode saved game: %w", err)
	}
	return game, nil
}
