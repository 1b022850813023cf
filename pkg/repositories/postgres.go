package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cbodonnell/arcade/pkg/log"
	"github.com/cbodonnell/arcade/pkg/records"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const createPostgresSavedGameTableSQL = `
CREATE TABLE IF NOT EXISTS saved_game (
	slot SMALLINT PRIMARY KEY CHECK (slot = 0),
	save_id UUID NOT NULL,
	game_type TEXT NOT NULL,
	payload BYTEA NOT NULL,
	saved_at BIGINT NOT NULL
);
`

type PostgresRepository struct {
	conn *pgx.Conn
}

var _ Repository = &PostgresRepository{}

// NewPostgresRepository connects to the database and ensures the schema exists.
// The caller is responsible for calling Close() on the repository.
func NewPostgresRepository(ctx context.Context, connStr string) (Repository, error) {
	conn, err := pgx.Connect(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	var username string
	var database string
	err = conn.QueryRow(ctx, "SELECT current_user, current_database()").Scan(&username, &database)
	if err != nil {
		conn.Close(ctx)
		return nil, fmt.Errorf("failed to query database: %v", err)
	}
	log.Info("Connected to %s as %s", database, username)

	if _, err := conn.Exec(ctx, createPostgresSavedGameTableSQL); err != nil {
		conn.Close(ctx)
		return nil, fmt.Errorf("failed to create saved_game table: %v", err)
	}

	return &PostgresRepository{
		conn: conn,
	}, nil
}

func (r *PostgresRepository) Close(ctx context.Context) error {
	return r.conn.Close(ctx)
}

func (r *PostgresRepository) SaveGameRecord(ctx context.Context, game *records.SavedGame) error {
	payload, err := records.SerializeCompressed(game)
	if err != nil {
		return fmt.Errorf("failed to serialize saved game: %v", err)
	}

	q := `
	INSERT INTO saved_game (slot, save_id, game_type, payload, saved_at) VALUES (0, $1, $2, $3, $4)
	ON CONFLICT (slot) DO UPDATE SET save_id = $1, game_type = $2, payload = $3, saved_at = $4;
	`
	_, err = r.conn.Exec(ctx, q, uuid.New().String(), string(game.GameType), payload, time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to insert saved game: %v", err)
	}

	return nil
}

func (r *PostgresRepository) LoadGameRecord(ctx context.Context) (*records.SavedGame, error) {
	q := `
	SELECT payload FROM saved_game WHERE slot = 0;
	`
	var payload []byte
	if err := r.conn.QueryRow(ctx, q).Scan(&payload); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
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
