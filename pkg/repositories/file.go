package repositories

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cbodonnell/arcade/pkg/records"
)

// DefaultSaveFile is the save file used when no store is configured.
const DefaultSaveFile = "game_save.json"

// FileRepository stores the saved game as a JSON file.
type FileRepository struct {
	path string
}

var _ Repository = &FileRepository{}

func NewFileRepository(path string) *FileRepository {
	if path == "" {
		path = DefaultSaveFile
	}
	return &FileRepository{
		path: path,
	}
}

func (r *FileRepository) Path() string {
	return r.path
}

func (r *FileRepository) Close(ctx context.Context) error {
	return nil
}

// SaveGameRecord writes to a temporary file and renames it over the
// save file so a failed write never leaves a truncated save behind.
func (r *FileRepository) SaveGameRecord(ctx context.Context, game *records.SavedGame) error {
	b, err := records.Serialize(game)
	if err != nil {
		return fmt.Errorf("failed to serialize saved game: %v", err)
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary save file: %v", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write save file: %v", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close save file: %v", err)
	}
	if err := os.Rename(tmpPath, r.path); err != nil {
		return fmt.Errorf("failed to replace save file: %v", err)
	}

	return nil
}

func (r *FileRepository) LoadGameRecord(ctx context.Context) (*records.SavedGame, error) {
	b, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read save file: %v", err)
	}

	game, err := records.Deserialize(b)
	if err != nil {
		return nil, fmt.Errorf("failed to decode save file %s: %w", r.path, err)
	}
	return game, nil
}
