package repositories

import (
	"context"
	"fmt"
	"sync"

	"github.com/cbodonnell/arcade/pkg/records"
)

// InMemoryRepository keeps the saved game in process memory.
// It stores the serialized form so callers never share state with it.
type InMemoryRepository struct {
	lock sync.RWMutex
	data []byte
}

var _ Repository = &InMemoryRepository{}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Close(ctx context.Context) error {
	return nil
}

func (r *InMemoryRepository) SaveGameRecord(ctx context.Context, game *records.SavedGame) error {
	b, err := records.Serialize(game)
	if err != nil {
		return fmt.Errorf("failed to serialize saved game: %v", err)
	}

	r.lock.Lock()
	defer r.lock.Unlock()
	r.data = b
	return nil
}

func (r *InMemoryRepository) LoadGameRecord(ctx context.Context) (*records.SavedGame, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	if r.data == nil {
		return nil, nil
	}
	return records.Deserialize(r.data)
}
