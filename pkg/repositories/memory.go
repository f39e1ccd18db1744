package repositories

import (
	"context"
	"fmt"
	"sync"

	"github.com/danhquyen2004/Block-Blast/pkg/game/snapshot"
)

// InMemoryRepository keeps saves for the lifetime of the process.
type InMemoryRepository struct {
	mu         sync.RWMutex
	games      map[string]*snapshot.Snapshot
	bestScores map[string]int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		games:      make(map[string]*snapshot.Snapshot),
		bestScores: make(map[string]int),
	}
}

func (r *InMemoryRepository) Close(ctx context.Context) error {
	return nil
}

func (r *InMemoryRepository) SaveGame(ctx context.Context, playerID string, s *snapshot.Snapshot) error {
	if err := validatePlayerID(playerID); err != nil {
		return err
	}
	if s == nil {
		return fmt.Errorf("failed to save game: snapshot is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.games[playerID] = s.Copy()
	if s.BestScore > r.bestScores[playerID] {
		r.bestScores[playerID] = s.BestScore
	}
	return nil
}

func (r *InMemoryRepository) LoadGame(ctx context.Context, playerID string) (*snapshot.Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.games[playerID]
	if !ok {
		return nil, &ErrNotFound{PlayerID: playerID}
	}
	return s.Copy(), nil
}

func (r *InMemoryRepository) DeleteGame(ctx context.Context, playerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.games, playerID)
	return nil
}

func (r *InMemoryRepository) SaveBestScore(ctx context.Context, playerID string, best int) error {
	if err := validatePlayerID(playerID); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if best > r.bestScores[playerID] {
		r.bestScores[playerID] = best
	}
	return nil
}

func (r *InMemoryRepository) LoadBestScore(ctx context.Context, playerID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.bestScores[playerID], nil
}
