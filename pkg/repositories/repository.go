package repositories

import (
	"context"

	"github.com/danhquyen2004/Block-Blast/pkg/game/snapshot"
)

// Repository persists one saved game per player plus the player's best score.
// Every write is atomic: a reader never observes a partially written save.
type Repository interface {
	Close(ctx context.Context) error
	// SaveGame replaces the player's saved game.
	SaveGame(ctx context.Context, playerID string, s *snapshot.Snapshot) error
	// LoadGame returns ErrNotFound when the player has no save.
	LoadGame(ctx context.Context, playerID string) (*snapshot.Snapshot, error)
	// DeleteGame removes the save. Deleting a missing save is not an error.
	DeleteGame(ctx context.Context, playerID string) error
	// SaveBestScore stores best unless a higher score is already stored.
	SaveBestScore(ctx context.Context, playerID string, best int) error
	// LoadBestScore returns 0 for a player without a stored score.
	LoadBestScore(ctx context.Context, playerID string) (int, error)
}
