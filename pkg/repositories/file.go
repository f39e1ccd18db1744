package repositories

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/danhquyen2004/Block-Blast/pkg/game/snapshot"
	"github.com/danhquyen2004/Block-Blast/pkg/repositories/models"
)

const (
	gamesDir     = "games"
	bestScoreDir = "best"
)

// FileRepository keeps one JSON file per player save and one per best score.
// Files are replaced by writing a temporary file and renaming it over the old one.
type FileRepository struct {
	root string
	// mu serializes the read-modify-write of best scores.
	mu sync.Mutex
}

func NewFileRepository(root string) (*FileRepository, error) {
	for _, dir := range []string{gamesDir, bestScoreDir} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create %s directory: %v", dir, err)
		}
	}
	return &FileRepository{root: root}, nil
}

func (r *FileRepository) Close(ctx context.Context) error {
	return nil
}

// path maps a player ID onto a file name that cannot escape the directory.
func (r *FileRepository) path(dir, playerID string) string {
	return filepath.Join(r.root, dir, base64.RawURLEncoding.EncodeToString([]byte(playerID))+".json")
}

func (r *FileRepository) SaveGame(ctx context.Context, playerID string, s *snapshot.Snapshot) error {
	if err := validatePlayerID(playerID); err != nil {
		return err
	}
	if s == nil {
		return fmt.Errorf("failed to save game: snapshot is nil")
	}
	saved := &models.SavedGame{
		PlayerID:  playerID,
		UpdatedAt: time.Now().UnixMilli(),
		Snapshot:  s,
	}
	if err := writeJSONAtomic(ctx, r.path(gamesDir, playerID), saved); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}
	return r.SaveBestScore(ctx, playerID, s.BestScore)
}

func (r *FileRepository) LoadGame(ctx context.Context, playerID string) (*snapshot.Snapshot, error) {
	b, err := os.ReadFile(r.path(gamesDir, playerID))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &ErrNotFound{PlayerID: playerID}
		}
		return nil, fmt.Errorf("failed to read saved game: %v", err)
	}
	saved := &models.SavedGame{}
	if err := json.Unmarshal(b, saved); err != nil {
		return nil, &snapshot.CorruptSnapshotError{Reason: fmt.Sprintf("failed to decode saved game: %v", err)}
	}
	if saved.Snapshot == nil {
		return nil, &snapshot.CorruptSnapshotError{Reason: "saved game has no snapshot"}
	}
	return saved.Snapshot, nil
}

func (r *FileRepository) DeleteGame(ctx context.Context, playerID string) error {
	if err := os.Remove(r.path(gamesDir, playerID)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete saved game: %v", err)
	}
	return nil
}

func (r *FileRepository) SaveBestScore(ctx context.Context, playerID string, best int) error {
	if err := validatePlayerID(playerID); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	current, err := r.loadBestScore(playerID)
	if err != nil {
		return err
	}
	if current != nil && current.BestScore >= best {
		return nil
	}
	record := &models.BestScore{
		PlayerID:  playerID,
		BestScore: best,
		UpdatedAt: time.Now().UnixMilli(),
	}
	if err := writeJSONAtomic(ctx, r.path(bestScoreDir, playerID), record); err != nil {
		return fmt.Errorf("failed to save best score: %w", err)
	}
	return nil
}

func (r *FileRepository) LoadBestScore(ctx context.Context, playerID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, err := r.loadBestScore(playerID)
	if err != nil {
		return 0, err
	}
	if record == nil {
		return 0, nil
	}
	return record.BestScore, nil
}

func (r *FileRepository) loadBestScore(playerID string) (*models.BestScore, error) {
	b, err := os.ReadFile(r.path(bestScoreDir, playerID))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read best score: %v", err)
	}
	record := &models.BestScore{}
	if err := json.Unmarshal(b, record); err != nil {
		return nil, fmt.Errorf("failed to decode best score: %v", err)
	}
	return record, nil
}

func writeJSONAtomic(ctx context.Context, path string, v interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal: %v", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %v", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temporary file: %v", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync temporary file: %v", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %v", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace %s: %v", path, err)
	}
	return nil
}
