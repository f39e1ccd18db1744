package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/danhquyen2004/Block-Blast/pkg/game/snapshot"
	"github.com/danhquyen2004/Block-Blast/pkg/messages"
	_ "github.com/mattn/go-sqlite3"
)

type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens the database at path and applies every migration
// in the migrations directory in file name order.
func NewSQLiteRepository(ctx context.Context, path string, migrations string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	if err := runMigrations(ctx, db, migrations); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteRepository{
		db: db,
	}, nil
}

func runMigrations(ctx context.Context, db *sql.DB, migrations string) error {
	dir, err := os.ReadDir(migrations)
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %v", err)
	}
	sort.Slice(dir, func(i, j int) bool { return dir[i].Name() < dir[j].Name() })

	for _, entry := range dir {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".sql" {
			continue
		}

		migrationPath := filepath.Join(migrations, entry.Name())
		migration, err := os.ReadFile(migrationPath)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %v", migrationPath, err)
		}

		if _, err := db.ExecContext(ctx, string(migration)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %v", migrationPath, err)
		}
	}
	return nil
}

func (r *SQLiteRepository) Close(ctx context.Context) error {
	return r.db.Close()
}

func (r *SQLiteRepository) SaveGame(ctx context.Context, playerID string, s *snapshot.Snapshot) error {
	if err := validatePlayerID(playerID); err != nil {
		return err
	}
	blob, err := messages.SerializeSnapshot(s)
	if err != nil {
		return err
	}
	now := time.Now().UnixMilli()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	q := `
	INSERT OR REPLACE INTO saved_games (player_id, updated_at, snapshot)
	VALUES (?, ?, ?);
	`
	if _, err := tx.ExecContext(ctx, q, playerID, now, blob); err != nil {
		return fmt.Errorf("failed to insert saved game: %v", err)
	}
	if err := upsertBestScoreSQLite(ctx, tx, playerID, s.BestScore, now); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %v", err)
	}

	return nil
}

func (r *SQLiteRepository) LoadGame(ctx context.Context, playerID string) (*snapshot.Snapshot, error) {
	q := `
	SELECT snapshot FROM saved_games WHERE player_id = ?;
	`
	var blob []byte
	if err := r.db.QueryRowContext(ctx, q, playerID).Scan(&blob); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &ErrNotFound{PlayerID: playerID}
		}
		return nil, fmt.Errorf("failed to scan saved game: %v", err)
	}

	s, err := messages.DeserializeSnapshot(blob)
	if err != nil {
		return nil, fmt.Errorf("failed to decode saved game for player %s: %w", playerID, err)
	}
	return s, nil
}

func (r *SQLiteRepository) DeleteGame(ctx context.Context, playerID string) error {
	q := `
	DELETE FROM saved_games WHERE player_id = ?;
	`
	if _, err := r.db.ExecContext(ctx, q, playerID); err != nil {
		return fmt.Errorf("failed to delete saved game: %v", err)
	}
	return nil
}

func (r *SQLiteRepository) SaveBestScore(ctx context.Context, playerID string, best int) error {
	if err := validatePlayerID(playerID); err != nil {
		return err
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	if err := upsertBestScoreSQLite(ctx, tx, playerID, best, time.Now().UnixMilli()); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %v", err)
	}
	return nil
}

func upsertBestScoreSQLite(ctx context.Context, tx *sql.Tx, playerID string, best int, now int64) error {
	q := `
	INSERT INTO best_scores (player_id, best_score, updated_at)
	VALUES (?, ?, ?)
	ON CONFLICT (player_id) DO UPDATE SET
		best_score = MAX(best_scores.best_score, excluded.best_score),
		updated_at = excluded.updated_at;
	`
	if _, err := tx.ExecContext(ctx, q, playerID, best, now); err != nil {
		return fmt.Errorf("failed to upsert best score: %v", err)
	}
	return nil
}

func (r *SQLiteRepository) LoadBestScore(ctx context.Context, playerID string) (int, error) {
	q := `
	SELECT best_score FROM best_scores WHERE player_id = ?;
	`
	var best int
	if err := r.db.QueryRowContext(ctx, q, playerID).Scan(&best); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to scan best score: %v", err)
	}
	return best, nil
}
