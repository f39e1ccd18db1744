package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/danhquyen2004/Block-Blast/pkg/game/snapshot"
	"github.com/danhquyen2004/Block-Blast/pkg/log"
	"github.com/danhquyen2004/Block-Blast/pkg/messages"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository connects to the database and checks the connection.
// The schema is expected to exist (see migrations/postgres).
// The caller is responsible for calling Close() on the repository.
func NewPostgresRepository(ctx context.Context, connStr string) (*PostgresRepository, error) {
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	var username string
	var database string
	err = pool.QueryRow(ctx, "SELECT current_user, current_database()").Scan(&username, &database)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to query database: %v", err)
	}

	log.Info("Connected to %s as %s", database, username)

	return &PostgresRepository{
		pool: pool,
	}, nil
}

func (r *PostgresRepository) Close(ctx context.Context) error {
	r.pool.Close()
	return nil
}

func (r *PostgresRepository) SaveGame(ctx context.Context, playerID string, s *snapshot.Snapshot) error {
	if err := validatePlayerID(playerID); err != nil {
		return err
	}
	blob, err := messages.SerializeSnapshot(s)
	if err != nil {
		return err
	}
	now := time.Now().UnixMilli()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback(ctx)

	q := `
	INSERT INTO saved_games (player_id, updated_at, snapshot) VALUES ($1, $2, $3)
	ON CONFLICT (player_id) DO UPDATE SET updated_at = $2, snapshot = $3;
	`
	if _, err := tx.Exec(ctx, q, playerID, now, blob); err != nil {
		return fmt.Errorf("failed to insert saved game: %v", err)
	}
	if err := upsertBestScorePostgres(ctx, tx, playerID, s.BestScore, now); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %v", err)
	}

	return nil
}

func (r *PostgresRepository) LoadGame(ctx context.Context, playerID string) (*snapshot.Snapshot, error) {
	q := `
	SELECT snapshot FROM saved_games WHERE player_id = $1;
	`
	var blob []byte
	if err := r.pool.QueryRow(ctx, q, playerID).Scan(&blob); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
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

func (r *PostgresRepository) DeleteGame(ctx context.Context, playerID string) error {
	if _, err := r.pool.Exec(ctx, "DELETE FROM saved_games WHERE player_id = $1;", playerID); err != nil {
		return fmt.Errorf("failed to delete saved game: %v", err)
	}
	return nil
}

func (r *PostgresRepository) SaveBestScore(ctx context.Context, playerID string, best int) error {
	if err := validatePlayerID(playerID); err != nil {
		return err
	}
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback(ctx)

	if err := upsertBestScorePostgres(ctx, tx, playerID, best, time.Now().UnixMilli()); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %v", err)
	}
	return nil
}

func upsertBestScorePostgres(ctx context.Context, tx pgx.Tx, playerID string, best int, now int64) error {
	q := `
	INSERT INTO best_scores (player_id, best_score, updated_at) VALUES ($1, $2, $3)
	ON CONFLICT (player_id) DO UPDATE SET
		best_score = GREATEST(best_scores.best_score, EXCLUDED.best_score),
		updated_at = $3;
	`
	if _, err := tx.Exec(ctx, q, playerID, int64(best), now); err != nil {
		return fmt.Errorf("failed to upsert best score: %v", err)
	}
	return nil
}

func (r *PostgresRepository) LoadBestScore(ctx context.Context, playerID string) (int, error) {
	var best int64
	err := r.pool.QueryRow(ctx, "SELECT best_score FROM best_scores WHERE player_id = $1;", playerID).Scan(&best)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to scan best score: %v", err)
	}
	return int(best), nil
}
