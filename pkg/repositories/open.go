package repositories

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// Open builds a repository from a URL:
//
//	sqlite://<path>                 SQLite database file
//	postgres://... or postgresql:// PostgreSQL connection string
//	file://<dir>                    JSON files under dir
//	memory://                       process memory
//
// migrations is the SQLite migrations directory.
func Open(ctx context.Context, rawURL string, migrations string) (Repository, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database url: %v", err)
	}

	switch u.Scheme {
	case "sqlite", "sqlite3":
		repo, err := NewSQLiteRepository(ctx, strings.TrimPrefix(rawURL, u.Scheme+"://"), migrations)
		if err != nil {
			return nil, err
		}
		return repo, nil
	case "postgres", "postgresql":
		repo, err := NewPostgresRepository(ctx, rawURL)
		if err != nil {
			return nil, err
		}
		return repo, nil
	case "file":
		repo, err := NewFileRepository(strings.TrimPrefix(rawURL, "file://"))
		if err != nil {
			return nil, err
		}
		return repo, nil
	case "memory":
		return NewInMemoryRepository(), nil
	default:
		return nil, fmt.Errorf("unsupported database scheme %q", u.Scheme)
	}
}
