package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const ChartSessions = `
	CREATE TABLE IF NOT EXISTS chart_sessions (
		id TEXT PRIMARY KEY,
		kind TEXT NOT NULL,
		width REAL NOT NULL,
		height REAL NOT NULL,
		sort TEXT NOT NULL DEFAULT 'none',
		state TEXT NOT NULL DEFAULT '{}',
		animating INTEGER NOT NULL DEFAULT 0 CHECK (animating IN (0,1)),
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
`

const ChartSessionsByKind = `CREATE INDEX IF NOT EXISTS idx_chart_sessions_kind ON chart_sessions(kind);`

var bootQueries = []string{
	ChartSessions,
	ChartSessionsByKind,
}

type Settings struct {
	DbPath string
}

func NewDB(settings Settings) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn(settings.DbPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// A single connection keeps ":memory:" databases alive and serializes writers.
	db.SetMaxOpenConns(1)

	if err := Boot(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Boot creates the schema if it does not exist.
func Boot(ctx context.Context, db *sql.DB) error {
	for _, query := range bootQueries {
		if _, err := db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to boot schema: %w", err)
		}
	}
	return nil
}

func dsn(path string) string {
	if path == "" || path == ":memory:" {
		return ":memory:"
	}
	return "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
}
