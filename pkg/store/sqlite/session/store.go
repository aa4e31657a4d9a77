package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/de-tools/chart-atlas/pkg/models/store"
	"github.com/de-tools/chart-atlas/pkg/store/sqlite"
)

var ErrNotFound = errors.New("session row not found")

type Store interface {
	List(ctx context.Context) ([]*store.Session, error)
	Get(ctx context.Context, id string) (*store.Session, error)
	// Save inserts the session or replaces the stored state of an existing one.
	Save(ctx context.Context, session *store.Session) error
	Delete(ctx context.Context, id string) error
}

type defaultStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &defaultStore{
		db: db,
	}, nil
}

const selectSessions = `
	SELECT id, kind, width, height, sort, state, animating, created_at, updated_at
	FROM chart_sessions`

func (s *defaultStore) List(ctx context.Context) ([]*store.Session, error) {
	rows, err := sqlite.ConnFrom(ctx, s.db).QueryContext(ctx, selectSessions+` ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	sessions := make([]*store.Session, 0)
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sessions: %w", err)
	}
	return sessions, nil
}

func (s *defaultStore) Get(ctx context.Context, id string) (*store.Session, error) {
	row := sqlite.ConnFrom(ctx, s.db).QueryRowContext(ctx, selectSessions+` WHERE id = ?`, id)
	session, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return session, err
}

func (s *defaultStore) Save(ctx context.Context, session *store.Session) error {
	if session == nil || session.ID == "" {
		return fmt.Errorf("session id cannot be empty")
	}

	_, err := sqlite.ConnFrom(ctx, s.db).ExecContext(ctx, `
		INSERT INTO chart_sessions (id, kind, width, height, sort, state, animating, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			width = excluded.width,
			height = excluded.height,
			sort = excluded.sort,
			state = excluded.state,
			animating = excluded.animating,
			updated_at = excluded.updated_at`,
		session.ID,
		session.Kind,
		session.Width,
		session.Height,
		session.Sort,
		session.State,
		boolToInt(session.Animating),
		session.CreatedAt.UTC(),
		session.UpdatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to save session %s: %w", session.ID, err)
	}
	return nil
}

func (s *defaultStore) Delete(ctx context.Context, id string) error {
	if _, err := sqlite.ConnFrom(ctx, s.db).ExecContext(ctx, `DELETE FROM chart_sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete session %s: %w", id, err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (*store.Session, error) {
	var (
		session   store.Session
		animating int
	)
	err := row.Scan(
		&session.ID,
		&session.Kind,
		&session.Width,
		&session.Height,
		&session.Sort,
		&session.State,
		&animating,
		&session.CreatedAt,
		&session.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan session: %w", err)
	}
	session.Animating = animating == 1
	return &session, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
