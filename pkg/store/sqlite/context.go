package sqlite

import (
	"context"
	"database/sql"
)

// Conn is the subset of *sql.DB and *sql.Tx the stores run queries through.
type Conn interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type txKey struct{}

func WithTransaction(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// ConnFrom returns the transaction bound to ctx, or db when there is none.
func ConnFrom(ctx context.Context, db *sql.DB) Conn {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok && tx != nil {
		return tx
	}
	return db
}
