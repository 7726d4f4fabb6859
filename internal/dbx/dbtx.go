// Package dbx holds the small database/sql abstractions shared by the
// repositories of both the server (Postgres) and the client (SQLite).
package dbx

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/plantvision/internal/common"
)

// DBTX is implemented by both *sql.DB and *sql.Tx, so a repository bound
// to it works the same inside and outside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx runs fn inside a transaction. The transaction is committed when fn
// returns nil and rolled back on error or panic; panics are re-raised.
//
//	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
//	    repo := analyses.NewPostgresRepository(tx)
//	    ...
//	})
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	return fn(ctx, tx)
}

// StoreError wraps a failed database call as common.ErrStore, keeping the
// driver error reachable with errors.Is / errors.As.
func StoreError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", common.ErrStore, op, err)
}
