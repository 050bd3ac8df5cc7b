// Package dbx holds the small database plumbing every sql-backed
// repository in this project shares.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is the query surface common to *sql.DB and *sql.Tx. Repository
// methods take it so the same code runs against a plain connection or
// inside an open transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx runs fn inside a transaction. A nil return from fn commits; an
// error or a panic rolls back, and the panic is re-raised after the
// rollback. The caller sees fn's error, or the commit error.
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

	err = fn(ctx, tx)
	return err
}
