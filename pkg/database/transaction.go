package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Beginner is satisfied by *pgxpool.Pool and pgx.Tx (nested savepoints).
type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TxFunc is executed inside a transaction
type TxFunc func(pgx.Tx) error

// WithTransaction runs fn in a transaction. Rolls back on error or panic,
// commits otherwise.
func WithTransaction(ctx context.Context, db Beginner, fn TxFunc) (err error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		} else if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
