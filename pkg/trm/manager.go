// Package trm carries an sqlx transaction through a context so repository
// methods join the caller's transaction when there is one.
package trm

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Querier is the part of sqlx shared by *sqlx.DB and *sqlx.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
}

type Manager interface {
	// Do runs fn in a transaction. Nested calls join the outer transaction.
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	// Querier returns the transaction bound to ctx, or the pool outside one.
	Querier(ctx context.Context) Querier
}

type txKey struct{}

func txFrom(ctx context.Context) (*sqlx.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(*sqlx.Tx)
	return tx, ok
}

type sqlxManager struct {
	db   *sqlx.DB
	opts *sql.TxOptions
}

// NewManager starts transactions on db with opts, nil for driver defaults.
func NewManager(db *sqlx.DB, opts ...*sql.TxOptions) Manager {
	m := &sqlxManager{db: db}
	if len(opts) > 0 {
		m.opts = opts[0]
	}
	return m
}

func (m *sqlxManager) Querier(ctx context.Context) Querier {
	if tx, ok := txFrom(ctx); ok {
		return tx
	}
	return m.db
}

func (m *sqlxManager) Do(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := txFrom(ctx); ok {
		return fn(ctx)
	}

	tx, err := m.db.BeginTxx(ctx, m.opts)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				err = errors.Join(err, fmt.Errorf("rollback tx: %w", rbErr))
			}
		}
	}()

	if err = fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
