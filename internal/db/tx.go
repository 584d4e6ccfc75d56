package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Querier is the subset of *sqlx.DB and *sqlx.Tx used by repositories.
type Querier interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
}

type txKey struct{}

// Conn returns the transaction stored in ctx by TxManager, or db itself.
func Conn(ctx context.Context, db *sqlx.DB) Querier {
	if tx, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return tx
	}
	return db
}

func InTx(ctx context.Context) bool {
	_, ok := ctx.Value(txKey{}).(*sqlx.Tx)
	return ok
}

type TxManager struct {
	db        *sqlx.DB
	isolation sql.IsolationLevel
}

func NewTxManager(db *sqlx.DB) *TxManager {
	return &TxManager{db: db, isolation: sql.LevelSerializable}
}

// WithinTx runs fn inside a serializable transaction. Repositories called with
// the ctx handed to fn join that transaction. A nested call reuses the outer
// transaction. The transaction is committed only when fn returns nil.
func (m *TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if InTx(ctx) {
		return fn(ctx)
	}

	tx, err := m.db.BeginTxx(ctx, &sql.TxOptions{Isolation: m.isolation})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Transactor runs fn atomically. *TxManager is the production implementation.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

var _ Transactor = (*TxManager)(nil)
