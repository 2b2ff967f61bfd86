package repository

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type contextKey string

const txKey contextKey = "gorm_tx"

// TransactionManager manages database transactions via context injection.
type TransactionManager interface {
	RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error
	// RunInSnapshot runs fn in a read-only REPEATABLE READ transaction so every read
	// inside it observes the same committed state.
	RunInSnapshot(ctx context.Context, fn func(txCtx context.Context) error) error
	// RunInRepeatableRead runs fn in a writable REPEATABLE READ transaction, for
	// writes derived from reads that must all come from the same snapshot.
	RunInRepeatableRead(ctx context.Context, fn func(txCtx context.Context) error) error
}

type transactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) TransactionManager {
	return &transactionManager{db: db}
}

func (t *transactionManager) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return t.run(ctx, fn)
}

func (t *transactionManager) RunInSnapshot(ctx context.Context, fn func(txCtx context.Context) error) error {
	return t.run(ctx, fn, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
}

func (t *transactionManager) RunInRepeatableRead(ctx context.Context, fn func(txCtx context.Context) error) error {
	return t.run(ctx, fn, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
}

// run joins a transaction already carried by ctx; its isolation level then applies.
func (t *transactionManager) run(ctx context.Context, fn func(txCtx context.Context) error, opts ...*sql.TxOptions) error {
	if _, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return fn(ctx)
	}
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := context.WithValue(ctx, txKey, tx)
		return fn(txCtx)
	}, opts...)
}

// GetDB extracts the transaction DB from context if present, otherwise returns root DB.
func GetDB(ctx context.Context, rootDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return rootDB.WithContext(ctx)
}
