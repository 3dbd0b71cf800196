package bolt

import (
	"context"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/andriskumpel/combate-desinformacao/internal/domain"
)

type ctxKey string

const txKey ctxKey = "bolt_tx"

// TransactionManager runs a function inside a single read-write bolt
// transaction. bbolt serializes writers, so the records touched by fn cannot
// change underneath it.
type TransactionManager struct {
	db *bolt.DB
}

func NewTransactionManager(db *bolt.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

func (tm *TransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if GetTxFromContext(ctx) != nil {
		return fn(ctx)
	}

	var fnErr error
	err := tm.db.Update(func(tx *bolt.Tx) error {
		fnErr = fn(context.WithValue(ctx, txKey, tx))
		return fnErr
	})
	if fnErr != nil {
		return fnErr
	}
	if err != nil {
		return fmt.Errorf("%w: commit transaction: %w", domain.ErrStore, err)
	}
	return nil
}

func GetTxFromContext(ctx context.Context) *bolt.Tx {
	tx, _ := ctx.Value(txKey).(*bolt.Tx)
	return tx
}
