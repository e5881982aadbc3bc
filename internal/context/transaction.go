package context

import (
	"context"

	"gorm.io/gorm"
)

type contextKey string

const transactionKey contextKey = "transaction"

// GetTransaction retrieves a transaction from the context.
func GetTransaction(ctx context.Context) (*gorm.DB, bool) {
	tx, ok := ctx.Value(transactionKey).(*gorm.DB)
	return tx, ok
}

// WithTransaction adds a transaction to the context.
func WithTransaction(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, transactionKey, tx)
}
