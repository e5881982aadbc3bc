package services

import (
	"context"
	"fmt"

	appContext "gameportal/internal/context"
	"gameportal/internal/database"
	"gameportal/internal/logger"

	"gorm.io/gorm"
)

// TransactionExecutor runs a function inside a database transaction.
// Extracted as an interface so services can be unit tested without a
// live database.
type TransactionExecutor interface {
	Execute(ctx context.Context, fn func(ctx context.Context, tx *gorm.DB) error) error
}

// TransactionService handles database transactions using context injection.
type TransactionService struct {
	db  database.DB
	log logger.Logger
}

func NewTransactionService(db database.DB) *TransactionService {
	return &TransactionService{
		db:  db,
		log: logger.New("transactionService"),
	}
}

// Execute runs fn within a transaction, committing on success and
// rolling back on error or panic. A rollback failure after a panic
// crashes the process rather than risking partial state.
func (ts *TransactionService) Execute(
	ctx context.Context,
	fn func(ctx context.Context, tx *gorm.DB) error,
) (err error) {
	log := ts.log.Function("Execute")

	tx := ts.db.SQLWithContext(ctx).Begin()
	if tx.Error != nil {
		return log.Err("failed to begin transaction", tx.Error)
	}

	defer func() {
		if r := recover(); r != nil {
			panicErr := fmt.Errorf("panic during transaction: %v", r)
			log.Er("panic during transaction, rolling back", panicErr)

			if rollbackErr := tx.Rollback().Error; rollbackErr != nil {
				log.Er("CRITICAL: failed to rollback after panic", rollbackErr, "panic", r)
				panic(fmt.Sprintf(
					"transaction rollback failed: %v (original panic: %v)",
					rollbackErr, r,
				))
			}

			err = panicErr
		}
	}()

	txCtx := appContext.WithTransaction(ctx, tx)

	if err = fn(txCtx, tx); err != nil {
		if rollbackErr := tx.Rollback().Error; rollbackErr != nil {
			return log.Err("failed to rollback transaction", rollbackErr, "originalError", err)
		}
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return log.Err("failed to commit transaction", err)
	}

	return nil
}
