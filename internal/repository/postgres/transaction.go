package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"auralis/internal/domain/repositories"

	"github.com/jackc/pgx/v5"
)

// TransactionManager implements the TransactionManager interface
type TransactionManager struct {
	pool   Pool
	logger *slog.Logger
}

// NewTransactionManager creates a new transaction manager
func NewTransactionManager(pool Pool, logger *slog.Logger) repositories.TransactionManager {
	return &TransactionManager{pool: pool, logger: logger}
}

// ExecTx executes fn within a transaction stored in the context handed to fn.
// Statements run in program order on the single transaction connection.
func (tm *TransactionManager) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	tx, err := tm.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(repositories.SetTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			tm.logger.Error("rollback failed", "error", rbErr, "cause", err)
		}
		return err
	}

	// pgx rolls back on its own when commit fails
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
