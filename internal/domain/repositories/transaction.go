package repositories

import "context"

// TxFn is a function that runs within a transaction. Repositories called with
// the ctx it receives join the transaction.
type TxFn func(ctx context.Context) error

// TransactionManager handles database transactions
type TransactionManager interface {
	// ExecTx runs fn in one transaction; any error from fn rolls everything back
	ExecTx(ctx context.Context, fn TxFn) error
}
