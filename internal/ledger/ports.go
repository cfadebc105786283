// Package ledger defines the port for transaction sources. Adapters
// live in subpackages: google reads an operations spreadsheet, memory
// serves seeded records for tests and local runs.
package ledger

import (
	"context"

	"svodka/internal/core"
)

// TransactionSource produces the ordered transaction list for one
// report request. Read failures propagate; a missing or unreadable
// source must never be silently reported as an empty ledger.
type TransactionSource interface {
	ListTransactions(ctx context.Context) ([]core.Transaction, error)
}
