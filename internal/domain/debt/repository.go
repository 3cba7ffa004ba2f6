package debt

import (
	"context"
	"time"
)

// DebtRepository reads debt ledger entries.
type DebtRepository interface {
	// ListByPeriod returns all debts dated within [start, end] inclusive.
	ListByPeriod(ctx context.Context, start, end time.Time) ([]Debt, error)
}
