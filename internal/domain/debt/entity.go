package debt

import (
	"time"

	"github.com/shopspring/decimal"
)

// Debt is a single accrued inventory debt event for an employee. One row per
// event; payroll sums them verbatim without merging.
type Debt struct {
	ID         string
	EmployeeID string
	Amount     decimal.Decimal
	Date       time.Time
	Note       *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
