package shortage

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shortage is a stock count discrepancy from an inventory count. A nil
// EmployeeID means nobody was attributed; those records form the pooled total
// distributed across the eligible cohort.
type Shortage struct {
	ID          string
	EmployeeID  *string
	SystemCount int64
	ActualCount int64
	UnitPrice   decimal.Decimal
	Resolved    bool
	Excluded    bool
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ShortfallCost is unit price times the missing quantity. Counting more than
// the system expected is an overage, not a shortage, so the cost never goes
// negative.
func (s Shortage) ShortfallCost() decimal.Decimal {
	missing := s.SystemCount - s.ActualCount
	if missing <= 0 {
		return decimal.Zero
	}
	return s.UnitPrice.Mul(decimal.NewFromInt(missing))
}

// Chargeable reports whether the record still counts against payroll.
func (s Shortage) Chargeable() bool {
	return !s.Resolved && !s.Excluded
}
