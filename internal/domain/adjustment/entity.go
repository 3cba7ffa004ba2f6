package adjustment

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind enum
type Kind string

const (
	KindBonus      Kind = "bonus"
	KindPenalty    Kind = "penalty"
	KindCommission Kind = "commission"
)

// Adjustment is a manual or commission pay adjustment tied to a specific
// shift. Bonuses and penalties carry a positive Amount and a reason;
// commissions carry a per-unit rate and a quantity.
type Adjustment struct {
	ID          string
	ShiftID     string
	EmployeeID  string
	Kind        Kind
	Amount      decimal.Decimal
	RatePerUnit decimal.Decimal
	Quantity    int64
	Reason      *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Total is the monetary value of the adjustment, always positive; the sign is
// applied by the net composition depending on Kind.
func (a Adjustment) Total() decimal.Decimal {
	if a.Kind == KindCommission {
		return a.RatePerUnit.Mul(decimal.NewFromInt(a.Quantity))
	}
	return a.Amount
}
