package shift

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shift is a scheduled work assignment. Once attendance is marked the record
// is immutable; payroll reads shifts filtered by period and never writes them.
type Shift struct {
	ID         string
	EmployeeID string
	Date       time.Time
	StartsAt   time.Time
	EndsAt     time.Time
	Hours      decimal.Decimal
	Attended   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
