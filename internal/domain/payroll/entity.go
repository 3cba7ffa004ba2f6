package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// BatchStatus enum
type BatchStatus string

const (
	BatchStatusDraft     BatchStatus = "draft"
	BatchStatusFinalized BatchStatus = "finalized"
)

// PayrollBatch is a persisted payroll computation for a period. A draft batch
// is replaced by computing a new one, never edited in place; finalization is
// the only mutating transition and it is one-way.
type PayrollBatch struct {
	ID          string
	PeriodStart time.Time
	PeriodEnd   time.Time
	CreatedBy   string
	Status      BatchStatus
	FinalizedAt *time.Time
	FinalizedBy *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Lines []PayrollLine
}

// PayrollLine is the per-employee audit unit of a batch.
type PayrollLine struct {
	ID             string
	BatchID        string
	EmployeeID     string
	TotalHours     decimal.Decimal
	TotalShifts    int
	GrossAmount    decimal.Decimal
	StipendAmount  decimal.Decimal
	DebtAmount     decimal.Decimal
	ShortageAmount decimal.Decimal
	PenaltyAmount  decimal.Decimal
	BonusAmount    decimal.Decimal
	CommissionAmount decimal.Decimal
	NetAmount        decimal.Decimal
	CreatedAt        time.Time

	// Joined fields
	EmployeeName *string
}
