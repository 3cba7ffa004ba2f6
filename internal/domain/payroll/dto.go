package payroll

import (
	"github.com/crewdesk/crewdesk-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== COMPUTE DTOs ==========

// PreviewRequest carries the read-only compute parameters. Overrides are
// optional; PooledOverride arrives pre-parsed (the handler treats anything
// unparseable or negative as absent).
type PreviewRequest struct {
	PeriodStart string
	PeriodEnd   string

	// Manual cohort for pooled-shortage distribution. Empty = derive from
	// the shift-count eligibility rule.
	CohortOverride []string

	// Manual pooled-shortage total. Nil = derive from the latest saved count
	// snapshot, or the live unassigned sum when no snapshot exists.
	PooledOverride *decimal.Decimal
}

func (r *PreviewRequest) Validate() error {
	_, err := NewPeriod(r.PeriodStart, r.PeriodEnd)
	return err
}

type CreateBatchRequest struct {
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
}

func (r *CreateBatchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PeriodStart) {
		errs = append(errs, validator.ValidationError{Field: "period_start", Message: "is required"})
	}
	if validator.IsEmpty(r.PeriodEnd) {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "is required"})
	}
	if len(errs) > 0 {
		return errs
	}

	_, err := NewPeriod(r.PeriodStart, r.PeriodEnd)
	return err
}

// ========== BREAKDOWN DTOs ==========

type ShiftItem struct {
	ShiftID  string          `json:"shift_id"`
	Date     string          `json:"date"`
	Hours    decimal.Decimal `json:"hours"`
	Attended bool            `json:"attended"`
}

type DebtItem struct {
	DebtID string          `json:"debt_id"`
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Note   *string         `json:"note,omitempty"`
}

type ShortageItem struct {
	ShortageID string          `json:"shortage_id,omitempty"`
	Date       string          `json:"date,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	// Pooled marks cohort shares as opposed to directly attributed records.
	Pooled bool `json:"pooled"`
}

type AdjustmentItem struct {
	AdjustmentID string          `json:"adjustment_id"`
	ShiftID      string          `json:"shift_id"`
	Kind         string          `json:"kind"`
	Amount       decimal.Decimal `json:"amount"`
	Reason       *string         `json:"reason,omitempty"`
}

// ========== RESPONSE DTOs ==========

// PayrollLineResponse is one employee's computed pay with the full itemized
// breakdown the audit display renders.
type PayrollLineResponse struct {
	EmployeeID       string          `json:"employee_id"`
	EmployeeName     string          `json:"employee_name"`
	PayUnit          string          `json:"pay_unit"`
	PayClass         string          `json:"pay_class"`
	TotalHours       decimal.Decimal `json:"total_hours"`
	TotalShifts      int             `json:"total_shifts"`
	StipendAmount    decimal.Decimal `json:"stipend_amount"`
	GrossAmount      decimal.Decimal `json:"gross_amount"`
	DebtAmount       decimal.Decimal `json:"debt_amount"`
	ShortageAmount   decimal.Decimal `json:"shortage_amount"`
	PenaltyAmount    decimal.Decimal `json:"penalty_amount"`
	BonusAmount      decimal.Decimal `json:"bonus_amount"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`
	NetAmount        decimal.Decimal `json:"net_amount"`

	Shifts      []ShiftItem      `json:"shifts,omitempty"`
	Debts       []DebtItem       `json:"debts,omitempty"`
	Shortages   []ShortageItem   `json:"shortages,omitempty"`
	Adjustments []AdjustmentItem `json:"adjustments,omitempty"`
}

type BatchResponse struct {
	ID          string                `json:"id"`
	PeriodStart string                `json:"period_start"`
	PeriodEnd   string                `json:"period_end"`
	CreatedBy   string                `json:"created_by"`
	Status      string                `json:"status"`
	FinalizedAt *string               `json:"finalized_at,omitempty"`
	FinalizedBy *string               `json:"finalized_by,omitempty"`
	CreatedAt   string                `json:"created_at"`
	Lines       []PayrollLineResponse `json:"lines,omitempty"`
}

type BatchListFilter struct {
	Status *string
	Page   int
	Limit  int
}

type ListBatchesResponse struct {
	Data       []BatchResponse `json:"data"`
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
}
