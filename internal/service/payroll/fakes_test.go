package payroll

import (
	"context"
	"errors"
	"time"

	"github.com/crewdesk/crewdesk-backend-go/internal/domain/adjustment"
	"github.com/crewdesk/crewdesk-backend-go/internal/domain/debt"
	"github.com/crewdesk/crewdesk-backend-go/internal/domain/employee"
	"github.com/crewdesk/crewdesk-backend-go/internal/domain/payroll"
	"github.com/crewdesk/crewdesk-backend-go/internal/domain/shift"
	"github.com/crewdesk/crewdesk-backend-go/internal/domain/shortage"
	"github.com/shopspring/decimal"
)

// In-memory repository fakes. They filter by period the way the postgresql
// implementations do, so engine tests exercise the same read contracts.

func within(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetActive(_ context.Context) ([]employee.Employee, error) {
	var active []employee.Employee
	for _, e := range f.employees {
		if e.IsActive {
			active = append(active, e)
		}
	}
	return active, nil
}

type fakeShiftRepo struct {
	shifts []shift.Shift
}

func (f *fakeShiftRepo) ListByPeriod(_ context.Context, start, end time.Time, attendedOnly bool) ([]shift.Shift, error) {
	var result []shift.Shift
	for _, s := range f.shifts {
		if !within(s.Date, start, end) {
			continue
		}
		if attendedOnly && !s.Attended {
			continue
		}
		result = append(result, s)
	}
	return result, nil
}

type fakeDebtRepo struct {
	debts []debt.Debt
}

func (f *fakeDebtRepo) ListByPeriod(_ context.Context, start, end time.Time) ([]debt.Debt, error) {
	var result []debt.Debt
	for _, d := range f.debts {
		if within(d.Date, start, end) {
			result = append(result, d)
		}
	}
	return result, nil
}

type fakeShortageRepo struct {
	shortages []shortage.Shortage
}

func (f *fakeShortageRepo) ListByPeriod(_ context.Context, start, end time.Time) ([]shortage.Shortage, error) {
	var result []shortage.Shortage
	for _, s := range f.shortages {
		if within(s.Date, start, end) {
			result = append(result, s)
		}
	}
	return result, nil
}

type fakeSnapshotRepo struct {
	total    decimal.Decimal
	hasTotal bool
}

func (f *fakeSnapshotRepo) LatestSavedTotal(_ context.Context) (decimal.Decimal, bool, error) {
	return f.total, f.hasTotal, nil
}

// fakeAdjustmentRepo resolves employee and period through the shift list,
// mirroring the SQL join.
type fakeAdjustmentRepo struct {
	shifts      []shift.Shift
	adjustments []adjustment.Adjustment
}

func (f *fakeAdjustmentRepo) ListByPeriod(_ context.Context, start, end time.Time) ([]adjustment.Adjustment, error) {
	byID := make(map[string]shift.Shift, len(f.shifts))
	for _, s := range f.shifts {
		byID[s.ID] = s
	}

	var result []adjustment.Adjustment
	for _, a := range f.adjustments {
		sh, ok := byID[a.ShiftID]
		if !ok || !within(sh.Date, start, end) {
			continue
		}
		a.EmployeeID = sh.EmployeeID
		result = append(result, a)
	}
	return result, nil
}

// fakePayrollRepo stores batches in memory and counts writes, so tests can
// assert the preview path performs none. CreateBatch honors the repository's
// all-or-nothing contract: when told to fail, nothing is stored.
type fakePayrollRepo struct {
	batches    map[string]payroll.PayrollBatch
	writeCalls int
	failCreate bool
}

func newFakePayrollRepo() *fakePayrollRepo {
	return &fakePayrollRepo{batches: make(map[string]payroll.PayrollBatch)}
}

func (f *fakePayrollRepo) CreateBatch(_ context.Context, batch payroll.PayrollBatch) (payroll.PayrollBatch, error) {
	f.writeCalls++
	if f.failCreate {
		return payroll.PayrollBatch{}, errors.New("simulated write failure")
	}
	now := time.Now()
	batch.CreatedAt = now
	batch.UpdatedAt = now
	f.batches[batch.ID] = batch
	return batch, nil
}

func (f *fakePayrollRepo) GetBatchByID(_ context.Context, id string) (payroll.PayrollBatch, error) {
	b, ok := f.batches[id]
	if !ok {
		return payroll.PayrollBatch{}, payroll.ErrBatchNotFound
	}
	return b, nil
}

func (f *fakePayrollRepo) ListBatches(_ context.Context, filter payroll.BatchListFilter) ([]payroll.PayrollBatch, int64, error) {
	var result []payroll.PayrollBatch
	for _, b := range f.batches {
		if filter.Status != nil && string(b.Status) != *filter.Status {
			continue
		}
		result = append(result, b)
	}
	return result, int64(len(result)), nil
}

func (f *fakePayrollRepo) FinalizeBatch(_ context.Context, id string, finalizedBy string) (payroll.PayrollBatch, error) {
	f.writeCalls++
	b, ok := f.batches[id]
	if !ok {
		return payroll.PayrollBatch{}, payroll.ErrBatchNotFound
	}
	if b.Status == payroll.BatchStatusFinalized {
		return payroll.PayrollBatch{}, payroll.ErrBatchAlreadyFinalized
	}
	now := time.Now()
	b.Status = payroll.BatchStatusFinalized
	b.FinalizedAt = &now
	b.FinalizedBy = &finalizedBy
	b.UpdatedAt = now
	f.batches[id] = b
	return b, nil
}

func (f *fakePayrollRepo) lineCount() int {
	n := 0
	for _, b := range f.batches {
		n += len(b.Lines)
	}
	return n
}
