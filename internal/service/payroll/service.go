package payroll

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/crewdesk/crewdesk-backend-go/internal/config"
	"github.com/crewdesk/crewdesk-backend-go/internal/domain/adjustment"
	"github.com/crewdesk/crewdesk-backend-go/internal/domain/debt"
	"github.com/crewdesk/crewdesk-backend-go/internal/domain/employee"
	"github.com/crewdesk/crewdesk-backend-go/internal/domain/payroll"
	"github.com/crewdesk/crewdesk-backend-go/internal/domain/shift"
	"github.com/crewdesk/crewdesk-backend-go/internal/domain/shortage"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	payrollRepo    payroll.PayrollRepository
	employeeRepo   employee.EmployeeRepository
	shiftRepo      shift.ShiftRepository
	debtRepo       debt.DebtRepository
	shortageRepo   shortage.ShortageRepository
	snapshotRepo   shortage.CountSnapshotRepository
	adjustmentRepo adjustment.AdjustmentRepository
	policy         config.PayrollConfig
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	shiftRepo shift.ShiftRepository,
	debtRepo debt.DebtRepository,
	shortageRepo shortage.ShortageRepository,
	snapshotRepo shortage.CountSnapshotRepository,
	adjustmentRepo adjustment.AdjustmentRepository,
	policy config.PayrollConfig,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo:    payrollRepo,
		employeeRepo:   employeeRepo,
		shiftRepo:      shiftRepo,
		debtRepo:       debtRepo,
		shortageRepo:   shortageRepo,
		snapshotRepo:   snapshotRepo,
		adjustmentRepo: adjustmentRepo,
		policy:         policy,
	}
}

// ========== COMPUTATION ==========

func (s *PayrollServiceImpl) Preview(ctx context.Context, req payroll.PreviewRequest) ([]payroll.PayrollLineResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	period, err := payroll.NewPeriod(req.PeriodStart, req.PeriodEnd)
	if err != nil {
		return nil, err
	}

	return s.computeLines(ctx, period, payroll.ModePreview, req.CohortOverride, req.PooledOverride)
}

func (s *PayrollServiceImpl) CreateBatch(ctx context.Context, req payroll.CreateBatchRequest, createdBy string) (payroll.BatchResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.BatchResponse{}, err
	}
	period, err := payroll.NewPeriod(req.PeriodStart, req.PeriodEnd)
	if err != nil {
		return payroll.BatchResponse{}, err
	}

	// Batch mode uses the automatic rules only; manual overrides are a
	// preview facility.
	lines, err := s.computeLines(ctx, period, payroll.ModeBatch, nil, nil)
	if err != nil {
		return payroll.BatchResponse{}, err
	}

	batch := payroll.PayrollBatch{
		ID:          uuid.NewString(),
		PeriodStart: period.Start,
		PeriodEnd:   period.End,
		CreatedBy:   createdBy,
		Status:      payroll.BatchStatusDraft,
	}
	for _, line := range lines {
		batch.Lines = append(batch.Lines, payroll.PayrollLine{
			ID:               uuid.NewString(),
			BatchID:          batch.ID,
			EmployeeID:       line.EmployeeID,
			TotalHours:       line.TotalHours,
			TotalShifts:      line.TotalShifts,
			GrossAmount:      line.GrossAmount,
			StipendAmount:    line.StipendAmount,
			DebtAmount:       line.DebtAmount,
			ShortageAmount:   line.ShortageAmount,
			PenaltyAmount:    line.PenaltyAmount,
			BonusAmount:      line.BonusAmount,
			CommissionAmount: line.CommissionAmount,
			NetAmount:        line.NetAmount,
		})
	}

	created, err := s.payrollRepo.CreateBatch(ctx, batch)
	if err != nil {
		return payroll.BatchResponse{}, fmt.Errorf("failed to create payroll batch: %w", err)
	}

	resp := toBatchResponse(created, false)
	// The freshly computed lines carry the breakdowns; return those instead
	// of the bare persisted aggregates.
	resp.Lines = lines
	return resp, nil
}

// computeLines runs the per-employee computation shared by preview and batch.
// cohortOverride and pooledOverride only apply in preview mode.
func (s *PayrollServiceImpl) computeLines(
	ctx context.Context,
	period payroll.Period,
	mode payroll.Mode,
	cohortOverride []string,
	pooledOverride *decimal.Decimal,
) ([]payroll.PayrollLineResponse, error) {
	employees, err := s.employeeRepo.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get employees: %w", err)
	}
	if len(employees) == 0 {
		return []payroll.PayrollLineResponse{}, nil
	}

	attendedOnly := mode == payroll.ModeBatch
	shifts, err := s.shiftRepo.ListByPeriod(ctx, period.Start, period.End, attendedOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	debts, err := s.debtRepo.ListByPeriod(ctx, period.Start, period.End)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}
	shortages, err := s.shortageRepo.ListByPeriod(ctx, period.Start, period.End)
	if err != nil {
		return nil, fmt.Errorf("failed to list shortages: %w", err)
	}
	adjustments, err := s.adjustmentRepo.ListByPeriod(ctx, period.Start, period.End)
	if err != nil {
		return nil, fmt.Errorf("failed to list adjustments: %w", err)
	}

	shiftsByEmployee := make(map[string][]shift.Shift)
	for _, sh := range shifts {
		shiftsByEmployee[sh.EmployeeID] = append(shiftsByEmployee[sh.EmployeeID], sh)
	}
	debtsByEmployee := make(map[string][]debt.Debt)
	for _, d := range debts {
		debtsByEmployee[d.EmployeeID] = append(debtsByEmployee[d.EmployeeID], d)
	}
	adjustmentsByEmployee := make(map[string][]adjustment.Adjustment)
	for _, a := range adjustments {
		adjustmentsByEmployee[a.EmployeeID] = append(adjustmentsByEmployee[a.EmployeeID], a)
	}
	directShortages := make(map[string][]shortage.Shortage)
	var unassigned []shortage.Shortage
	for _, sg := range shortages {
		if !sg.Chargeable() {
			continue
		}
		if sg.EmployeeID == nil {
			unassigned = append(unassigned, sg)
			continue
		}
		directShortages[*sg.EmployeeID] = append(directShortages[*sg.EmployeeID], sg)
	}

	pooledTotal, err := s.pooledTotal(ctx, mode, pooledOverride, unassigned)
	if err != nil {
		return nil, err
	}

	cohort := s.cohort(mode, cohortOverride, employees, shiftsByEmployee)

	// The divisor never drops below one, so an empty cohort cannot divide by
	// zero; the pooled amount then simply reaches nobody.
	divisor := int64(len(cohort))
	if divisor < 1 {
		divisor = 1
	}
	share := pooledTotal.Div(decimal.NewFromInt(divisor))

	lines := make([]payroll.PayrollLineResponse, 0, len(employees))
	for _, emp := range employees {
		line := s.computeLine(
			emp,
			period,
			shiftsByEmployee[emp.ID],
			debtsByEmployee[emp.ID],
			directShortages[emp.ID],
			adjustmentsByEmployee[emp.ID],
			cohort[emp.ID],
			share,
		)
		lines = append(lines, line)
	}

	sort.Slice(lines, func(i, j int) bool {
		if lines[i].EmployeeName != lines[j].EmployeeName {
			return lines[i].EmployeeName < lines[j].EmployeeName
		}
		return lines[i].EmployeeID < lines[j].EmployeeID
	})

	return lines, nil
}

// pooledTotal resolves the unassigned-shortage amount to distribute: the
// manual override (preview only), else the latest saved inventory count
// snapshot, else the live sum of unassigned records in the period.
func (s *PayrollServiceImpl) pooledTotal(
	ctx context.Context,
	mode payroll.Mode,
	override *decimal.Decimal,
	unassigned []shortage.Shortage,
) (decimal.Decimal, error) {
	if mode == payroll.ModePreview && override != nil && !override.IsNegative() {
		return *override, nil
	}

	snapshot, ok, err := s.snapshotRepo.LatestSavedTotal(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get inventory count snapshot: %w", err)
	}
	if ok {
		return snapshot, nil
	}

	total := decimal.Zero
	for _, sg := range unassigned {
		total = total.Add(sg.ShortfallCost())
	}
	return total, nil
}

// cohort determines who shares the pooled shortage: the explicit override in
// preview mode, otherwise everyone with more period shifts than the policy
// threshold.
func (s *PayrollServiceImpl) cohort(
	mode payroll.Mode,
	override []string,
	employees []employee.Employee,
	shiftsByEmployee map[string][]shift.Shift,
) map[string]bool {
	cohort := make(map[string]bool)

	if mode == payroll.ModePreview && len(override) > 0 {
		known := make(map[string]bool, len(employees))
		for _, emp := range employees {
			known[emp.ID] = true
		}
		for _, id := range override {
			if known[id] {
				cohort[id] = true
			}
		}
		return cohort
	}

	for _, emp := range employees {
		if len(shiftsByEmployee[emp.ID]) > s.policy.PoolMinShifts {
			cohort[emp.ID] = true
		}
	}
	return cohort
}

func (s *PayrollServiceImpl) computeLine(
	emp employee.Employee,
	period payroll.Period,
	shifts []shift.Shift,
	debts []debt.Debt,
	direct []shortage.Shortage,
	adjustments []adjustment.Adjustment,
	inCohort bool,
	pooledShare decimal.Decimal,
) payroll.PayrollLineResponse {
	totalHours := decimal.Zero
	shiftItems := make([]payroll.ShiftItem, 0, len(shifts))
	for _, sh := range shifts {
		totalHours = totalHours.Add(sh.Hours)
		shiftItems = append(shiftItems, payroll.ShiftItem{
			ShiftID:  sh.ID,
			Date:     sh.Date.Format("2006-01-02"),
			Hours:    sh.Hours,
			Attended: sh.Attended,
		})
	}
	totalShifts := len(shifts)

	var variablePay decimal.Decimal
	switch emp.PayUnit {
	case employee.PayUnitPerShift:
		variablePay = emp.PayRate.Mul(decimal.NewFromInt(int64(totalShifts)))
	default:
		variablePay = emp.PayRate.Mul(totalHours)
	}

	stipend := s.managerStipend(emp, period)
	gross := variablePay.Add(stipend)

	debtTotal := decimal.Zero
	debtItems := make([]payroll.DebtItem, 0, len(debts))
	for _, d := range debts {
		debtTotal = debtTotal.Add(d.Amount)
		debtItems = append(debtItems, payroll.DebtItem{
			DebtID: d.ID,
			Date:   d.Date.Format("2006-01-02"),
			Amount: d.Amount,
			Note:   d.Note,
		})
	}

	shortageTotal := decimal.Zero
	shortageItems := make([]payroll.ShortageItem, 0, len(direct))
	for _, sg := range direct {
		cost := sg.ShortfallCost()
		shortageTotal = shortageTotal.Add(cost)
		shortageItems = append(shortageItems, payroll.ShortageItem{
			ShortageID: sg.ID,
			Date:       sg.Date.Format("2006-01-02"),
			Amount:     cost,
		})
	}
	if inCohort && !pooledShare.IsZero() {
		shortageTotal = shortageTotal.Add(pooledShare)
		shortageItems = append(shortageItems, payroll.ShortageItem{
			Amount: pooledShare,
			Pooled: true,
		})
	}

	bonusTotal := decimal.Zero
	penaltyTotal := decimal.Zero
	commissionTotal := decimal.Zero
	adjustmentItems := make([]payroll.AdjustmentItem, 0, len(adjustments))
	for _, a := range adjustments {
		total := a.Total()
		switch a.Kind {
		case adjustment.KindBonus:
			bonusTotal = bonusTotal.Add(total)
		case adjustment.KindPenalty:
			penaltyTotal = penaltyTotal.Add(total)
		case adjustment.KindCommission:
			commissionTotal = commissionTotal.Add(total)
		}
		adjustmentItems = append(adjustmentItems, payroll.AdjustmentItem{
			AdjustmentID: a.ID,
			ShiftID:      a.ShiftID,
			Kind:         string(a.Kind),
			Amount:       total,
			Reason:       a.Reason,
		})
	}

	net := gross.Sub(debtTotal).Sub(shortageTotal).Sub(penaltyTotal).Add(bonusTotal).Add(commissionTotal)

	return payroll.PayrollLineResponse{
		EmployeeID:       emp.ID,
		EmployeeName:     emp.FullName,
		PayUnit:          string(emp.PayUnit),
		PayClass:         string(emp.PayClass),
		TotalHours:       totalHours,
		TotalShifts:      totalShifts,
		StipendAmount:    stipend,
		GrossAmount:      gross,
		DebtAmount:       debtTotal,
		ShortageAmount:   shortageTotal,
		PenaltyAmount:    penaltyTotal,
		BonusAmount:      bonusTotal,
		CommissionAmount: commissionTotal,
		NetAmount:        net,
		Shifts:           shiftItems,
		Debts:            debtItems,
		Shortages:        shortageItems,
		Adjustments:      adjustmentItems,
	}
}

// managerStipend returns the fixed add-on for manager-class employees. The
// stipend is quoted per calendar half-month; an exact window match pays the
// half-month amount regardless of day count, anything else falls back to the
// day-count cutoff, with the full-month amount being double.
func (s *PayrollServiceImpl) managerStipend(emp employee.Employee, period payroll.Period) decimal.Decimal {
	if emp.PayClass != employee.PayClassManager {
		return decimal.Zero
	}

	half := s.policy.ManagerStipendHalfMonth
	if period.HalfMonthWindow() != payroll.HalfMonthNone {
		return half
	}
	if period.Days() <= s.policy.HalfMonthMaxDays {
		return half
	}
	return half.Mul(decimal.NewFromInt(2))
}

// ========== BATCH LIFECYCLE ==========

func (s *PayrollServiceImpl) GetBatch(ctx context.Context, id string) (payroll.BatchResponse, error) {
	batch, err := s.payrollRepo.GetBatchByID(ctx, id)
	if err != nil {
		return payroll.BatchResponse{}, err
	}
	return toBatchResponse(batch, true), nil
}

func (s *PayrollServiceImpl) ListBatches(ctx context.Context, filter payroll.BatchListFilter) (payroll.ListBatchesResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	batches, totalCount, err := s.payrollRepo.ListBatches(ctx, filter)
	if err != nil {
		return payroll.ListBatchesResponse{}, err
	}

	data := make([]payroll.BatchResponse, 0, len(batches))
	for _, b := range batches {
		data = append(data, toBatchResponse(b, false))
	}

	return payroll.ListBatchesResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// Finalize applies the one-way draft -> finalized transition. A second
// finalize attempt is a conflict, not a no-op, so double submissions surface
// to the caller.
func (s *PayrollServiceImpl) Finalize(ctx context.Context, id string, finalizedBy string) (payroll.BatchResponse, error) {
	batch, err := s.payrollRepo.FinalizeBatch(ctx, id, finalizedBy)
	if err != nil {
		return payroll.BatchResponse{}, err
	}
	return toBatchResponse(batch, true), nil
}

// ========== HELPERS ==========

func toBatchResponse(b payroll.PayrollBatch, withLines bool) payroll.BatchResponse {
	var finalizedAtStr *string
	if b.FinalizedAt != nil {
		str := b.FinalizedAt.Format(time.RFC3339)
		finalizedAtStr = &str
	}

	resp := payroll.BatchResponse{
		ID:          b.ID,
		PeriodStart: b.PeriodStart.Format("2006-01-02"),
		PeriodEnd:   b.PeriodEnd.Format("2006-01-02"),
		CreatedBy:   b.CreatedBy,
		Status:      string(b.Status),
		FinalizedAt: finalizedAtStr,
		FinalizedBy: b.FinalizedBy,
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
	}

	if withLines {
		resp.Lines = make([]payroll.PayrollLineResponse, 0, len(b.Lines))
		for _, line := range b.Lines {
			resp.Lines = append(resp.Lines, toLineResponse(line))
		}
	}
	return resp
}

func toLineResponse(l payroll.PayrollLine) payroll.PayrollLineResponse {
	employeeName := ""
	if l.EmployeeName != nil {
		employeeName = *l.EmployeeName
	}

	return payroll.PayrollLineResponse{
		EmployeeID:       l.EmployeeID,
		EmployeeName:     employeeName,
		TotalHours:       l.TotalHours,
		TotalShifts:      l.TotalShifts,
		StipendAmount:    l.StipendAmount,
		GrossAmount:      l.GrossAmount,
		DebtAmount:       l.DebtAmount,
		ShortageAmount:   l.ShortageAmount,
		PenaltyAmount:    l.PenaltyAmount,
		BonusAmount:      l.BonusAmount,
		CommissionAmount: l.CommissionAmount,
		NetAmount:        l.NetAmount,
	}
}
