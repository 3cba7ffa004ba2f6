package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/crewdesk/crewdesk-backend-go/internal/domain/payroll"
	"github.com/crewdesk/crewdesk-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

// CreateBatch writes the batch row and every line in one transaction, so a
// failure part-way through cannot leave an orphaned draft behind.
func (r *payrollRepository) CreateBatch(ctx context.Context, batch payroll.PayrollBatch) (payroll.PayrollBatch, error) {
	created := batch

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO payroll_batches (id, period_start, period_end, created_by, status)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING created_at, updated_at
		`, batch.ID, batch.PeriodStart, batch.PeriodEnd, batch.CreatedBy, batch.Status,
		).Scan(&created.CreatedAt, &created.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert payroll batch: %w", err)
		}

		for i, line := range batch.Lines {
			err := tx.QueryRow(ctx, `
				INSERT INTO payroll_lines (
					id, batch_id, employee_id, total_hours, total_shifts,
					gross_amount, stipend_amount, debt_amount, shortage_amount,
					penalty_amount, bonus_amount, commission_amount, net_amount
				) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
				RETURNING created_at
			`,
				line.ID, batch.ID, line.EmployeeID, line.TotalHours, line.TotalShifts,
				line.GrossAmount, line.StipendAmount, line.DebtAmount, line.ShortageAmount,
				line.PenaltyAmount, line.BonusAmount, line.CommissionAmount, line.NetAmount,
			).Scan(&created.Lines[i].CreatedAt)
			if err != nil {
				return fmt.Errorf("failed to insert payroll line: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return payroll.PayrollBatch{}, err
	}

	return created, nil
}

func (r *payrollRepository) GetBatchByID(ctx context.Context, id string) (payroll.PayrollBatch, error) {
	q := GetQuerier(ctx, r.db)

	var b payroll.PayrollBatch
	err := q.QueryRow(ctx, `
		SELECT id, period_start, period_end, created_by, status, finalized_at, finalized_by, created_at, updated_at
		FROM payroll_batches
		WHERE id = $1
	`, id).Scan(
		&b.ID, &b.PeriodStart, &b.PeriodEnd, &b.CreatedBy, &b.Status, &b.FinalizedAt, &b.FinalizedBy, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollBatch{}, payroll.ErrBatchNotFound
		}
		return payroll.PayrollBatch{}, fmt.Errorf("failed to get payroll batch: %w", err)
	}

	rows, err := q.Query(ctx, `
		SELECT l.id, l.batch_id, l.employee_id, l.total_hours, l.total_shifts,
			   l.gross_amount, l.stipend_amount, l.debt_amount, l.shortage_amount,
			   l.penalty_amount, l.bonus_amount, l.commission_amount, l.net_amount,
			   l.created_at, e.full_name
		FROM payroll_lines l
		JOIN employees e ON l.employee_id = e.id
		WHERE l.batch_id = $1
		ORDER BY e.full_name, l.employee_id
	`, id)
	if err != nil {
		return payroll.PayrollBatch{}, fmt.Errorf("failed to list payroll lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var l payroll.PayrollLine
		if err := rows.Scan(
			&l.ID, &l.BatchID, &l.EmployeeID, &l.TotalHours, &l.TotalShifts,
			&l.GrossAmount, &l.StipendAmount, &l.DebtAmount, &l.ShortageAmount,
			&l.PenaltyAmount, &l.BonusAmount, &l.CommissionAmount, &l.NetAmount,
			&l.CreatedAt, &l.EmployeeName,
		); err != nil {
			return payroll.PayrollBatch{}, fmt.Errorf("failed to scan payroll line: %w", err)
		}
		b.Lines = append(b.Lines, l)
	}

	return b, nil
}

func (r *payrollRepository) ListBatches(ctx context.Context, filter payroll.BatchListFilter) ([]payroll.PayrollBatch, int64, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var totalCount int64
	err := q.QueryRow(ctx, "SELECT COUNT(*) FROM payroll_batches"+where, args...).Scan(&totalCount)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll batches: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	args = append(args, filter.Limit, offset)
	query := fmt.Sprintf(`
		SELECT id, period_start, period_end, created_by, status, finalized_at, finalized_by, created_at, updated_at
		FROM payroll_batches
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll batches: %w", err)
	}
	defer rows.Close()

	var batches []payroll.PayrollBatch
	for rows.Next() {
		var b payroll.PayrollBatch
		if err := rows.Scan(
			&b.ID, &b.PeriodStart, &b.PeriodEnd, &b.CreatedBy, &b.Status, &b.FinalizedAt, &b.FinalizedBy, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll batch: %w", err)
		}
		batches = append(batches, b)
	}

	return batches, totalCount, nil
}

// FinalizeBatch applies the one-way transition. The status guard in the
// UPDATE keeps concurrent finalize calls from both succeeding.
func (r *payrollRepository) FinalizeBatch(ctx context.Context, id string, finalizedBy string) (payroll.PayrollBatch, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE payroll_batches
		SET status = 'finalized', finalized_at = NOW(), finalized_by = $1, updated_at = NOW()
		WHERE id = $2 AND status = 'draft'
	`, finalizedBy, id)
	if err != nil {
		return payroll.PayrollBatch{}, fmt.Errorf("failed to finalize payroll batch: %w", err)
	}

	if tag.RowsAffected() == 0 {
		var status string
		err := q.QueryRow(ctx, `SELECT status FROM payroll_batches WHERE id = $1`, id).Scan(&status)
		if err != nil {
			if err == pgx.ErrNoRows {
				return payroll.PayrollBatch{}, payroll.ErrBatchNotFound
			}
			return payroll.PayrollBatch{}, fmt.Errorf("failed to check payroll batch status: %w", err)
		}
		if status == string(payroll.BatchStatusFinalized) {
			return payroll.PayrollBatch{}, payroll.ErrBatchAlreadyFinalized
		}
		return payroll.PayrollBatch{}, payroll.ErrBatchNotFound
	}

	return r.GetBatchByID(ctx, id)
}
