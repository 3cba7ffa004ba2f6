package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/crewdesk/crewdesk-backend-go/internal/domain/adjustment"
	"github.com/crewdesk/crewdesk-backend-go/internal/pkg/database"
)

type adjustmentRepository struct {
	db *database.DB
}

func NewAdjustmentRepository(db *database.DB) adjustment.AdjustmentRepository {
	return &adjustmentRepository{db: db}
}

// ListByPeriod joins through shifts: an adjustment belongs to the period its
// shift is dated in, and the employee is resolved from that shift.
func (r *adjustmentRepository) ListByPeriod(ctx context.Context, start, end time.Time) ([]adjustment.Adjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.shift_id, s.employee_id, a.kind, a.amount, a.rate_per_unit, a.quantity, a.reason, a.created_at, a.updated_at
		FROM adjustments a
		JOIN shifts s ON a.shift_id = s.id
		WHERE s.date BETWEEN $1 AND $2
		ORDER BY s.date, a.id
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list adjustments: %w", err)
	}
	defer rows.Close()

	var adjustments []adjustment.Adjustment
	for rows.Next() {
		var a adjustment.Adjustment
		if err := rows.Scan(
			&a.ID, &a.ShiftID, &a.EmployeeID, &a.Kind, &a.Amount, &a.RatePerUnit, &a.Quantity, &a.Reason, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan adjustment: %w", err)
		}
		adjustments = append(adjustments, a)
	}

	return adjustments, nil
}
