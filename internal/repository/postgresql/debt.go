package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/crewdesk/crewdesk-backend-go/internal/domain/debt"
	"github.com/crewdesk/crewdesk-backend-go/internal/pkg/database"
)

type debtRepository struct {
	db *database.DB
}

func NewDebtRepository(db *database.DB) debt.DebtRepository {
	return &debtRepository{db: db}
}

func (r *debtRepository) ListByPeriod(ctx context.Context, start, end time.Time) ([]debt.Debt, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, amount, date, note, created_at, updated_at
		FROM debts
		WHERE date BETWEEN $1 AND $2
		ORDER BY date, id
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}
	defer rows.Close()

	var debts []debt.Debt
	for rows.Next() {
		var d debt.Debt
		if err := rows.Scan(
			&d.ID, &d.EmployeeID, &d.Amount, &d.Date, &d.Note, &d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan debt: %w", err)
		}
		debts = append(debts, d)
	}

	return debts, nil
}
