package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/crewdesk/crewdesk-backend-go/internal/domain/shift"
	"github.com/crewdesk/crewdesk-backend-go/internal/pkg/database"
)

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepository{db: db}
}

func (r *shiftRepository) ListByPeriod(ctx context.Context, start, end time.Time, attendedOnly bool) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, starts_at, ends_at, hours, attended, created_at, updated_at
		FROM shifts
		WHERE date BETWEEN $1 AND $2
	`
	if attendedOnly {
		query += " AND attended = true"
	}
	query += " ORDER BY date, starts_at"

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		var s shift.Shift
		if err := rows.Scan(
			&s.ID, &s.EmployeeID, &s.Date, &s.StartsAt, &s.EndsAt, &s.Hours, &s.Attended, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}

	return shifts, nil
}
