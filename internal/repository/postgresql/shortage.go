package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/crewdesk/crewdesk-backend-go/internal/domain/shortage"
	"github.com/crewdesk/crewdesk-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type shortageRepository struct {
	db *database.DB
}

func NewShortageRepository(db *database.DB) shortage.ShortageRepository {
	return &shortageRepository{db: db}
}

func (r *shortageRepository) ListByPeriod(ctx context.Context, start, end time.Time) ([]shortage.Shortage, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, system_count, actual_count, unit_price, resolved, excluded, date, created_at, updated_at
		FROM shortages
		WHERE date BETWEEN $1 AND $2
		ORDER BY date, id
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list shortages: %w", err)
	}
	defer rows.Close()

	var shortages []shortage.Shortage
	for rows.Next() {
		var s shortage.Shortage
		if err := rows.Scan(
			&s.ID, &s.EmployeeID, &s.SystemCount, &s.ActualCount, &s.UnitPrice, &s.Resolved, &s.Excluded, &s.Date, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan shortage: %w", err)
		}
		shortages = append(shortages, s)
	}

	return shortages, nil
}

type countSnapshotRepository struct {
	db *database.DB
}

func NewCountSnapshotRepository(db *database.DB) shortage.CountSnapshotRepository {
	return &countSnapshotRepository{db: db}
}

// LatestSavedTotal returns the unassigned-shortage total recorded with the
// most recently saved inventory count.
func (r *countSnapshotRepository) LatestSavedTotal(ctx context.Context) (decimal.Decimal, bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT unassigned_total
		FROM inventory_counts
		WHERE saved = true
		ORDER BY counted_at DESC
		LIMIT 1
	`

	var total decimal.Decimal
	err := q.QueryRow(ctx, query).Scan(&total)
	if err != nil {
		if err == pgx.ErrNoRows {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, fmt.Errorf("failed to get inventory count snapshot: %w", err)
	}

	return total, true, nil
}
