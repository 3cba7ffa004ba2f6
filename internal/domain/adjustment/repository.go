package adjustment

import (
	"context"
	"time"
)

// AdjustmentRepository reads bonus, penalty and commission records. Each is
// tied to a shift; implementations resolve EmployeeID through that shift.
type AdjustmentRepository interface {
	// ListByPeriod returns all adjustments whose shift falls within
	// [start, end] inclusive.
	ListByPeriod(ctx context.Context, start, end time.Time) ([]Adjustment, error)
}
