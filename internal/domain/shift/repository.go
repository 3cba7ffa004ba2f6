package shift

import (
	"context"
	"time"
)

// ShiftRepository reads shift records from the scheduling store.
type ShiftRepository interface {
	// ListByPeriod returns all shifts dated within [start, end] inclusive.
	// With attendedOnly set, only shifts whose attendance was marked count;
	// the preview computation deliberately includes unattended ones.
	ListByPeriod(ctx context.Context, start, end time.Time, attendedOnly bool) ([]Shift, error)
}
