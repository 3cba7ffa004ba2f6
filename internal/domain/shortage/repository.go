package shortage

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ShortageRepository reads shortage records from the inventory-count store.
type ShortageRepository interface {
	// ListByPeriod returns all shortages dated within [start, end] inclusive,
	// resolved and excluded records included; callers filter via Chargeable.
	ListByPeriod(ctx context.Context, start, end time.Time) ([]Shortage, error)
}

// CountSnapshotRepository exposes the unassigned-shortage total captured when
// an inventory count was last saved. Kept as its own port so the engine can be
// tested without a live inventory subsystem.
type CountSnapshotRepository interface {
	// LatestSavedTotal returns the snapshot total and whether one exists.
	LatestSavedTotal(ctx context.Context) (decimal.Decimal, bool, error)
}
