package payroll

import "context"

// PayrollRepository persists computed batches. Reads of the underlying
// staffing records go through their own repositories; this one only owns the
// batch and line tables.
type PayrollRepository interface {
	// CreateBatch inserts the batch and all of its lines as a single unit.
	// Implementations must guarantee all-or-nothing: a failure part-way
	// through leaves no orphaned batch or lines behind.
	CreateBatch(ctx context.Context, batch PayrollBatch) (PayrollBatch, error)

	GetBatchByID(ctx context.Context, id string) (PayrollBatch, error)
	ListBatches(ctx context.Context, filter BatchListFilter) ([]PayrollBatch, int64, error)

	// FinalizeBatch applies the draft -> finalized transition and returns the
	// updated batch. ErrBatchNotFound when no such batch exists,
	// ErrBatchAlreadyFinalized when the transition already happened.
	FinalizeBatch(ctx context.Context, id string, finalizedBy string) (PayrollBatch, error)
}
