package payroll

import "context"

// Mode selects the computation policy. The two call paths share one engine;
// mode gates attendance filtering and whether manual overrides apply.
type Mode string

const (
	// ModePreview counts every scheduled shift, attended or not, and honors
	// caller-supplied cohort and pooled-amount overrides.
	ModePreview Mode = "preview"
	// ModeBatch counts attended shifts only and ignores overrides.
	ModeBatch Mode = "batch"
)

// PayrollService computes and persists payroll for a period.
type PayrollService interface {
	// Preview computes payroll lines without writing anything.
	Preview(ctx context.Context, req PreviewRequest) ([]PayrollLineResponse, error)

	// CreateBatch computes payroll for all active employees and persists the
	// result as a draft batch, atomically.
	CreateBatch(ctx context.Context, req CreateBatchRequest, createdBy string) (BatchResponse, error)

	// GetBatch returns a persisted batch with its lines.
	GetBatch(ctx context.Context, id string) (BatchResponse, error)

	// ListBatches returns persisted batches without lines.
	ListBatches(ctx context.Context, filter BatchListFilter) (ListBatchesResponse, error)

	// Finalize transitions a draft batch to finalized. Finalizing a batch
	// that is already finalized is a conflict (ErrBatchAlreadyFinalized),
	// not a no-op; a nonexistent batch yields ErrBatchNotFound.
	Finalize(ctx context.Context, id string, finalizedBy string) (BatchResponse, error)
}
