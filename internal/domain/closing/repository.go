package closing

import "context"

type ClosingResultRepository interface {
	Save(ctx context.Context, c *ClosingResult) error
	Update(ctx context.Context, c *ClosingResult) error
	GetByRequestRootID(ctx context.Context, rootID uint) (*ClosingResult, error)
}

type RefinementRepository interface {
	// GetOrCreateByClosingResultID returns the existing refinement for
	// a closing result or persists a fresh one with a zero count.
	GetOrCreateByClosingResultID(ctx context.Context, closingResultID uint) (*Refinement, error)
	Update(ctx context.Context, r *Refinement) error
}

type ReviewRepository interface {
	Save(ctx context.Context, r *Review) error
	ListByClosingResultID(ctx context.Context, closingResultID uint) ([]*Review, error)
}
