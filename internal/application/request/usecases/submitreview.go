package usecases

import (
	"context"
	"fmt"
	"time"

	"upravdom/internal/domain/closing"
	"upravdom/internal/domain/request"
	"upravdom/internal/shared/biztime"
	"upravdom/internal/shared/errors"
	"upravdom/internal/shared/logger"
)

type SubmitReviewCommand struct {
	RootID     uint
	Review     string
	Assessment uint
}

type SubmitReviewResult struct {
	ReviewID   uint
	RootID     uint
	Assessment uint
	CreatedAt  time.Time
}

// SubmitReviewUseCase records the citizen's assessment of completed
// work. A review attaches to the closing result, so the request must
// already be closed, and each closing result takes a single review.
type SubmitReviewUseCase struct {
	requestRepo request.Repository
	closingRepo closing.ClosingResultRepository
	reviewRepo  closing.ReviewRepository
	logger      logger.Interface
}

func NewSubmitReviewUseCase(
	requestRepo request.Repository,
	closingRepo closing.ClosingResultRepository,
	reviewRepo closing.ReviewRepository,
	logger logger.Interface,
) *SubmitReviewUseCase {
	return &SubmitReviewUseCase{
		requestRepo: requestRepo,
		closingRepo: closingRepo,
		reviewRepo:  reviewRepo,
		logger:      logger,
	}
}

func (uc *SubmitReviewUseCase) Execute(ctx context.Context, cmd SubmitReviewCommand) (*SubmitReviewResult, error) {
	if cmd.RootID == 0 {
		return nil, errors.NewValidationError("request root ID is required")
	}

	uc.logger.Infow("executing submit review use case", "root_id", cmd.RootID, "assessment", cmd.Assessment)

	req, err := uc.requestRepo.GetByRootID(ctx, cmd.RootID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("request %d not found", cmd.RootID))
	}

	if !req.Status().IsClosed() {
		return nil, errors.NewValidationError("only closed requests can be reviewed")
	}

	closingResult, err := uc.closingRepo.GetByRequestRootID(ctx, req.RootID())
	if err != nil {
		uc.logger.Errorw("closed request has no closing result", "root_id", cmd.RootID, "error", err)
		return nil, errors.NewInternalError("failed to load closing result")
	}

	existing, err := uc.reviewRepo.ListByClosingResultID(ctx, closingResult.ID())
	if err != nil {
		uc.logger.Errorw("failed to check existing reviews", "root_id", cmd.RootID, "error", err)
		return nil, errors.NewInternalError("failed to check existing reviews")
	}
	if len(existing) > 0 {
		return nil, errors.NewConflictError("request already has a review")
	}

	now := biztime.NowUTC()
	review, err := closing.NewReview(closingResult.ID(), cmd.Review, cmd.Assessment, now)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.reviewRepo.Save(ctx, review); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("request already has a review")
		}
		uc.logger.Errorw("failed to save review", "root_id", cmd.RootID, "error", err)
		return nil, errors.NewInternalError("failed to save review")
	}

	uc.logger.Infow("review submitted", "root_id", cmd.RootID, "review_id", review.ID())

	return &SubmitReviewResult{
		ReviewID:   review.ID(),
		RootID:     req.RootID(),
		Assessment: review.AssessmentQualityWork(),
		CreatedAt:  review.Date(),
	}, nil
}
