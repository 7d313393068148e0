package usecases

import (
	"context"
	"fmt"

	"upravdom/internal/application/request/dto"
	"upravdom/internal/domain/closing"
	"upravdom/internal/domain/request"
	"upravdom/internal/shared/biztime"
	"upravdom/internal/shared/errors"
	"upravdom/internal/shared/logger"
)

type GetRequestQuery struct {
	RootID uint
}

// GetRequestUseCase fetches one request. While the request's closing
// result is under revision, the response carries the computed total
// term alongside the stored fields.
type GetRequestUseCase struct {
	requestRepo request.Repository
	closingRepo closing.ClosingResultRepository
	logger      logger.Interface
}

func NewGetRequestUseCase(
	requestRepo request.Repository,
	closingRepo closing.ClosingResultRepository,
	logger logger.Interface,
) *GetRequestUseCase {
	return &GetRequestUseCase{
		requestRepo: requestRepo,
		closingRepo: closingRepo,
		logger:      logger,
	}
}

func (uc *GetRequestUseCase) Execute(ctx context.Context, query GetRequestQuery) (*dto.RequestDTO, error) {
	if query.RootID == 0 {
		return nil, errors.NewValidationError("request root ID is required")
	}

	req, err := uc.requestRepo.GetByRootID(ctx, query.RootID)
	if err != nil {
		uc.logger.Errorw("failed to get request", "root_id", query.RootID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("request %d not found", query.RootID))
	}

	result := dto.ToRequestDTO(req)

	closingResult, err := uc.closingRepo.GetByRequestRootID(ctx, req.RootID())
	if err == nil && closingResult != nil && closingResult.IsUnderRevision() {
		term := req.TotalTerm(biztime.NowUTC()).String()
		result.TotalTerm = &term
	}

	return result, nil
}
