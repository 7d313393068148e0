package usecases

import (
	"context"
	"fmt"
	"time"

	"upravdom/internal/domain/catalog"
	"upravdom/internal/domain/closing"
	"upravdom/internal/domain/request"
	vo "upravdom/internal/domain/request/valueobjects"
	"upravdom/internal/shared/biztime"
	"upravdom/internal/shared/errors"
	"upravdom/internal/shared/logger"
)

type ReworkRequestCommand struct {
	RootID uint
	UserID uint
}

type ReworkRequestResult struct {
	RootID      uint
	Status      string
	ReturnCount uint
	ReworkedAt  time.Time
}

// ReworkRequestUseCase sends a closed request back for rework. The
// transition is gated: the five-day window since the last version
// change must still be open, the defect urgency must not be emergency,
// and the request must be on neither side of an incident link. On
// success the closing result is flagged as under revision and the
// refinement counter is incremented, atomically with the status reset.
type ReworkRequestUseCase struct {
	requestRepo    request.Repository
	defectRepo     catalog.DefectRepository
	closingRepo    closing.ClosingResultRepository
	refinementRepo closing.RefinementRepository
	txManager      TransactionManager
	logger         logger.Interface
}

func NewReworkRequestUseCase(
	requestRepo request.Repository,
	defectRepo catalog.DefectRepository,
	closingRepo closing.ClosingResultRepository,
	refinementRepo closing.RefinementRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *ReworkRequestUseCase {
	return &ReworkRequestUseCase{
		requestRepo:    requestRepo,
		defectRepo:     defectRepo,
		closingRepo:    closingRepo,
		refinementRepo: refinementRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

func (uc *ReworkRequestUseCase) Execute(ctx context.Context, cmd ReworkRequestCommand) (*ReworkRequestResult, error) {
	uc.logger.Infow("executing rework request use case", "root_id", cmd.RootID, "user_id", cmd.UserID)

	if cmd.RootID == 0 {
		return nil, errors.NewValidationError("request root ID is required")
	}

	req, err := uc.requestRepo.GetByRootID(ctx, cmd.RootID)
	if err != nil {
		uc.logger.Errorw("failed to get request", "root_id", cmd.RootID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("request %d not found", cmd.RootID))
	}

	defect, err := uc.defectRepo.GetByID(ctx, req.DefectID())
	if err != nil {
		uc.logger.Errorw("failed to get defect", "defect_id", req.DefectID(), "error", err)
		return nil, errors.NewInternalError("failed to load defect")
	}
	defectUrgency, err := vo.UrgencyFromName(defect.UrgencyCategoryName)
	if err != nil {
		defectUrgency = vo.UrgencyNormal
	}

	now := biztime.NowUTC()
	if err := req.CheckRework(defectUrgency, now); err != nil {
		uc.logger.Warnw("rework rejected", "root_id", cmd.RootID, "reason", err)
		return nil, errors.NewForbiddenError(err.Error())
	}

	var refinement *closing.Refinement
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := req.SendToRework(now); err != nil {
			return errors.NewForbiddenError(err.Error())
		}
		if err := uc.requestRepo.Update(txCtx, req); err != nil {
			return err
		}

		closingResult, err := uc.closingRepo.GetByRequestRootID(txCtx, req.RootID())
		if err != nil {
			return errors.NewConflictError("request has no closing result to rework")
		}
		closingResult.MarkUnderRevision()
		if err := uc.closingRepo.Update(txCtx, closingResult); err != nil {
			return err
		}

		refinement, err = uc.refinementRepo.GetOrCreateByClosingResultID(txCtx, closingResult.ID())
		if err != nil {
			return err
		}
		refinement.Increment(now)
		return uc.refinementRepo.Update(txCtx, refinement)
	})
	if err != nil {
		uc.logger.Errorw("failed to rework request", "root_id", cmd.RootID, "error", err)
		if appErr := errors.GetAppError(err); appErr != nil {
			return nil, appErr
		}
		return nil, errors.NewInternalError("failed to send request to rework")
	}

	uc.logger.Infow("request sent to rework", "root_id", req.RootID(), "return_count", refinement.ReturnCount())

	return &ReworkRequestResult{
		RootID:      req.RootID(),
		Status:      req.Status().String(),
		ReturnCount: refinement.ReturnCount(),
		ReworkedAt:  now,
	}, nil
}
