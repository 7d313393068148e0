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

type CloseRequestCommand struct {
	RootID             uint
	UserID             uint
	ConsumedMaterial   string
	SecurityEventsSign string
	SecurityEventsTime *time.Time
	ActionsTaken       string
	Effectiveness      string
	EfficiencyCode     string
	SignAlerted        string
	ExecutorRefusalID  *uint
	ImplOrgRefusalID   *uint
}

type CloseRequestResult struct {
	RootID          uint
	Status          string
	ClosingResultID uint
	ClosedAt        time.Time
}

// CloseRequestUseCase closes a request and records its closing result
// in the same transaction, so a closed request is never observed
// without one.
type CloseRequestUseCase struct {
	requestRepo request.Repository
	closingRepo closing.ClosingResultRepository
	txManager   TransactionManager
	logger      logger.Interface
}

func NewCloseRequestUseCase(
	requestRepo request.Repository,
	closingRepo closing.ClosingResultRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *CloseRequestUseCase {
	return &CloseRequestUseCase{
		requestRepo: requestRepo,
		closingRepo: closingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *CloseRequestUseCase) Execute(ctx context.Context, cmd CloseRequestCommand) (*CloseRequestResult, error) {
	uc.logger.Infow("executing close request use case", "root_id", cmd.RootID, "user_id", cmd.UserID)

	if cmd.RootID == 0 {
		return nil, errors.NewValidationError("request root ID is required")
	}
	if len(cmd.Effectiveness) == 0 {
		return nil, errors.NewValidationError("effectiveness is required")
	}

	req, err := uc.requestRepo.GetByRootID(ctx, cmd.RootID)
	if err != nil {
		uc.logger.Errorw("failed to get request", "root_id", cmd.RootID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("request %d not found", cmd.RootID))
	}

	now := biztime.NowUTC()
	var closingResult *closing.ClosingResult

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := req.Close(now); err != nil {
			return errors.NewConflictError(err.Error())
		}
		if err := uc.requestRepo.Update(txCtx, req); err != nil {
			return err
		}

		closingResult, err = closing.NewClosingResult(closing.NewClosingResultParams{
			RequestRootID:      req.RootID(),
			ConsumedMaterial:   cmd.ConsumedMaterial,
			SecurityEventsSign: cmd.SecurityEventsSign,
			SecurityEventsTime: cmd.SecurityEventsTime,
			ActionsTaken:       cmd.ActionsTaken,
			Effectiveness:      cmd.Effectiveness,
			EfficiencyCode:     cmd.EfficiencyCode,
			SignAlerted:        cmd.SignAlerted,
			ExecutorRefusalID:  cmd.ExecutorRefusalID,
			ImplOrgRefusalID:   cmd.ImplOrgRefusalID,
		})
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		return uc.closingRepo.Save(txCtx, closingResult)
	})
	if err != nil {
		uc.logger.Errorw("failed to close request", "root_id", cmd.RootID, "error", err)
		if appErr := errors.GetAppError(err); appErr != nil {
			return nil, appErr
		}
		return nil, errors.NewInternalError("failed to close request")
	}

	uc.logger.Infow("request closed successfully", "root_id", req.RootID(), "closing_result_id", closingResult.ID())

	return &CloseRequestResult{
		RootID:          req.RootID(),
		Status:          req.Status().String(),
		ClosingResultID: closingResult.ID(),
		ClosedAt:        now,
	}, nil
}
