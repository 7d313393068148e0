package usecases

import (
	"context"
	"fmt"
	"time"

	"upravdom/internal/domain/catalog"
	"upravdom/internal/domain/request"
	vo "upravdom/internal/domain/request/valueobjects"
	"upravdom/internal/shared/biztime"
	"upravdom/internal/shared/errors"
	"upravdom/internal/shared/logger"
)

type UpdateRequestCommand struct {
	RootID              uint
	UserID              uint
	Description         string
	Comments            string
	Question            string
	Urgency             string
	Entrance            *uint
	Floor               *uint
	Apartment           *uint
	ExecutorID          uint
	DefectID            uint
	PaymentCategoryName string
	PaymentCategoryCode string
	CardPaymentSign     string
}

type UpdateRequestResult struct {
	RootID    uint
	VersionID uint
	Status    string
	UpdatedAt time.Time
}

// UpdateRequestUseCase records a new version of a request. Closed
// requests with an emergency defect are locked against edits; the
// fresh version identifier comes from the shared root/version
// sequence, so the mint and the write share a transaction.
type UpdateRequestUseCase struct {
	requestRepo request.Repository
	defectRepo  catalog.DefectRepository
	txManager   TransactionManager
	logger      logger.Interface
}

func NewUpdateRequestUseCase(
	requestRepo request.Repository,
	defectRepo catalog.DefectRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *UpdateRequestUseCase {
	return &UpdateRequestUseCase{
		requestRepo: requestRepo,
		defectRepo:  defectRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *UpdateRequestUseCase) Execute(ctx context.Context, cmd UpdateRequestCommand) (*UpdateRequestResult, error) {
	uc.logger.Infow("executing update request use case", "root_id", cmd.RootID, "user_id", cmd.UserID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid update request command", "error", err)
		return nil, err
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
	if !req.CanEdit(defectUrgency) {
		uc.logger.Warnw("edit rejected for closed emergency request", "root_id", cmd.RootID)
		return nil, errors.NewForbiddenError("closed emergency requests cannot be edited")
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		maxRootID, maxVersionID, err := uc.requestRepo.MaxIdentifiers(txCtx)
		if err != nil {
			return err
		}
		versionID := request.NextRootID(maxRootID, maxVersionID)

		if err := req.UpdateDetails(request.UpdateParams{
			Description:         cmd.Description,
			Comments:            cmd.Comments,
			Question:            cmd.Question,
			Urgency:             vo.Urgency(cmd.Urgency),
			Entrance:            cmd.Entrance,
			Floor:               cmd.Floor,
			Apartment:           cmd.Apartment,
			ExecutorID:          cmd.ExecutorID,
			DefectID:            cmd.DefectID,
			PaymentCategoryName: cmd.PaymentCategoryName,
			PaymentCategoryCode: cmd.PaymentCategoryCode,
			CardPaymentSign:     cmd.CardPaymentSign,
		}); err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := req.ApplyEdit(versionID, cmd.UserID, biztime.NowUTC()); err != nil {
			return errors.NewValidationError(err.Error())
		}

		return uc.requestRepo.Update(txCtx, req)
	})
	if err != nil {
		uc.logger.Errorw("failed to update request", "root_id", cmd.RootID, "error", err)
		if appErr := errors.GetAppError(err); appErr != nil {
			return nil, appErr
		}
		return nil, errors.NewInternalError("failed to update request")
	}

	uc.logger.Infow("request updated successfully", "root_id", req.RootID(), "version_id", *req.VersionID())

	return &UpdateRequestResult{
		RootID:    req.RootID(),
		VersionID: *req.VersionID(),
		Status:    req.Status().String(),
		UpdatedAt: req.UpdatedAt(),
	}, nil
}

func (uc *UpdateRequestUseCase) validateCommand(cmd UpdateRequestCommand) error {
	if cmd.RootID == 0 {
		return errors.NewValidationError("request root ID is required")
	}
	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}
	if len(cmd.Description) > 1000 {
		return errors.NewValidationError("description exceeds maximum length of 1000 characters")
	}
	if cmd.Urgency != "" && !vo.Urgency(cmd.Urgency).IsValid() {
		return errors.NewValidationError("invalid urgency category")
	}
	return nil
}
